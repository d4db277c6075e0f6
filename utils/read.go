package utils

import (
	"bufio"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh/terminal"
)

// ReadAll returns a slice of bytes with the content of the given reader.
func ReadAll(r io.Reader) ([]byte, error) {
	b, err := io.ReadAll(r)
	return b, errors.Wrap(err, "error reading data")
}

// ReadString reads one line from the given io.Reader.
func ReadString(r io.Reader) (string, error) {
	br := bufio.NewReader(r)
	str, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "error reading string")
	}
	return strings.TrimSpace(str), nil
}

// ReadPassword asks the user for a secret using the given prompt, without
// echoing it. If the program is receiving data from STDIN through a pipe we
// cannot use terminal.ReadPassword on STDIN, so we open the tty and read
// from it.
func ReadPassword(prompt string) ([]byte, error) {
	os.Stderr.WriteString(prompt)
	var fd int
	if terminal.IsTerminal(syscall.Stdin) {
		fd = syscall.Stdin
	} else {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return nil, errors.Wrap(err, "error allocating terminal")
		}
		defer tty.Close()
		fd = int(tty.Fd())
	}

	pass, err := terminal.ReadPassword(fd)
	os.Stderr.WriteString("\n")
	return pass, errors.Wrap(err, "error reading password")
}

// ReadInput reads from STDIN if data is piped in, or asks the user for an
// input using the given prompt.
func ReadInput(prompt string) ([]byte, error) {
	st, err := os.Stdin.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "error reading data")
	}

	if st.Size() > 0 || st.Mode()&os.ModeCharDevice == 0 {
		return ReadAll(os.Stdin)
	}

	return ReadPassword(prompt)
}

// ReadFileOrSTDIN treats the argument "-" as STDIN and anything else as a
// file name.
func ReadFileOrSTDIN(name string) ([]byte, error) {
	if name == "-" {
		return ReadAll(os.Stdin)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %s", name)
	}
	return b, nil
}
