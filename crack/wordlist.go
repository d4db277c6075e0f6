package crack

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ErrSourceUnavailable is returned when the wordlist file cannot be opened
// or read. A readable but empty wordlist is not an error; it yields an
// empty candidate list.
var ErrSourceUnavailable = errors.New("wordlist unavailable")

// maxCandidateLen caps the per-line scanner buffer. Secrets longer than a
// megabyte are outside anything a wordlist attack would carry.
const maxCandidateLen = 1 << 20

// LoadWordlist reads candidate secrets from a line-oriented UTF-8 file, one
// per line, in file order. Lines are trimmed of surrounding whitespace and
// empty lines are dropped. No deduplication is performed; order determines
// the attempt index reported on a match.
func LoadWordlist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrSourceUnavailable, "error opening wordlist %q: %v", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxCandidateLen)

	var words []string
	for scanner.Scan() {
		if w := strings.TrimSpace(scanner.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(ErrSourceUnavailable, "error reading wordlist %q: %v", path, err)
	}
	return words, nil
}
