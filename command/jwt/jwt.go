// Package jwt implements the jwtattack commands that operate on JSON Web
// Tokens: crack, forge, alg-none, inspect and wordlist. Each file holds
// one command; shared input helpers live here.
package jwt

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/jwtsec/jwtattack/utils"
)

// readToken resolves the target token: the --token flag value, a file when
// the value has the @path form, or one line from STDIN when the flag is
// not set.
func readToken(ctx *cli.Context) (string, error) {
	v := ctx.String("token")
	switch {
	case v == "":
		tok, err := utils.ReadString(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "error reading token")
		}
		if tok == "" {
			return "", errors.New("no token provided, use the '--token' flag or pipe it through STDIN")
		}
		return tok, nil
	case strings.HasPrefix(v, "@"):
		b, err := utils.ReadFileOrSTDIN(v[1:])
		if err != nil {
			return "", errors.Wrap(err, "error reading token")
		}
		return strings.TrimSpace(string(b)), nil
	default:
		return v, nil
	}
}

// readPayload resolves the claims JSON: the --payload flag value or STDIN.
func readPayload(ctx *cli.Context) (string, error) {
	if v := ctx.String("payload"); v != "" {
		return v, nil
	}
	b, err := utils.ReadInput("Please enter the payload JSON")
	if err != nil {
		return "", errors.Wrap(err, "error reading payload")
	}
	if len(b) == 0 {
		return "", errors.New("no payload provided, use the '--payload' flag or pipe it through STDIN")
	}
	return string(b), nil
}

// parseHeader converts repeated key=value flags into a header map.
func parseHeader(pairs []string) (map[string]interface{}, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	header := make(map[string]interface{}, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, errors.Errorf("invalid header %q, expected the form key=value", p)
		}
		header[k] = v
	}
	return header, nil
}

// writeToken sends the token to --output when set, or to STDOUT.
func writeToken(ctx *cli.Context, tok string) error {
	output := ctx.String("output")
	if output == "" {
		fmt.Println(tok)
		return nil
	}
	if err := utils.WriteFile(output, []byte(tok+"\n"), 0600, ctx.Bool("force")); err != nil {
		return errors.Wrapf(err, "error writing %s", output)
	}
	return nil
}

// formatDuration renders an elapsed time the way an operator reads it:
// milliseconds under a second, seconds under a minute, minutes above.
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	default:
		m := int(d.Minutes())
		return fmt.Sprintf("%dm %.2fs", m, (d - time.Duration(m)*time.Minute).Seconds())
	}
}
