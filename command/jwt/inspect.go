package jwt

import (
	"encoding/json"
	"fmt"

	jose "github.com/go-jose/go-jose/v3"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/jwtsec/jwtattack/command"
	"github.com/jwtsec/jwtattack/errs"
	"github.com/jwtsec/jwtattack/flags"
	"github.com/jwtsec/jwtattack/token"
)

func init() {
	command.Register(inspectCommand())
}

func inspectCommand() cli.Command {
	return cli.Command{
		Name:   "inspect",
		Action: cli.ActionFunc(inspectAction),
		Usage:  "return the decoded JWT without verification",
		UsageText: `**jwtattack inspect** [**--token**=<token>]
**--insecure**`,
		Description: `**jwtattack inspect** decodes a token and prints its header, payload and
signature segment as indented JSON. No verification of any kind is
performed, so you must pass **--insecure** as a misuse prevention mechanism.

## EXAMPLES

Inspect a token from STDIN:
'''
$ echo $TOKEN | jwtattack inspect --insecure
{
  "header": {
    "alg": "HS256",
    "typ": "JWT"
  },
  "payload": {
    "role": "admin",
    "user": "testuser"
  },
  "signature": "5wwE1sBn..."
}
'''`,
		Flags: []cli.Flag{
			flags.Token,
			flags.InsecureHidden,
		},
	}
}

func inspectAction(ctx *cli.Context) error {
	if err := errs.NumberOfArguments(ctx, 0); err != nil {
		return err
	}
	if !ctx.Bool("insecure") {
		return errs.InsecureCommand(ctx)
	}

	raw, err := readToken(ctx)
	if err != nil {
		return err
	}
	return printToken(raw)
}

// printToken decodes the three token segments and prints them as indented
// JSON. Signed tokens are round-tripped through the JOSE parser first so
// anything it cannot re-serialize compactly is rejected early; unsigned
// alg:none tokens skip that step since a JWS parser will not accept them.
func printToken(raw string) error {
	t, err := token.Parse(raw)
	if err != nil {
		return errors.Wrap(err, "error parsing token")
	}

	if len(t.Signature) > 0 {
		tok, err := jose.ParseSigned(raw)
		if err != nil {
			return errors.Wrap(err, "error parsing token")
		}
		if raw, err = tok.CompactSerialize(); err != nil {
			return errors.Wrap(err, "error serializing token")
		}
		if t, err = token.Parse(raw); err != nil {
			return errors.Wrap(err, "error parsing token")
		}
	}

	m := map[string]interface{}{
		"header":    t.Header,
		"payload":   t.Payload,
		"signature": t.SignatureSegment(),
	}
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Wrap(err, "error marshaling token data")
	}

	fmt.Println(string(b))
	return nil
}
