package jwt

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/jwtsec/jwtattack/command"
	"github.com/jwtsec/jwtattack/errs"
	"github.com/jwtsec/jwtattack/flags"
	"github.com/jwtsec/jwtattack/token"
	"github.com/jwtsec/jwtattack/utils"
)

func init() {
	command.Register(forgeCommand())
}

func forgeCommand() cli.Command {
	return cli.Command{
		Name:   "forge",
		Action: cli.ActionFunc(forgeAction),
		Usage:  "create a signed JWT from a payload and a known secret",
		UsageText: `**jwtattack forge** [**--payload**=<json>] [**--secret**=<secret>]
[**--alg**=<algorithm>] [**--header**=<key=value>] [**--sub**=<subject>]
[**--exp**=<timestamp>] [**--iat**] [**--jti**] [**--output**=<file>]`,
		Description: `**jwtattack forge** signs an arbitrary JSON payload with a known HMAC
secret and prints the resulting token. The payload is taken verbatim;
claim flags such as **--sub** or **--exp** are merged into it before signing,
overriding members of the same name.

If **--secret** is omitted the secret is read interactively without echo, so
it stays off the process argument list.

## EXAMPLES

Forge an admin token signed with a recovered secret:
'''
$ jwtattack forge --payload '{"user":"testuser","role":"admin"}' --secret secret
eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJyb2xlIjoiYWRtaW4iLCJ1c2VyIjoidGVzdHVzZXIifQ.5wwE1sBn...
'''

Forge an HS512 token with a custom kid header and a one hour expiry:
'''
$ jwtattack forge --payload '{"user":"x"}' --secret hunter2 --alg HS512 \
      --header kid=legacy --exp $(($(date +%s) + 3600))
'''`,
		Flags: []cli.Flag{
			flags.Payload,
			cli.StringFlag{
				Name:  "secret",
				Usage: `The HMAC signing <secret>. Read interactively when the flag is omitted.`,
			},
			cli.StringFlag{
				Name:  "alg, algorithm",
				Usage: `The HMAC signature <algorithm> to use, one of **HS256**, **HS384** or **HS512**.`,
				Value: "HS256",
			},
			flags.Header,
			cli.StringFlag{
				Name:  "sub",
				Usage: `The subject <claim> merged into the payload.`,
			},
			cli.StringFlag{
				Name:  "iss",
				Usage: `The issuer <claim> merged into the payload.`,
			},
			cli.StringFlag{
				Name:  "aud",
				Usage: `The audience <claim> merged into the payload.`,
			},
			cli.Int64Flag{
				Name:  "exp",
				Usage: `The expiration time <claim>, a UNIX timestamp in seconds. May be in the past.`,
			},
			cli.Int64Flag{
				Name:  "nbf",
				Usage: `The not-before <claim>, a UNIX timestamp in seconds.`,
			},
			cli.BoolFlag{
				Name:  "iat",
				Usage: "Set the issued-at claim to the current time.",
			},
			cli.BoolFlag{
				Name:  "jti",
				Usage: "Add a random UUID as the JWT ID claim.",
			},
			flags.Output,
			flags.Force,
		},
	}
}

func forgeAction(ctx *cli.Context) error {
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
	payload, err = mergeClaims(ctx, payload)
	if err != nil {
		return err
	}

	secret := ctx.String("secret")
	if secret == "" {
		b, err := utils.ReadPassword("Please enter the signing secret: ")
		if err != nil {
			return err
		}
		secret = string(b)
	}

	tok, err := token.Forge(payload, secret, ctx.String("alg"), header)
	if err != nil {
		return err
	}
	return writeToken(ctx, tok)
}

// mergeClaims folds the claim convenience flags into the payload JSON.
// Flags override payload members of the same name.
func mergeClaims(ctx *cli.Context, payload string) (string, error) {
	var claims map[string]interface{}
	if err := json.Unmarshal([]byte(payload), &claims); err != nil {
		return "", errors.Wrap(err, "invalid JSON payload")
	}
	if claims == nil {
		claims = make(map[string]interface{})
	}

	for _, name := range []string{"sub", "iss", "aud"} {
		if ctx.IsSet(name) {
			claims[name] = ctx.String(name)
		}
	}
	for _, name := range []string{"exp", "nbf"} {
		if ctx.IsSet(name) {
			claims[name] = ctx.Int64(name)
		}
	}
	if ctx.Bool("iat") {
		claims["iat"] = time.Now().Unix()
	}
	if ctx.Bool("jti") {
		claims["jti"] = uuid.NewString()
	}

	b, err := json.Marshal(claims)
	if err != nil {
		return "", errors.Wrap(err, "error serializing claims")
	}
	return string(b), nil
}
