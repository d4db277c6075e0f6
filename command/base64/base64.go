// Package base64 implements the base64 helper command. It defaults to the
// unpadded url-safe alphabet JWT segments use, so decoded headers and
// payloads round-trip without manual re-padding.
package base64

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/jwtsec/jwtattack/command"
	"github.com/jwtsec/jwtattack/utils"
)

func init() {
	cmd := cli.Command{
		Name:   "base64",
		Action: cli.ActionFunc(base64Action),
		Usage:  "encode and decode using the base64url representation",
		UsageText: `**jwtattack base64**
[**-d**|**--decode**] [**--std**] [**-p**|**--padded**]`,
		Description: `**jwtattack base64** encodes and decodes base64 as specified by RFC 4648.
The default is the unpadded url-safe encoding, the one JWT segments use.

## EXAMPLES

Decode the payload segment of a token:
'''
$ echo eyJ1c2VyIjoiYWRtaW4ifQ | jwtattack base64 -d
{"user":"admin"}
'''

Encode a claims object the way it appears inside a token:
'''
$ echo -n '{"user":"admin"}' | jwtattack base64
eyJ1c2VyIjoiYWRtaW4ifQ
'''

Encode using the standard padded alphabet instead:
'''
$ jwtattack base64 --std --padded 'some bytes'
c29tZSBieXRlcw==
'''

Decode input with padding or the standard alphabet. The variant is
auto-detected when neither '--std' nor '--padded' is passed:
'''
$ echo c29tZSBieXRlcw== | jwtattack base64 -d
some bytes
'''`,
		Flags: []cli.Flag{
			cli.BoolFlag{
				Name:  "d,decode",
				Usage: "decode base64 input",
			},
			cli.BoolFlag{
				Name:  "std",
				Usage: "use the standard alphabet instead of the url-safe one",
			},
			cli.BoolFlag{
				Name:  "p,padded",
				Usage: "use the padded encoding",
			},
		},
	}

	command.Register(cmd)
}

func base64Action(ctx *cli.Context) error {
	var err error
	var data []byte
	isDecode := ctx.Bool("decode")

	if ctx.NArg() > 0 {
		data = []byte(strings.Join(ctx.Args(), " "))
	} else {
		var prompt string
		if isDecode {
			prompt = "Please enter text to decode"
		} else {
			prompt = "Please enter text to encode"
		}

		if data, err = utils.ReadInput(prompt); err != nil {
			return err
		}
	}

	enc := encoding(ctx, data)
	if isDecode {
		b, err := enc.DecodeString(strings.TrimSpace(string(data)))
		if err != nil {
			return errors.Wrap(err, "error decoding input")
		}
		os.Stdout.Write(b)
		return nil
	}

	fmt.Println(enc.EncodeToString(data))
	return nil
}

func encoding(ctx *cli.Context, data []byte) *base64.Encoding {
	std := ctx.Bool("std")
	padded := ctx.Bool("padded")

	// Detect the variant when decoding without explicit flags.
	if ctx.Bool("decode") && !ctx.IsSet("std") && !ctx.IsSet("padded") {
		padded = bytes.HasSuffix(bytes.TrimSpace(data), []byte("="))
		std = bytes.ContainsAny(data, "+/")
	}

	switch {
	case std && padded:
		return base64.StdEncoding
	case std:
		return base64.RawStdEncoding
	case padded:
		return base64.URLEncoding
	default:
		return base64.RawURLEncoding
	}
}
