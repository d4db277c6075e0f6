// Package flags defines the flags shared by several jwtattack commands.
package flags

import (
	"github.com/urfave/cli"
)

var (
	// Token is the flag naming the target JWT. A value of the form @path
	// reads the token from a file; with the flag absent the commands fall
	// back to STDIN.
	Token = cli.StringFlag{
		Name: "token",
		Usage: `The JWT <token> to operate on. Use **@path** to read the token from a file.
If the flag is omitted the token is read from STDIN.`,
	}

	// Payload is the flag carrying the claims JSON for token construction.
	Payload = cli.StringFlag{
		Name: "payload",
		Usage: `The claims of the token as a JSON object <string>. If the flag is omitted
the payload is read from STDIN.`,
	}

	// Header is the repeatable flag adding or overriding token header members.
	Header = cli.StringSliceFlag{
		Name: "header",
		Usage: `A <key=value> pair added to the token header. Use the flag multiple times
to set multiple members. Values are used as strings.`,
	}

	// Algorithm selects the HMAC variant for signing or pins it for cracking.
	Algorithm = cli.StringFlag{
		Name:  "alg, algorithm",
		Usage: `The HMAC signature <algorithm> to use, one of **HS256**, **HS384** or **HS512**.`,
	}

	// Output names the file a generated token is written to instead of STDOUT.
	Output = cli.StringFlag{
		Name:  "output, o",
		Usage: `The <file> to write the token to. Defaults to STDOUT.`,
	}

	// Force allows overwriting an existing output file without prompting.
	Force = cli.BoolFlag{
		Name:  "force, f",
		Usage: "Force the overwrite of files without asking.",
	}

	// InsecureHidden is the hidden misuse-prevention flag required by
	// commands that skip signature verification.
	InsecureHidden = cli.BoolFlag{
		Name:   "insecure",
		Hidden: true,
	}
)
