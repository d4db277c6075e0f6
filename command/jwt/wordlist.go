package jwt

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/jwtsec/jwtattack/command"
	"github.com/jwtsec/jwtattack/crack"
	"github.com/jwtsec/jwtattack/errs"
	"github.com/jwtsec/jwtattack/flags"
	"github.com/jwtsec/jwtattack/utils"
)

func init() {
	command.Register(wordlistCommand())
}

func wordlistCommand() cli.Command {
	return cli.Command{
		Name:   "wordlist",
		Action: cli.ActionFunc(wordlistAction),
		Usage:  "write the built-in common JWT secrets as a wordlist",
		UsageText: `**jwtattack wordlist** [**--output**=<file>]`,
		Description: `**jwtattack wordlist** prints the built-in list of common JWT secrets, one
per line, in the order **jwtattack crack --common** scans them. Use
**--output** to save it as a starting point for a custom wordlist.

## EXAMPLES

Save the list and extend it:
'''
$ jwtattack wordlist --output common.txt
$ cat extra-candidates.txt >> common.txt
'''`,
		Flags: []cli.Flag{
			flags.Output,
			flags.Force,
		},
	}
}

func wordlistAction(ctx *cli.Context) error {
	if err := errs.NumberOfArguments(ctx, 0); err != nil {
		return err
	}

	data := strings.Join(crack.CommonSecrets(), "\n") + "\n"
	output := ctx.String("output")
	if output == "" {
		fmt.Print(data)
		return nil
	}
	return utils.WriteFile(output, []byte(data), 0600, ctx.Bool("force"))
}
