package jwt

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/jwtsec/jwtattack/command"
	"github.com/jwtsec/jwtattack/crack"
	"github.com/jwtsec/jwtattack/errs"
	"github.com/jwtsec/jwtattack/flags"
	"github.com/jwtsec/jwtattack/utils"
)

func init() {
	command.Register(crackCommand())
}

func crackCommand() cli.Command {
	return cli.Command{
		Name:   "crack",
		Action: cli.ActionFunc(crackAction),
		Usage:  "brute force the secret of an HMAC-signed JWT with a wordlist",
		UsageText: `**jwtattack crack** [**--token**=<token>] [**--wordlist**=<file>]
[**--common**] [**--tokens-file**=<file>] [**--alg**=<algorithm>] [**--quiet**]`,
		Description: `**jwtattack crack** tries every candidate secret in a wordlist, in order,
until one reproduces the signature of the target token. The first match
wins; the secret, the 1-based attempt at which it was found, and the
elapsed time are reported. A match against a token whose **exp** claim is in
the past is still reported as cracked, with an expired-token note.

The token must be signed with one of the HMAC algorithms (HS256, HS384 or
HS512). By default the algorithm declared in the token header is used;
**--alg** pins one instead of trusting the header.

If no secret in the wordlist matches, the command prints the number of
attempts and the elapsed time and exits with a non-zero status.

## EXAMPLES

Crack a token with a wordlist file:
'''
$ jwtattack crack --token $TOKEN --wordlist rockyou.txt
secret
'''

Read the token from STDIN and scan the built-in common secrets:
'''
$ echo $TOKEN | jwtattack crack --common
'''

Crack several tokens against the same wordlist:
'''
$ jwtattack crack --tokens-file tokens.txt --wordlist rockyou.txt
'''`,
		Flags: []cli.Flag{
			flags.Token,
			cli.StringFlag{
				Name:  "wordlist, w",
				Usage: `The <file> with one candidate secret per line. Blank lines are ignored.`,
			},
			cli.BoolFlag{
				Name:  "common",
				Usage: "Scan the built-in list of common JWT secrets instead of a wordlist file.",
			},
			cli.StringFlag{
				Name:  "tokens-file",
				Usage: `A <file> with one token per line, cracked independently against the same wordlist.`,
			},
			flags.Algorithm,
			cli.BoolFlag{
				Name:  "quiet, q",
				Usage: "Disable the progress line on STDERR.",
			},
		},
	}
}

func crackAction(ctx *cli.Context) error {
	if err := errs.NumberOfArguments(ctx, 0); err != nil {
		return err
	}

	alg, err := pinnedAlgorithm(ctx)
	if err != nil {
		return err
	}

	words, err := candidateWords(ctx)
	if err != nil {
		return err
	}

	var r crack.Reporter
	if !ctx.Bool("quiet") {
		r = newProgressReporter(os.Stderr)
	}

	if tokensFile := ctx.String("tokens-file"); tokensFile != "" {
		if ctx.IsSet("token") {
			return errs.MutuallyExclusiveFlags(ctx, "token", "tokens-file")
		}
		return crackBatch(tokensFile, words, alg, r)
	}

	tok, err := readToken(ctx)
	if err != nil {
		return err
	}

	out := crack.Crack(tok, words, alg, r)
	return renderOutcome(out, true)
}

// pinnedAlgorithm validates --alg; empty means trust the token header.
func pinnedAlgorithm(ctx *cli.Context) (crack.Algorithm, error) {
	switch alg := ctx.String("alg"); alg {
	case "", "HS256", "HS384", "HS512":
		return crack.Algorithm(alg), nil
	default:
		return "", errs.InvalidFlagValue(ctx, "alg", alg, "HS256, HS384, HS512")
	}
}

// candidateWords loads the candidate secrets from --wordlist or --common.
// The wordlist being missing or unreadable is a hard error, distinct from
// a readable wordlist with nothing usable in it.
func candidateWords(ctx *cli.Context) ([]string, error) {
	wordlist := ctx.String("wordlist")
	common := ctx.Bool("common")
	switch {
	case wordlist != "" && common:
		return nil, errs.MutuallyExclusiveFlags(ctx, "wordlist", "common")
	case wordlist == "" && !common:
		return nil, errs.RequiredOrFlag(ctx, "wordlist", "common")
	case common:
		return crack.CommonSecrets(), nil
	}

	words, err := crack.LoadWordlist(wordlist)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		fmt.Fprintf(os.Stderr, "wordlist %s has no usable lines, nothing to try\n", wordlist)
	}
	return words, nil
}

// renderOutcome reports the terminal outcome of one scan. The secret goes
// to STDOUT, everything else to STDERR. When failNotFound is true an
// exhausted scan becomes a non-zero exit.
func renderOutcome(out crack.Outcome, failNotFound bool) error {
	switch out.Status {
	case crack.StatusFound:
		fmt.Fprintf(os.Stderr, "secret found after %d attempts in %s\n", out.Attempts, formatDuration(out.Elapsed))
		fmt.Println(out.Secret)
		return nil
	case crack.StatusFoundExpired:
		fmt.Fprintf(os.Stderr, "secret found after %d attempts in %s (token is expired)\n", out.Attempts, formatDuration(out.Elapsed))
		fmt.Println(out.Secret)
		return nil
	case crack.StatusMalformed:
		err := errors.Wrap(out.Err, "cannot crack token")
		if failNotFound {
			return errs.NewExitError(err, 1)
		}
		fmt.Fprintln(os.Stderr, err)
		return nil
	default:
		msg := fmt.Sprintf("no secret found after %d attempts in %s, try a larger wordlist",
			out.Attempts, formatDuration(out.Elapsed))
		if failNotFound {
			return errs.NewExitError(errors.New(msg), 1)
		}
		fmt.Fprintln(os.Stderr, msg)
		return nil
	}
}

// crackBatch cracks every token in the file against the same loaded
// wordlist and summarizes how many fell.
func crackBatch(path string, words []string, alg crack.Algorithm, r crack.Reporter) error {
	b, err := utils.ReadFileOrSTDIN(path)
	if err != nil {
		return err
	}
	var tokens []string
	for _, line := range strings.Split(string(b), "\n") {
		if line = strings.TrimSpace(line); line != "" && !strings.HasPrefix(line, "#") {
			tokens = append(tokens, line)
		}
	}
	if len(tokens) == 0 {
		return errors.Errorf("no tokens found in %s", path)
	}

	cracked := 0
	for i, tok := range tokens {
		fmt.Fprintf(os.Stderr, "token %d/%d:\n", i+1, len(tokens))
		out := crack.Crack(tok, words, alg, r)
		if out.Status.Cracked() {
			cracked++
		}
		if err := renderOutcome(out, false); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stderr, "cracked %d/%d tokens\n", cracked, len(tokens))
	if cracked == 0 {
		return errs.NewExitError(errors.New("no tokens were cracked"), 1)
	}
	return nil
}
