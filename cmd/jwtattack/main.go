package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/jwtsec/jwtattack/command"
	"github.com/jwtsec/jwtattack/command/version"
	"github.com/jwtsec/jwtattack/config"

	// Enabled commands
	_ "github.com/jwtsec/jwtattack/command/base64"
	_ "github.com/jwtsec/jwtattack/command/jwt"
	_ "github.com/jwtsec/jwtattack/command/version"
)

// Version is set by an LDFLAG at build time representing the git tag or
// commit for the current release.
var Version = "N/A"

// BuildTime is set by an LDFLAG at build time representing the timestamp
// at the time of build.
var BuildTime = "N/A"

func init() {
	config.Set("jwtattack", Version, BuildTime)
}

func main() {
	defer panicHandler()

	cli.VersionPrinter = func(c *cli.Context) {
		version.Command(c)
	}

	app := cli.NewApp()
	app.Name = "jwtattack"
	app.HelpName = "jwtattack"
	app.Usage = "JWT security testing toolkit"
	app.Version = config.Version()
	app.Commands = command.Retrieve()
	app.EnableBashCompletion = true

	// All non-successful output should be written to stderr
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	if err := app.Run(os.Args); err != nil {
		if os.Getenv("JWTATTACK_DEBUG") == "1" {
			fmt.Fprintf(os.Stderr, "%+v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func panicHandler() {
	if r := recover(); r != nil {
		if os.Getenv("JWTATTACK_DEBUG") == "1" {
			fmt.Fprintf(os.Stderr, "%s\n", config.Version())
			fmt.Fprintf(os.Stderr, "Release Date: %s\n\n", config.ReleaseDate())
			panic(r)
		} else {
			fmt.Fprintln(os.Stderr, "Something unexpected happened.")
			fmt.Fprintln(os.Stderr, "If you want to help us debug the problem, please run:")
			fmt.Fprintf(os.Stderr, "JWTATTACK_DEBUG=1 %s\n", strings.Join(os.Args, " "))
			os.Exit(2)
		}
	}
}
