// Package config holds the name, version and build time of the binary,
// filled in at build time through ldflags.
package config

import (
	"fmt"
	"runtime"
	"time"
)

// name, commit and buildTime are filled in during build by the Makefile.
var (
	name      = "jwtattack"
	commit    = "N/A"
	buildTime = "N/A"
)

// Set updates the name, version and release date reported by the binary.
func Set(n, v, t string) {
	name = n
	commit = v
	buildTime = t
}

// Version returns the current version of the binary.
func Version() string {
	out := commit
	if commit == "N/A" {
		out = "0000000-dev"
	}
	return fmt.Sprintf("%s/%s (%s/%s)", name, out, runtime.GOOS, runtime.GOARCH)
}

// ReleaseDate returns the time of when the binary was built.
func ReleaseDate() string {
	out := buildTime
	if buildTime == "N/A" {
		out = time.Now().UTC().Format("2006-01-02 15:04 MST")
	}
	return out
}
