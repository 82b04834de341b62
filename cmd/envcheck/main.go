// Package main is the entry point for the envcheck CLI.
//
// This binary reports the path of its own running executable and the
// current working directory, then checks whether the executable path
// contains the marker identifying the isolated Antigravity environment.
// It delegates all functionality to the internal/cli package, which
// defines the cobra command.
//
// Build-time variables (version, commit, date) are injected via ldflags
// by GoReleaser during the release process. During development, they
// default to "dev", "none", and "unknown" respectively.
package main

import (
	"github.com/zamos-h/antigravity/internal/cli"
)

// version, commit, and date are set by GoReleaser at build time
// via ldflags. They provide binary identification for the --version
// flag output.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	// Create the root command, then execute it. Execute handles error
	// formatting and exit codes.
	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
