// Package model defines the domain types and value objects for the
// envcheck CLI.
//
// This package contains pure data structures with no external dependencies.
// EnvReport and CheckResult are transient representations built from
// process-ambient state at runtime — there are no persistent state files.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
