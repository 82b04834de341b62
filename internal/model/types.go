// Package model defines the domain types for the envcheck CLI.
//
// The checker works with three transient values: the path of the running
// executable, the process working directory, and the outcome of a substring
// check against an isolation marker. These types give those values names
// and keep the check itself a pure function, so the CLI layer only has to
// collect inputs and render results.
package model

import (
	"fmt"
	"strings"
)

// DefaultMarker is the substring expected in the executable path when the
// process runs inside the isolated Antigravity environment. Interpreters
// installed into the environment live under its .venvs/Antigravity prefix.
const DefaultMarker = ".venvs/Antigravity"

// CheckStatus represents the outcome of the environment check.
type CheckStatus string

const (
	// StatusSuccess indicates the marker was found in the executable path:
	// the process is running inside the isolated environment.
	StatusSuccess CheckStatus = "success"

	// StatusMismatch indicates the marker is absent: the process is running
	// from a system-wide installation. This is a diagnostic outcome, not a
	// program fault — the check itself completed normally.
	StatusMismatch CheckStatus = "mismatch"
)

// String returns the string representation of CheckStatus.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI commands and JSON serialization.
func (s CheckStatus) String() string {
	return string(s)
}

// IsValid checks whether the CheckStatus value is one of the
// predefined valid outcomes.
func (s CheckStatus) IsValid() bool {
	switch s {
	case StatusSuccess, StatusMismatch:
		return true
	default:
		return false
	}
}

// ParseCheckStatus converts a string to a CheckStatus.
// Returns an error if the string does not match any valid outcome.
func ParseCheckStatus(s string) (CheckStatus, error) {
	status := CheckStatus(strings.ToLower(s))
	if !status.IsValid() {
		return "", fmt.Errorf("invalid check status: %q (valid: success, mismatch)", s)
	}
	return status, nil
}

// EnvReport holds the process-ambient state the checker reports: the path
// of the executable currently running and the working directory it was
// started in. Both are reported exactly as the OS returns them — in
// particular the executable path keeps its symlinks, because environment
// interpreters are symlinks into the environment directory and resolving
// them would erase the marker from the path.
type EnvReport struct {
	// Executable is the filesystem path of the running executable.
	Executable string `json:"executable"`

	// ProjectRoot is the process's current working directory.
	ProjectRoot string `json:"projectRoot"`
}

// ContainsMarker reports whether the executable path contains the given
// marker substring.
func (r EnvReport) ContainsMarker(marker string) bool {
	return strings.Contains(r.Executable, marker)
}

// CheckResult is the full outcome of a single environment check: the
// collected report, the marker it was checked against, and the verdict.
type CheckResult struct {
	// Report is the environment state the check was evaluated on.
	Report EnvReport `json:"report"`

	// Marker is the substring the executable path was checked for.
	Marker string `json:"marker"`

	// Isolated is true when the marker appears in the executable path.
	Isolated bool `json:"isolated"`

	// Status is the check outcome derived from Isolated.
	Status CheckStatus `json:"status"`
}

// Evaluate runs the environment check. It is a pure function of the
// report's executable path and the marker, so the same inputs always
// produce the same result.
func Evaluate(report EnvReport, marker string) CheckResult {
	isolated := report.ContainsMarker(marker)
	status := StatusMismatch
	if isolated {
		status = StatusSuccess
	}
	return CheckResult{
		Report:   report,
		Marker:   marker,
		Isolated: isolated,
		Status:   status,
	}
}

// ExitCode defines standard CLI exit codes. These codes allow scripts and
// CI systems to programmatically determine the outcome of a run.
type ExitCode int

const (
	// ExitSuccess indicates the check ran to completion. A mismatch verdict
	// still exits with this code unless strict mode is enabled — the ERROR
	// line is the diagnostic, not the exit code.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitEnvMismatch indicates the marker was absent from the executable
	// path while strict mode was enabled.
	ExitEnvMismatch ExitCode = 2

	// ExitConfigInvalid indicates the configuration file could not be
	// read or parsed.
	ExitConfigInvalid ExitCode = 3
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
// This follows Go's error wrapping convention introduced in Go 1.13.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
