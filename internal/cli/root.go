// Package cli implements the cobra-based CLI for envcheck.
//
// The tool has a single operation — the environment check — so the root
// command performs it directly instead of delegating to subcommands. This
// file defines the root command, its flags, and the shared error/output
// plumbing; the check itself lives in check.go.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zamos-h/antigravity/internal/model"
)

// Global flag variables bound to the root command's flags.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	// When true, the check result uses structured JSON format for machine
	// consumption. When false (default), output uses the human-readable
	// three-line report.
	jsonOutput bool

	// verbose enables detailed logging output for debugging.
	// When true, additional information about operations is printed to stderr.
	verbose bool
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// Running the binary with no arguments performs the environment check:
// it prints the executable path and working directory, then a SUCCESS or
// ERROR line depending on whether the isolation marker appears in the
// executable path.
func NewRootCommand() *cobra.Command {
	flags := &checkFlags{}

	rootCmd := &cobra.Command{
		Use:   "envcheck",
		Short: "Check whether this process runs inside the isolated Antigravity environment",
		Long: `envcheck reports the path of its own running executable and the current
working directory, then checks the executable path for the marker substring
identifying the isolated Antigravity environment (` + model.DefaultMarker + `).

The result is a diagnostic: a mismatch prints an ERROR line but still exits 0.
Use --strict to make a mismatch exit non-zero for CI gating.

Examples:
  envcheck
  envcheck --json
  envcheck --marker .venvs/Lab --strict
  envcheck --config envcheck.yaml`,

		// No positional arguments: the check reads only process-ambient state.
		Args: cobra.NoArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// RunE returns an error to Execute's error handler.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), flags)
		},
	}

	rootCmd.Flags().StringVar(&flags.marker, "marker", "",
		"Marker substring expected in the executable path (default: "+model.DefaultMarker+")")
	rootCmd.Flags().StringVar(&flags.configPath, "config", "",
		"Path to an envcheck config file (.json, .jsonc, .yaml, .yml)")
	rootCmd.Flags().BoolVar(&flags.strict, "strict", false,
		"Exit with a non-zero code when the marker is absent")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by cobra commands and translates them
// into appropriate OS exit codes. CLIError types carry their own
// exit codes; other errors default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		// Check if the error is a CLIError with a specific exit code.
		// errors.As would also work here, but a type assertion is simpler
		// for this single-level check.
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		// Generic error — exit with code 1.
		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// We write to stderr for errors, even in JSON mode, because stdout
		// is reserved for successful command output.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		// Text format: "Error: <message>" on stderr.
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
func IsJSONOutput() bool {
	return jsonOutput
}
