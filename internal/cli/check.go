// Package cli — check.go implements the environment check performed by the
// root command.
//
// The check collects the running executable's path and the current working
// directory, evaluates the isolation marker against the executable path,
// and prints the result as a three-line text report or as JSON, depending
// on the --json flag.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/zamos-h/antigravity/internal/config"
	"github.com/zamos-h/antigravity/internal/model"
	"github.com/zamos-h/antigravity/internal/probe"
)

// checkFlags holds the flag values for the environment check.
// These are bound to cobra flags in NewRootCommand.
type checkFlags struct {
	// marker overrides the isolation marker. Empty means the config file
	// value or model.DefaultMarker.
	marker string

	// configPath is the path to an optional config file. Empty means no
	// file is read at all.
	configPath string

	// strict makes a mismatch verdict exit with model.ExitEnvMismatch.
	strict bool
}

// runCheck is the main logic function for the environment check.
// It resolves settings from flags and the optional config file, collects
// the process-ambient state, evaluates the marker check, and writes the
// result to w in the appropriate format.
func runCheck(w io.Writer, flags *checkFlags) error {
	// Step 1: Load the optional config file. Flags always win over the
	// file so one-off overrides do not require editing it.
	marker := model.DefaultMarker
	strict := flags.strict
	if flags.configPath != "" {
		cfg, err := config.Load(flags.configPath)
		if err != nil {
			return model.WrapCLIError(model.ExitConfigInvalid, "invalid config", err)
		}
		VerboseLog("Loaded config from %s", flags.configPath)
		marker = cfg.Marker
		strict = strict || cfg.Strict
	}
	if flags.marker != "" {
		marker = flags.marker
	}
	VerboseLog("Checking executable path for marker %q", marker)

	// Step 2: Collect the executable path and working directory.
	report, err := probe.Collect()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to read process state", err)
	}
	VerboseLog("Executable: %s", report.Executable)
	VerboseLog("Project root: %s", report.ProjectRoot)

	// Step 3: Evaluate the marker check and print the result. The report
	// lines are written regardless of the verdict.
	result := model.Evaluate(*report, marker)
	printCheckResult(w, result)

	// Step 4: In strict mode a mismatch becomes a non-zero exit for CI
	// gating. The report above has already been printed in full.
	if strict && !result.Isolated {
		return model.NewCLIError(model.ExitEnvMismatch,
			fmt.Sprintf("marker %q not found in executable path", marker))
	}
	return nil
}

// printCheckResult outputs the check result in text or JSON format,
// depending on the global --json flag.
func printCheckResult(w io.Writer, result model.CheckResult) {
	if IsJSONOutput() {
		writeCheckResultJSON(w, result)
	} else {
		writeCheckResultText(w, result)
	}
}

// checkResultJSON is the JSON output structure for the check result.
type checkResultJSON struct {
	Executable  string `json:"executable"`
	ProjectRoot string `json:"projectRoot"`
	Marker      string `json:"marker"`
	Isolated    bool   `json:"isolated"`
	Status      string `json:"status"`
}

// writeCheckResultJSON outputs the check result as structured JSON.
func writeCheckResultJSON(w io.Writer, result model.CheckResult) {
	out := checkResultJSON{
		Executable:  result.Report.Executable,
		ProjectRoot: result.Report.ProjectRoot,
		Marker:      result.Marker,
		Isolated:    result.Isolated,
		Status:      result.Status.String(),
	}

	// MarshalIndent produces human-readable JSON with 2-space indentation.
	data, _ := json.MarshalIndent(out, "", "  ")
	fmt.Fprintln(w, string(data))
}

// writeCheckResultText outputs the check result as the three-line report:
//
//	Executable:   /home/user/.venvs/Antigravity/bin/envcheck
//	Project Root: /home/user/project
//	✅ SUCCESS: Running in isolated Antigravity environment.
//
// The first two lines are unconditional; the third depends on the verdict.
func writeCheckResultText(w io.Writer, result model.CheckResult) {
	fmt.Fprintf(w, "Executable:   %s\n", result.Report.Executable)
	fmt.Fprintf(w, "Project Root: %s\n", result.Report.ProjectRoot)
	fmt.Fprintln(w, StatusLine(result))
}

// StatusLine returns the verdict line for the check result.
//
// This function is exported for testing purposes (tested in check_test.go).
func StatusLine(result model.CheckResult) string {
	if result.Isolated {
		return "✅ SUCCESS: Running in isolated Antigravity environment."
	}
	return "❌ ERROR: Running in system environment!"
}
