// Package cli — check_test.go contains unit tests for the output
// rendering of the environment check and for the runCheck flow.
//
// Rendering functions take an io.Writer, so the tests capture output in a
// bytes.Buffer without touching the real process stdout.
package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamos-h/antigravity/internal/model"
)

// isolatedResult builds a CheckResult for an executable inside the
// isolated environment.
func isolatedResult() model.CheckResult {
	return model.Evaluate(model.EnvReport{
		Executable:  "/home/user/.venvs/Antigravity/bin/python",
		ProjectRoot: "/home/user/project",
	}, model.DefaultMarker)
}

// systemResult builds a CheckResult for a system-wide executable.
func systemResult() model.CheckResult {
	return model.Evaluate(model.EnvReport{
		Executable:  "/usr/bin/python3",
		ProjectRoot: "/home/user/project",
	}, model.DefaultMarker)
}

// TestStatusLine verifies the verdict line for both outcomes.
func TestStatusLine(t *testing.T) {
	assert.Equal(t,
		"✅ SUCCESS: Running in isolated Antigravity environment.",
		StatusLine(isolatedResult()))
	assert.Equal(t,
		"❌ ERROR: Running in system environment!",
		StatusLine(systemResult()))
}

// TestWriteCheckResultText verifies the three-line report format and that
// the two report lines appear regardless of the verdict.
func TestWriteCheckResultText(t *testing.T) {
	tests := []struct {
		name     string
		result   model.CheckResult
		lastLine string
	}{
		{
			name:     "isolated environment",
			result:   isolatedResult(),
			lastLine: "✅ SUCCESS: Running in isolated Antigravity environment.",
		},
		{
			name:     "system environment",
			result:   systemResult(),
			lastLine: "❌ ERROR: Running in system environment!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			writeCheckResultText(&buf, tt.result)

			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			require.Len(t, lines, 3)
			assert.Equal(t, "Executable:   "+tt.result.Report.Executable, lines[0])
			assert.Equal(t, "Project Root: "+tt.result.Report.ProjectRoot, lines[1])
			assert.Equal(t, tt.lastLine, lines[2])
		})
	}
}

// TestWriteCheckResultJSON verifies the JSON output structure.
func TestWriteCheckResultJSON(t *testing.T) {
	var buf bytes.Buffer
	writeCheckResultJSON(&buf, systemResult())

	var out struct {
		Executable  string `json:"executable"`
		ProjectRoot string `json:"projectRoot"`
		Marker      string `json:"marker"`
		Isolated    bool   `json:"isolated"`
		Status      string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "/usr/bin/python3", out.Executable)
	assert.Equal(t, "/home/user/project", out.ProjectRoot)
	assert.Equal(t, model.DefaultMarker, out.Marker)
	assert.False(t, out.Isolated)
	assert.Equal(t, "mismatch", out.Status)
}

// TestRunCheck_Default verifies that a plain run prints the two report
// lines plus one verdict line and returns no error, whatever the verdict.
// The test binary does not live under the marker path, so the verdict for
// the real process is a mismatch.
func TestRunCheck_Default(t *testing.T) {
	var buf bytes.Buffer

	err := runCheck(&buf, &checkFlags{})

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Executable:   "))
	assert.True(t, strings.HasPrefix(lines[1], "Project Root: "))
	assert.Equal(t, "❌ ERROR: Running in system environment!", lines[2])
}

// TestRunCheck_MarkerOverride verifies that --marker changes the verdict.
// Using a substring of the test binary's own path forces a SUCCESS line.
func TestRunCheck_MarkerOverride(t *testing.T) {
	exe, err := os.Executable()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = runCheck(&buf, &checkFlags{marker: filepath.Base(exe)})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "✅ SUCCESS")
}

// TestRunCheck_Strict verifies strict-mode exit code behavior: the report
// is still printed in full, and the returned CLIError carries
// ExitEnvMismatch.
func TestRunCheck_Strict(t *testing.T) {
	var buf bytes.Buffer

	err := runCheck(&buf, &checkFlags{strict: true, marker: ".venvs/NoSuchEnvironment"})

	require.Error(t, err)
	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitEnvMismatch, cliErr.Code)

	// Strict mode must not suppress the report itself.
	assert.Contains(t, buf.String(), "Executable:   ")
	assert.Contains(t, buf.String(), "Project Root: ")
	assert.Contains(t, buf.String(), "❌ ERROR")
}

// TestRunCheck_ConfigFile verifies that settings load from a config file
// and that an explicit --marker flag wins over the file.
func TestRunCheck_ConfigFile(t *testing.T) {
	exe, err := os.Executable()
	require.NoError(t, err)

	t.Run("marker from config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "envcheck.yaml")
		require.NoError(t, os.WriteFile(path,
			[]byte("marker: "+filepath.Base(exe)+"\n"), 0644))

		var buf bytes.Buffer
		err := runCheck(&buf, &checkFlags{configPath: path})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "✅ SUCCESS")
	})

	t.Run("flag wins over config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "envcheck.yaml")
		require.NoError(t, os.WriteFile(path,
			[]byte("marker: "+filepath.Base(exe)+"\n"), 0644))

		var buf bytes.Buffer
		err := runCheck(&buf, &checkFlags{configPath: path, marker: ".venvs/NoSuchEnvironment"})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "❌ ERROR")
	})

	t.Run("strict from config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "envcheck.yaml")
		require.NoError(t, os.WriteFile(path,
			[]byte("marker: .venvs/NoSuchEnvironment\nstrict: true\n"), 0644))

		var buf bytes.Buffer
		err := runCheck(&buf, &checkFlags{configPath: path})

		require.Error(t, err)
		var cliErr *model.CLIError
		require.True(t, errors.As(err, &cliErr))
		assert.Equal(t, model.ExitEnvMismatch, cliErr.Code)
	})

	t.Run("unreadable config", func(t *testing.T) {
		var buf bytes.Buffer
		err := runCheck(&buf, &checkFlags{configPath: filepath.Join(t.TempDir(), "missing.json")})

		require.Error(t, err)
		var cliErr *model.CLIError
		require.True(t, errors.As(err, &cliErr))
		assert.Equal(t, model.ExitConfigInvalid, cliErr.Code)
		// Nothing may be printed when settings cannot be resolved.
		assert.Empty(t, buf.String())
	})
}
