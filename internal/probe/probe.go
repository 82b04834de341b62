package probe

import (
	"fmt"
	"os"

	"github.com/zamos-h/antigravity/internal/model"
)

// Collect reads the process-ambient state the checker reports on: the path
// of the running executable and the current working directory.
func Collect() (*model.EnvReport, error) {
	return collectWith(os.Executable, os.Getwd)
}

// collectWith is the injectable core of Collect. Tests substitute the
// executable and getwd functions to simulate arbitrary environments
// without re-executing the test binary from a crafted path.
func collectWith(executable, getwd func() (string, error)) (*model.EnvReport, error) {
	// The path is reported as-is. EvalSymlinks would follow an environment
	// interpreter's symlink out of the environment directory and erase the
	// marker from the path.
	exe, err := executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable path: %w", err)
	}

	wd, err := getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	return &model.EnvReport{
		Executable:  exe,
		ProjectRoot: wd,
	}, nil
}
