// Where: cli/internal/launcher/launcher.go
// What: External launcher invocation.
// Why: Keep process spawning out of the resolution core.
package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// FindExecutable resolves the launcher command to an absolute path.
// The lookup order is:
// 1. If 'name' is an absolute path, it is used directly.
// 2. If 'name' contains a path separator, it's treated as a relative path to the current working directory.
// 3. Otherwise it is looked up in PATH.
// Environment references inside 'name' are expanded first.
func FindExecutable(name string) (string, error) {
	name = os.ExpandEnv(name)

	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", err
		}
		return name, nil
	}

	if strings.ContainsRune(name, os.PathSeparator) {
		absPath, err := filepath.Abs(name)
		if err != nil {
			return "", fmt.Errorf("absolute path for %q: %w", name, err)
		}
		if _, err := os.Stat(absPath); err != nil {
			return "", err
		}
		return absPath, nil
	}

	return exec.LookPath(name)
}

// Runner starts the launcher with the resolved output file as its only
// argument. Implementations do not wait on or manage the process beyond
// the initial start.
type Runner interface {
	Launch(command, outputPath string) error
}

type execRunner struct{}

// NewRunner returns the stock Runner backed by os/exec.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Launch(command, outputPath string) error {
	executable, err := FindExecutable(command)
	if err != nil {
		return fmt.Errorf("launcher %q: %w", command, err)
	}

	cmd := exec.Command(executable, outputPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	return cmd.Run()
}
