// Where: cli/internal/helpers/project_finder.go
// What: Project directory discovery helpers.
// Why: Centralize launch.json lookups for commands/resolver.
package helpers

import (
	"os"
	"path/filepath"

	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/meta"
)

// ProjectDirFinder locates the nearest ancestor directory that carries a
// launch template, either under Properties/ or directly in the directory.
type ProjectDirFinder func(start string) (string, bool)

// DefaultProjectDirFinder returns the stock finder that walks upward.
func DefaultProjectDirFinder() ProjectDirFinder {
	return func(start string) (string, bool) {
		abs, err := filepath.Abs(start)
		if err != nil {
			return "", false
		}
		dir := filepath.Clean(abs)
		for {
			if hasLaunchTemplate(dir) {
				return dir, true
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
		return "", false
	}
}

func hasLaunchTemplate(dir string) bool {
	if _, err := os.Stat(filepath.Join(dir, meta.PropertiesDir, meta.TemplateName)); err == nil {
		return true
	}
	if _, err := os.Stat(filepath.Join(dir, meta.TemplateName)); err == nil {
		return true
	}
	return false
}
