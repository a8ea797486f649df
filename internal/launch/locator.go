// Where: cli/internal/launch/locator.go
// What: Launch template discovery.
// Why: Centralize the candidate order so every command searches the same way.
package launch

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/meta"
)

// ErrNotFound is returned when no candidate launch.json exists.
// It is a normal outcome for an unconfigured project, not an I/O failure.
var ErrNotFound = errors.New("launch.json not found")

// Reporter receives each candidate path before its existence test.
// Used as a diagnostic hook; it has no behavioral effect.
type Reporter func(candidate string)

// Candidates returns the ordered search locations, most specific first.
func Candidates(workspaceRoot, projectRoot string) []string {
	return []string{
		filepath.Join(projectRoot, meta.PropertiesDir, meta.TemplateName),
		filepath.Join(projectRoot, meta.TemplateName),
		filepath.Join(workspaceRoot, meta.TemplateName),
	}
}

// Locate returns the first existing candidate for the given roots.
// The search short-circuits on the first hit; when nothing exists the
// result is ErrNotFound.
func Locate(workspaceRoot, projectRoot string, report Reporter) (string, error) {
	for _, candidate := range Candidates(workspaceRoot, projectRoot) {
		if report != nil {
			report(candidate)
		}
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", ErrNotFound
}
