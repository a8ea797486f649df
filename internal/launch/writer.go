// Where: cli/internal/launch/writer.go
// What: Resolved output placement.
// Why: Every command must agree on where the launcher reads its file from.
package launch

import (
	"os"
	"path/filepath"

	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/meta"
)

// OutputPath returns the fixed location the resolved launch file is written to.
func OutputPath(projectRoot string) string {
	return filepath.Join(projectRoot, meta.OutputDir, meta.OutputName)
}

// WriteOutput writes the resolved content under <projectRoot>/bin,
// creating the directory if needed and overwriting any previous file.
// A write failure leaves no usable output; the invocation must abort.
func WriteOutput(projectRoot, content string) (string, error) {
	path := OutputPath(projectRoot)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
