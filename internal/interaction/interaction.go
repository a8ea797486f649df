// Where: cli/internal/interaction/interaction.go
// What: Interactive primitives for CLI prompts and TTY detection.
// Why: Centralize user interaction to keep command handlers focused on orchestration.
package interaction

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/constants"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/envutil"
)

// SelectOption represents a single option in a selection menu.
type SelectOption struct {
	Label string // Display text
	Value string // Return value
}

// Prompter defines the interface for interactive user selection.
type Prompter interface {
	Select(title string, options []string) (string, error)
	SelectValue(title string, options []SelectOption) (string, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Allowed reports whether interactive prompts may run: stdin must be a
// terminal and the brand INTERACTIVE variable must not disable them.
func Allowed() bool {
	toggle := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixInteractive))
	if toggle == "0" || strings.EqualFold(toggle, "false") {
		return false
	}
	return IsTerminal(os.Stdin)
}
