// Where: cli/internal/interaction/interaction_test.go
// What: Tests for interactivity gating.
// Why: Prompts must never fire in pipelines or when explicitly disabled.
package interaction

import (
	"os"
	"testing"

	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/constants"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/envutil"
)

func TestAllowedDisabledByEnv(t *testing.T) {
	orig := IsTerminal
	t.Cleanup(func() { IsTerminal = orig })
	IsTerminal = func(*os.File) bool { return true }

	t.Setenv(envutil.HostEnvKey(constants.HostSuffixInteractive), "false")
	if Allowed() {
		t.Fatalf("expected prompts disabled by env")
	}

	t.Setenv(envutil.HostEnvKey(constants.HostSuffixInteractive), "0")
	if Allowed() {
		t.Fatalf("expected prompts disabled by env toggle 0")
	}
}

func TestAllowedRequiresTerminal(t *testing.T) {
	orig := IsTerminal
	t.Cleanup(func() { IsTerminal = orig })

	IsTerminal = func(*os.File) bool { return false }
	t.Setenv(envutil.HostEnvKey(constants.HostSuffixInteractive), "")
	if Allowed() {
		t.Fatalf("expected prompts disabled without a terminal")
	}

	IsTerminal = func(*os.File) bool { return true }
	if !Allowed() {
		t.Fatalf("expected prompts allowed on a terminal")
	}
}

func TestIsTerminalNilFile(t *testing.T) {
	if IsTerminal(nil) {
		t.Fatalf("expected nil file to not be a terminal")
	}
}
