// Where: cli/internal/config/workspace_test.go
// What: Tests for workspace root discovery.
// Why: Env, file system, and config fallbacks must keep their priority.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/constants"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/envutil"
)

func TestResolveWorkspaceRootFromEnv(t *testing.T) {
	workspace := t.TempDir()
	t.Setenv(envutil.HostEnvKey(constants.HostSuffixWorkspace), workspace)

	root, err := ResolveWorkspaceRoot("")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if root != workspace {
		t.Fatalf("expected %s, got %s", workspace, root)
	}
}

func TestResolveWorkspaceRootFromGitDir(t *testing.T) {
	workspace := t.TempDir()
	nested := filepath.Join(workspace, "app", "src")
	if err := os.MkdirAll(filepath.Join(workspace, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Setenv(envutil.HostEnvKey(constants.HostSuffixWorkspace), "")
	t.Setenv(envutil.HostEnvKey(constants.HostSuffixConfigHome), t.TempDir())

	root, err := ResolveWorkspaceRoot(nested)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if root != workspace {
		t.Fatalf("expected %s, got %s", workspace, root)
	}
}

func TestResolveWorkspaceRootFromConfig(t *testing.T) {
	workspace := t.TempDir()
	confighome := t.TempDir()
	t.Setenv(envutil.HostEnvKey(constants.HostSuffixWorkspace), "")
	t.Setenv(envutil.HostEnvKey(constants.HostSuffixConfigHome), confighome)

	cfg := DefaultGlobalConfig()
	cfg.WorkspacePath = workspace
	if err := SaveGlobalConfig(filepath.Join(confighome, "config.yaml"), cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	root, err := ResolveWorkspaceRoot("")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if root != workspace {
		t.Fatalf("expected %s, got %s", workspace, root)
	}
}

func TestResolveWorkspaceRootNotFound(t *testing.T) {
	t.Setenv(envutil.HostEnvKey(constants.HostSuffixWorkspace), "")
	t.Setenv(envutil.HostEnvKey(constants.HostSuffixConfigHome), t.TempDir())

	_, err := ResolveWorkspaceRoot("")
	if err == nil {
		t.Fatalf("expected error when nothing resolves")
	}
	if !strings.Contains(err.Error(), "workspace root not found") {
		t.Fatalf("unexpected error message: %v", err)
	}
}
