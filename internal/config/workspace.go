// Where: cli/internal/config/workspace.go
// What: Workspace root discovery logic.
// Why: Centralize logic to find the workspace root from env, file system, or config.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/constants"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/envutil"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/meta"
)

// ResolveWorkspaceRoot determines the workspace root path.
// Priority:
// 1. Brand-prefixed WORKSPACE environment variable
// 2. Upward search for a .git directory from startDir
// 3. workspace_path in the global config (~/.rdl/config.yaml)
func ResolveWorkspaceRoot(startDir string) (string, error) {
	// 1. Try environment variable
	if workspace := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixWorkspace)); workspace != "" {
		if root, ok := existingDir(workspace); ok {
			return root, nil
		}
	}

	// 2. Search upwards from start directory
	if startDir != "" {
		if root, ok := findWorkspaceRoot(startDir); ok {
			return root, nil
		}
	}

	// 3. Try global configuration
	if cfgPath, err := GlobalConfigPath(); err == nil {
		if cfg, err := LoadGlobalConfig(cfgPath); err == nil && cfg.WorkspacePath != "" {
			if root, ok := existingDir(cfg.WorkspacePath); ok {
				return root, nil
			}
		}
	}

	return "", fmt.Errorf("workspace root not found. Run '%s config set-workspace <path>' or set %s",
		meta.AppName, envutil.HostEnvKey(constants.HostSuffixWorkspace))
}

// findWorkspaceRoot searches upward from the given path to find
// a directory containing a .git entry.
func findWorkspaceRoot(path string) (string, bool) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
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

func existingDir(path string) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", false
	}
	return abs, true
}
