// Where: cli/internal/app/global_config.go
// What: Global config command handlers and load helpers.
// Why: Keep config file plumbing out of the other handlers.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/config"
)

type ConfigCmd struct {
	SetWorkspace ConfigSetWorkspaceCmd `cmd:"" name:"set-workspace" help:"Persist the workspace root"`
	SetLauncher  ConfigSetLauncherCmd  `cmd:"" name:"set-launcher" help:"Persist the launcher command"`
}

type (
	ConfigSetWorkspaceCmd struct {
		Path string `arg:"" help:"Workspace root path"`
	}
	ConfigSetLauncherCmd struct {
		Command string `arg:"" help:"Launcher command"`
	}
)

func runConfigSetWorkspace(cli CLI, _ Dependencies, out io.Writer) int {
	dir := strings.TrimSpace(cli.Config.SetWorkspace.Path)
	abs, err := filepath.Abs(dir)
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		fmt.Fprintf(out, "not a directory: %s\n", abs)
		return 1
	}

	path, cfg, err := loadGlobalConfigWithPath()
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	cfg.WorkspacePath = abs
	if err := config.SaveGlobalConfig(path, cfg); err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	fmt.Fprintf(out, "Workspace root set to %s\n", abs)
	return 0
}

func runConfigSetLauncher(cli CLI, _ Dependencies, out io.Writer) int {
	command := strings.TrimSpace(cli.Config.SetLauncher.Command)
	if command == "" {
		fmt.Fprintln(out, "launcher command is required")
		return 1
	}

	path, cfg, err := loadGlobalConfigWithPath()
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	cfg.Launcher = command
	if err := config.SaveGlobalConfig(path, cfg); err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	fmt.Fprintf(out, "Launcher set to %s\n", command)
	return 0
}

func loadGlobalConfigOrDefault() (config.GlobalConfig, error) {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return config.GlobalConfig{}, err
	}
	return loadOrDefault(path)
}

func loadGlobalConfigWithPath() (string, config.GlobalConfig, error) {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return "", config.GlobalConfig{}, err
	}
	cfg, err := loadOrDefault(path)
	if err != nil {
		return "", config.GlobalConfig{}, err
	}
	return path, cfg, nil
}

func loadOrDefault(path string) (config.GlobalConfig, error) {
	cfg, err := config.LoadGlobalConfig(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config.DefaultGlobalConfig(), nil
		}
		return config.GlobalConfig{}, err
	}
	return cfg, nil
}
