// Where: cli/internal/app/resolve.go
// What: Resolution command handlers.
// Why: Orchestrate locate -> resolve -> write around the launch core.
package app

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/constants"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/envutil"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/launch"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/meta"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/scaffold"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/ui"
)

// notFoundMessage is the fixed user-facing message for a missing template.
const notFoundMessage = "Could not find launch.json"

func runResolve(cli CLI, deps Dependencies, out io.Writer) int {
	if _, code := resolveToOutput(cli, deps, out); code != 0 {
		return code
	}
	return 0
}

// resolveToOutput runs the full locate -> read -> resolve -> write sequence
// and returns the output path. A non-zero exit code means the invocation
// failed and was already reported.
func resolveToOutput(cli CLI, deps Dependencies, out io.Writer) (string, int) {
	console := ui.New(out)

	selection, err := resolveSelection(cli, deps)
	if err != nil {
		console.Error(err.Error())
		return "", 1
	}

	console.Header("🔍", "Searching for launch.json:")
	path, err := launch.Locate(selection.WorkspaceRoot, selection.ProjectRoot, func(candidate string) {
		console.ItemPlain("Checking " + candidate)
	})
	if err != nil {
		if errors.Is(err, launch.ErrNotFound) {
			console.Error(notFoundMessage)
		} else {
			console.Error(err.Error())
		}
		return "", 1
	}
	console.Info("Using " + path)

	text, err := deps.Loader.Read(path)
	if err != nil {
		console.Error(err.Error())
		return "", 1
	}

	ctx := launch.NewContext(selection.WorkspaceRoot, selection.ProjectRoot, selection.ProjectName)
	resolved := launch.Resolve(text, ctx)

	outputPath, err := launch.WriteOutput(selection.ProjectRoot, resolved)
	if err != nil {
		console.Error(err.Error())
		return "", 1
	}
	console.Success("Resolved " + outputPath)
	return outputPath, 0
}

func runLocate(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	selection, err := resolveSelection(cli, deps)
	if err != nil {
		console.Error(err.Error())
		return 1
	}

	path, err := launch.Locate(selection.WorkspaceRoot, selection.ProjectRoot, func(candidate string) {
		console.ItemPlain("Checking " + candidate)
	})
	if err != nil {
		if errors.Is(err, launch.ErrNotFound) {
			console.Error(notFoundMessage)
		} else {
			console.Error(err.Error())
		}
		return 1
	}

	fmt.Fprintln(out, path)
	return 0
}

func runContext(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	selection, err := resolveSelection(cli, deps)
	if err != nil {
		console.Error(err.Error())
		return 1
	}

	ctx := launch.NewContext(selection.WorkspaceRoot, selection.ProjectRoot, selection.ProjectName)
	console.Header("🧩", "Substitution context:")
	console.Item("Workspace root", ctx.WorkspaceRoot)
	console.Item("Project root", ctx.ProjectRoot)
	console.Item("Workspace (bash)", ctx.WorkspaceRootPortable)
	console.Item("Project (bash)", ctx.ProjectRootPortable)
	console.Item("Project name", ctx.ProjectName)
	console.Item("Output", launch.OutputPath(ctx.ProjectRoot))
	return 0
}

func runLaunch(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	outputPath, code := resolveToOutput(cli, deps, out)
	if code != 0 {
		return code
	}

	command, err := launcherCommand(cli)
	if err != nil {
		console.Error(err.Error())
		return 1
	}

	console.Info("Launching " + command)
	if err := deps.Runner.Launch(command, outputPath); err != nil {
		console.Error(err.Error())
		return 1
	}
	return 0
}

func runInit(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	selection, err := resolveSelection(cli, deps)
	if err != nil {
		console.Error(err.Error())
		return 1
	}

	path, err := scaffold.Write(selection.ProjectRoot, selection.ProjectName)
	if err != nil {
		console.Error(err.Error())
		return 1
	}
	console.Success("Created " + path)
	return 0
}

// launcherCommand picks the launcher: flag, brand LAUNCHER env, then config.
func launcherCommand(cli CLI) (string, error) {
	if command := strings.TrimSpace(cli.Launcher); command != "" {
		return command, nil
	}
	if command := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixLauncher)); command != "" {
		return command, nil
	}

	cfg, err := loadGlobalConfigOrDefault()
	if err != nil {
		return "", err
	}
	if command := strings.TrimSpace(cfg.Launcher); command != "" {
		return command, nil
	}
	return "", fmt.Errorf("no launcher configured. Pass --launcher, set %s, or run '%s config set-launcher <command>'",
		envutil.HostEnvKey(constants.HostSuffixLauncher), meta.AppName)
}
