// Where: cli/internal/app/selection.go
// What: Workspace/project selection for resolution commands.
// Why: Every command must agree on how roots and the project name are chosen.
package app

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/config"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/constants"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/envutil"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/interaction"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/meta"
)

// Selection carries the resolved invocation inputs for the launch core.
type Selection struct {
	WorkspaceRoot string
	ProjectRoot   string
	ProjectName   string
}

// errNoSelection is the caller-side precondition failure: nothing tells us
// which project to resolve.
var errNoSelection = fmt.Errorf("no project selected. Pass --project-dir, run '%s project use <name>', or run from inside a project", meta.AppName)

// resolveSelection determines workspace root, project root, and project name
// for one invocation.
// Project priority: --project-dir flag, brand PROJECT env, upward discovery
// from the start directory, the active registered project, and finally an
// interactive pick over registered projects when a terminal is attached.
func resolveSelection(cli CLI, deps Dependencies) (Selection, error) {
	workspaceRoot := strings.TrimSpace(cli.Workspace)
	if workspaceRoot == "" {
		resolved, err := deps.WorkspaceResolver(deps.StartDir)
		if err != nil {
			return Selection{}, err
		}
		workspaceRoot = resolved
	} else if abs, err := filepath.Abs(workspaceRoot); err == nil {
		workspaceRoot = abs
	}

	projectRoot, projectName, err := resolveProject(cli, deps)
	if err != nil {
		return Selection{}, err
	}

	if name := strings.TrimSpace(cli.Name); name != "" {
		projectName = name
	} else if env := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixProjectName)); env != "" {
		projectName = env
	}
	if projectName == "" {
		projectName = filepath.Base(projectRoot)
	}

	return Selection{
		WorkspaceRoot: workspaceRoot,
		ProjectRoot:   projectRoot,
		ProjectName:   projectName,
	}, nil
}

// resolveProject returns the project root and, when the project came from the
// registry, its registered name.
func resolveProject(cli CLI, deps Dependencies) (string, string, error) {
	if dir := strings.TrimSpace(cli.ProjectDir); dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", "", err
		}
		return abs, "", nil
	}

	if dir := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixProject)); dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", "", err
		}
		return abs, "", nil
	}

	if deps.Finder != nil {
		if dir, ok := deps.Finder(deps.StartDir); ok {
			return dir, "", nil
		}
	}

	cfg, err := loadGlobalConfigOrDefault()
	if err != nil {
		return "", "", err
	}

	if cfg.ActiveProject != "" {
		if entry, ok := cfg.Projects[cfg.ActiveProject]; ok {
			return entry.Path, cfg.ActiveProject, nil
		}
	}

	if len(cfg.Projects) > 0 && deps.Prompter != nil && interaction.Allowed() {
		return promptForProject(cfg, deps.Prompter)
	}

	return "", "", errNoSelection
}

func promptForProject(cfg config.GlobalConfig, prompter interaction.Prompter) (string, string, error) {
	names := make([]string, 0, len(cfg.Projects))
	for name := range cfg.Projects {
		names = append(names, name)
	}
	sort.Strings(names)

	options := make([]interaction.SelectOption, 0, len(names))
	for _, name := range names {
		options = append(options, interaction.SelectOption{
			Label: fmt.Sprintf("%s (%s)", name, cfg.Projects[name].Path),
			Value: name,
		})
	}

	selected, err := prompter.SelectValue("Select project", options)
	if err != nil {
		return "", "", err
	}
	if selected == "" {
		return "", "", errNoSelection
	}
	return cfg.Projects[selected].Path, selected, nil
}
