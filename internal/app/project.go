// Where: cli/internal/app/project.go
// What: Project management commands.
// Why: Allow selecting and listing projects from global config.
package app

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/config"
)

type ProjectCmd struct {
	List   ProjectListCmd   `cmd:"" help:"List projects"`
	Add    ProjectAddCmd    `cmd:"" help:"Register a project"`
	Use    ProjectUseCmd    `cmd:"" help:"Switch project"`
	Remove ProjectRemoveCmd `cmd:"" help:"Unregister a project"`
	Recent ProjectRecentCmd `cmd:"" help:"Show recent projects"`
}

type (
	ProjectListCmd   struct{}
	ProjectRecentCmd struct{}
	ProjectAddCmd    struct {
		Name string `arg:"" help:"Project name"`
		Path string `arg:"" optional:"" help:"Project root (default: current directory)"`
	}
	ProjectUseCmd struct {
		Name string `arg:"" help:"Project name or index"`
	}
	ProjectRemoveCmd struct {
		Name string `arg:"" help:"Project name"`
	}
)

type recentProject struct {
	Name   string
	Entry  config.ProjectEntry
	UsedAt time.Time
}

func runProjectList(_ CLI, _ Dependencies, out io.Writer) int {
	cfg, err := loadGlobalConfigOrDefault()
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	if len(cfg.Projects) == 0 {
		fmt.Fprintln(out, "no projects registered")
		return 0
	}

	names := make([]string, 0, len(cfg.Projects))
	for name := range cfg.Projects {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if name == cfg.ActiveProject {
			fmt.Fprintf(out, "* %s\t%s\n", name, cfg.Projects[name].Path)
			continue
		}
		fmt.Fprintf(out, "  %s\t%s\n", name, cfg.Projects[name].Path)
	}
	return 0
}

func runProjectRecent(_ CLI, _ Dependencies, out io.Writer) int {
	cfg, err := loadGlobalConfigOrDefault()
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	list := sortProjectsByRecent(cfg)
	if len(list) == 0 {
		fmt.Fprintln(out, "no projects registered")
		return 0
	}

	for i, project := range list {
		fmt.Fprintf(out, "%d. %s\n", i+1, project.Name)
	}
	return 0
}

func runProjectAdd(cli CLI, deps Dependencies, out io.Writer) int {
	name := strings.TrimSpace(cli.Project.Add.Name)
	if name == "" {
		fmt.Fprintln(out, "project name is required")
		return 1
	}

	dir := strings.TrimSpace(cli.Project.Add.Path)
	if dir == "" {
		dir = deps.StartDir
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	path, cfg, err := loadGlobalConfigWithPath()
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	cfg.Projects[name] = config.ProjectEntry{
		Path:     abs,
		LastUsed: now(deps).Format(time.RFC3339),
	}
	if cfg.ActiveProject == "" {
		cfg.ActiveProject = name
	}

	if err := config.SaveGlobalConfig(path, cfg); err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	fmt.Fprintf(out, "Registered project '%s' at %s\n", name, abs)
	return 0
}

func runProjectUse(cli CLI, deps Dependencies, out io.Writer) int {
	selector := strings.TrimSpace(cli.Project.Use.Name)
	if selector == "" {
		fmt.Fprintln(out, "project name is required")
		return 1
	}

	path, cfg, err := loadGlobalConfigWithPath()
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	projectName, err := selectProject(cfg, selector)
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	cfg.ActiveProject = projectName
	entry := cfg.Projects[projectName]
	entry.LastUsed = now(deps).Format(time.RFC3339)
	cfg.Projects[projectName] = entry

	if err := config.SaveGlobalConfig(path, cfg); err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	fmt.Fprintf(out, "Switched to project '%s'\n", projectName)
	return 0
}

func runProjectRemove(cli CLI, _ Dependencies, out io.Writer) int {
	name := strings.TrimSpace(cli.Project.Remove.Name)

	path, cfg, err := loadGlobalConfigWithPath()
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	if _, ok := cfg.Projects[name]; !ok {
		fmt.Fprintf(out, "project '%s' is not registered\n", name)
		return 1
	}

	delete(cfg.Projects, name)
	if cfg.ActiveProject == name {
		cfg.ActiveProject = ""
	}

	if err := config.SaveGlobalConfig(path, cfg); err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	fmt.Fprintf(out, "Removed project '%s'\n", name)
	return 0
}

// selectProject resolves a name or 1-based recent index to a project name.
func selectProject(cfg config.GlobalConfig, selector string) (string, error) {
	if len(cfg.Projects) == 0 {
		return "", fmt.Errorf("no projects registered")
	}

	if _, ok := cfg.Projects[selector]; ok {
		return selector, nil
	}

	if index, err := strconv.Atoi(selector); err == nil {
		list := sortProjectsByRecent(cfg)
		if index < 1 || index > len(list) {
			return "", fmt.Errorf("project index %d out of range", index)
		}
		return list[index-1].Name, nil
	}

	return "", fmt.Errorf("unknown project '%s'", selector)
}

func sortProjectsByRecent(cfg config.GlobalConfig) []recentProject {
	list := make([]recentProject, 0, len(cfg.Projects))
	for name, entry := range cfg.Projects {
		usedAt, _ := time.Parse(time.RFC3339, entry.LastUsed)
		list = append(list, recentProject{Name: name, Entry: entry, UsedAt: usedAt})
	}

	sort.Slice(list, func(i, j int) bool {
		if !list[i].UsedAt.Equal(list[j].UsedAt) {
			return list[i].UsedAt.After(list[j].UsedAt)
		}
		return list[i].Name < list[j].Name
	})
	return list
}
