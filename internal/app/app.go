// Where: cli/internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/config"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/helpers"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/interaction"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/launcher"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/meta"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// This structure enables dependency injection for testing and allows swapping
// implementations of various subsystems.
type Dependencies struct {
	StartDir          string
	Out               io.Writer
	Now               func() time.Time
	Prompter          interaction.Prompter
	Loader            helpers.TemplateLoader
	Finder            helpers.ProjectDirFinder
	WorkspaceResolver func(string) (string, error)
	Runner            launcher.Runner
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	Workspace  string `short:"w" help:"Workspace root (default: discovered)"`
	ProjectDir string `short:"p" help:"Project root directory (default: discovered or selected)"`
	Name       string `short:"n" help:"Project display name (default: project directory name)"`
	EnvFile    string `name:"env-file" help:"Path to .env file"`
	Launcher   string `short:"l" help:"Launcher command (default: configured)"`

	Resolve    ResolveCmd    `cmd:"" help:"Resolve the launch template into bin/launch.json"`
	Locate     LocateCmd     `cmd:"" help:"Show which launch.json would be used"`
	Context    ContextCmd    `cmd:"" help:"Show the substitution context"`
	Launch     LaunchCmd     `cmd:"" help:"Resolve and hand the output to the launcher"`
	Init       InitCmd       `cmd:"" help:"Scaffold Properties/launch.json"`
	Project    ProjectCmd    `cmd:"" help:"Manage registered projects"`
	Config     ConfigCmd     `cmd:"" name:"config" help:"Manage configuration"`
	Complete   CompleteCmd   `cmd:"" name:"__complete" hidden:"" help:"Completion candidate provider"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completion script"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

type (
	ResolveCmd struct{}
	LocateCmd  struct{}
	ContextCmd struct{}
	LaunchCmd  struct{}
	InitCmd    struct{}
	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	if err := config.EnsureGlobalConfig(); err != nil {
		return exitWithError(out, err)
	}

	if deps.WorkspaceResolver == nil {
		deps.WorkspaceResolver = config.ResolveWorkspaceRoot
	}
	if deps.Finder == nil {
		deps.Finder = helpers.DefaultProjectDirFinder()
	}
	if deps.Loader == nil {
		deps.Loader = helpers.NewTemplateLoader()
	}
	if deps.Runner == nil {
		deps.Runner = launcher.NewRunner()
	}

	// Handle no arguments: show current selection and help
	if len(args) == 0 {
		return runNoArgs(deps, out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(args, err, deps, out)
	}

	// Load environment file if provided or if .env exists in current directory.
	// Loaded values participate in the final expansion pass of the resolver.
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else {
		if _, err := os.Stat(".env"); err == nil {
			if err := godotenv.Load(); err != nil {
				fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
			}
		}
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"resolve":            runResolve,
		"locate":             runLocate,
		"context":            runContext,
		"launch":             runLaunch,
		"init":               runInit,
		"project":            runProjectList,
		"project list":       runProjectList,
		"project ls":         runProjectList,
		"project recent":     runProjectRecent,
		"__complete project": runCompleteProject,
		"completion bash":    func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionBash(cli, out) },
		"completion zsh":     func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionZsh(cli, out) },
		"completion fish":    func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionFish(cli, out) },
		"version":            func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(cli, out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "project add", handler: runProjectAdd},
		{prefix: "project use", handler: runProjectUse},
		{prefix: "project remove", handler: runProjectRemove},
		{prefix: "config set-workspace", handler: runConfigSetWorkspace},
		{prefix: "config set-launcher", handler: runConfigSetLauncher},
	}

	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(cli, deps, out), true
		}
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(_ CLI, out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}

// commandName extracts the first non-flag argument from the command line,
// which represents the command name. Recognizes and skips known flag pairs.
func commandName(args []string) string {
	skipNext := false
	for _, arg := range args {
		if skipNext {
			skipNext = false
			continue
		}
		if strings.HasPrefix(arg, "-") {
			switch arg {
			case "-w", "--workspace", "-p", "--project-dir", "-n", "--name", "-l", "--launcher", "--env-file":
				skipNext = true
			}
			continue
		}
		return arg
	}
	return ""
}

// runNoArgs handles the case when rdl is invoked without arguments.
// It displays the current selection (equivalent to the 'context' command).
func runNoArgs(deps Dependencies, out io.Writer) int {
	return runContext(CLI{}, deps, out)
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(args []string, err error, deps Dependencies, out io.Writer) int {
	errStr := err.Error()

	if strings.Contains(errStr, "expected") {
		cmd := commandName(args)
		switch {
		case strings.HasPrefix(cmd, "project") && strings.Contains(errStr, "<name>"):
			cfg, _ := loadGlobalConfigOrDefault()
			var projectNames []string
			for name := range cfg.Projects {
				projectNames = append(projectNames, name)
			}
			return exitWithSuggestionAndAvailable(out,
				"Project name required.",
				[]string{
					fmt.Sprintf("%s project use <name>", meta.AppName),
					fmt.Sprintf("%s project list", meta.AppName),
				},
				projectNames,
			)

		case cmd == "project" && strings.Contains(errStr, "expected one of"):
			return runProjectList(CLI{}, deps, out)
		}
	}

	return exitWithError(out, err)
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}

func exitWithSuggestionAndAvailable(out io.Writer, message string, suggestions, available []string) int {
	fmt.Fprintln(out, message)
	for _, suggestion := range suggestions {
		fmt.Fprintf(out, "  %s\n", suggestion)
	}
	if len(available) > 0 {
		fmt.Fprintf(out, "Available: %s\n", strings.Join(available, ", "))
	}
	return 1
}

func now(deps Dependencies) time.Time {
	if deps.Now != nil {
		return deps.Now()
	}
	return time.Now()
}
