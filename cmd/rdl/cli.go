// Where: cli/cmd/rdl/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"
	"time"

	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/app"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/config"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/helpers"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/interaction"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/launcher"
)

var getwd = os.Getwd

// buildDependencies constructs all runtime dependencies required by the CLI.
func buildDependencies() (app.Dependencies, error) {
	startDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, err
	}

	return app.Dependencies{
		StartDir:          startDir,
		Out:               os.Stdout,
		Now:               time.Now,
		Prompter:          interaction.HuhPrompter{},
		Loader:            helpers.NewTemplateLoader(),
		Finder:            helpers.DefaultProjectDirFinder(),
		WorkspaceResolver: config.ResolveWorkspaceRoot,
		Runner:            launcher.NewRunner(),
	}, nil
}
