// Where: cli/internal/app/resolve_test.go
// What: Tests for the resolution command handlers.
// Why: Cover the full locate -> resolve -> write path and its failure modes.
package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/constants"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/envutil"
	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/helpers"
)

func testDeps() Dependencies {
	return Dependencies{
		Loader: helpers.NewTemplateLoader(),
	}
}

func setupWorkspace(t *testing.T, template string) (workspace, project string) {
	t.Helper()
	workspace = t.TempDir()
	project = filepath.Join(workspace, "app")
	if err := os.MkdirAll(filepath.Join(project, "Properties"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(project, "Properties", "launch.json"), []byte(template), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	t.Setenv(envutil.HostEnvKey(constants.HostSuffixConfigHome), t.TempDir())
	return workspace, project
}

func TestRunResolveWritesSubstitutedOutput(t *testing.T) {
	template := `{"root": "%projectRoot%", "ws": "%workspaceRootForBash%", "name": "%projName%"}`
	workspace, project := setupWorkspace(t, template)

	var out bytes.Buffer
	cli := CLI{Workspace: workspace, ProjectDir: project, Name: "App1"}

	if code := runResolve(cli, testDeps(), &out); code != 0 {
		t.Fatalf("expected success, got %d: %s", code, out.String())
	}

	payload, err := os.ReadFile(filepath.Join(project, "bin", "launch.json"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	got := string(payload)
	if !strings.Contains(got, `"root": "`+project+`"`) {
		t.Fatalf("project root not substituted: %s", got)
	}
	if !strings.Contains(got, `"name": "App1"`) {
		t.Fatalf("project name not substituted: %s", got)
	}
	if strings.Contains(got, "%") {
		t.Fatalf("unexpected residual token: %s", got)
	}
}

func TestRunResolveReportsCandidates(t *testing.T) {
	workspace, project := setupWorkspace(t, "{}")

	var out bytes.Buffer
	cli := CLI{Workspace: workspace, ProjectDir: project}

	if code := runResolve(cli, testDeps(), &out); code != 0 {
		t.Fatalf("expected success, got %d: %s", code, out.String())
	}

	log := out.String()
	if !strings.Contains(log, "Checking "+filepath.Join(project, "Properties", "launch.json")) {
		t.Fatalf("missing candidate diagnostic: %s", log)
	}
	if !strings.Contains(log, "Using "+filepath.Join(project, "Properties", "launch.json")) {
		t.Fatalf("missing winning candidate: %s", log)
	}
}

func TestRunResolveNotFound(t *testing.T) {
	workspace := t.TempDir()
	project := filepath.Join(workspace, "app")
	if err := os.MkdirAll(project, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Setenv(envutil.HostEnvKey(constants.HostSuffixConfigHome), t.TempDir())

	var out bytes.Buffer
	cli := CLI{Workspace: workspace, ProjectDir: project}

	if code := runResolve(cli, testDeps(), &out); code != 1 {
		t.Fatalf("expected failure, got %d", code)
	}
	if !strings.Contains(out.String(), "Could not find launch.json") {
		t.Fatalf("missing fixed not-found message: %s", out.String())
	}
}

func TestRunLocatePrintsWinningPath(t *testing.T) {
	workspace, project := setupWorkspace(t, "{}")

	var out bytes.Buffer
	cli := CLI{Workspace: workspace, ProjectDir: project}

	if code := runLocate(cli, testDeps(), &out); code != 0 {
		t.Fatalf("expected success, got %d: %s", code, out.String())
	}
	if !strings.Contains(out.String(), filepath.Join(project, "Properties", "launch.json")) {
		t.Fatalf("missing located path: %s", out.String())
	}
}

func TestRunContextShowsDerivedValues(t *testing.T) {
	workspace, project := setupWorkspace(t, "{}")

	var out bytes.Buffer
	cli := CLI{Workspace: workspace, ProjectDir: project, Name: "App1"}

	if code := runContext(cli, testDeps(), &out); code != 0 {
		t.Fatalf("expected success, got %d: %s", code, out.String())
	}

	log := out.String()
	for _, want := range []string{workspace, project, "App1", filepath.Join(project, "bin", "launch.json")} {
		if !strings.Contains(log, want) {
			t.Fatalf("expected %q in context output: %s", want, log)
		}
	}
}

func TestRunLaunchInvokesRunner(t *testing.T) {
	workspace, project := setupWorkspace(t, `{"name": "%projName%"}`)

	runner := &fakeRunner{}
	deps := testDeps()
	deps.Runner = runner

	var out bytes.Buffer
	cli := CLI{Workspace: workspace, ProjectDir: project, Name: "App1", Launcher: "remote-debug"}

	if code := runLaunch(cli, deps, &out); code != 0 {
		t.Fatalf("expected success, got %d: %s", code, out.String())
	}
	if runner.command != "remote-debug" {
		t.Fatalf("unexpected launcher command: %s", runner.command)
	}
	if runner.outputPath != filepath.Join(project, "bin", "launch.json") {
		t.Fatalf("unexpected output path: %s", runner.outputPath)
	}
}

func TestRunLaunchRequiresLauncher(t *testing.T) {
	workspace, project := setupWorkspace(t, "{}")
	t.Setenv(envutil.HostEnvKey(constants.HostSuffixLauncher), "")

	var out bytes.Buffer
	cli := CLI{Workspace: workspace, ProjectDir: project}

	if code := runLaunch(cli, testDeps(), &out); code != 1 {
		t.Fatalf("expected failure without launcher, got %d", code)
	}
	if !strings.Contains(out.String(), "no launcher configured") {
		t.Fatalf("missing launcher error: %s", out.String())
	}
}

func TestRunInitScaffoldsTemplate(t *testing.T) {
	workspace := t.TempDir()
	project := filepath.Join(workspace, "app")
	if err := os.MkdirAll(project, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Setenv(envutil.HostEnvKey(constants.HostSuffixConfigHome), t.TempDir())

	var out bytes.Buffer
	cli := CLI{Workspace: workspace, ProjectDir: project, Name: "App1"}

	if code := runInit(cli, testDeps(), &out); code != 0 {
		t.Fatalf("expected success, got %d: %s", code, out.String())
	}
	if _, err := os.Stat(filepath.Join(project, "Properties", "launch.json")); err != nil {
		t.Fatalf("expected scaffolded template: %v", err)
	}
}

type fakeRunner struct {
	command    string
	outputPath string
}

func (r *fakeRunner) Launch(command, outputPath string) error {
	r.command = command
	r.outputPath = outputPath
	return nil
}
