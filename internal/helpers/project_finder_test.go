// Where: cli/internal/helpers/project_finder_test.go
// What: Tests for upward project directory discovery.
// Why: The finder seeds project selection when no flag or env is given.
package helpers

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultProjectDirFinderFindsPropertiesDir(t *testing.T) {
	root := t.TempDir()
	project := filepath.Join(root, "app")
	nested := filepath.Join(project, "src", "deep")
	if err := os.MkdirAll(filepath.Join(project, "Properties"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(project, "Properties", "launch.json"), []byte("{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	found, ok := DefaultProjectDirFinder()(nested)
	if !ok {
		t.Fatalf("expected project dir to be found")
	}
	resolved, err := filepath.EvalSymlinks(found)
	if err != nil {
		t.Fatalf("eval symlinks: %v", err)
	}
	expected, err := filepath.EvalSymlinks(project)
	if err != nil {
		t.Fatalf("eval symlinks: %v", err)
	}
	if resolved != expected {
		t.Fatalf("expected %s, got %s", expected, resolved)
	}
}

func TestDefaultProjectDirFinderFindsBareTemplate(t *testing.T) {
	project := t.TempDir()
	if err := os.WriteFile(filepath.Join(project, "launch.json"), []byte("{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	found, ok := DefaultProjectDirFinder()(project)
	if !ok {
		t.Fatalf("expected project dir to be found")
	}
	if found == "" {
		t.Fatalf("expected path, got empty")
	}
}

func TestDefaultProjectDirFinderMiss(t *testing.T) {
	if _, ok := DefaultProjectDirFinder()(t.TempDir()); ok {
		t.Fatalf("expected no project dir")
	}
}
