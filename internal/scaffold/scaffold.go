// Where: cli/internal/scaffold/scaffold.go
// What: Starter launch.json generation.
// Why: Give new projects a template with the recognized tokens already wired.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/pavel-agarkov/remote-debug-launcher/cli/internal/meta"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	tmplOnce sync.Once
	tmplErr  error
	tmpl     *template.Template
)

type templateData struct {
	ProjectName string
}

// Render produces the starter launch.json content for the given project name.
func Render(projectName string) (string, error) {
	parsed, err := loadTemplate()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := parsed.Execute(&buf, templateData{ProjectName: projectName}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write renders the starter template into <projectRoot>/Properties/launch.json.
// An existing template is never clobbered.
func Write(projectRoot, projectName string) (string, error) {
	path := filepath.Join(projectRoot, meta.PropertiesDir, meta.TemplateName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	}

	content, err := Render(projectName)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func loadTemplate() (*template.Template, error) {
	tmplOnce.Do(func() {
		tmpl, tmplErr = template.New("launch.json.tmpl").
			Funcs(sprig.TxtFuncMap()).
			ParseFS(templateFS, "templates/launch.json.tmpl")
	})
	return tmpl, tmplErr
}
