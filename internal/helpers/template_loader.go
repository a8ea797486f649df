// Where: cli/internal/helpers/template_loader.go
// What: Template loader adapter for commands.
// Why: Provide a simple way for commands to read the located launch file.
package helpers

import "os"

// TemplateLoader reads raw template text from disk.
type TemplateLoader interface {
	Read(path string) (string, error)
}

type templateLoader struct{}

func NewTemplateLoader() TemplateLoader {
	return templateLoader{}
}

func (templateLoader) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
