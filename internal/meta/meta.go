// Where: cli/internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep project identity and directory layout in one place.
package meta

const (
	// Project Identity
	AppName   = "rdl"
	Slug      = "remote-debug-launcher"
	EnvPrefix = "RDL"

	// Directory Layout
	HomeDir       = ".rdl"
	PropertiesDir = "Properties"
	OutputDir     = "bin"

	// Launch File Layout
	TemplateName = "launch.json"
	OutputName   = "launch.json"
)
