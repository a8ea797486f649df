// Where: cli/internal/launch/context.go
// What: Invocation-scoped substitution context.
// Why: Derive every substitution value once, before any rewrite starts.
package launch

import "strings"

// Context bundles the values substituted into a launch template.
// It is built once per invocation and never mutated afterwards.
type Context struct {
	WorkspaceRoot         string
	ProjectRoot           string
	WorkspaceRootPortable string
	ProjectRootPortable   string
	ProjectName           string
}

// NewContext builds a Context from native root paths and the project name.
// Portable path forms are derived here so the resolver never computes them.
func NewContext(workspaceRoot, projectRoot, projectName string) Context {
	return Context{
		WorkspaceRoot:         workspaceRoot,
		ProjectRoot:           projectRoot,
		WorkspaceRootPortable: PortablePath(workspaceRoot),
		ProjectRootPortable:   PortablePath(projectRoot),
		ProjectName:           projectName,
	}
}

// PortablePath rewrites a native path into a POSIX-style form:
// backslashes become forward slashes and a drive-letter prefix turns
// into a leading slash without the colon (C:\a\b -> /C/a/b).
func PortablePath(path string) string {
	portable := strings.ReplaceAll(path, `\`, "/")
	if len(portable) >= 2 && portable[1] == ':' && isDriveLetter(portable[0]) {
		portable = "/" + string(portable[0]) + portable[2:]
	}
	return portable
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
