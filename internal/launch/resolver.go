// Where: cli/internal/launch/resolver.go
// What: Token substitution over launch template text.
// Why: Keep the alias table as data so the rewrite order stays an explicit invariant.
package launch

import (
	"os"
	"regexp"
	"strings"
)

// tokenClass maps one group of %alias% spellings to a Context value.
type tokenClass struct {
	aliases []string
	value   func(Context) string
}

// tokenTable lists every recognized token class in substitution order:
// native workspace root, native project root, project name, then the
// portable variants. Matching is case-insensitive.
var tokenTable = []tokenClass{
	{
		aliases: []string{"workspaceRoot", "SolutionRoot", "root", "rootDir"},
		value:   func(c Context) string { return c.WorkspaceRoot },
	},
	{
		aliases: []string{"projectRoot", "projectDirectory", "projDir"},
		value:   func(c Context) string { return c.ProjectRoot },
	},
	{
		aliases: []string{"projectName", "projName"},
		value:   func(c Context) string { return c.ProjectName },
	},
	{
		aliases: []string{"workspaceRootForBash", "SolutionRootForBash", "rootForBash", "rootDirForBash"},
		value:   func(c Context) string { return c.WorkspaceRootPortable },
	},
	{
		aliases: []string{"projectRootForBash", "projectDirectoryForBash", "projDirForBash"},
		value:   func(c Context) string { return c.ProjectRootPortable },
	},
}

var (
	tokenPattern = regexp.MustCompile(`(?i)%(` + strings.Join(allAliases(), "|") + `)%`)
	aliasValues  = buildAliasIndex()
)

func allAliases() []string {
	var aliases []string
	for _, class := range tokenTable {
		aliases = append(aliases, class.aliases...)
	}
	return aliases
}

func buildAliasIndex() map[string]func(Context) string {
	index := make(map[string]func(Context) string)
	for _, class := range tokenTable {
		for _, alias := range class.aliases {
			index[strings.ToLower(alias)] = class.value
		}
	}
	return index
}

// Resolve rewrites every recognized %alias% token in text with the
// corresponding Context value, then expands environment references.
//
// Token substitution is a single scan of the original document, so text
// produced by one token class is never re-matched by another class.
// Environment expansion deliberately runs over the fully substituted
// text afterwards; a substitution that happens to emit %VAR%-shaped
// output is therefore subject to it. Unrecognized %...% sequences are
// left verbatim.
func Resolve(text string, ctx Context) string {
	substituted := tokenPattern.ReplaceAllStringFunc(text, func(match string) string {
		alias := strings.ToLower(match[1 : len(match)-1])
		if value, ok := aliasValues[alias]; ok {
			return value(ctx)
		}
		return match
	})
	return ExpandEnv(substituted, os.LookupEnv)
}
