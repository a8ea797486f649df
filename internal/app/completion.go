// Where: cli/internal/app/completion.go
// What: Shell completion command implementation.
// Why: Provide tab completion for bash, zsh, and fish.
package app

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alecthomas/kong"
)

// CompletionCmd defines the structure for the completion command.
type CompletionCmd struct {
	Bash CompletionBashCmd `cmd:"" help:"Generate bash completion script"`
	Zsh  CompletionZshCmd  `cmd:"" help:"Generate zsh completion script"`
	Fish CompletionFishCmd `cmd:"" help:"Generate fish completion script"`
}

type (
	CompletionBashCmd struct{}
	CompletionZshCmd  struct{}
	CompletionFishCmd struct{}
)

// CompleteCmd is the hidden completion candidate provider invoked by the
// generated shell scripts.
type CompleteCmd struct {
	Project CompleteProjectCmd `cmd:"" help:"List project candidates"`
}

type CompleteProjectCmd struct{}

func runCompleteProject(_ CLI, _ Dependencies, out io.Writer) int {
	cfg, err := loadGlobalConfigOrDefault()
	if err != nil {
		return 1
	}

	names := make([]string, 0, len(cfg.Projects))
	for name := range cfg.Projects {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return 0
}

func visibleCommands(cli CLI) ([]string, map[string][]string) {
	parser, _ := kong.New(&cli)

	var commands []string
	subcommands := make(map[string][]string)

	for _, node := range parser.Model.Children {
		if node.Hidden || strings.HasPrefix(node.Name, "__") {
			continue
		}
		commands = append(commands, node.Name)
		if len(node.Children) > 0 {
			var subs []string
			for _, sub := range node.Children {
				if sub.Hidden || strings.HasPrefix(sub.Name, "__") {
					continue
				}
				subs = append(subs, sub.Name)
			}
			subcommands[node.Name] = subs
		}
	}
	return commands, subcommands
}

func runCompletionBash(cli CLI, out io.Writer) int {
	commands, subcommands := visibleCommands(cli)

	var caseParts []string
	subNames := make([]string, 0, len(subcommands))
	for name := range subcommands {
		subNames = append(subNames, name)
	}
	sort.Strings(subNames)
	for _, cmd := range subNames {
		part := fmt.Sprintf(`        %s)
            COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
            return 0
            ;;`, cmd, strings.Join(subcommands[cmd], " "))
		caseParts = append(caseParts, part)
	}

	script := `_rdl_completion() {
    local cur prev cmd sub opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    cmd="${COMP_WORDS[1]}"
    sub="${COMP_WORDS[2]}"
    opts="%s"

    if [[ "${cmd}" == "project" && ( "${sub}" == "use" || "${sub}" == "remove" ) ]]; then
        COMPREPLY=( $(compgen -W "$(_rdl_complete project)" -- "${cur}") )
        return 0
    fi

    case "${prev}" in
%s
    esac

    COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
}
_rdl_complete() {
    command rdl __complete "$1" 2>/dev/null
}
complete -F _rdl_completion rdl
`
	fmt.Fprintf(out, script, strings.Join(commands, " "), strings.Join(caseParts, "\n"))
	return 0
}

func runCompletionZsh(cli CLI, out io.Writer) int {
	commands, _ := visibleCommands(cli)

	script := `#compdef rdl
_rdl_completion() {
    local -a commands
    commands=(
        %s
    )
    local cmd="${words[2]}"
    local sub="${words[3]}"
    if [[ "${cmd}" == "project" && ( "${sub}" == "use" || "${sub}" == "remove" ) ]]; then
        _values 'projects' ${(f)"$(command rdl __complete project 2>/dev/null)"}
        return
    fi
    _describe 'commands' commands
}
compdef _rdl_completion rdl
`
	fmt.Fprintf(out, script, strings.Join(commands, "\n        "))
	return 0
}

func runCompletionFish(cli CLI, out io.Writer) int {
	commands, subcommands := visibleCommands(cli)

	fmt.Fprintf(out, "complete -c rdl -f -n '__fish_use_subcommand' -a '%s'\n", strings.Join(commands, " "))

	subNames := make([]string, 0, len(subcommands))
	for name := range subcommands {
		subNames = append(subNames, name)
	}
	sort.Strings(subNames)
	for _, cmd := range subNames {
		fmt.Fprintf(out, "complete -c rdl -f -n '__fish_seen_subcommand_from %s' -a '%s'\n",
			cmd, strings.Join(subcommands[cmd], " "))
	}
	fmt.Fprintln(out, "complete -c rdl -f -n '__fish_seen_subcommand_from project; and __fish_seen_subcommand_from use remove' -a '(command rdl __complete project 2>/dev/null)'")
	return 0
}
