package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nibzard/todo-go/internal/config"
)

var completionCommands = []string{
	"tui", "replay", "validate", "tail", "ls", "config", "doctor", "completion", "version", "help",
}

// completionCommand prints a completion script for the named shell.
func completionCommand(_ *config.Config, args []string) error {
	if len(args) == 0 {
		return errors.New("completion requires a shell (bash|zsh|fish)")
	}
	if len(args) > 1 {
		return fmt.Errorf("unexpected arguments: %v", args[1:])
	}

	words := strings.Join(completionCommands, " ")
	switch strings.ToLower(args[0]) {
	case "bash":
		fmt.Printf(bashCompletion, words)
	case "zsh":
		fmt.Printf(zshCompletion, words)
	case "fish":
		fmt.Printf(fishCompletion, words)
	default:
		return fmt.Errorf("unsupported shell: %s", args[0])
	}
	return nil
}

const bashCompletion = `# todo bash completion
_todo() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    case "$prev" in
        --theme|-theme) COMPREPLY=( $(compgen -W "light dark" -- "$cur") ); return ;;
        --filter|-filter) COMPREPLY=( $(compgen -W "all active completed" -- "$cur") ); return ;;
        --format|-format) COMPREPLY=( $(compgen -W "text json" -- "$cur") ); return ;;
        replay|validate|tui) COMPREPLY=( $(compgen -f -X '!*.json' -- "$cur") ); return ;;
    esac
    COMPREPLY=( $(compgen -W "%s" -- "$cur") )
}
complete -o filenames -F _todo todo
`

const zshCompletion = `#compdef todo
# todo zsh completion
_todo() {
    local -a commands
    commands=(%s)
    if (( CURRENT == 2 )); then
        _describe 'command' commands
    else
        _files -g '*.json'
    fi
}
_todo "$@"
`

const fishCompletion = `# todo fish completion
complete -c todo -f -n '__fish_use_subcommand' -a '%s'
complete -c todo -l theme -x -a 'light dark'
complete -c todo -l filter -x -a 'all active completed'
complete -c todo -n '__fish_seen_subcommand_from replay validate tui' -F
`
