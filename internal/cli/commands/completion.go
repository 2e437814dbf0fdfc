package commands

import (
	"fmt"
	"os"
	"strings"
)

// Completion provides shell completion scripts for bash and zsh.
// Usage:
//
//	grind completion           # prints completions for all supported shells
//	grind completion bash      # prints bash completion
//	grind completion zsh       # prints zsh completion
func Completion(args []string) error {
	shell := ""
	if len(args) > 0 {
		shell = strings.ToLower(args[0])
	}

	switch shell {
	case "bash":
		printBashCompletion()
		return nil
	case "zsh":
		printZshCompletion()
		return nil
	case "", "all":
		printBashCompletion()
		fmt.Println()
		printZshCompletion()
		return nil
	default:
		fmt.Fprintf(os.Stderr, "unknown shell: %s (supported: bash, zsh)\n", shell)
		return fmt.Errorf("unsupported shell: %s", shell)
	}
}

func printBashCompletion() {
	// After the subcommands, grind completes like any command runner:
	// the first free token is an executable, the rest belongs to it.
	fmt.Println(`# bash completion for grind
_grind_completions()
{
    local cur prev words cword
    _init_completion || return

    local -a commands
    commands=(
        profile doctor engine artifacts completion help version
    )

    case ${COMP_CWORD} in
        1)
            COMPREPLY=( $(compgen -W "${commands[*]} --verbose --debug" -- "$cur") )
            COMPREPLY+=( $(compgen -c -- "$cur") )
            return ;;
        *)
            case ${COMP_WORDS[1]} in
                doctor)
                    COMPREPLY=( $(compgen -W "--verbose --fix" -- "$cur") ) ;;
                completion)
                    COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") ) ;;
                artifacts)
                    COMPREPLY=( $(compgen -d -- "$cur") ) ;;
                *)
                    COMPREPLY=( $(compgen -f -- "$cur") ) ;;
            esac
            return ;;
    esac
}
complete -F _grind_completions grind`)
}

func printZshCompletion() {
	fmt.Println(`# zsh completion for grind
#compdef grind
_grind() {
    local -a commands
    commands=(
        'profile:Profile a target command under the engine'
        'doctor:Check the profiling environment'
        'engine:Show the resolved profiling engine'
        'artifacts:List engine output files'
        'completion:Print shell completions'
        'help:Show help'
        'version:Show version'
    )
    if (( CURRENT == 2 )); then
        _describe 'command' commands
        _command_names -e
    else
        _files
    fi
}
_grind "$@"`)
}
