// Package cli provides the command-line interface for grind. The surface
// is deliberately transparent: any argument list whose first token is not
// a registered subcommand is treated verbatim as a target command to
// profile, so grind never defines flags that could collide with the
// target's. A small registry covers the auxiliary commands (doctor,
// engine, artifacts, completion); `--` forces passthrough for targets
// whose name collides with one of them.
package cli

import (
	"fmt"
	"os"

	e "grind/pkg/errors"
	"grind/pkg/version"
)

// Command represents a CLI command
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// CLI represents the command-line interface
type CLI struct {
	commands map[string]Command
	// fallback receives every invocation that names no subcommand;
	// replaced in tests to observe routing.
	fallback Command
}

// New creates a new CLI instance
func New() *CLI {
	c := &CLI{commands: make(map[string]Command)}
	c.registerCommands()
	c.fallback = profileCmd{}
	return c
}

func (c *CLI) register(cmd Command) {
	c.commands[cmd.Name()] = cmd
}

// registerCommands registers all available commands
func (c *CLI) registerCommands() {
	c.register(NewProfileCommand())
	c.register(NewDoctorCommand())
	c.register(NewEngineCommand())
	c.register(NewArtifactsCommand())
	c.register(NewCompletionCommand())
}

// Run executes the CLI with given arguments (args[0] is the program name).
func (c *CLI) Run(args []string) error {
	if len(args) < 2 {
		c.printUsage()
		return e.New(e.ErrUsage, "No target command specified")
	}
	rest := args[1:]

	// `--` separates grind from the target unconditionally.
	if rest[0] == "--" {
		if len(rest) == 1 {
			c.printUsage()
			return e.New(e.ErrUsage, "No target command specified")
		}
		return c.fallback.Run(rest[1:])
	}

	switch rest[0] {
	case "help", "--help", "-h":
		c.printUsage()
		return nil
	case "version", "--version":
		fmt.Printf("grind %s\n", version.Version)
		return nil
	}

	if cmd, ok := c.commands[rest[0]]; ok {
		return cmd.Run(rest[1:])
	}

	// Everything else is a target command plus its arguments.
	return c.fallback.Run(rest)
}

func (c *CLI) printUsage() {
	w := os.Stderr
	fmt.Fprintln(w, "Usage: grind <target-command> [target-args...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Runs the target under the profiling engine (callgrind with instruction")
	fmt.Fprintln(w, "annotation, jump collection and cache simulation) and exits with the")
	fmt.Fprintln(w, "target's own status. Use 'grind -- <target>' if the target's name")
	fmt.Fprintln(w, "collides with a subcommand.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, name := range []string{"profile", "doctor", "engine", "artifacts", "completion"} {
		if cmd, ok := c.commands[name]; ok {
			fmt.Fprintf(w, "  %-11s %s\n", name, cmd.Description())
		}
	}
	fmt.Fprintf(w, "  %-11s %s\n", "version", "Show version")
	fmt.Fprintf(w, "  %-11s %s\n", "help", "Show this help")
}
