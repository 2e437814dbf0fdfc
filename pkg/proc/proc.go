package proc

import (
	"os"
	"os/exec"
)

// Commander provides an interface for command construction that can be
// mocked in tests. This enables dependency injection and keeps the
// session logic testable without spawning real engines.
type Commander interface {
	Command(name string, args ...string) *exec.Cmd
}

// DefaultCommander implements Commander using the standard exec.Command.
type DefaultCommander struct{}

// Command creates a new exec.Cmd using the standard library exec.Command.
func (DefaultCommander) Command(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...)
}

// Global instance that can be overridden in tests
var Default Commander = DefaultCommander{}

// Command is a convenience function that delegates to the global Commander
// instance. Tests can override Default to provide mock implementations.
func Command(name string, args ...string) *exec.Cmd {
	return Default.Command(name, args...)
}

// Inherit wires the command to the parent's standard streams. The working
// directory and environment are already inherited by exec.Cmd when left
// unset; streams are the only part that needs explicit plumbing. No
// buffering or filtering happens anywhere: the child writes directly to
// the same file descriptors the user sees, in OS interleaving order.
func Inherit(cmd *exec.Cmd) {
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
}
