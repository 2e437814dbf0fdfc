package proc

import (
	"fmt"
	"strings"
)

// Quote quotes a string for shell-safe display. Used when logging the
// child argument vector; the vector itself is always passed to exec
// directly and never through a shell.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$&|;<>()*?[]#~") {
		return s
	}
	return fmt.Sprintf("'%s'", strings.ReplaceAll(s, "'", "'\\''"))
}

// JoinArgs joins an argument vector for shell-safe display.
func JoinArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = Quote(arg)
	}
	return strings.Join(quoted, " ")
}
