// Package cli: Central error handling for the CLI
// Provides consistent error presentation and exit-code mapping. Exit-code
// fidelity matters here: target statuses are mirrored verbatim elsewhere,
// so harness errors must use their own documented codes.
package cli

import (
	"fmt"
	"os"
	"strings"

	e "grind/pkg/errors"
	"grind/pkg/terminal"
)

// ErrorHandler handles errors consistently across the CLI
type ErrorHandler struct {
	verbose bool
	debug   bool
}

// NewErrorHandler creates an error handler
func NewErrorHandler(verbose, debug bool) *ErrorHandler {
	return &ErrorHandler{
		verbose: verbose,
		debug:   debug,
	}
}

// Handle processes an error, displays it on stderr, and exits with the
// error's class code. Never retries anything: profiling runs are expensive
// and re-running automatically could mask real failures or duplicate
// artifacts.
func (h *ErrorHandler) Handle(err error) {
	if err == nil {
		return
	}

	grindErr, ok := err.(*e.GrindError)
	if !ok {
		grindErr = e.Wrap(err, e.ErrUnknown, "An unexpected error occurred")
	}
	h.display(grindErr)
	os.Exit(grindErr.ExitCode())
}

func (h *ErrorHandler) display(err *e.GrindError) {
	w := os.Stderr
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s%s%s\n", h.getErrorIcon(err.Code), terminal.Bold, err.Message, terminal.Reset)

	if err.Details != "" && h.verbose {
		fmt.Fprintf(w, "\n%s%s%s\n", terminal.Dim, err.Details, terminal.Reset)
	}

	if len(err.Context) > 0 && h.verbose {
		fmt.Fprintln(w, "\nContext:")
		for k, v := range err.Context {
			fmt.Fprintf(w, "  %s: %s\n", k, v)
		}
	}

	if err.Suggestion != "" {
		fmt.Fprintf(w, "\n💡 %s%s%s\n", terminal.Yellow, err.Suggestion, terminal.Reset)
	}

	if err.Cause != nil {
		// The underlying OS error text is the diagnosis; always show it.
		fmt.Fprintf(w, "\n%sCaused by:%s\n", terminal.Dim, terminal.Reset)
		h.displayCauseChain(err.Cause, 1)
	}

	if h.debug && len(err.Stack) > 0 {
		fmt.Fprintf(w, "\n%sStack trace:%s\n", terminal.Dim, terminal.Reset)
		for _, f := range err.Stack {
			fmt.Fprintf(w, "  %s\n", h.formatStackFrame(f))
		}
	}

	fmt.Fprintln(w)
	if !h.verbose {
		fmt.Fprintf(w, "%sRun with --verbose for more details%s\n", terminal.Dim, terminal.Reset)
	}
}

func (h *ErrorHandler) displayCauseChain(err error, depth int) {
	w := os.Stderr
	indent := strings.Repeat("  ", depth)
	if grindErr, ok := err.(*e.GrindError); ok {
		fmt.Fprintf(w, "%s• %s\n", indent, grindErr.Message)
		if grindErr.Cause != nil {
			h.displayCauseChain(grindErr.Cause, depth+1)
		}
		return
	}
	fmt.Fprintf(w, "%s• %s\n", indent, err.Error())
}

func (h *ErrorHandler) formatStackFrame(frame e.StackFrame) string {
	file := frame.File
	if idx := strings.LastIndex(file, "/grind/"); idx >= 0 {
		file = "..." + file[idx:]
	}
	fn := frame.Function
	if idx := strings.LastIndex(fn, "."); idx >= 0 {
		fn = fn[idx+1:]
	}
	return fmt.Sprintf("%s:%d %s()", file, frame.Line, fn)
}

func (h *ErrorHandler) getErrorIcon(code e.ErrorCode) string {
	icons := map[e.ErrorCode]string{
		e.ErrUsage:               "📋",
		e.ErrEngineNotFound:      "🔍",
		e.ErrEngineNotResponding: "💤",
		e.ErrLaunchFailed:        "🚫",
		e.ErrWorkdirNotWritable:  "💾",
		e.ErrInvalidConfig:       "⚙️",
		e.ErrUnknown:             "❓",
	}
	if ic, ok := icons[code]; ok {
		return ic
	}
	return "❌"
}
