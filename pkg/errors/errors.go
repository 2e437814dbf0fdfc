// Package errors provides enhanced error types with context and exit-code
// metadata for grind. These errors carry suggestions, a context map, and
// lightweight stack traces to improve user diagnostics. Profiling runs are
// expensive and a failed run is never retried, so every error here is a
// terminal condition; the suggestion field is the only remediation channel.
package errors

import (
	"runtime"
	"strings"
)

// ErrorCode categorizes errors for handling
type ErrorCode string

const (
	// Invocation errors
	ErrUsage ErrorCode = "USAGE"

	// Engine errors
	ErrEngineNotFound      ErrorCode = "ENGINE_NOT_FOUND"
	ErrEngineNotResponding ErrorCode = "ENGINE_NOT_RESPONDING"

	// Session errors
	ErrLaunchFailed ErrorCode = "LAUNCH_FAILED"

	// Environment errors
	ErrWorkdirNotWritable ErrorCode = "WORKDIR_NOT_WRITABLE"

	// Configuration errors
	ErrInvalidConfig ErrorCode = "INVALID_CONFIG"

	// Unknown errors
	ErrUnknown ErrorCode = "UNKNOWN"
)

// Exit codes by error class. Target exit statuses occupy [0,255] and are
// mirrored verbatim, so harness failures use the shell's reserved
// conventions: 2 for usage, 126 for a spawn that could not execute, 127 for
// a binary that could not be found.
const (
	ExitUsage          = 2
	ExitLaunchFailed   = 126
	ExitEngineNotFound = 127
	ExitFailure        = 1
)

// StackFrame represents a single stack frame
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// GrindError is the base error type with rich context
type GrindError struct {
	Code       ErrorCode         `json:"code"`
	Message    string            `json:"message"`
	Details    string            `json:"details,omitempty"`
	Suggestion string            `json:"suggestion,omitempty"`
	Cause      error             `json:"-"`
	Context    map[string]string `json:"context,omitempty"`
	Stack      []StackFrame      `json:"stack,omitempty"`
}

// Error implements the error interface
func (e *GrindError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}
	if e.Cause != nil {
		sb.WriteString("\nCaused by: ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

// Unwrap exposes the cause to errors.Is/As chains.
func (e *GrindError) Unwrap() error {
	return e.Cause
}

// ExitCode maps the error class to the harness exit status.
func (e *GrindError) ExitCode() int {
	switch e.Code {
	case ErrUsage:
		return ExitUsage
	case ErrEngineNotFound:
		return ExitEngineNotFound
	case ErrLaunchFailed:
		return ExitLaunchFailed
	default:
		return ExitFailure
	}
}

// WithSuggestion adds a suggestion for fixing the error
func (e *GrindError) WithSuggestion(suggestion string) *GrindError {
	e.Suggestion = suggestion
	return e
}

// WithContext adds contextual information
func (e *GrindError) WithContext(key, value string) *GrindError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// WithCause wraps another error
func (e *GrindError) WithCause(cause error) *GrindError {
	e.Cause = cause
	return e
}

// WithDetails adds detailed information
func (e *GrindError) WithDetails(details string) *GrindError {
	e.Details = details
	return e
}

// New creates a new GrindError
func New(code ErrorCode, message string) *GrindError {
	err := &GrindError{
		Code:    code,
		Message: message,
		Context: make(map[string]string),
	}
	err.captureStack()
	err.Suggestion = getDefaultSuggestion(code)
	return err
}

// Wrap wraps a standard error with GrindError
func Wrap(err error, code ErrorCode, message string) *GrindError {
	if err == nil {
		return nil
	}
	if grindErr, ok := err.(*GrindError); ok {
		// Prepend message context
		if message != "" {
			grindErr.Message = message + ": " + grindErr.Message
		}
		return grindErr
	}
	return New(code, message).WithCause(err)
}

// captureStack captures the current stack trace
func (e *GrindError) captureStack() {
	const maxFrames = 10
	pc := make([]uintptr, maxFrames)
	n := runtime.Callers(3, pc) // Skip runtime.Callers, captureStack, New/Wrap
	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()
		if strings.Contains(frame.File, "runtime/") || strings.Contains(frame.File, "testing/") {
			if !more {
				break
			}
			continue
		}
		e.Stack = append(e.Stack, StackFrame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})
		if !more {
			break
		}
	}
}

// getDefaultSuggestion provides default fix suggestions
func getDefaultSuggestion(code ErrorCode) string {
	suggestions := map[ErrorCode]string{
		ErrUsage:               "Usage: grind <target-command> [target-args...]",
		ErrEngineNotFound:      "Install valgrind: apt install valgrind (or brew install valgrind)",
		ErrEngineNotResponding: "Check the engine binary: valgrind --version",
		ErrLaunchFailed:        "Check that the engine binary is executable and the target exists",
		ErrWorkdirNotWritable:  "The engine writes its output files to the working directory; cd somewhere writable",
		ErrInvalidConfig:       "Fix or remove ~/.grind.json",
	}
	if s, ok := suggestions[code]; ok {
		return s
	}
	return "Run 'grind doctor' for diagnostics"
}
