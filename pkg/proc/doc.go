// Package proc provides process delegation utilities for grind: mockable
// command construction, stream inheritance, and exit-status mirroring.
// Any tool that wraps another command-line tool needs exactly this
// delegate-and-mirror pattern, so it lives here independent of the
// profiling semantics.
package proc
