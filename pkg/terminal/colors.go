// Package terminal provides ANSI color helpers for grind's own output.
// Everything grind prints on its own behalf goes to stderr; the target's
// streams are never touched, so color handling lives here and nowhere else.
package terminal

import (
	"fmt"
	"os"
)

// Color codes for terminal output
const (
	Reset  = "\033[0m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	Bold   = "\033[1m"
)

// IsTerminal reports whether stderr is attached to a terminal.
func IsTerminal() bool {
	fileInfo, _ := os.Stderr.Stat()
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// Colorize returns text with color codes if the terminal supports them.
func Colorize(color, text string) string {
	if !IsTerminal() || os.Getenv("NO_COLOR") != "" {
		return text
	}
	return fmt.Sprintf("%s%s%s", color, text, Reset)
}

// Success returns green text
func Success(text string) string {
	return Colorize(Green, text)
}

// Error returns red text
func Error(text string) string {
	return Colorize(Red, text)
}

// Warning returns yellow text
func Warning(text string) string {
	return Colorize(Yellow, text)
}

// BoldText returns bold text
func BoldText(text string) string {
	if !IsTerminal() || os.Getenv("NO_COLOR") != "" {
		return text
	}
	return fmt.Sprintf("%s%s%s", Bold, text, Reset)
}
