package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"grind/pkg/terminal"
	"grind/pkg/version"
)

// panicExitCode is EX_SOFTWARE. A harness crash must never be mistaken for
// a target exit status or one of the documented harness error codes.
const panicExitCode = 70

// PanicHandler recovers from panics and shows friendly errors
type PanicHandler struct{}

// Recover catches panics and converts them to friendly output
func (p *PanicHandler) Recover() {
	if r := recover(); r != nil {
		p.handlePanic(r)
	}
}

func (p *PanicHandler) handlePanic(r interface{}) {
	var message string
	switch v := r.(type) {
	case string:
		message = v
	case error:
		message = v.Error()
	default:
		message = fmt.Sprintf("%v", r)
	}

	stack := string(debug.Stack())
	crashReport := p.saveCrashReport(message, stack)

	w := os.Stderr
	fmt.Fprintln(w)
	fmt.Fprintf(w, "💥 %s%sgrind crashed unexpectedly%s\n", terminal.Red, terminal.Bold, terminal.Reset)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Error: %s\n", message)
	if crashReport != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "A crash report has been saved to:\n%s\n", crashReport)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Please include the crash report and the command you ran when reporting this.")

	os.Exit(panicExitCode)
}

func (p *PanicHandler) saveCrashReport(message, stack string) string {
	crashDir := os.ExpandEnv("$HOME/.grind/crashes")
	if err := os.MkdirAll(crashDir, 0o755); err != nil {
		return ""
	}
	ts := time.Now().Format("2006-01-02-15-04-05")
	fp := filepath.Join(crashDir, fmt.Sprintf("crash-%s.txt", ts))
	report := fmt.Sprintf(`grind Crash Report
==================
Time: %s
Version: %s
OS: %s
Arch: %s

Error:
%s

Stack Trace:
%s

Environment:
%s
`, time.Now().Format(time.RFC3339), version.Version, runtime.GOOS, runtime.GOARCH, message, stack, p.getEnvironmentInfo())
	if err := os.WriteFile(fp, []byte(report), 0o644); err != nil {
		return ""
	}
	return fp
}

func (p *PanicHandler) getEnvironmentInfo() string {
	var info []string
	for _, key := range []string{"GRIND_ENGINE", "GRIND_DEBUG", "GRIND_VERBOSE", "PATH"} {
		if v := os.Getenv(key); v != "" {
			info = append(info, fmt.Sprintf("%s=%s", key, v))
		}
	}
	return strings.Join(info, "\n")
}
