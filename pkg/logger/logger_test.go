package logger

import (
	"io"
	"os"
	"strings"
	"testing"
	"time"
)

func TestLogger_VerboseSuppressesDebug(t *testing.T) {
	// Isolate HOME so no real log files are touched
	tmp := t.TempDir()
	oldHome := os.Getenv("HOME")
	_ = os.Setenv("HOME", tmp)
	defer os.Setenv("HOME", oldHome)

	Initialize(true, false)

	r, w, _ := os.Pipe()
	oldOut := defaultLogger.output
	defaultLogger.output = w
	Info("info message")
	Verbose("verbose message")
	Debug("debug message - should be suppressed")
	StartTimer("op1")
	time.Sleep(5 * time.Millisecond)
	EndTimer("op1")
	_ = w.Close()
	var b strings.Builder
	_, _ = io.Copy(&b, r)
	defaultLogger.output = oldOut
	out := b.String()

	if !strings.Contains(out, "INFO") || !strings.Contains(out, "VERBOSE") {
		t.Errorf("expected INFO and VERBOSE logs, got: %s", out)
	}
	if strings.Contains(out, "DEBUG") {
		t.Errorf("did not expect DEBUG logs at verbose level")
	}
}

func TestLogger_WarnAndError(t *testing.T) {
	Initialize(false, false)

	r, w, _ := os.Pipe()
	oldOut := defaultLogger.output
	defaultLogger.output = w
	Warnf("warn %s", "message")
	Errorf("error %s", "message")
	_ = w.Close()
	var b strings.Builder
	_, _ = io.Copy(&b, r)
	defaultLogger.output = oldOut
	out := b.String()

	if !strings.Contains(out, "WARN") || !strings.Contains(out, "ERROR") {
		t.Errorf("expected WARN and ERROR logs, got: %s", out)
	}
}

func TestLogger_UninitializedIsSafe(t *testing.T) {
	old := defaultLogger
	defaultLogger = nil
	defer func() { defaultLogger = old }()

	// None of these should panic without initialization
	Info("x")
	Verbose("x")
	Debug("x")
	Warn("x")
	Error("x")
	StartTimer("x")
	EndTimer("x")
	Close()
}
