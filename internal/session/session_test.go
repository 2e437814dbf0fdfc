package session

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"syscall"
	"testing"

	"grind/internal/instrument"
	e "grind/pkg/errors"
)

// fakeEngine writes a shell script that stands in for the real engine.
// The script ignores the instrumentation flags it receives, like any
// argv-consuming binary would.
func fakeEngine(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNew_EmptyRequest(t *testing.T) {
	_, err := New("/usr/bin/valgrind", instrument.Default(), nil)
	var ge *e.GrindError
	if !errors.As(err, &ge) || ge.Code != e.ErrUsage {
		t.Fatalf("expected USAGE error, got %v", err)
	}
}

func TestArgv_Order(t *testing.T) {
	s, err := New("/usr/bin/valgrind", instrument.Default(), []string{"echo", "hello"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"/usr/bin/valgrind",
		"--tool=callgrind",
		"--dump-instr=yes",
		"--collect-jumps=yes",
		"--cache-sim=yes",
		"echo", "hello",
	}
	if got := s.Argv(); !reflect.DeepEqual(got, want) {
		t.Errorf("Argv() = %v, want %v", got, want)
	}
}

func TestArgv_VerbatimPassthrough(t *testing.T) {
	// Target flags that look like engine or harness flags must pass
	// through untouched, in original order.
	request := []string{"./bench", "--cache-sim=no", "--verbose", "--", "-v"}
	s, err := New("/usr/bin/valgrind", instrument.Default(), request)
	if err != nil {
		t.Fatal(err)
	}
	got := s.Argv()
	if !reflect.DeepEqual(got[5:], request) {
		t.Errorf("request tail = %v, want %v", got[5:], request)
	}
}

func TestNew_RequestIsCopied(t *testing.T) {
	request := []string{"echo", "hello"}
	s, err := New("/usr/bin/valgrind", instrument.Default(), request)
	if err != nil {
		t.Fatal(err)
	}
	request[1] = "mutated"
	if s.Argv()[6] != "hello" {
		t.Error("session must own an immutable copy of the request")
	}
}

func TestTag_Deterministic(t *testing.T) {
	a1, _ := New("/usr/bin/valgrind", instrument.Default(), []string{"echo", "hello"})
	a2, _ := New("/usr/bin/valgrind", instrument.Default(), []string{"echo", "hello"})
	b, _ := New("/usr/bin/valgrind", instrument.Default(), []string{"echo", "world"})
	if a1.Tag() != a2.Tag() {
		t.Error("same argv must produce the same tag")
	}
	if a1.Tag() == b.Tag() {
		t.Error("different argv should produce different tags")
	}
	if len(a1.Tag()) != 12 {
		t.Errorf("tag length = %d, want 12", len(a1.Tag()))
	}
}

func TestRun_ExitCodePropagation(t *testing.T) {
	eng := fakeEngine(t, "exit 7")
	s, err := New(eng, instrument.Default(), []string{"ignored"})
	if err != nil {
		t.Fatal(err)
	}
	st, err := s.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if st.Code != 7 || st.Signaled() {
		t.Errorf("status = %+v, want code 7", st)
	}
	if s.State() != StateTerminated {
		t.Errorf("state = %v, want terminated", s.State())
	}
}

func TestRun_ZeroExit(t *testing.T) {
	eng := fakeEngine(t, "exit 0")
	s, _ := New(eng, instrument.Default(), []string{"ignored"})
	st, err := s.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if st.Code != 0 || st.Signaled() {
		t.Errorf("status = %+v, want clean zero exit", st)
	}
}

func TestRun_SignalTermination(t *testing.T) {
	eng := fakeEngine(t, "kill -TERM $$")
	s, _ := New(eng, instrument.Default(), []string{"ignored"})
	st, err := s.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !st.Signaled() || st.Signal != syscall.SIGTERM {
		t.Errorf("status = %+v, want SIGTERM termination", st)
	}
	if st.Code != 128+int(syscall.SIGTERM) {
		t.Errorf("fallback code = %d, want %d", st.Code, 128+int(syscall.SIGTERM))
	}
}

func TestRun_LaunchFailure(t *testing.T) {
	s, _ := New(filepath.Join(t.TempDir(), "missing-engine"), instrument.Default(), []string{"ignored"})
	_, err := s.Run()
	var ge *e.GrindError
	if !errors.As(err, &ge) || ge.Code != e.ErrLaunchFailed {
		t.Fatalf("expected LAUNCH_FAILED, got %v", err)
	}
	if ge.Cause == nil {
		t.Error("launch failure should carry the underlying OS error")
	}
	if ge.ExitCode() != e.ExitLaunchFailed {
		t.Errorf("exit code = %d, want %d", ge.ExitCode(), e.ExitLaunchFailed)
	}
}

func TestRun_SingleUse(t *testing.T) {
	eng := fakeEngine(t, "exit 0")
	s, _ := New(eng, instrument.Default(), []string{"ignored"})
	if _, err := s.Run(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Run(); err == nil {
		t.Error("second Run on the same session must fail")
	}
}

func TestRun_ArgvReachesChild(t *testing.T) {
	// The fake engine prints its argv to a file; verify flags precede the
	// request with nothing dropped.
	out := filepath.Join(t.TempDir(), "argv.txt")
	eng := fakeEngine(t, `printf '%s\n' "$@" > `+out)
	s, _ := New(eng, instrument.Default(), []string{"echo", "hello world"})
	if _, err := s.Run(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := "--tool=callgrind\n--dump-instr=yes\n--collect-jumps=yes\n--cache-sim=yes\necho\nhello world\n"
	if string(b) != want {
		t.Errorf("child argv = %q, want %q", b, want)
	}
}
