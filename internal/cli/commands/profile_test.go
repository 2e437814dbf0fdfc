package commands

import (
	"errors"
	"os"
	"reflect"
	"testing"

	e "grind/pkg/errors"
)

func TestProfile_NoArgs(t *testing.T) {
	err := Profile(nil)
	var ge *e.GrindError
	if !errors.As(err, &ge) || ge.Code != e.ErrUsage {
		t.Fatalf("expected USAGE error, got %v", err)
	}
}

func TestNewSession_ArgvAssembly(t *testing.T) {
	oldEnv := os.Getenv("GRIND_ENGINE")
	defer os.Setenv("GRIND_ENGINE", oldEnv)
	os.Setenv("GRIND_ENGINE", "/bin/echo")

	sess, err := newSession([]string{"echo", "hello"})
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}
	want := []string{
		"/bin/echo",
		"--tool=callgrind",
		"--dump-instr=yes",
		"--collect-jumps=yes",
		"--cache-sim=yes",
		"echo", "hello",
	}
	if got := sess.Argv(); !reflect.DeepEqual(got, want) {
		t.Errorf("Argv() = %v, want %v", got, want)
	}
}

func TestNewSession_EngineMissingBeforeSpawn(t *testing.T) {
	oldEnv := os.Getenv("GRIND_ENGINE")
	defer os.Setenv("GRIND_ENGINE", oldEnv)
	os.Unsetenv("GRIND_ENGINE")

	// Empty PATH and isolated HOME: nothing can resolve, so the session
	// must never be constructed and the target never attempted.
	oldPath := os.Getenv("PATH")
	oldHome := os.Getenv("HOME")
	os.Setenv("PATH", t.TempDir())
	os.Setenv("HOME", t.TempDir())
	defer func() {
		os.Setenv("PATH", oldPath)
		os.Setenv("HOME", oldHome)
	}()

	_, err := newSession([]string{"echo", "hello"})
	var ge *e.GrindError
	if !errors.As(err, &ge) || ge.Code != e.ErrEngineNotFound {
		t.Fatalf("expected ENGINE_NOT_FOUND, got %v", err)
	}
}
