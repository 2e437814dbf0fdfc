package terminal

import (
	"os"
	"testing"
)

func TestColorize_NoColorEnv(t *testing.T) {
	old := os.Getenv("NO_COLOR")
	os.Setenv("NO_COLOR", "1")
	defer os.Setenv("NO_COLOR", old)

	txt := "hello"
	if got := Colorize(Red, txt); got != txt {
		t.Errorf("expected no colorization when NO_COLOR=1; got %q", got)
	}
	if got := BoldText(txt); got != txt {
		t.Errorf("expected no bold when NO_COLOR=1; got %q", got)
	}
}

func TestHelpers_NoColorEnv(t *testing.T) {
	old := os.Getenv("NO_COLOR")
	os.Setenv("NO_COLOR", "1")
	defer os.Setenv("NO_COLOR", old)

	for _, fn := range []func(string) string{Success, Error, Warning} {
		if got := fn("ok"); got != "ok" {
			t.Errorf("expected plain text when NO_COLOR=1; got %q", got)
		}
	}
}
