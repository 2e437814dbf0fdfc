package artifacts

import (
	"os"
	"path/filepath"
	"testing"

	"grind/internal/instrument"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestPattern(t *testing.T) {
	if got := Pattern(instrument.ToolCallgrind); got != "callgrind.out.*" {
		t.Errorf("Pattern(callgrind) = %q", got)
	}
	if got := Pattern(instrument.ToolCachegrind); got != "cachegrind.out.*" {
		t.Errorf("Pattern(cachegrind) = %q", got)
	}
	if got := Pattern(""); got != "callgrind.out.*" {
		t.Errorf("Pattern(empty) = %q, want callgrind default", got)
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "callgrind.out.123"))
	touch(t, filepath.Join(dir, "callgrind.out.123.1"))
	touch(t, filepath.Join(dir, "cachegrind.out.5"))
	touch(t, filepath.Join(dir, "notes.txt"))
	if err := os.Mkdir(filepath.Join(dir, "callgrind.out.dir"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := List(dir, instrument.ToolCallgrind)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 callgrind artifacts, got %d: %+v", len(got), got)
	}
	// Sorted by name
	if filepath.Base(got[0].Name) != "callgrind.out.123" ||
		filepath.Base(got[1].Name) != "callgrind.out.123.1" {
		t.Errorf("unexpected order: %+v", got)
	}
	for _, a := range got {
		if a.Size != 1 {
			t.Errorf("size of %s = %d, want 1", a.Name, a.Size)
		}
		if a.ModTime.IsZero() {
			t.Errorf("mod time of %s should be set", a.Name)
		}
	}
}

func TestList_EmptyDir(t *testing.T) {
	got, err := List(t.TempDir(), instrument.ToolCallgrind)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no artifacts, got %+v", got)
	}
}

func TestList_MissingDir(t *testing.T) {
	if _, err := List(filepath.Join(t.TempDir(), "gone"), instrument.ToolCallgrind); err == nil {
		t.Error("expected error for unreadable directory")
	}
}
