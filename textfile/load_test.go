package textfile

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bselect")
	defer teardown()

	name := filepath.Join(t.TempDir(), "names.txt")
	content := "Alice\n  Bob  \n\n\tAnna\r\nAlex"
	if err := os.WriteFile(name, []byte(content), 0o600); err != nil {
		t.Fatalf("cannot write test file: %v", err)
	}
	seq, err := Lines(name)
	if err != nil {
		t.Fatalf("Lines failed: %v", err)
	}
	want := []string{"Alice", "Bob", "Anna", "Alex"}
	if got := slices.Collect(seq); !slices.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := slices.Collect(seq); !slices.Equal(got, want) {
		t.Fatalf("second range over lines returned %q", got)
	}
}

func TestLinesRejectsDirectory(t *testing.T) {
	_, err := Lines(t.TempDir())
	if !errors.Is(err, ErrNotRegular) {
		t.Fatalf("expected ErrNotRegular, got %v", err)
	}
}

func TestLinesMissingFile(t *testing.T) {
	_, err := Lines(filepath.Join(t.TempDir(), "does-not-exist"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestReadLinesRejectsInvalidUTF8(t *testing.T) {
	_, err := ReadLines(strings.NewReader("ok\nbad \xff line\n"))
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}
