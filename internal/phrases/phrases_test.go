package phrases

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/ViNN280801/TelegramBot/internal/files"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	fp := filepath.Join(t.TempDir(), "phrases.txt")
	if err := os.WriteFile(fp, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return fp
}

func TestLoadKeepsOrderAndEmptyLines(t *testing.T) {
	fp := writeFile(t, "Hello\nWorld\n\n")

	got, err := Load(fp)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := Phrases{"Hello", "World", ""}
	if !slices.Equal(got, want) {
		t.Fatalf("want %q, got %q", want, got)
	}
	if got.Len() != 3 {
		t.Fatalf("want length 3, got %d", got.Len())
	}
}

func TestLoadTrimsOnlyLineTerminators(t *testing.T) {
	fp := writeFile(t, "  padded  \r\nlast line without newline")

	got, err := Load(fp)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := Phrases{"  padded  ", "last line without newline"}
	if !slices.Equal(got, want) {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	fp := writeFile(t, "")

	got, err := Load(fp)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || got.Len() != 0 {
		t.Fatalf("want empty non-nil collection, got %#v", got)
	}
}

func TestLoadUnicode(t *testing.T) {
	fp := writeFile(t, "Фраза дня\nКартинка\n")

	got, err := Load(fp)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if first, _ := got.At(1); first != "Фраза дня" {
		t.Fatalf("unexpected first phrase %q", first)
	}
}

func TestLoadPropagatesValidationErrors(t *testing.T) {
	if _, err := Load(""); !errors.Is(err, files.ErrInvalidPath) {
		t.Fatalf("want ErrInvalidPath, got %v", err)
	}

	if _, err := Load(t.TempDir()); !errors.Is(err, files.ErrInvalidPath) {
		t.Fatalf("want ErrInvalidPath for directory, got %v", err)
	}
}

func TestReadFailureDiscardsPartialResult(t *testing.T) {
	r := io.MultiReader(strings.NewReader("one\ntwo\n"), iotest.ErrReader(errors.New("disk gone")))

	got, err := Read(r)
	if !errors.Is(err, ErrReadFailure) {
		t.Fatalf("want ErrReadFailure, got %v", err)
	}
	if got != nil {
		t.Fatalf("want no phrases on failure, got %q", got)
	}
}

func TestLoadReadFailureReturnsEmptyCollection(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	t.Cleanup(zap.ReplaceGlobals(zap.New(core)))

	// a line longer than the scanner limit makes the read fail after validation passed
	fp := writeFile(t, "short\n"+strings.Repeat("x", maxLineSize+1)+"\n")

	got, err := Load(fp)
	if err != nil {
		t.Fatalf("read failure must not be returned, got %v", err)
	}
	if got == nil || got.Len() != 0 {
		t.Fatalf("want empty collection, got %d phrases", got.Len())
	}

	errs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	if len(errs) != 1 {
		t.Fatalf("want one error record, got %d", len(errs))
	}
}

func TestAt(t *testing.T) {
	p := Phrases{"a", "b"}

	if v, ok := p.At(1); !ok || v != "a" {
		t.Fatalf("At(1) = %q %v", v, ok)
	}
	if v, ok := p.At(2); !ok || v != "b" {
		t.Fatalf("At(2) = %q %v", v, ok)
	}
	for _, idx := range []int{0, 3, -1} {
		if _, ok := p.At(idx); ok {
			t.Fatalf("At(%d) must be out of range", idx)
		}
	}
}

func TestSaveThenLoad(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "out.txt")
	want := Phrases{"first", "", "третья"}

	if err := Save(fp, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := os.ReadFile(fp)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "first\n\nтретья\n" {
		t.Fatalf("unexpected file content %q", raw)
	}

	got, err := Load(fp)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !slices.Equal(got, want) {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestSaveToMissingDirectory(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "missing", "out.txt")

	if err := Save(fp, Phrases{"x"}); err == nil {
		t.Fatal("want error for missing directory")
	}
}
