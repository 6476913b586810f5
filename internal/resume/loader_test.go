package resume

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadInlineText(t *testing.T) {
	t.Parallel()

	text, err := Load(Source{Text: "I use Python and React daily"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if text != "I use Python and React daily" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestLoadFromTextFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "resume.txt")
	if err := os.WriteFile(path, []byte("Senior Go engineer.\nDocker, Kubernetes."), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	text, err := Load(Source{File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(text, "Kubernetes") {
		t.Fatalf("expected file content, got %q", text)
	}
}

func TestLoadFilePrecedesInlineText(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "resume.txt")
	if err := os.WriteFile(path, []byte("from file"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	text, err := Load(Source{Text: "inline", File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if text != "from file" {
		t.Fatalf("expected file to take precedence, got %q", text)
	}
}

// An empty resume file is a valid input: it extracts no skills but must not
// fail the run.
func TestLoadEmptyFileIsValid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "resume.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	text, err := Load(Source{File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if text != "" {
		t.Fatalf("expected empty text, got %q", text)
	}
}

func TestLoadNoSource(t *testing.T) {
	t.Parallel()

	if _, err := Load(Source{}); !errors.Is(err, ErrNoSource) {
		t.Fatalf("expected ErrNoSource, got %v", err)
	}

	if _, err := Load(Source{Text: "   "}); !errors.Is(err, ErrNoSource) {
		t.Fatalf("expected ErrNoSource for blank text, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(Source{File: filepath.Join(t.TempDir(), "missing.txt")})
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadUnsupportedFileType(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "resume.odt")
	if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := Load(Source{File: path})
	if err == nil || !strings.Contains(err.Error(), "unsupported resume file type") {
		t.Fatalf("expected unsupported file type error, got %v", err)
	}
}

func TestLoadCorruptPDF(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "resume.pdf")
	if err := os.WriteFile(path, []byte("definitely not a pdf"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := Load(Source{File: path}); err == nil {
		t.Fatalf("expected error for corrupt pdf")
	}
}
