package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestAllowedFilename(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"resume.pdf", true},
		{"resume.PDF", true},
		{"resume.docx", true},
		{"resume.doc", true},
		{"resume.txt", false},
		{"resume", false},
		{"archive.tar.gz", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := AllowedFilename(tc.name); got != tc.want {
			t.Fatalf("AllowedFilename(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestExtractorFor(t *testing.T) {
	for _, name := range []string{"cv.pdf", "cv.docx", "cv.doc"} {
		if _, err := ExtractorFor(name); err != nil {
			t.Fatalf("ExtractorFor(%q): unexpected error %v", name, err)
		}
	}

	if _, err := ExtractorFor("cv.txt"); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestParseUpload_RejectsBeforeWriting(t *testing.T) {
	dir := t.TempDir()
	p := NewParser(dir)

	_, err := p.ParseUpload(uuid.New(), "notes.txt", strings.NewReader("plain text"))
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}

	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("read dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Fatalf("rejected upload must not be written, found %d entries", len(entries))
	}
}

func TestParseUpload_MalformedDocxFails(t *testing.T) {
	p := NewParser(t.TempDir())

	// Not a zip container, so the docx reader must reject it.
	_, err := p.ParseUpload(uuid.New(), "resume.docx", strings.NewReader("garbage bytes"))
	if err == nil {
		t.Fatalf("expected extraction error for malformed docx")
	}
}

func TestParseUpload_LegacyDocRoutesToDocxReader(t *testing.T) {
	p := NewParser(t.TempDir())

	// A real legacy .doc body is not zip-based; routing sends it through
	// the docx reader, which fails.
	_, err := p.ParseUpload(uuid.New(), "resume.doc", strings.NewReader("\xd0\xcf\x11\xe0 legacy"))
	if err == nil {
		t.Fatalf("expected extraction error for legacy .doc body")
	}
	if errors.Is(err, ErrUnsupportedType) {
		t.Fatalf(".doc must pass validation and fail at extraction, got %v", err)
	}
}

func TestParseUpload_StripsDirectoryComponents(t *testing.T) {
	dir := t.TempDir()
	p := NewParser(dir)

	id := uuid.New()
	_, err := p.ParseUpload(id, "../../escape.docx", strings.NewReader("garbage"))
	// Extraction fails on garbage, but the write target must stay inside
	// the uploads dir.
	if err == nil {
		t.Fatalf("expected extraction error")
	}

	if _, statErr := os.Stat(filepath.Join(dir, id.String()+"_escape.docx")); statErr != nil {
		t.Fatalf("expected upload written under uploads dir: %v", statErr)
	}
}
