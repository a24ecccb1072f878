package document

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Parser persists an uploaded document under the uploads directory and
// extracts its text with the format-appropriate extractor.
type Parser struct {
	uploadsDir string
}

type Parsed struct {
	Filename string
	Path     string
	Size     int64
	Text     string
}

func NewParser(uploadsDir string) *Parser {
	return &Parser{uploadsDir: uploadsDir}
}

// ParseUpload validates the filename, writes the stream to
// "<uploadsDir>/<fileID>_<basename>", and returns the extracted text.
// Rejected extensions surface ErrUnsupportedType before anything is
// written; extraction failures propagate from the underlying reader.
func (p *Parser) ParseUpload(fileID uuid.UUID, filename string, r io.Reader) (Parsed, error) {
	filename = filepath.Base(filename)
	if !AllowedFilename(filename) {
		return Parsed{}, ErrUnsupportedType
	}

	ext, err := ExtractorFor(filename)
	if err != nil {
		return Parsed{}, err
	}

	if err := os.MkdirAll(p.uploadsDir, 0o755); err != nil {
		return Parsed{}, fmt.Errorf("create uploads dir: %w", err)
	}

	path := filepath.Join(p.uploadsDir, fileID.String()+"_"+filename)
	f, err := os.Create(path)
	if err != nil {
		return Parsed{}, fmt.Errorf("create upload file: %w", err)
	}

	size, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return Parsed{}, fmt.Errorf("save upload: %w", err)
	}

	text, err := ext.Extract(path)
	if err != nil {
		return Parsed{}, err
	}

	return Parsed{
		Filename: filename,
		Path:     path,
		Size:     size,
		Text:     text,
	}, nil
}
