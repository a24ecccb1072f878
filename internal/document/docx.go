package document

import (
	"fmt"
	"os"

	"code.sajari.com/docconv"
)

// docxExtractor reads paragraphs in document order, newline-separated.
// Legacy .doc files also land here (see ExtractorFor) and fail when the
// reader rejects the non-zip container.
type docxExtractor struct{}

func (docxExtractor) Extract(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	body, _, err := docconv.ConvertDocx(f)
	if err != nil {
		return "", fmt.Errorf("convert docx: %w", err)
	}
	return body, nil
}
