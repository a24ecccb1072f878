package document

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfExtractor walks pages in order and concatenates their text with no
// separator between pages.
type pdfExtractor struct{}

func (pdfExtractor) Extract(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extract pdf page %d: %w", i, err)
		}
		b.WriteString(text)
	}
	return b.String(), nil
}
