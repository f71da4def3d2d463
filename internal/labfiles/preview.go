package labfiles

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dslipak/pdf" // Pure Go PDF text extractor
)

// MaxPreviewSize - 50MB hard limit for text extraction
const MaxPreviewSize = 50 * 1024 * 1024

// PreviewText extracts the plain text of a PDF lab report so it can be
// shown next to the attachment. Non-PDF attachments (scanned images) have
// no extractable text and return "" without error.
func PreviewText(path string) (string, error) {
	if !IsPDF(path) {
		return "", nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("file not found: %w", err)
	}
	if info.Size() > MaxPreviewSize {
		return "", fmt.Errorf("file exceeds size limit of 50MB")
	}

	r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	b, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}

	var buf bytes.Buffer
	buf.ReadFrom(b)
	return buf.String(), nil
}
