package extractor

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"smartstudy/internal/domain"

	"github.com/ledongthuc/pdf"
)

var spaceRuns = regexp.MustCompile(`[ \t]{2,}`)

// Extract turns a PDF byte stream into plain text. The underlying parser's
// failure (encrypted, corrupt) is wrapped in an EXTRACTION_ERROR and
// surfaced verbatim to the caller.
func Extract(pdfBytes []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(pdfBytes), int64(len(pdfBytes)))
	if err != nil {
		return "", domain.NewExtractionError(fmt.Errorf("pdf reader: %w", err))
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", domain.NewExtractionError(fmt.Errorf("pdf plaintext: %w", err))
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		return "", domain.NewExtractionError(fmt.Errorf("pdf read: %w", err))
	}
	return collapseWhitespace(string(b)), nil
}

func collapseWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(spaceRuns.ReplaceAllString(line, " "), " \t")
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
