package extract

import (
	"testing"

	"github.com/jung-kurt/gofpdf"
)

// writeTestPDF generates a real PDF at path with one page per entry in
// pageTexts. An empty entry produces a page with no text content.
func writeTestPDF(t *testing.T, path string, pageTexts ...string) {
	t.Helper()

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	for _, text := range pageTexts {
		doc.AddPage()
		if text != "" {
			doc.Cell(40, 10, text)
		}
	}
	if err := doc.OutputFileAndClose(path); err != nil {
		t.Fatalf("generating test PDF: %v", err)
	}
}
