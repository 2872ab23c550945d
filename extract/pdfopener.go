package extract

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// PDFOpener opens documents with github.com/ledongthuc/pdf (pure Go,
// no CGO).
type PDFOpener struct{}

func NewPDFOpener() *PDFOpener { return &PDFOpener{} }

func (o *PDFOpener) Open(path string) (Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	return &pdfDocument{f: f, reader: reader}, nil
}

type pdfDocument struct {
	f      *os.File
	reader *pdf.Reader
}

func (d *pdfDocument) NumPages() int { return d.reader.NumPage() }

func (d *pdfDocument) PageText(pageNum int) (string, error) {
	page := d.reader.Page(pageNum)
	if page.V.IsNull() {
		return "", nil
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("page %d: %w", pageNum, err)
	}
	return text, nil
}

func (d *pdfDocument) Close() error { return d.f.Close() }
