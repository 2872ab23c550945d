package pdf2json

import (
	"errors"
	"testing"

	"github.com/jung-kurt/gofpdf"

	"github.com/subjectivetech/pdf2json/extract"
)

// fakeDocument serves scripted page texts without touching a real PDF.
type fakeDocument struct {
	pages    []string
	pageErrs map[int]error
	numPanic bool
}

func (d *fakeDocument) NumPages() int {
	if d.numPanic {
		panic("malformed xref")
	}
	return len(d.pages)
}

func (d *fakeDocument) PageText(pageNum int) (string, error) {
	if err := d.pageErrs[pageNum]; err != nil {
		return "", err
	}
	return d.pages[pageNum-1], nil
}

func (d *fakeDocument) Close() error { return nil }

// fakeOpener hands out a scripted document, or fails to open.
type fakeOpener struct {
	doc     *fakeDocument
	openErr error
}

func (o *fakeOpener) Open(path string) (extract.Document, error) {
	if o.openErr != nil {
		return nil, o.openErr
	}
	return o.doc, nil
}

var errBadContainer = errors.New("bad container")

// writeTestPDF generates a real PDF at path with one page per entry.
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
