// Package extract isolates the pipeline from the underlying PDF library
// behind a narrow open/enumerate/extract capability.
package extract

import (
	"context"
	"fmt"
	"strings"
)

// Document is an open PDF. Pages are numbered from 1.
type Document interface {
	NumPages() int
	PageText(pageNum int) (string, error)
	Close() error
}

// Opener opens a path as a Document.
type Opener interface {
	Open(path string) (Document, error)
}

// Page is one page's extracted text. Text is empty when the page yielded
// nothing or could not be read.
type Page struct {
	Number int
	Text   string
}

// ProgressFunc is invoked once per page as extraction advances.
type ProgressFunc func(page, total int)

// Run walks every page of doc in order and returns exactly NumPages
// records, numbered contiguously from 1. A page that fails to extract
// (encrypted, image-only, corrupted object) yields empty text and the walk
// continues; only a failure to enumerate the document at all is returned
// as an error.
func Run(ctx context.Context, doc Document, progress ProgressFunc) ([]Page, error) {
	total, err := countPages(doc)
	if err != nil {
		return nil, err
	}

	pages := make([]Page, 0, total)
	for i := 1; i <= total; i++ {
		text := pageText(doc, i)
		pages = append(pages, Page{Number: i, Text: text})
		if progress != nil {
			progress(i, total)
		}
	}
	return pages, nil
}

// countPages enumerates the document. The underlying library panics on
// some malformed cross-reference tables, so the panic is converted into
// the fatal open/iterate error the caller expects.
func countPages(doc Document) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("enumerating pages: %v", r)
		}
	}()

	n = doc.NumPages()
	if n < 0 {
		return 0, fmt.Errorf("document reported %d pages", n)
	}
	return n, nil
}

// pageText extracts one page, absorbing both errors and panics into an
// empty result. Leading and trailing whitespace is trimmed.
func pageText(doc Document, pageNum int) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	t, err := doc.PageText(pageNum)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(t)
}
