// Package pdf2json converts a single PDF document into a structured JSON
// artifact with two sections: metadata (file identity, hash, timestamps,
// page and character counts) and content (full text plus per-page records).
// It is built for batch pipelines that index PDF content as JSON.
package pdf2json

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/subjectivetech/pdf2json/extract"
)

// ProgressFunc receives page-by-page extraction progress.
type ProgressFunc func(page, total int)

// Converter runs one conversion. It holds no state across conversions;
// create one per document.
type Converter struct {
	cfg      Config
	opener   extract.Opener
	logger   *slog.Logger
	progress ProgressFunc
	stage    Stage
}

// Option configures a Converter.
type Option func(*Converter)

// WithOpener substitutes the PDF opener. Used by tests and by callers that
// bring their own PDF backend.
func WithOpener(o extract.Opener) Option {
	return func(c *Converter) { c.opener = o }
}

// WithLogger sets the logger for this conversion.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) { c.logger = l }
}

// WithProgress registers a progress observer, invoked once per page during
// extraction.
func WithProgress(fn ProgressFunc) Option {
	return func(c *Converter) { c.progress = fn }
}

// New creates a Converter for one conversion.
func New(cfg Config, opts ...Option) *Converter {
	c := &Converter{
		cfg:    cfg,
		opener: extract.NewPDFOpener(),
		logger: slog.Default(),
		stage:  StageIdle,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Stage reports the current pipeline stage.
func (c *Converter) Stage() Stage { return c.stage }

// Convert runs the full pipeline: validate, extract, assemble, write.
// On success the result is both written to the resolved output path and
// returned. A write failure still returns the in-memory result alongside
// the error, so programmatic callers keep what was extracted.
func (c *Converter) Convert(ctx context.Context) (*Result, error) {
	c.stage = StageValidating
	doc, err := c.validate()
	if err != nil {
		return nil, c.fail(StageValidating, err)
	}
	defer doc.Close()

	info, err := collectFileInfo(c.cfg.PDFFilePath)
	if err != nil {
		return nil, c.fail(StageValidating, err)
	}

	c.stage = StageExtracting
	c.logger.Info("extracting", "file", info.fileName, "size", info.size)
	pages, err := extract.Run(ctx, doc, func(page, total int) {
		c.logger.Debug("extracted page", "page", page, "total", total)
		if c.progress != nil {
			c.progress(page, total)
		}
	})
	if err != nil {
		return nil, c.fail(StageExtracting, fmt.Errorf("%w: %v", ErrExtractionFailed, err))
	}

	c.stage = StageAssembling
	res := assemble(info, pages, c.cfg.IncludePageNumbers, time.Now())

	c.stage = StageWriting
	outPath := c.cfg.ResolveOutputPath()
	if err := writeResult(res, outPath); err != nil {
		return res, c.fail(StageWriting, err)
	}

	c.stage = StageDone
	c.logger.Info("conversion complete",
		"output", outPath,
		"pages", res.Metadata.TotalPages,
		"characters", res.Metadata.TotalCharacters)
	return res, nil
}

// validate confirms the input exists, is a regular non-empty file, and
// opens as a PDF container. Page-level validity is the extractor's concern.
func (c *Converter) validate() (extract.Document, error) {
	path := c.cfg.PDFFilePath
	if path == "" {
		return nil, fmt.Errorf("%w: pdf_file_path is required", ErrInvalidInput)
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidInput, path, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrInvalidInput, path)
	}
	if fi.Size() == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidInput, path)
	}

	doc, err := c.opener.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidInput, path, err)
	}
	return doc, nil
}

func (c *Converter) fail(stage Stage, err error) error {
	c.stage = StageFailed
	c.logger.Error("conversion failed", "stage", string(stage), "error", err)
	return &StageError{Stage: stage, Err: err}
}
