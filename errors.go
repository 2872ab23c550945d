package pdf2json

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when the input path is missing, unreadable,
	// or cannot be opened as a PDF container.
	ErrInvalidInput = errors.New("pdf2json: invalid input")

	// ErrExtractionFailed is returned when the document cannot be opened or
	// iterated at all. Individual page failures are recovered, not reported
	// through this error.
	ErrExtractionFailed = errors.New("pdf2json: extraction failed")

	// ErrIO is returned when filesystem metadata cannot be read after
	// validation succeeded.
	ErrIO = errors.New("pdf2json: i/o error")

	// ErrWrite is returned when the output file cannot be written. The
	// in-memory result is still returned alongside it.
	ErrWrite = errors.New("pdf2json: write failed")
)

// Stage identifies a step of the conversion pipeline.
type Stage string

const (
	StageIdle       Stage = "idle"
	StageValidating Stage = "validating"
	StageExtracting Stage = "extracting"
	StageAssembling Stage = "assembling"
	StageWriting    Stage = "writing"
	StageDone       Stage = "done"
	StageFailed     Stage = "failed"
)

// StageError tags a fatal error with the pipeline stage it occurred in.
// It unwraps to the underlying error, so errors.Is still matches the
// sentinel taxonomy above.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
