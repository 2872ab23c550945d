package pdf2json

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/subjectivetech/pdf2json/extract"
)

// DataTypePDF is the data_type tag identifying artifacts produced by this
// converter within the wider family of JSON data sources.
const DataTypePDF = "from_pdf"

// Metadata is the first section of the JSON artifact. Field order here is
// the key order in the serialized output.
type Metadata struct {
	Name                     string    `json:"name"`
	DataType                 string    `json:"data_type"`
	Timestamp                time.Time `json:"timestamp"`
	SourceFileName           string    `json:"source_file_name"`
	SourceFilePath           string    `json:"source_file_path"`
	SourceFileSize           int64     `json:"source_file_size"`
	SourceFileHash           string    `json:"source_file_hash"`
	SourceModifiedTime       time.Time `json:"source_modified_time"`
	TotalPages               int       `json:"total_pages"`
	TotalCharacters          int       `json:"total_characters"`
	PagesWithExtractableText int       `json:"pages_with_extractable_text"`
	ExtractionTimestamp      time.Time `json:"extraction_timestamp"`
}

// Page is one page of extracted text. Pages are 1-based and contiguous;
// a page the extractor could not read is present with empty text.
type Page struct {
	PageNumber     int    `json:"page_number"`
	Text           string `json:"text"`
	CharacterCount int    `json:"character_count"`
}

// Content holds the extracted text, both combined and per page.
type Content struct {
	FullText string `json:"full_text"`
	Pages    []Page `json:"pages"`
}

// Result is the complete extraction artifact handed to the caller and
// serialized to the output file.
type Result struct {
	Metadata Metadata `json:"metadata"`
	Content  Content  `json:"content"`
}

// assemble combines file identity and extracted pages into a Result. It is
// pure: counts are derived from the pages alone, and the page markers in
// full_text never contribute to character counts.
func assemble(info fileInfo, pages []extract.Page, includeMarkers bool, now time.Time) *Result {
	records := make([]Page, 0, len(pages))
	totalChars := 0
	pagesWithText := 0

	for _, p := range pages {
		n := utf8.RuneCountInString(p.Text)
		totalChars += n
		if p.Text != "" {
			pagesWithText++
		}
		records = append(records, Page{
			PageNumber:     p.Number,
			Text:           p.Text,
			CharacterCount: n,
		})
	}

	return &Result{
		Metadata: Metadata{
			Name:                     info.name,
			DataType:                 DataTypePDF,
			Timestamp:                now,
			SourceFileName:           info.fileName,
			SourceFilePath:           info.absPath,
			SourceFileSize:           info.size,
			SourceFileHash:           info.hash,
			SourceModifiedTime:       info.modTime,
			TotalPages:               len(pages),
			TotalCharacters:          totalChars,
			PagesWithExtractableText: pagesWithText,
			ExtractionTimestamp:      now,
		},
		Content: Content{
			FullText: combineText(pages, includeMarkers),
			Pages:    records,
		},
	}
}

// combineText joins page texts with blank-line separators. With markers
// enabled every page, including empty ones, is prefixed with a
// "--- Page N ---" line.
func combineText(pages []extract.Page, includeMarkers bool) string {
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		if includeMarkers {
			parts = append(parts, fmt.Sprintf("--- Page %d ---\n%s", p.Number, p.Text))
		} else {
			parts = append(parts, p.Text)
		}
	}
	return strings.Join(parts, "\n\n")
}
