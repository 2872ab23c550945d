package pdf2json

import (
	"path/filepath"
	"strings"
)

// Config holds all configuration for a single conversion.
type Config struct {
	// PDFFilePath is the path to the input PDF. Required.
	PDFFilePath string `json:"pdf_file_path" yaml:"pdf_file_path"`

	// OutputFilePath is where the JSON artifact is written. If empty, it
	// defaults to the input file name with a .json extension, in the same
	// directory as the input.
	OutputFilePath string `json:"output_file_path" yaml:"output_file_path"`

	// IncludePageNumbers controls whether "--- Page N ---" markers are
	// inserted into the combined full text. Markers are presentation only;
	// character counts never include them.
	IncludePageNumbers bool `json:"include_page_numbers" yaml:"include_page_numbers"`
}

// DefaultConfig returns a Config with page markers enabled. Decode a config
// file over it so absent fields keep their defaults.
func DefaultConfig() Config {
	return Config{
		IncludePageNumbers: true,
	}
}

// ResolveOutputPath computes the final output path from config fields.
func (c *Config) ResolveOutputPath() string {
	if c.OutputFilePath != "" {
		return c.OutputFilePath
	}

	base := filepath.Base(c.PDFFilePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	dir := filepath.Dir(c.PDFFilePath)
	return filepath.Join(dir, base+".json")
}
