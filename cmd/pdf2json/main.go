package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/subjectivetech/pdf2json"
)

func main() {
	envFile := flag.String("env", "", "Path to .env file (default: .env in the working directory, if present)")
	configPath := flag.String("config", "", "Path to config file (JSON)")
	input := flag.String("input", "", "Path to the PDF file (overrides config and env)")
	output := flag.String("output", "", "Path for the output JSON (overrides config and env)")
	markers := flag.String("markers", "", "Include page markers in full text: true or false (overrides config and env)")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	// Structured JSON logging.
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	// Load environment from a .env file when one is available.
	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			slog.Error("loading env file", "path", *envFile, "error", err)
			os.Exit(1)
		}
	} else {
		godotenv.Load() // .env is optional
	}

	cfg := pdf2json.DefaultConfig()
	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			slog.Error("opening config", "error", err)
			os.Exit(1)
		}
		if err := json.NewDecoder(f).Decode(&cfg); err != nil {
			f.Close()
			slog.Error("parsing config", "error", err)
			os.Exit(1)
		}
		f.Close()
	}

	// Override from environment variables.
	if v := os.Getenv("PDF_FILE_PATH"); v != "" {
		cfg.PDFFilePath = v
	}
	if v := os.Getenv("OUTPUT_FILE_PATH"); v != "" {
		cfg.OutputFilePath = v
	}
	if v := os.Getenv("INCLUDE_PAGE_NUMBERS"); v != "" {
		cfg.IncludePageNumbers = strings.EqualFold(v, "true")
	}

	// Flags win over config file and environment.
	if *input != "" {
		cfg.PDFFilePath = *input
	}
	if *output != "" {
		cfg.OutputFilePath = *output
	}
	if *markers != "" {
		cfg.IncludePageNumbers = strings.EqualFold(*markers, "true")
	}

	if cfg.PDFFilePath == "" {
		fmt.Fprintln(os.Stderr, "pdf2json: no input PDF: set -input, PDF_FILE_PATH, or pdf_file_path in the config file")
		os.Exit(1)
	}

	conv := pdf2json.New(cfg, pdf2json.WithProgress(func(page, total int) {
		fmt.Printf("page %d/%d\n", page, total)
	}))

	result, err := conv.Convert(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdf2json: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("converted %s\n", cfg.PDFFilePath)
	fmt.Printf("  pages:           %d\n", result.Metadata.TotalPages)
	fmt.Printf("  pages with text: %d\n", result.Metadata.PagesWithExtractableText)
	fmt.Printf("  characters:      %d\n", result.Metadata.TotalCharacters)
	fmt.Printf("  output:          %s\n", cfg.ResolveOutputPath())
}
