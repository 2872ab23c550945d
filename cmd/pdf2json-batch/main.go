package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/subjectivetech/pdf2json"
	"github.com/subjectivetech/pdf2json/catalog"
	"github.com/subjectivetech/pdf2json/report"
)

func main() {
	var (
		dir         = flag.String("dir", ".", "Directory to scan for PDFs")
		pattern     = flag.String("pattern", "*.pdf", "Glob pattern for input files")
		outDir      = flag.String("out-dir", "", "Directory for JSON artifacts (default: next to each input)")
		catalogPath = flag.String("catalog", "", "Path to SQLite catalog; unchanged files are skipped (optional)")
		reportPath  = flag.String("report", "", "Path to write an XLSX run report (optional)")
		markers     = flag.Bool("markers", true, "Include page markers in full text")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	godotenv.Load() // .env is optional

	ctx := context.Background()

	matches, err := filepath.Glob(filepath.Join(*dir, *pattern))
	if err != nil {
		slog.Error("bad pattern", "pattern", *pattern, "error", err)
		os.Exit(1)
	}
	if len(matches) == 0 {
		fmt.Printf("no files matching %s in %s\n", *pattern, *dir)
		return
	}

	var cat *catalog.Catalog
	if *catalogPath != "" {
		cat, err = catalog.New(*catalogPath)
		if err != nil {
			slog.Error("opening catalog", "path", *catalogPath, "error", err)
			os.Exit(1)
		}
		defer cat.Close()
	}

	var rows []report.Row
	converted, skipped, failed := 0, 0, 0

	for _, path := range matches {
		absPath, err := filepath.Abs(path)
		if err != nil {
			slog.Error("resolving path", "path", path, "error", err)
			failed++
			rows = append(rows, report.Row{File: path, Status: "failed", Err: err.Error()})
			continue
		}

		hash, err := pdf2json.HashFile(absPath)
		if err != nil {
			slog.Error("hashing file", "path", absPath, "error", err)
			failed++
			rows = append(rows, report.Row{File: absPath, Status: "failed", Err: err.Error()})
			continue
		}

		if cat != nil && cat.Unchanged(ctx, absPath, hash) {
			slog.Info("unchanged, skipping", "file", filepath.Base(absPath))
			skipped++
			rows = append(rows, report.Row{File: absPath, Status: "skipped", Hash: hash})
			continue
		}

		cfg := pdf2json.Config{
			PDFFilePath:        absPath,
			IncludePageNumbers: *markers,
		}
		if *outDir != "" {
			base := filepath.Base(absPath)
			cfg.OutputFilePath = filepath.Join(*outDir, base[:len(base)-len(filepath.Ext(base))]+".json")
		}

		start := time.Now()
		result, err := pdf2json.New(cfg).Convert(ctx)
		elapsed := time.Since(start)

		row := report.Row{File: absPath, Hash: hash, OutputPath: cfg.ResolveOutputPath()}
		conv := catalog.Conversion{
			Path:        absPath,
			Filename:    filepath.Base(absPath),
			ContentHash: hash,
			OutputPath:  cfg.ResolveOutputPath(),
			DurationMs:  elapsed.Milliseconds(),
		}

		if err != nil {
			failed++
			row.Status = "failed"
			row.Err = err.Error()
			conv.Status = catalog.StatusFailed
		} else {
			converted++
			row.Status = "converted"
			row.Pages = result.Metadata.TotalPages
			row.Characters = result.Metadata.TotalCharacters
			row.PagesWithText = result.Metadata.PagesWithExtractableText
			conv.Status = catalog.StatusSuccess
			conv.TotalPages = result.Metadata.TotalPages
			conv.TotalChars = result.Metadata.TotalCharacters
			conv.PagesWithText = result.Metadata.PagesWithExtractableText
		}
		rows = append(rows, row)

		if cat != nil {
			if _, err := cat.Upsert(ctx, conv); err != nil {
				slog.Error("recording conversion", "path", absPath, "error", err)
			}
		}
	}

	if *reportPath != "" {
		if err := report.Write(*reportPath, rows); err != nil {
			slog.Error("writing report", "path", *reportPath, "error", err)
			os.Exit(1)
		}
		fmt.Printf("report written to %s\n", *reportPath)
	}

	fmt.Printf("batch complete: %d converted, %d skipped, %d failed\n", converted, skipped, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
