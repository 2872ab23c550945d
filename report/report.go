// Package report writes batch-run summary workbooks.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet is the name of the summary worksheet.
const Sheet = "Conversions"

// Row is one conversion outcome in a batch run.
type Row struct {
	File          string
	Status        string // "converted", "skipped", "failed"
	Pages         int
	Characters    int
	PagesWithText int
	Hash          string
	OutputPath    string
	Err           string
}

var headers = []string{
	"File", "Status", "Pages", "Characters", "Pages With Text",
	"SHA-256", "Output", "Error",
}

// Write creates an XLSX workbook summarising a batch run: a header row
// followed by one row per input file, in run order.
func Write(path string, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", Sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(Sheet, cell, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, r := range rows {
		values := []interface{}{
			r.File, r.Status, r.Pages, r.Characters, r.PagesWithText,
			r.Hash, r.OutputPath, r.Err,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(Sheet, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", i+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	return nil
}
