package export

import (
	"fmt"
	"io"

	"github.com/tartampluch/go-friends/internal/config"
	"github.com/tartampluch/go-friends/internal/engine"
	"github.com/tartampluch/go-friends/internal/store"
	"github.com/xuri/excelize/v2"
)

// EncodeWorkbook writes an Excel workbook with one sheet listing people alphabetically,
// using the same columns as the CSV database.
func EncodeWorkbook(w io.Writer, people []*engine.Person) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// The default sheet becomes the listing.
	if err := f.SetSheetName(config.DefaultSheet, config.SheetName); err != nil {
		return fmt.Errorf("%s: %w", config.ErrXLSXEncode, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{config.HeaderFillColor},
			Pattern: 1,
		},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrXLSXEncode, err)
	}

	for col, header := range config.CSVFields {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("%s: %w", config.ErrXLSXEncode, err)
		}
		if err := f.SetCellValue(config.SheetName, cell, header); err != nil {
			return fmt.Errorf("%s: %w", config.ErrXLSXEncode, err)
		}
		if err := f.SetCellStyle(config.SheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("%s: %w", config.ErrXLSXEncode, err)
		}
	}

	last, err := excelize.ColumnNumberToName(len(config.CSVFields))
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrXLSXEncode, err)
	}
	if err := f.SetColWidth(config.SheetName, "A", last, config.ColumnWidth); err != nil {
		return fmt.Errorf("%s: %w", config.ErrXLSXEncode, err)
	}

	for i, p := range engine.Alphabetical(people) {
		// Data starts on row 2, below the header.
		for col, value := range store.Record(p) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("%s: %w", config.ErrXLSXEncode, err)
			}
			if err := f.SetCellStr(config.SheetName, cell, value); err != nil {
				return fmt.Errorf("%s: %w", config.ErrXLSXEncode, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("%s: %w", config.ErrExportWrite, err)
	}
	return nil
}
