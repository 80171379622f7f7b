package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Table is an ordered header row plus data rows, as produced by the
// export projector.
type Table struct {
	Headers []string
	Rows    [][]string
}

// WriteXLSX renders the table as a single-sheet xlsx workbook.
func WriteXLSX(w io.Writer, sheet string, table Table) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if sheet != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	if err := writeRow(f, sheet, 1, table.Headers); err != nil {
		return err
	}
	for i, row := range table.Rows {
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	if len(values) == 0 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}
	return nil
}
