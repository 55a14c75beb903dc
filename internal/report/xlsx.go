package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetTable = "Sag-Tension"

// WriteXLSX writes the report table as a spreadsheet
func WriteXLSX(w io.Writer, input Input) error {
	f, err := buildXLSX(input)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

// SaveXLSX writes the spreadsheet to a file
func SaveXLSX(path string, input Input) error {
	f, err := buildXLSX(input)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.SaveAs(path)
}

func buildXLSX(input Input) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := fillXLSX(f, input); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func fillXLSX(f *excelize.File, input Input) error {
	if err := f.SetSheetName("Sheet1", sheetTable); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	row := 1
	if input.Title != "" {
		if err := f.SetCellValue(sheetTable, "A1", input.Title); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetTable, "A1", "A1", bold); err != nil {
			return err
		}
		row++
	}
	for _, line := range describe(input.LineCable) {
		if err := f.SetCellValue(sheetTable, fmt.Sprintf("A%d", row), line); err != nil {
			return err
		}
		row++
	}
	if row > 1 {
		row++
	}

	header := headers()
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(header), row)
	if err := f.SetSheetRow(sheetTable, first, &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetTable, first, last, bold); err != nil {
		return err
	}

	for _, r := range input.Rows {
		row++
		values := make([]any, len(columns))
		for i, c := range columns {
			values[i] = c.value(r)
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheetTable, cell, &values); err != nil {
			return err
		}
	}

	lastColumn, _ := excelize.ColumnNumberToName(len(header))
	return f.SetColWidth(sheetTable, "A", lastColumn, 13)
}
