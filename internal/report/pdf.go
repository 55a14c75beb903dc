package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"
)

// WritePDF writes a landscape PDF summary with the line cable description
// and the sag-tension table
func WritePDF(w io.Writer, input Input) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range describe(input.LineCable) {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(220, 220, 220)
	for _, c := range columns {
		pdf.CellFormat(c.width, 7, c.header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, r := range input.Rows {
		for _, c := range columns {
			align := "R"
			if c.format == "%s" {
				align = "L"
			}
			pdf.CellFormat(c.width, 6, fmt.Sprintf(c.format, c.value(r)), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}
