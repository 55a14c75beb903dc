package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosag/internal/diagram"
	"github.com/alexiusacademia/gosag/internal/factory"
	"github.com/alexiusacademia/gosag/internal/log"
	"github.com/alexiusacademia/gosag/internal/report"
	"github.com/alexiusacademia/gosag/internal/sagtension"
	"github.com/alexiusacademia/gosag/internal/units"
)

var (
	tableFile  string
	tableXLSX  string
	tablePDF   string
	tablePlot  string
	tableChart bool
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Build a sag-tension table",
	Long: `Reload the line cable at every reporting weathercase in the initial,
load and creep conditions.

The weathercases come from the line cable file. When the file lists none,
a standard set (0-0-0, 0-0-60, 0-0-120, 0-0-212, 0.5-8-0, 1-8-0) is used.

Examples:
  gosag table -f line.yaml
  gosag table -f line.yaml --xlsx table.xlsx --pdf table.pdf
  gosag table -f line.yaml --plot tension.png --chart`,
	RunE: runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)

	tableCmd.Flags().StringVarP(&tableFile, "file", "f", "", "Line cable file (YAML or JSON); the sample line cable when empty")
	tableCmd.Flags().StringVar(&tableXLSX, "xlsx", "", "Export the table to an Excel workbook")
	tableCmd.Flags().StringVar(&tablePDF, "pdf", "", "Export the table to a PDF report")
	tableCmd.Flags().StringVar(&tablePlot, "plot", "", "Export a tension-temperature plot (.png, .svg, .pdf)")
	tableCmd.Flags().BoolVar(&tableChart, "chart", false, "Show an ASCII tension-temperature chart")
}

func runTable(cmd *cobra.Command, args []string) error {
	lineCable, weathercases, err := loadLineCable(tableFile)
	if err != nil {
		return err
	}
	if len(weathercases) == 0 {
		weathercases = factory.BuildWeathercasesTable()
	}

	table := sagtension.NewSagTensionTable(lineCable, weathercases)
	table.SetLogger(log.GetZapLogger())
	rows, err := table.Rows()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════════════════════════")
	fmt.Println("     SAG-TENSION TABLE")
	fmt.Println("═══════════════════════════════════════════════════════════════════════════════════")
	fmt.Println()

	printLineCable(lineCable)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "Weathercase\tCondition\tH (lb)\tTavg (lb)\tCore (lb)\tShell (lb)\tTmax (lb)\tSag (ft)\tSwing (°)\t%% RTS\t\n")
	fmt.Fprintf(w, "───────────\t─────────\t──────\t─────────\t─────────\t──────────\t─────────\t────────\t─────────\t─────\t\n")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t%.2f\t%.1f\t%.1f\t\n",
			row.Weathercase.Description, row.Condition,
			row.TensionHorizontal, row.TensionAverage, row.TensionAverageCore, row.TensionAverageShell,
			row.TensionMax, row.Sag, units.ConvertAngle(row.SwingAngle, units.RadiansToDegrees), row.PercentStrength)
	}
	w.Flush()
	fmt.Println()

	title := fmt.Sprintf("%s - %.0f ft ruling span", lineCable.Cable.Name, lineCable.SpacingAttachmentsRulingSpan.X)
	input := report.Input{Title: title, LineCable: lineCable, Rows: rows}

	if tableChart {
		fmt.Println(diagram.DrawASCIITensionCurve(rows, 60, 12))
		fmt.Println()
	}

	if tableXLSX != "" {
		if err := report.SaveXLSX(tableXLSX, input); err != nil {
			return fmt.Errorf("failed to export workbook: %w", err)
		}
		fmt.Printf("  ✓ Workbook saved to: %s\n", tableXLSX)
	}

	if tablePDF != "" {
		if err := savePDF(tablePDF, input); err != nil {
			return fmt.Errorf("failed to export PDF: %w", err)
		}
		fmt.Printf("  ✓ PDF report saved to: %s\n", tablePDF)
	}

	if tablePlot != "" {
		if err := diagram.ExportTensionDiagram(title, rows, tablePlot); err != nil {
			return fmt.Errorf("failed to export plot: %w", err)
		}
		fmt.Printf("  ✓ Plot saved to: %s\n", tablePlot)
	}

	return nil
}

func savePDF(path string, input report.Input) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WritePDF(f, input); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
