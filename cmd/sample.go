package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosag/internal/cablefile"
	"github.com/alexiusacademia/gosag/internal/factory"
)

var (
	sampleFormat string
	sampleOutput string
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a sample line cable file",
	Long: `Write a sample line cable file: a Drake ACSR cable on a 1200 ft ruling
span, strung to 6000 lb at 60°F in the initial condition, with the
reporting weathercases of a standard sag-tension table.

Examples:
  gosag sample > line.yaml
  gosag sample --format json
  gosag sample -o line.json`,
	RunE: runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().StringVar(&sampleFormat, "format", "yaml", "Output format (yaml, json)")
	sampleCmd.Flags().StringVarP(&sampleOutput, "output", "o", "", "Write to a file; the format follows the extension")
}

func runSample(cmd *cobra.Command, args []string) error {
	def := cablefile.FromLineCable(factory.BuildLineCable(), factory.BuildWeathercasesTable())

	if sampleOutput != "" {
		if err := cablefile.Save(sampleOutput, def); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "  ✓ Sample line cable saved to: %s\n", sampleOutput)
		return nil
	}

	format, err := cablefile.ParseFormat(sampleFormat)
	if err != nil {
		return err
	}
	data, err := cablefile.Marshal(def, format)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
