package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosag/internal/cablefile"
	"github.com/alexiusacademia/gosag/internal/log"
	"github.com/alexiusacademia/gosag/internal/sagtension"
	"github.com/alexiusacademia/gosag/internal/transmissionline"
	"github.com/alexiusacademia/gosag/internal/validation"
)

var (
	validateFile     string
	validateWarnings bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a line cable file",
	Long: `Check a line cable file for missing or inconsistent values, then try to
reload it at every reporting weathercase and condition.

With --warnings, values outside the recommended ranges are reported too.

Examples:
  gosag validate -f line.yaml
  gosag validate -f line.yaml --warnings`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Line cable file (YAML or JSON)")
	validateCmd.Flags().BoolVarP(&validateWarnings, "warnings", "w", false, "Include warnings")
	validateCmd.MarkFlagRequired("file")
}

func runValidate(cmd *cobra.Command, args []string) error {
	def, err := cablefile.Read(validateFile)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     LINE CABLE VALIDATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  File: %s\n", validateFile)
	fmt.Println()

	lineCable, err := def.LineCable()
	if err != nil {
		fmt.Printf("  ✗ %v\n\n", err)
		return fmt.Errorf("%s is not a valid line cable file", validateFile)
	}

	messages := &validation.Messages{}
	isValid := lineCable.Validate(validateWarnings, messages)

	// only a consistent line cable can be reloaded
	if isValid {
		weathercases := def.WeatherLoadCases()
		if len(weathercases) == 0 {
			weathercases = []*transmissionline.WeatherLoadCase{lineCable.Constraint.CaseWeather}
		}

		// every reloader repeats the line cable checks, keep new messages only
		seen := make(map[string]bool)
		for _, weathercase := range weathercases {
			for _, condition := range transmissionline.Conditions {
				reloader := sagtension.NewLineCableReloader(lineCable, weathercase, condition)
				reloader.SetLogger(log.GetZapLogger())

				reloaded := &validation.Messages{}
				if !reloader.Validate(validateWarnings, reloaded) {
					isValid = false
				}
				for _, message := range reloaded.Items() {
					if !seen[message.String()] {
						seen[message.String()] = true
						messages.Add(message.Title, message.Description)
					}
				}
			}
		}
	}

	for _, message := range messages.Items() {
		fmt.Printf("  ✗ %s\n", message)
	}
	if !isValid {
		fmt.Println()
		return fmt.Errorf("%d problem(s) found in %s", messages.Len(), validateFile)
	}

	fmt.Println("  ✓ Line cable is valid")
	fmt.Println()
	return nil
}
