package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosag/internal/diagram"
	"github.com/alexiusacademia/gosag/internal/log"
	"github.com/alexiusacademia/gosag/internal/sagtension"
)

var (
	profileFile      string
	profileCondition string
	profilePoints    int
	profileWidth     int
	profileHeight    int
	profileOutput    string

	profileWeather weathercaseFlags
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Draw the reloaded catenary profile",
	Long: `Reload the ruling span and draw the catenary profile in the plane of
the span. The default is an ASCII graph in the terminal. With --output
the profile is exported as an image (.png, .svg or .pdf).

Examples:
  gosag profile -f line.yaml --temp 212 --condition creep
  gosag profile -f line.yaml --ice 1 --wind 8 --temp 0 -o profile.png`,
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)

	profileCmd.Flags().StringVarP(&profileFile, "file", "f", "", "Line cable file (YAML or JSON); the sample line cable when empty")
	profileCmd.Flags().StringVarP(&profileCondition, "condition", "c", "initial", "Cable condition (initial, load, creep)")
	profileCmd.Flags().IntVarP(&profilePoints, "points", "n", 101, "Number of points along the span")
	profileCmd.Flags().IntVar(&profileWidth, "width", 60, "ASCII graph width")
	profileCmd.Flags().IntVar(&profileHeight, "height", 15, "ASCII graph height")
	profileCmd.Flags().StringVarP(&profileOutput, "output", "o", "", "Export the profile to an image file")
	profileWeather.register(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	lineCable, _, err := loadLineCable(profileFile)
	if err != nil {
		return err
	}
	condition, err := parseCondition(profileCondition)
	if err != nil {
		return err
	}
	weathercase, err := profileWeather.weathercase()
	if err != nil {
		return err
	}

	reloader := sagtension.NewLineCableReloader(lineCable, weathercase, condition)
	reloader.SetLogger(log.GetZapLogger())
	cat, err := reloader.CatenaryReloaded()
	if err != nil {
		return fmt.Errorf("reloading %s (%s): %w", weathercase.Description, condition, err)
	}

	title := fmt.Sprintf("%s - %s, %s", lineCable.Cable.Name, weathercase.Description, condition)
	data := diagram.NewProfileData(title, cat, profilePoints)

	if profileOutput != "" {
		if err := diagram.ExportProfileDiagram(data, profileOutput); err != nil {
			return fmt.Errorf("failed to export profile: %w", err)
		}
		fmt.Printf("  ✓ Profile saved to: %s\n", profileOutput)
		return nil
	}

	fmt.Println()
	fmt.Println(diagram.DrawASCIIProfile(data, profileWidth, profileHeight))
	fmt.Println()
	fmt.Println(diagram.DrawSummaryBox(title, diagram.ProfileSummary(data)))
	fmt.Println()

	return nil
}
