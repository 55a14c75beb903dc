package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosag/internal/diagram"
	"github.com/alexiusacademia/gosag/internal/log"
	"github.com/alexiusacademia/gosag/internal/sagtension"
	"github.com/alexiusacademia/gosag/internal/transmissionline"
	"github.com/alexiusacademia/gosag/internal/units"
)

var (
	reloadFile      string
	reloadCondition string
	reloadDiagram   bool

	reloadWeather weathercaseFlags
)

var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Reload the ruling span to a weathercase and condition",
	Long: `Reload the line cable from its constraint to a target weathercase and
cable condition, and report the horizontal tension, catenary and
component loads.

Conditions:
  initial  No permanent stretch
  load     Stretched by the load stretch weathercase
  creep    Stretched by long-term creep at the creep weathercase

Examples:
  gosag reload -f line.yaml --ice 1 --wind 8 --temp 0 --condition load
  gosag reload -f line.yaml --temp 212 --condition creep --diagram
  gosag reload --district heavy`,
	RunE: runReload,
}

func init() {
	rootCmd.AddCommand(reloadCmd)

	reloadCmd.Flags().StringVarP(&reloadFile, "file", "f", "", "Line cable file (YAML or JSON); the sample line cable when empty")
	reloadCmd.Flags().StringVarP(&reloadCondition, "condition", "c", "initial", "Cable condition (initial, load, creep)")
	reloadCmd.Flags().BoolVar(&reloadDiagram, "diagram", false, "Show an ASCII profile of the reloaded catenary")
	reloadWeather.register(reloadCmd)
}

func runReload(cmd *cobra.Command, args []string) error {
	lineCable, _, err := loadLineCable(reloadFile)
	if err != nil {
		return err
	}
	condition, err := parseCondition(reloadCondition)
	if err != nil {
		return err
	}
	weathercase, err := reloadWeather.weathercase()
	if err != nil {
		return err
	}

	reloader := sagtension.NewLineCableReloader(lineCable, weathercase, condition)
	reloader.SetLogger(log.GetZapLogger())

	tension, err := reloader.TensionHorizontal()
	if err != nil {
		return fmt.Errorf("reloading %s (%s): %w", weathercase.Description, condition, err)
	}
	cat, err := reloader.CatenaryReloaded()
	if err != nil {
		return err
	}
	core, err := reloader.TensionAverageComponent(sagtension.ComponentCore)
	if err != nil {
		return err
	}
	shell, err := reloader.TensionAverageComponent(sagtension.ComponentShell)
	if err != nil {
		return err
	}
	lengthConstraint, err := reloader.LengthUnloadedConstraint()
	if err != nil {
		return err
	}
	lengthReloaded, err := reloader.LengthUnloadedReloaded()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SAG-TENSION RELOAD")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printLineCable(lineCable)

	fmt.Println("STRETCH:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, c := range []transmissionline.CableConditionType{transmissionline.ConditionLoad, transmissionline.ConditionCreep} {
		weathercaseStretch := lineCable.WeathercaseStretch(c)
		if weathercaseStretch == nil {
			fmt.Fprintf(w, "  %s stretch:\tnot defined\n", c)
			continue
		}
		load, err := reloader.LoadStretch(c)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s stretch:\t%.1f lb at %s (%.0f°F)\n", c, load, weathercaseStretch.Description, weathercaseStretch.TemperatureCable)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("RELOADED:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Weathercase:\t%s\n", weathercase.Description)
	fmt.Fprintf(w, "  Condition:\t%s\n", condition)
	fmt.Fprintf(w, "  Horizontal tension:\t%.1f lb\t%.2f kN\n", tension, units.ConvertForce(tension, units.PoundsToNewtons)/1000)
	fmt.Fprintf(w, "  Average tension:\t%.1f lb\n", cat.TensionAverage())
	fmt.Fprintf(w, "    Core:\t%.1f lb\n", core)
	fmt.Fprintf(w, "    Shell:\t%.1f lb\n", shell)
	fmt.Fprintf(w, "  Maximum tension:\t%.1f lb\t%.1f%% RTS\n", cat.TensionMax(), 100*cat.TensionMax()/lineCable.Cable.StrengthRated)
	fmt.Fprintf(w, "  Sag:\t%.2f ft\t%.3f m\n", cat.Sag(), units.ConvertLength(cat.Sag(), units.FeetToMeters))
	fmt.Fprintf(w, "  Swing angle:\t%.2f°\n", units.ConvertAngle(cat.SwingAngle(), units.RadiansToDegrees))
	fmt.Fprintf(w, "  Catenary constant:\t%.1f ft\n", cat.ConstantCatenary())
	fmt.Fprintf(w, "  Curve length:\t%.4f ft\n", cat.Length())
	fmt.Fprintf(w, "  Slack:\t%.4f ft\n", cat.LengthSlack())
	w.Flush()
	fmt.Println()

	fmt.Println("UNLOADED LENGTH:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  At constraint:\t%.4f ft\n", lengthConstraint)
	fmt.Fprintf(w, "  At reloaded case:\t%.4f ft\n", lengthReloaded)
	w.Flush()
	fmt.Println()

	if reloadDiagram {
		data := diagram.NewProfileData(fmt.Sprintf("%s, %s", weathercase.Description, condition), cat, 61)
		fmt.Println(diagram.DrawASCIIProfile(data, 60, 12))
		fmt.Println()
	}

	return nil
}

func printLineCable(lineCable *transmissionline.LineCable) {
	fmt.Println("LINE CABLE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Cable:\t%s\n", lineCable.Cable.Name)
	fmt.Fprintf(w, "  Ruling span:\t%.1f ft (Δz %.1f ft)\n", lineCable.SpacingAttachmentsRulingSpan.X, lineCable.SpacingAttachmentsRulingSpan.Z)
	fmt.Fprintf(w, "  Constraint:\t%.1f lb at %s, %s\n",
		lineCable.Constraint.Limit, lineCable.Constraint.CaseWeather.Description, lineCable.Constraint.Condition)
	w.Flush()
	fmt.Println()
}
