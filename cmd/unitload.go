package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosag/internal/log"
	"github.com/alexiusacademia/gosag/internal/nesc"
	"github.com/alexiusacademia/gosag/internal/transmissionline"
	"github.com/alexiusacademia/gosag/internal/units"
	"github.com/alexiusacademia/gosag/internal/validation"
)

var (
	unitLoadDiameter float64
	unitLoadWeight   float64
	unitLoadFile     string
	unitLoadMetric   bool
	unitLoadStrict   bool
	unitLoadAll      bool

	unitLoadWeather weathercaseFlags
)

var unitLoadCmd = &cobra.Command{
	Use:   "unitload",
	Short: "Calculate the unit load of a cable under ice and wind",
	Long: `Calculate the load per unit length of a cable from its own weight,
radial ice and wind pressure.

  horizontal = wind × (d + 2t)
  vertical   = w + ice density × π/4 × ((d + 2t)² − d²)

With --metric, diameter and ice are in mm, weight in N/m, wind in Pa and
temperature in °C. Ice density stays in lb/ft³.

Examples:
  gosag unitload --diameter 1.108 --weight 1.094 --ice 0.5 --wind 4
  gosag unitload -f line.yaml --district heavy
  gosag unitload -f line.yaml --all`,
	RunE: runUnitLoad,
}

func init() {
	rootCmd.AddCommand(unitLoadCmd)

	unitLoadCmd.Flags().Float64VarP(&unitLoadDiameter, "diameter", "d", 0, "Cable diameter (in)")
	unitLoadCmd.Flags().Float64VarP(&unitLoadWeight, "weight", "w", 0, "Cable unit weight (lb/ft)")
	unitLoadCmd.Flags().StringVarP(&unitLoadFile, "file", "f", "", "Take the cable from a line cable file")
	unitLoadWeather.register(unitLoadCmd)

	unitLoadCmd.Flags().BoolVar(&unitLoadMetric, "metric", false, "Input in mm, N/m, Pa and °C")
	unitLoadCmd.Flags().BoolVar(&unitLoadStrict, "strict", false, "Reject weathercases outside the recommended range")
	unitLoadCmd.Flags().BoolVarP(&unitLoadAll, "all", "a", false, "Show every NESC loading district and the governing one")
}

func runUnitLoad(cmd *cobra.Command, args []string) error {
	calculator, err := unitLoadCalculator()
	if err != nil {
		return err
	}
	calculator.IsIncludedWarnings = unitLoadStrict

	if unitLoadAll {
		return printDistricts(calculator)
	}

	weather := unitLoadWeather
	if unitLoadMetric && weather.district == "" {
		weather.ice = units.ConvertLength(units.ConvertLength(weather.ice/1000, units.MetersToFeet), units.FeetToInches)
		weather.wind = units.ConvertStress(weather.wind, units.PascalToPsf)
		weather.temperature = units.ConvertTemperature(weather.temperature, units.CelsiusToFahrenheit)
	}
	weathercase, err := weather.weathercase()
	if err != nil {
		return err
	}

	messages := &validation.Messages{}
	if !weathercase.Validate(true, messages) {
		for _, message := range messages.Items() {
			log.Warnf("%s", message)
		}
	}

	load, err := calculator.UnitCableLoad(weathercase)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CABLE UNIT LOAD")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Cable diameter:\t%.3f in\n", units.ConvertLength(calculator.DiameterCable, units.FeetToInches))
	fmt.Fprintf(w, "  Cable weight:\t%.3f lb/ft\n", calculator.WeightUnitCable)
	fmt.Fprintf(w, "  Weathercase:\t%s\n", weathercase.Description)
	fmt.Fprintf(w, "  Ice thickness:\t%.3f in\n", units.ConvertLength(weathercase.ThicknessIce, units.FeetToInches))
	fmt.Fprintf(w, "  Ice density:\t%.1f lb/ft³\n", weathercase.DensityIce)
	fmt.Fprintf(w, "  Wind pressure:\t%.2f psf\n", weathercase.PressureWind)
	w.Flush()
	fmt.Println()

	fmt.Println("UNIT LOAD:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Horizontal (wind):\t%.4f lb/ft\t%.3f N/m\n", load.X, units.ConvertWeightUnit(load.X, false))
	fmt.Fprintf(w, "  Vertical (weight + ice):\t%.4f lb/ft\t%.3f N/m\n", load.Y, units.ConvertWeightUnit(load.Y, false))
	fmt.Fprintf(w, "  Resultant:\t%.4f lb/ft\t%.3f N/m\n", load.Magnitude(), units.ConvertWeightUnit(load.Magnitude(), false))
	fmt.Fprintf(w, "  Swing angle:\t%.2f°\n", units.ConvertAngle(math.Atan2(load.X, load.Y), units.RadiansToDegrees))
	w.Flush()
	fmt.Println()

	return nil
}

func unitLoadCalculator() (*transmissionline.CableUnitLoadCalculator, error) {
	if unitLoadFile != "" {
		lineCable, _, err := loadLineCable(unitLoadFile)
		if err != nil {
			return nil, err
		}
		return transmissionline.NewCableUnitLoadCalculator(lineCable.Cable), nil
	}

	diameter := units.ConvertLength(unitLoadDiameter, units.InchesToFeet)
	weight := unitLoadWeight
	if unitLoadMetric {
		diameter = units.ConvertLength(unitLoadDiameter/1000, units.MetersToFeet)
		weight = units.ConvertWeightUnit(unitLoadWeight, true)
	}
	return &transmissionline.CableUnitLoadCalculator{
		DiameterCable:   diameter,
		WeightUnitCable: weight,
	}, nil
}

func printDistricts(calculator *transmissionline.CableUnitLoadCalculator) error {
	governingLoad, governing, err := nesc.GoverningDistrict(calculator, nesc.LoadingDistricts)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     NESC LOADING DISTRICTS - RULE 250B")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  District\tIce (in)\tWind (psf)\tTemp (°F)\tK (lb/ft)\tLoad (lb/ft)\t\n")
	fmt.Fprintf(w, "  ────────\t────────\t──────────\t─────────\t─────────\t────────────\t\n")
	for _, district := range nesc.LoadingDistricts {
		load, err := district.UnitLoadResultant(calculator)
		if err != nil {
			return err
		}
		marker := ""
		if district.ID == governing.ID {
			marker = "◄ GOVERNS"
		}
		fmt.Fprintf(w, "  %s\t%.2f\t%.0f\t%.0f\t%.2f\t%.4f\t%s\n",
			district.ID, district.ThicknessIce, district.PressureWind, district.Temperature,
			district.ConstantK, load, marker)
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  Governing: %s (%.4f lb/ft)\n", governing.Description, governingLoad)
	fmt.Println()

	return nil
}
