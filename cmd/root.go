package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosag/internal/log"
	"github.com/alexiusacademia/gosag/internal/version"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "gosag",
	Short: "Transmission line sag-tension tool",
	Long: `gosag - Go Sag-Tension Calculator

A CLI tool for the sag-tension analysis of overhead transmission
line cables.

Starting from a known tension at one weathercase (the constraint), gosag
reloads the ruling span to any other ice, wind and temperature case in
the initial, after-load and after-creep conditions:
  - Unit loads from ice, wind and NESC loading districts
  - Core/shell elongation models with permanent stretch
  - Catenary sag, tension and blowout
  - Sag-tension tables exported to XLSX and PDF
  - Catenary profiles as ASCII graphs or PNG/SVG/PDF images

Values are in feet, pounds and degrees Fahrenheit unless a flag says
otherwise.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Init(debug)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosag v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Sag-Tension Calculator                               ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Unit loads and NESC loading districts")
		fmt.Println("    • Reloading in initial, load and creep conditions")
		fmt.Println("    • Sag-tension tables (XLSX, PDF)")
		fmt.Println("    • Catenary profiles (ASCII, PNG, SVG, PDF)")
		fmt.Println()
		fmt.Println("  Use 'gosag --help' to see available commands.")
		fmt.Println("  Use 'gosag sample > line.yaml' for a starting line cable file.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log solver stages")
}
