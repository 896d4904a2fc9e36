package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/gosteam/internal/version"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gosteam",
	Short: "IAPWS-IF97 Water and Steam Properties",
	Long: `gosteam - Go Water and Steam Properties

A CLI tool for the thermodynamic properties of water and steam
based on the IAPWS Industrial Formulation 1997 (IAPWS-IF97).

This tool helps engineers:
  - Evaluate properties at a given pressure and temperature
  - Locate the region and region 3 subregion of a state
  - Compute saturated liquid and vapour states
  - Find the temperature from (p, h) or (p, s)
  - Check the implementation against the published verification values

Range of validity: 273.15 K to 1073.15 K up to 100 MPa,
and 1073.15 K to 2273.15 K up to 50 MPa.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosteam v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Water and Steam Properties (IAPWS-IF97)              ║")
		fmt.Printf("  ║   %s ©  %-*s║\n", version.Author, 52-len(version.Author), version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the thermodynamic properties of water and steam")
		fmt.Println("  based on the IAPWS Industrial Formulation 1997.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Properties in regions 1, 2, 3 and 5 from (p, T)")
		fmt.Println("    • Region 3 subregion classification and backward volumes")
		fmt.Println("    • Saturation states and T(p, h), T(p, s) inversions")
		fmt.Println("    • Region maps and phase diagrams")
		fmt.Println()
		fmt.Println("  Use 'gosteam --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log solver iterations to stderr")
}
