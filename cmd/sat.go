package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosteam/internal/diagram"
	"github.com/alexiusacademia/gosteam/internal/steam"
	"github.com/spf13/cobra"
)

var (
	satPressure    float64
	satTemperature float64
	satCurve       bool
)

var satCmd = &cobra.Command{
	Use:   "sat",
	Short: "Saturated liquid and vapour states",
	Long: `Compute the saturated liquid and vapour states on the saturation line
(region 4) at a given temperature or pressure.

Up to 623.15 K the phases are evaluated with regions 1 and 2. Between
623.15 K and the critical point both phases are region 3 states.

Examples:
  gosteam sat -t 373.15
  gosteam sat -p 1
  gosteam sat -t 645
  gosteam sat --curve`,
	Run: runSat,
}

func init() {
	rootCmd.AddCommand(satCmd)

	satCmd.Flags().Float64VarP(&satPressure, "pressure", "p", 0, "Saturation pressure (MPa)")
	satCmd.Flags().Float64VarP(&satTemperature, "temperature", "t", 0, "Saturation temperature (K)")
	satCmd.MarkFlagsMutuallyExclusive("pressure", "temperature")
	satCmd.Flags().BoolVar(&satCurve, "curve", false, "Graph the saturation pressure over the whole saturation line")
}

func runSat(cmd *cobra.Command, args []string) {
	if satCurve {
		g, err := diagram.DrawASCIISaturationCurve(diagram.DefaultSaturationCurve())
		if err != nil {
			fmt.Printf("Error drawing saturation curve: %v\n", err)
			return
		}
		fmt.Println()
		fmt.Println(g)
		fmt.Println()
		return
	}

	byP := cmd.Flags().Changed("pressure")
	byT := cmd.Flags().Changed("temperature")
	if err := requireOne([]string{"pressure", "temperature"}, []bool{byP, byT}); err != nil {
		fmt.Printf("Invalid input: %v\n", err)
		return
	}

	var (
		sat steam.Saturation
		err error
	)
	if byP {
		sat, err = steam.SaturationAtP(satPressure)
	} else {
		sat, err = steam.SaturationAtT(satTemperature)
	}
	if err != nil {
		fmt.Printf("Error computing saturation: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("             SATURATION STATE - IAPWS-IF97")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Saturation pressure:\t%.9g MPa\n", sat.P)
	fmt.Fprintf(w, "  Saturation temperature:\t%.9g K\n", sat.T)
	w.Flush()
	fmt.Println()

	l, v := sat.Liquid, sat.Vapour
	fmt.Println("PHASES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Property\tLiquid\tVapour\tUnit\n")
	fmt.Fprintf(w, "  ────────\t──────\t──────\t────\n")
	fmt.Fprintf(w, "  Region\t%d\t%d\t\n", l.Region, v.Region)
	fmt.Fprintf(w, "  v\t%.6e\t%.6e\tm³/kg\n", l.V, v.V)
	fmt.Fprintf(w, "  ρ\t%.6f\t%.6f\tkg/m³\n", l.Rho, v.Rho)
	fmt.Fprintf(w, "  u\t%.4f\t%.4f\tkJ/kg\n", l.U, v.U)
	fmt.Fprintf(w, "  h\t%.4f\t%.4f\tkJ/kg\n", l.H, v.H)
	fmt.Fprintf(w, "  s\t%.6f\t%.6f\tkJ/(kg·K)\n", l.S, v.S)
	fmt.Fprintf(w, "  cp\t%.6f\t%.6f\tkJ/(kg·K)\n", l.Cp, v.Cp)
	fmt.Fprintf(w, "  cv\t%.6f\t%.6f\tkJ/(kg·K)\n", l.Cv, v.Cv)
	fmt.Fprintf(w, "  w\t%.4f\t%.4f\tm/s\n", l.W, v.W)
	w.Flush()
	fmt.Println()

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Latent heat (h_fg):\t%.4f kJ/kg\n", v.H-l.H)
	fmt.Fprintf(w, "  Entropy of vaporization (s_fg):\t%.6f kJ/(kg·K)\n", v.S-l.S)
	w.Flush()
	fmt.Println()
}
