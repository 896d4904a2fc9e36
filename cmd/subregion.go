package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosteam/internal/boundary"
	"github.com/alexiusacademia/gosteam/internal/diagram"
	"github.com/alexiusacademia/gosteam/internal/steam"
	"github.com/alexiusacademia/gosteam/internal/subregion"
	"github.com/spf13/cobra"
)

var (
	subregionPressure    float64
	subregionTemperature float64
	subregionLabel       string
	subregionShowMap     bool
)

var subregionCmd = &cobra.Command{
	Use:   "subregion",
	Short: "Classify a region 3 state and evaluate its backward volume",
	Long: `Classify a pressure and temperature in region 3 into one of the 26
subregions (a to z) and evaluate the backward equation v(p,T) of that
subregion.

Subregions u to z lie next to the critical point. Their backward
equations are only accurate enough to seed an iteration on the
Helmholtz equation; the converged density is shown alongside.

Use --label to force a subregion's backward equation.

Examples:
  gosteam subregion -p 25 -t 650
  gosteam subregion -p 22.3 -t 647.5 --map
  gosteam subregion -p 50 -t 630 --label 3a`,
	Run: runSubregion,
}

func init() {
	rootCmd.AddCommand(subregionCmd)

	subregionCmd.Flags().Float64VarP(&subregionPressure, "pressure", "p", 0, "Pressure (MPa) [required]")
	subregionCmd.Flags().Float64VarP(&subregionTemperature, "temperature", "t", 0, "Temperature (K) [required]")
	subregionCmd.MarkFlagRequired("pressure")
	subregionCmd.MarkFlagRequired("temperature")

	subregionCmd.Flags().StringVarP(&subregionLabel, "label", "l", "", "Evaluate this subregion's backward equation (a-z or 3a-3z)")
	subregionCmd.Flags().BoolVar(&subregionShowMap, "map", false, "Show the state on an ASCII subregion map")
}

func runSubregion(cmd *cobra.Command, args []string) {
	if err := errors.Join(
		requirePositive("pressure", subregionPressure),
		requirePositive("temperature", subregionTemperature),
	); err != nil {
		fmt.Printf("Invalid input: %v\n", err)
		return
	}
	p, T := subregionPressure, subregionTemperature

	if subregionLabel != "" {
		runForcedLabel(p, T)
		return
	}

	if r := steam.Locate(p, T); r != steam.Region3 {
		fmt.Printf("Error: p=%g MPa, T=%g K is in %s, not region 3\n", p, T, r)
		return
	}

	v, cl, err := subregion.Volume(p, T)
	if err != nil {
		fmt.Printf("Error classifying state: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          REGION 3 SUBREGION - IAPWS-IF97 (2014)")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("CLASSIFICATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Pressure (p):\t%.6g MPa\n", p)
	fmt.Fprintf(w, "  Temperature (T):\t%.6g K\n", T)
	fmt.Fprintf(w, "  Subregion:\t3%s\n", cl.Label)
	if cl.NearCritical {
		fmt.Fprintf(w, "  Near-critical:\tyes (backward volume seeds iteration only)\n")
	} else {
		fmt.Fprintf(w, "  Near-critical:\tno\n")
	}
	w.Flush()
	fmt.Println()

	fmt.Println("SPECIFIC VOLUME:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Backward v(p,T):\t%.9e m³/kg\n", v)
	fmt.Fprintf(w, "  Backward ρ:\t%.9g kg/m³\n", 1/v)
	d, err := steam.Density3(p, T)
	if err != nil {
		fmt.Fprintf(w, "  Iterated ρ:\tnot converged (%v)\n", err)
	} else {
		fmt.Fprintf(w, "  Iterated ρ:\t%.9g kg/m³\n", d.Rho)
		fmt.Fprintf(w, "  Secant iterations:\t%d\n", d.Iterations)
		fmt.Fprintf(w, "  Relative deviation:\t%.3e\n", (1/v-d.Rho)/d.Rho)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("SUBREGION BOUNDARIES AT THIS PRESSURE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Curve\tT (K)\n")
	fmt.Fprintf(w, "  ─────\t─────\n")
	for _, c := range boundary.Curves {
		if c.InRange(p) {
			fmt.Fprintf(w, "  T3%s\t%.6f\n", c.Name, c.At(p))
		}
	}
	w.Flush()
	fmt.Println()

	if subregionShowMap {
		showMap(p, T, true)
	}
}

func runForcedLabel(p, T float64) {
	l, err := subregion.ParseLabel(subregionLabel)
	if err != nil {
		fmt.Printf("Invalid input: %v\n", err)
		return
	}
	c, err := subregion.Lookup(l)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	v := c.Volume(p, T)
	lines := []string{
		fmt.Sprintf("p = %g MPa, T = %g K", p, T),
		fmt.Sprintf("v = %.9e m³/kg", v),
		fmt.Sprintf("ρ = %.9g kg/m³", 1/v),
	}
	fmt.Println()
	fmt.Print(diagram.DrawSummaryBox(fmt.Sprintf("BACKWARD EQUATION v3%s(p,T)", l), lines))
}
