package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosteam/internal/forward"
	"github.com/alexiusacademia/gosteam/internal/secant"
	"github.com/alexiusacademia/gosteam/internal/steam"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	propsPressure    float64
	propsTemperature float64
	propsFormat      string
	propsShowMap     bool
)

var propsCmd = &cobra.Command{
	Use:   "props",
	Short: "Evaluate properties at a pressure and temperature",
	Long: `Evaluate the thermodynamic properties of water or steam at a given
pressure and temperature.

The region is located first. Regions 1, 2 and 5 are evaluated directly
from their Gibbs free energy equations. In region 3 the density is found
by iterating on the Helmholtz equation, seeded by the backward equation
of the subregion the point falls in.

Examples:
  gosteam props -p 3 -t 300
  gosteam props -p 25 -t 650 --format yaml
  gosteam props -p 0.0035 -t 300 --map`,
	Run: runProps,
}

func init() {
	rootCmd.AddCommand(propsCmd)

	propsCmd.Flags().Float64VarP(&propsPressure, "pressure", "p", 0, "Pressure (MPa) [required]")
	propsCmd.Flags().Float64VarP(&propsTemperature, "temperature", "t", 0, "Temperature (K) [required]")
	propsCmd.MarkFlagRequired("pressure")
	propsCmd.MarkFlagRequired("temperature")

	propsCmd.Flags().StringVar(&propsFormat, "format", "text", "Output format: text or yaml")
	propsCmd.Flags().BoolVar(&propsShowMap, "map", false, "Show the state on an ASCII region map")
}

func runProps(cmd *cobra.Command, args []string) {
	if err := errors.Join(
		requirePositive("pressure", propsPressure),
		requirePositive("temperature", propsTemperature),
	); err != nil {
		fmt.Printf("Invalid input: %v\n", err)
		return
	}
	if propsFormat != "text" && propsFormat != "yaml" {
		fmt.Printf("Invalid input: %v\n", &ValidationError{msg: fmt.Sprintf("unknown format %q", propsFormat)})
		return
	}

	pt, err := steam.Properties(propsPressure, propsTemperature)
	var convErr *secant.ConvergenceError
	switch {
	case errors.As(err, &convErr):
		fmt.Printf("Warning: %v\n", err)
		fmt.Println("         properties below use the backward-equation density")
	case err != nil:
		fmt.Printf("Error evaluating properties: %v\n", err)
		return
	}

	if propsFormat == "yaml" {
		out, err := yaml.Marshal(pt)
		if err != nil {
			fmt.Printf("Error encoding yaml: %v\n", err)
			return
		}
		fmt.Print(string(out))
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          WATER AND STEAM PROPERTIES - IAPWS-IF97")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("STATE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Pressure (p):\t%.6g MPa\n", pt.P)
	fmt.Fprintf(w, "  Temperature (T):\t%.6g K\n", pt.T)
	fmt.Fprintf(w, "  Region:\t%d\n", pt.Region)
	if pt.Region == 3 {
		fmt.Fprintf(w, "  Subregion:\t%s\n", pt.Subregion)
		fmt.Fprintf(w, "  Density iterations:\t%d\n", pt.Iterations)
		if pt.NearCritical {
			fmt.Fprintf(w, "  Near-critical:\tyes\n")
		}
	}
	w.Flush()
	fmt.Println()

	printState(pt.State)

	if propsShowMap {
		showMap(pt.P, pt.T, pt.Region == 3)
	}
}

// printState prints the property table of a forward state.
func printState(s forward.State) {
	fmt.Println("PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Specific volume (v):\t%.9g\tm³/kg\n", s.V)
	fmt.Fprintf(w, "  Density (ρ):\t%.9g\tkg/m³\n", s.Rho)
	fmt.Fprintf(w, "  Internal energy (u):\t%.9g\tkJ/kg\n", s.U)
	fmt.Fprintf(w, "  Enthalpy (h):\t%.9g\tkJ/kg\n", s.H)
	fmt.Fprintf(w, "  Entropy (s):\t%.9g\tkJ/(kg·K)\n", s.S)
	fmt.Fprintf(w, "  Isobaric heat capacity (cp):\t%.9g\tkJ/(kg·K)\n", s.Cp)
	fmt.Fprintf(w, "  Isochoric heat capacity (cv):\t%.9g\tkJ/(kg·K)\n", s.Cv)
	fmt.Fprintf(w, "  Speed of sound (w):\t%.9g\tm/s\n", s.W)
	w.Flush()
	fmt.Println()
}
