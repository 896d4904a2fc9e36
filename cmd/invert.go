package cmd

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gosteam/internal/diagram"
	"github.com/alexiusacademia/gosteam/internal/steam"
	"github.com/spf13/cobra"
)

var (
	invertPressure float64
	invertEnthalpy float64
	invertEntropy  float64
)

var invertCmd = &cobra.Command{
	Use:   "invert",
	Short: "Find the temperature from pressure and enthalpy or entropy",
	Long: `Find the temperature T(p,h) or T(p,s) by iterating on the forward
equations with the secant method.

Inside the two-phase dome the saturation temperature is reported with
the vapour quality.

Examples:
  gosteam invert -p 3 --enthalpy 115.331273
  gosteam invert -p 1 --entropy 6.5
  gosteam invert -p 1 --enthalpy 1500`,
	Run: runInvert,
}

func init() {
	rootCmd.AddCommand(invertCmd)

	invertCmd.Flags().Float64VarP(&invertPressure, "pressure", "p", 0, "Pressure (MPa) [required]")
	invertCmd.MarkFlagRequired("pressure")
	invertCmd.Flags().Float64Var(&invertEnthalpy, "enthalpy", 0, "Specific enthalpy (kJ/kg)")
	invertCmd.Flags().Float64Var(&invertEntropy, "entropy", 0, "Specific entropy (kJ/(kg·K))")
	invertCmd.MarkFlagsMutuallyExclusive("enthalpy", "entropy")
}

func runInvert(cmd *cobra.Command, args []string) {
	byH := cmd.Flags().Changed("enthalpy")
	byS := cmd.Flags().Changed("entropy")
	if err := errors.Join(
		requirePositive("pressure", invertPressure),
		requireOne([]string{"enthalpy", "entropy"}, []bool{byH, byS}),
	); err != nil {
		fmt.Printf("Invalid input: %v\n", err)
		return
	}

	p := invertPressure
	var (
		T     float64
		err   error
		given string
	)
	if byH {
		T, err = steam.TemperaturePH(p, invertEnthalpy)
		given = fmt.Sprintf("h = %g kJ/kg", invertEnthalpy)
	} else {
		T, err = steam.TemperaturePS(p, invertEntropy)
		given = fmt.Sprintf("s = %g kJ/(kg·K)", invertEntropy)
	}

	lines := []string{fmt.Sprintf("p = %g MPa, %s", p, given)}
	switch {
	case errors.Is(err, steam.ErrTwoPhase):
		lines = append(lines,
			fmt.Sprintf("T = %.6f K (saturation)", T),
			err.Error(),
		)
	case err != nil:
		fmt.Printf("Error inverting: %v\n", err)
		return
	default:
		lines = append(lines, fmt.Sprintf("T = %.6f K", T), fmt.Sprintf("Region: %s", steam.Locate(p, T)))
	}

	fmt.Println()
	fmt.Print(diagram.DrawSummaryBox("TEMPERATURE", lines))
	fmt.Println()
}
