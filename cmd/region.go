package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosteam/internal/boundary"
	"github.com/alexiusacademia/gosteam/internal/diagram"
	"github.com/alexiusacademia/gosteam/internal/iapws"
	"github.com/alexiusacademia/gosteam/internal/steam"
	"github.com/spf13/cobra"
)

var (
	regionPressure    float64
	regionTemperature float64
	regionShowMap     bool
)

var regionCmd = &cobra.Command{
	Use:   "region",
	Short: "Locate the IAPWS-IF97 region of a state",
	Long: `Locate the region (1, 2, 3, 4 or 5) of a pressure and temperature.

Region 4 is reported only for points on the saturation line. Points on
the B23 boundary belong to region 2.

Examples:
  gosteam region -p 10 -t 700
  gosteam region -p 0.1 -t 1500 --map`,
	Run: runRegion,
}

func init() {
	rootCmd.AddCommand(regionCmd)

	regionCmd.Flags().Float64VarP(&regionPressure, "pressure", "p", 0, "Pressure (MPa) [required]")
	regionCmd.Flags().Float64VarP(&regionTemperature, "temperature", "t", 0, "Temperature (K) [required]")
	regionCmd.MarkFlagRequired("pressure")
	regionCmd.MarkFlagRequired("temperature")

	regionCmd.Flags().BoolVar(&regionShowMap, "map", false, "Show the state on an ASCII region map")
}

func runRegion(cmd *cobra.Command, args []string) {
	if err := errors.Join(
		requirePositive("pressure", regionPressure),
		requirePositive("temperature", regionTemperature),
	); err != nil {
		fmt.Printf("Invalid input: %v\n", err)
		return
	}

	p, T := regionPressure, regionTemperature
	r := steam.Locate(p, T)

	lines := []string{
		fmt.Sprintf("p = %g MPa, T = %g K", p, T),
		fmt.Sprintf("Result: %s", r),
	}
	fmt.Println()
	fmt.Print(diagram.DrawSummaryBox("REGION", lines))
	fmt.Println()

	fmt.Println("BOUNDARIES AT THIS STATE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if T <= iapws.Tc {
		fmt.Fprintf(w, "  Saturation pressure psat(T):\t%.9g MPa\n", boundary.SaturationPressure(T))
	}
	if p >= boundary.SaturationPressure(iapws.TMin) && p <= iapws.Pc {
		fmt.Fprintf(w, "  Saturation temperature Tsat(p):\t%.9g K\n", boundary.SaturationTemperature(p))
	}
	if T >= iapws.T13 && T <= iapws.T23 {
		fmt.Fprintf(w, "  B23 pressure:\t%.9g MPa\n", boundary.B23Pressure(T))
	}
	w.Flush()
	fmt.Println()

	if regionShowMap {
		showMap(p, T, r == steam.Region3)
	}
}

// showMap prints the ASCII region map, or the subregion map for region 3
// states, with the state marked.
func showMap(p, T float64, subregions bool) {
	draw := diagram.DrawASCIIRegionMap
	opts := diagram.DefaultRegionMap()
	if subregions {
		draw = diagram.DrawASCIISubregionMap
		opts = diagram.DefaultSubregionMap()
	}
	opts.Mark = &diagram.Mark{P: p, T: T}

	s, err := draw(opts)
	if err != nil {
		fmt.Printf("Error drawing map: %v\n", err)
		return
	}
	fmt.Print(s)
}
