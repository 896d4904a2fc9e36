package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosteam/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	diagramOutput     string
	diagramSubregions bool
	diagramRows       int
	diagramCols       int
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Draw the region or region 3 subregion diagram",
	Long: `Draw the pressure-temperature diagram of the IAPWS-IF97 regions, or of
the region 3 subregions with --subregions.

Without --output an ASCII map is printed. With --output the diagram is
exported as an image; the format follows the extension (png, svg, pdf).

Examples:
  gosteam diagram
  gosteam diagram --subregions --rows 40 --cols 100
  gosteam diagram -o regions.png
  gosteam diagram --subregions -o subregions.svg`,
	Run: runDiagram,
}

func init() {
	rootCmd.AddCommand(diagramCmd)

	diagramCmd.Flags().StringVarP(&diagramOutput, "output", "o", "", "Export diagram to file (png, svg, pdf)")
	diagramCmd.Flags().BoolVar(&diagramSubregions, "subregions", false, "Draw the region 3 subregions")
	diagramCmd.Flags().IntVar(&diagramRows, "rows", 0, "Rows of the ASCII map (default depends on the map)")
	diagramCmd.Flags().IntVar(&diagramCols, "cols", 0, "Columns of the ASCII map (default depends on the map)")
}

func runDiagram(cmd *cobra.Command, args []string) {
	if diagramOutput != "" {
		export := diagram.ExportPhaseDiagram
		if diagramSubregions {
			export = diagram.ExportSubregionDiagram
		}
		if err := export(diagramOutput); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
		fmt.Printf("  Diagram exported to: %s\n", diagramOutput)
		return
	}

	draw := diagram.DrawASCIIRegionMap
	opts := diagram.DefaultRegionMap()
	if diagramSubregions {
		draw = diagram.DrawASCIISubregionMap
		opts = diagram.DefaultSubregionMap()
	}
	if diagramRows > 0 {
		opts.Rows = diagramRows
	}
	if diagramCols > 0 {
		opts.Cols = diagramCols
	}

	s, err := draw(opts)
	if err != nil {
		fmt.Printf("Error drawing map: %v\n", err)
		return
	}
	fmt.Print(s)
}
