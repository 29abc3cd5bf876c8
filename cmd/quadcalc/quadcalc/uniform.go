// cmd/quadcalc/quadcalc/uniform.go
package quadcalc

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-quadrature/quad"
)

// uniformCmd integrates uniformly spaced y samples given on the command line.
var uniformCmd = &cobra.Command{
	Use:   "uniform [y values...]",
	Short: "Integrate uniformly spaced y samples with a fixed step",
	Long: `The 'uniform' command integrates y samples separated by a constant
step --dx with the composite Simpson rule. At least three values are
required; pass --dx -1 style negative steps for reversed domains.`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}

		dx, _ := cmd.Flags().GetFloat64("dx")
		if dx == 0 {
			return fmt.Errorf("--dx must be non-zero")
		}

		y, err := parseFloats(args)
		if err != nil {
			return fmt.Errorf("parsing y values: %w", err)
		}

		result := quad.SimpsonUniformSlice(y, dx)
		printResult(cmd, fmt.Sprintf("∫ %d samples, dx=%g", len(y), dx), result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uniformCmd)

	uniformCmd.Flags().Float64("dx", 1, "spacing between consecutive samples")
}
