// cmd/quadcalc/quadcalc/samples.go
package quadcalc

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-quadrature/quad"
)

// samplesCmd integrates a discretized function read from a CSV file.
var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Integrate (x, y) sample pairs read from a CSV file",
	Long: `The 'samples' command reads a two-column CSV file of (x, y) pairs and
integrates the discretized function with the composite Simpson rule. The x
values may be non-uniformly spaced but must be strictly monotonic, and at
least three samples are required. A non-numeric first row is treated as a
header and skipped.

With --dx the file is read as a single y column instead, with consecutive
values separated by the given constant step.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}

		path, _ := cmd.Flags().GetString("file")
		if path == "" {
			return fmt.Errorf("--file is required")
		}

		if dx, _ := cmd.Flags().GetFloat64("dx"); dx != 0 {
			y, err := readColumn(path)
			if err != nil {
				return err
			}
			if len(y) < 3 {
				return fmt.Errorf("need at least 3 samples, got %d", len(y))
			}
			result := quad.SimpsonUniformSlice(y, dx)
			printResult(cmd, fmt.Sprintf("∫ %s (%d samples, dx=%g)", path, len(y), dx), result)
			return nil
		}

		x, y, err := readSamples(path)
		if err != nil {
			return err
		}
		if len(x) < 3 {
			return fmt.Errorf("need at least 3 samples, got %d", len(x))
		}
		if err := checkMonotonic(x); err != nil {
			return err
		}

		result := quad.SimpsonSlices(x, y)
		printResult(cmd, fmt.Sprintf("∫ %s (%d samples)", path, len(x)), result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(samplesCmd)

	samplesCmd.Flags().StringP("file", "f", "", "CSV file of x,y pairs (or a single y column with --dx)")
	samplesCmd.Flags().Float64("dx", 0, "treat the file as one y column with this spacing (0 = paired x,y mode)")
}

// readSamples parses a two-column CSV file into x and y slices. The first
// row is skipped if it does not parse as numbers.
func readSamples(path string) (x, y []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	for i, rec := range records {
		vals, err := parseFloats(rec)
		if err != nil {
			if i == 0 {
				// header row
				continue
			}
			return nil, nil, fmt.Errorf("%s row %d: %w", path, i+1, err)
		}
		x = append(x, vals[0])
		y = append(y, vals[1])
	}
	return x, y, nil
}

// readColumn parses a single-column CSV file of y values. The first row is
// skipped if it does not parse as a number.
func readColumn(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var y []float64
	for i, rec := range records {
		vals, err := parseFloats(rec)
		if err != nil {
			if i == 0 {
				// header row
				continue
			}
			return nil, fmt.Errorf("%s row %d: %w", path, i+1, err)
		}
		y = append(y, vals[0])
	}
	return y, nil
}

// checkMonotonic rejects x values that are not strictly increasing or
// strictly decreasing.
func checkMonotonic(x []float64) error {
	increasing := x[1] > x[0]
	for i := 1; i < len(x); i++ {
		if increasing && x[i] <= x[i-1] || !increasing && x[i] >= x[i-1] {
			return fmt.Errorf("x values must be strictly monotonic: violation at sample %d", i+1)
		}
	}
	return nil
}
