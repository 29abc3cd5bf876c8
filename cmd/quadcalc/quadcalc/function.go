// cmd/quadcalc/quadcalc/function.go
package quadcalc

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ajroetker/go-quadrature/quad"
	"github.com/ajroetker/go-quadrature/quad/workerpool"
)

// builtins maps the integrand names accepted by --fn to their implementations.
var builtins = map[string]quad.Func[float64]{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"exp":   math.Exp,
	"log":   math.Log,
	"sqrt":  math.Sqrt,
	"gauss": func(x float64) float64 { return math.Exp(-x * x) },
}

// builtinNames returns the --fn names in stable order for help and errors.
func builtinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// functionCmd integrates a callable over a continuous interval.
var functionCmd = &cobra.Command{
	Use:   "function",
	Short: "Integrate a built-in or polynomial function over [lower, upper]",
	Long: `The 'function' command integrates a named built-in function, or a
polynomial given by its coefficients, over [lower, upper] using the composite
Simpson rule with the requested number of subdivisions. With --parallel the
subdivisions are split across a worker pool.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}

		n := viper.GetInt("subdivisions")
		if n < 1 {
			return fmt.Errorf("subdivisions must be at least 1, got %d", n)
		}

		name, _ := cmd.Flags().GetString("fn")
		coeffs, _ := cmd.Flags().GetString("coeffs")

		var f quad.Func[float64]
		label := name
		switch {
		case coeffs != "":
			cs, err := parseFloats(strings.Split(coeffs, ","))
			if err != nil {
				return fmt.Errorf("parsing --coeffs: %w", err)
			}
			f = polynomial(cs)
			label = "poly(" + coeffs + ")"
		case name != "":
			var ok bool
			f, ok = builtins[name]
			if !ok {
				return fmt.Errorf("unknown integrand %q (have %s)", name, strings.Join(builtinNames(), ", "))
			}
		default:
			return fmt.Errorf("one of --fn or --coeffs is required")
		}

		a, _ := cmd.Flags().GetFloat64("lower")
		b, _ := cmd.Flags().GetFloat64("upper")

		var result float64
		if parallel, _ := cmd.Flags().GetBool("parallel"); parallel {
			workers, _ := cmd.Flags().GetInt("workers")
			pool := workerpool.New(workers)
			defer pool.Close()
			result = quad.ParallelSimpson(pool, f, a, b, n)
		} else {
			result = quad.Simpson(f, a, b, n)
		}

		printResult(cmd, fmt.Sprintf("∫ %s over [%g, %g], n=%d", label, a, b, n), result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(functionCmd)

	functionCmd.Flags().String("fn", "", "built-in integrand: "+strings.Join(builtinNames(), ", "))
	functionCmd.Flags().String("coeffs", "", "polynomial coefficients c0,c1,... (lowest degree first); overrides --fn")
	functionCmd.Flags().Float64("lower", 0, "lower integration bound")
	functionCmd.Flags().Float64("upper", 1, "upper integration bound")
	functionCmd.Flags().Int("subdivisions", 1000, "number of equal sub-intervals")
	functionCmd.Flags().Bool("parallel", false, "evaluate sub-intervals on a worker pool")
	functionCmd.Flags().Int("workers", 0, "worker count for --parallel (0 = GOMAXPROCS)")

	viper.BindPFlag("subdivisions", functionCmd.Flags().Lookup("subdivisions"))
}

// parseFloats parses a list of decimal strings, trimming surrounding space.
func parseFloats(fields []string) ([]float64, error) {
	vals := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d (%q): %w", i+1, field, err)
		}
		vals[i] = v
	}
	return vals, nil
}

// polynomial returns the polynomial with the given coefficients, lowest
// degree first, evaluated by Horner's method.
func polynomial(coeffs []float64) quad.Func[float64] {
	return func(x float64) float64 {
		var y float64
		for i := len(coeffs) - 1; i >= 0; i-- {
			y = y*x + coeffs[i]
		}
		return y
	}
}
