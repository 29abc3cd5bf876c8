// cmd/quadcalc/quadcalc/root.go
package quadcalc

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd is the base cobra command for the quadcalc application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "quadcalc",
	Short: "Composite Simpson quadrature from the command line",
	Long: `quadcalc computes definite integrals with the composite Simpson (1/3)
rule: built-in or polynomial integrands over an interval, (x, y) sample pairs
read from CSV, or uniformly spaced y samples with a fixed step.`,
}

// Execute runs the root cobra command and all registered subcommands. It
// prints any returned error and exits the process with a non-zero status
// code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file with defaults (JSON, e.g. quadcalc.json)")
	rootCmd.PersistentFlags().Int("precision", 12, "significant digits in printed results")
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("precision", rootCmd.PersistentFlags().Lookup("precision"))
}

// loadConfig reads defaults from the config file named by --config, if any.
// Explicit flags win over file values; no config file at all is fine.
func loadConfig() error {
	path := viper.GetString("config")
	if path == "" {
		return nil
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}
