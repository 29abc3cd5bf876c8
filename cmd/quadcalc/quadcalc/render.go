// cmd/quadcalc/quadcalc/render.go
package quadcalc

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// printResult writes one styled "label = value" line to the command's output
// writer, formatting the value with the configured number of significant
// digits.
func printResult(cmd *cobra.Command, label string, value float64) {
	precision := viper.GetInt("precision")
	if precision < 1 || precision > 17 {
		precision = 12
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		labelStyle.Render(label+" ="),
		resultStyle.Render(strconv.FormatFloat(value, 'g', precision, 64)))
}
