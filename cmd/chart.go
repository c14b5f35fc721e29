package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftcalc/internal/calc"
	"github.com/spf13/cobra"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Print the RPE chart used for 1RM estimates",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		printBoxedHeader(out, "RPE CHART")

		efforts := calc.Efforts()
		header := fmt.Sprintf("%-5s", "Reps")
		for _, e := range efforts {
			header += fmt.Sprintf(" | %-5s", "@"+fmt.Sprint(e))
		}
		fmt.Fprintln(out, boldCyan(header))
		fmt.Fprintln(out, strings.Repeat("─", len(header)))

		for reps := 1; reps <= calc.MaxReps; reps++ {
			line := yellow(fmt.Sprintf("%-5d", reps))
			for _, c := range calc.ChartRow(reps) {
				line += fmt.Sprintf(" | %-5.2f", c)
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chartCmd)
}
