package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftcalc/internal/form"
	"github.com/misterclayt0n/liftcalc/internal/utils"
	"github.com/spf13/cobra"
)

var batchJSON bool

var batchCmd = &cobra.Command{
	Use:   "batch [scenarios-file]",
	Short: "Evaluate [[lift]] and [[rpe]] scenarios from a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := utils.ParseScenariosFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("Failed to read scenarios: %w", err)
		}

		outcomes := form.Evaluate(file, cfg.Units.Lift, cfg.Units.RPE, parser())

		out := cmd.OutOrStdout()
		if batchJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(outcomes)
		}

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		for i, o := range outcomes {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s %s\n", boldGreen(fmt.Sprintf("[%s]", o.Kind)), o.Name)
			printLines(out, o.Lines)
			if o.Warning != "" {
				printWarning(out, o.Warning)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "Print the results as JSON")
}
