package cmd

import (
	"fmt"

	"github.com/misterclayt0n/liftcalc/internal/calc"
	"github.com/misterclayt0n/liftcalc/internal/units"
	"github.com/spf13/cobra"
)

var convertTo string

var convertCmd = &cobra.Command{
	Use:   "convert [value]",
	Short: "Convert a body weight between kg and lbs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		to, err := units.ParseUnit(convertTo)
		if err != nil {
			return err
		}

		v := parser().Float(args[0])
		if v == nil {
			return fmt.Errorf("Invalid value %q. Must be a number", args[0])
		}

		out := units.Convert(*v, to)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s\n",
			calc.FormatFixed1(*v), to.Other(), valueLine(calc.FormatFixed1(out)+" "+to.String()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "lbs", "Target unit (kg or lbs)")
}
