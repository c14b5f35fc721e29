package cmd

import (
	"fmt"

	"github.com/misterclayt0n/liftcalc/internal/calc"
	"github.com/spf13/cobra"
)

var (
	rpeWeight string
	rpeEffort string
	rpeReps   string
	rpeUnit   string
	rpeEpley  bool
)

var rpeCmd = &cobra.Command{
	Use:   "rpe",
	Short: "Estimate a one-rep max from a set's weight, reps and RPE",
	RunE: func(cmd *cobra.Command, args []string) error {
		unit, err := unitFlag(rpeUnit, cfg.Units.RPE)
		if err != nil {
			return err
		}

		p := parser()
		in := calc.RPEInput{
			Weight: p.Float(rpeWeight),
			Effort: p.Float(rpeEffort),
			Reps:   p.Int(rpeReps),
			Unit:   unit,
		}
		res := calc.EstimateOneRM(in)

		out := cmd.OutOrStdout()
		printLines(out, []string{res.Text()})

		if rpeEpley && in.Weight != nil && in.Reps != nil {
			fmt.Fprintf(out, "  %s %s %s\n", warnLine("Epley:"), calc.FormatFixed1(calc.Epley(*in.Weight, *in.Reps)), unit)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rpeCmd)

	rpeCmd.Flags().StringVarP(&rpeWeight, "weight", "w", "", "Weight lifted in the set")
	rpeCmd.Flags().StringVarP(&rpeEffort, "rpe", "e", "", "Perceived effort (8, 8.5, 9, 9.5 or 10)")
	rpeCmd.Flags().StringVarP(&rpeReps, "reps", "r", "", "Reps performed (1-12)")
	rpeCmd.Flags().StringVarP(&rpeUnit, "unit", "u", "", "Unit of the weight and the estimate, defaults to the configured rpe unit")
	rpeCmd.Flags().BoolVar(&rpeEpley, "epley", false, "Also print the Epley formula estimate")
}
