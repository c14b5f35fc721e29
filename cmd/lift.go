package cmd

import (
	"github.com/misterclayt0n/liftcalc/internal/calc"
	"github.com/misterclayt0n/liftcalc/internal/units"
	"github.com/spf13/cobra"
)

var (
	liftWeight     string
	liftBodyFat    string
	liftTarget     string
	liftDumbbell   bool
	liftUnit       string
	liftWeightUnit string
)

var liftCmd = &cobra.Command{
	Use:   "lift",
	Short: "Compute lean body mass and a target lift weight from body fat",
	RunE: func(cmd *cobra.Command, args []string) error {
		unit, err := unitFlag(liftUnit, cfg.Units.Lift)
		if err != nil {
			return err
		}
		weightUnit, err := unitFlag(liftWeightUnit, unit)
		if err != nil {
			return err
		}

		p := parser()
		res := calc.Lift(calc.LiftInput{
			Weight:        p.Float(liftWeight),
			WeightUnit:    weightUnit,
			BodyFat:       p.Float(liftBodyFat),
			TargetPercent: p.Float(liftTarget),
			Dumbbell:      liftDumbbell,
			Unit:          unit,
		})

		printLines(cmd.OutOrStdout(), res.Lines())
		if res.NonPositiveLBM {
			printWarning(cmd.ErrOrStderr(), "body fat of 100% or more leaves no lean body mass")
		}
		return nil
	},
}

// unitFlag parses a unit flag, falling back to def when the flag is empty.
func unitFlag(raw string, def units.Unit) (units.Unit, error) {
	if raw == "" {
		return def, nil
	}
	return units.ParseUnit(raw)
}

func init() {
	rootCmd.AddCommand(liftCmd)

	liftCmd.Flags().StringVarP(&liftWeight, "weight", "w", "", "Body weight")
	liftCmd.Flags().StringVarP(&liftBodyFat, "body-fat", "f", "", "Body fat percentage (0-100)")
	liftCmd.Flags().StringVarP(&liftTarget, "target", "p", "", "Percentage of lean body mass to lift")
	liftCmd.Flags().BoolVarP(&liftDumbbell, "dumbbell", "d", false, "Split the target lift across two dumbbells")
	liftCmd.Flags().StringVarP(&liftUnit, "unit", "u", "", "Display unit (kg or lbs), defaults to the configured lift unit")
	liftCmd.Flags().StringVar(&liftWeightUnit, "weight-unit", "", "Unit the body weight is given in, defaults to --unit")
}
