package form

import (
	"fmt"

	"github.com/misterclayt0n/liftcalc/internal/calc"
	"github.com/misterclayt0n/liftcalc/internal/models"
	"github.com/misterclayt0n/liftcalc/internal/units"
)

// Evaluate runs every scenario in file through a fresh form. Scenarios
// without a unit use the given defaults. A bad unit fails only its own
// scenario, which is reported with a placeholder and a warning.
func Evaluate(file *models.ScenarioFile, liftUnit, rpeUnit units.Unit, p Parser) []models.ScenarioOutcome {
	out := make([]models.ScenarioOutcome, 0, len(file.Lift)+len(file.RPE))

	for i, sc := range file.Lift {
		o := models.ScenarioOutcome{Kind: TargetLift, Name: scenarioName(sc.Name, TargetLift, i)}

		unit, err := unitOr(sc.Unit, liftUnit)
		if err != nil {
			o.Lines = calc.Lift(calc.LiftInput{}).Lines()
			o.Warning = err.Error()
			out = append(out, o)
			continue
		}
		weightUnit, err := unitOr(sc.WeightUnit, unit)
		if err != nil {
			o.Lines = calc.Lift(calc.LiftInput{}).Lines()
			o.Warning = err.Error()
			out = append(out, o)
			continue
		}

		res := calc.Lift(calc.LiftInput{
			Weight:        p.Float(string(sc.Weight)),
			WeightUnit:    weightUnit,
			BodyFat:       p.Float(string(sc.BodyFat)),
			TargetPercent: p.Float(string(sc.TargetPercent)),
			Dumbbell:      sc.Dumbbell,
			Unit:          unit,
		})
		o.Lines = res.Lines()
		if res.NonPositiveLBM {
			o.Warning = "body fat of 100% or more leaves no lean body mass"
		}
		out = append(out, o)
	}

	for i, sc := range file.RPE {
		o := models.ScenarioOutcome{Kind: TargetRPE, Name: scenarioName(sc.Name, TargetRPE, i)}

		unit, err := unitOr(sc.Unit, rpeUnit)
		if err != nil {
			o.Lines = []string{calc.EstimateOneRM(calc.RPEInput{}).Text()}
			o.Warning = err.Error()
			out = append(out, o)
			continue
		}

		f := NewRPEForm(unit, p)
		f.Weight, f.Effort, f.Reps = string(sc.Weight), string(sc.RPE), string(sc.Reps)
		o.Lines = f.Recompute()
		out = append(out, o)
	}

	return out
}

func unitOr(raw string, def units.Unit) (units.Unit, error) {
	if raw == "" {
		return def, nil
	}
	return units.ParseUnit(raw)
}

func scenarioName(name, kind string, i int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("%s #%d", kind, i+1)
}
