package calc

import "github.com/misterclayt0n/liftcalc/internal/units"

const (
	LeanBodyMassLabel = "Lean Body Mass"
	TargetLiftLabel   = "Target Lift Weight"
)

// LiftInput is one snapshot of the lift calculator fields. Nil scalars are
// absent or unparseable.
type LiftInput struct {
	Weight        *float64
	WeightUnit    units.Unit // unit Weight is expressed in; empty means Unit
	BodyFat       *float64   // percent, 0-100
	TargetPercent *float64   // percent of lean body mass to lift
	Dumbbell      bool       // split the target across two hands
	Unit          units.Unit // display unit
}

type LiftResult struct {
	LeanBodyMass *float64
	TargetLift   *float64
	Unit         units.Unit

	// NonPositiveLBM is set when body fat is 100% or more. The value is
	// still reported as computed.
	NonPositiveLBM bool
}

// Lift derives lean body mass and the target lift from in.
func Lift(in LiftInput) LiftResult {
	res := LiftResult{Unit: displayUnit(in.Unit)}
	if in.Weight == nil || in.BodyFat == nil {
		return res
	}

	lbm := *in.Weight * (1 - *in.BodyFat/100)

	var target *float64
	if in.TargetPercent != nil {
		t := lbm * (*in.TargetPercent / 100)
		if in.Dumbbell {
			t /= 2
		}
		t = units.ConvertFrom(t, in.WeightUnit, res.Unit)
		target = &t
	}

	lbm = units.ConvertFrom(lbm, in.WeightUnit, res.Unit)
	res.LeanBodyMass = &lbm
	res.TargetLift = target
	res.NonPositiveLBM = lbm <= 0
	return res
}

func (r LiftResult) LeanBodyMassText() string {
	return label(LeanBodyMassLabel, r.LeanBodyMass, r.Unit)
}

func (r LiftResult) TargetLiftText() string {
	return label(TargetLiftLabel, r.TargetLift, r.Unit)
}

func displayUnit(u units.Unit) units.Unit {
	if u == "" {
		return units.KG
	}
	return u
}

// Lines returns both display strings, lean body mass first.
func (r LiftResult) Lines() []string {
	return []string{r.LeanBodyMassText(), r.TargetLiftText()}
}
