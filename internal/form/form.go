// Package form holds the raw state of the two calculator forms and turns
// every field change into one recompute of the pure calculators.
package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/misterclayt0n/liftcalc/internal/calc"
	"github.com/misterclayt0n/liftcalc/internal/units"
)

// Field names accepted by Set.
const (
	FieldWeight   = "weight"
	FieldBodyFat  = "body-fat"
	FieldTarget   = "target"
	FieldDumbbell = "dumbbell"
	FieldEffort   = "rpe"
	FieldReps     = "reps"
	FieldUnit     = "unit"
)

var ErrUnknownField = errors.New("unknown field")

var aliases = map[string]string{
	"bf":       FieldBodyFat,
	"bodyfat":  FieldBodyFat,
	"body_fat": FieldBodyFat,
	"percent":  FieldTarget,
	"db":       FieldDumbbell,
	"effort":   FieldEffort,
}

func canonical(field string) string {
	field = strings.ToLower(strings.TrimSpace(field))
	if a, ok := aliases[field]; ok {
		return a
	}
	return field
}

// LiftForm is the lift calculator's input surface. Weight is always
// expressed in Unit.
type LiftForm struct {
	Weight   string
	BodyFat  string
	Target   string
	Dumbbell bool
	Unit     units.Unit

	parser Parser
}

func NewLiftForm(unit units.Unit, p Parser) *LiftForm {
	if !unit.Valid() {
		unit = units.KG
	}
	return &LiftForm{Unit: unit, parser: p}
}

func (f *LiftForm) Set(field, raw string) error {
	switch canonical(field) {
	case FieldWeight:
		f.Weight = raw
	case FieldBodyFat:
		f.BodyFat = raw
	case FieldTarget:
		f.Target = raw
	case FieldDumbbell:
		b, err := parseToggle(raw)
		if err != nil {
			return err
		}
		f.Dumbbell = b
	case FieldUnit:
		u, err := units.ParseUnit(raw)
		if err != nil {
			return err
		}
		f.SwitchUnit(u)
	default:
		return fmt.Errorf("%w %q for lift form", ErrUnknownField, field)
	}
	return nil
}

// SwitchUnit rewrites the weight field in the new unit. Percent fields are
// unit-free and stay as typed.
func (f *LiftForm) SwitchUnit(u units.Unit) {
	if u == f.Unit {
		return
	}
	f.Weight = convertField(f.parser, f.Weight, u)
	f.Unit = u
}

func (f *LiftForm) Input() calc.LiftInput {
	return calc.LiftInput{
		Weight:        f.parser.Float(f.Weight),
		WeightUnit:    f.Unit,
		BodyFat:       f.parser.Float(f.BodyFat),
		TargetPercent: f.parser.Float(f.Target),
		Dumbbell:      f.Dumbbell,
		Unit:          f.Unit,
	}
}

func (f *LiftForm) Result() calc.LiftResult {
	return calc.Lift(f.Input())
}

// Recompute returns the lean body mass and target lift display lines.
func (f *LiftForm) Recompute() []string {
	return f.Result().Lines()
}

// RPEForm is the 1RM estimator's input surface.
type RPEForm struct {
	Weight string
	Effort string
	Reps   string
	Unit   units.Unit

	parser Parser
}

func NewRPEForm(unit units.Unit, p Parser) *RPEForm {
	if !unit.Valid() {
		unit = units.KG
	}
	return &RPEForm{Unit: unit, parser: p}
}

func (f *RPEForm) Set(field, raw string) error {
	switch canonical(field) {
	case FieldWeight:
		f.Weight = raw
	case FieldEffort:
		f.Effort = raw
	case FieldReps:
		f.Reps = raw
	case FieldUnit:
		u, err := units.ParseUnit(raw)
		if err != nil {
			return err
		}
		f.SwitchUnit(u)
	default:
		return fmt.Errorf("%w %q for rpe form", ErrUnknownField, field)
	}
	return nil
}

func (f *RPEForm) SwitchUnit(u units.Unit) {
	if u == f.Unit {
		return
	}
	f.Weight = convertField(f.parser, f.Weight, u)
	f.Unit = u
}

func (f *RPEForm) Input() calc.RPEInput {
	return calc.RPEInput{
		Weight: f.parser.Float(f.Weight),
		Effort: f.parser.Float(f.Effort),
		Reps:   f.parser.Int(f.Reps),
		Unit:   f.Unit,
	}
}

func (f *RPEForm) Result() calc.RPEResult {
	return calc.EstimateOneRM(f.Input())
}

func (f *RPEForm) Recompute() []string {
	return []string{f.Result().Text()}
}

// convertField converts a readable mass field to u with one decimal and
// leaves anything unreadable untouched.
func convertField(p Parser, raw string, u units.Unit) string {
	v := p.Float(raw)
	if v == nil {
		return raw
	}
	return calc.FormatFixed1(units.Convert(*v, u))
}

func parseToggle(raw string) (bool, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	switch raw {
	case "", "on", "yes", "y":
		return true, nil
	case "off", "no", "n":
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid toggle value %q", raw)
	}
	return b, nil
}
