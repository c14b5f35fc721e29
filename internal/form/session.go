package form

import (
	"fmt"
	"strings"

	"github.com/misterclayt0n/liftcalc/internal/units"
)

const (
	TargetLift = "lift"
	TargetRPE  = "rpe"
)

// Session owns one lift form and one RPE form. Each has its own unit.
type Session struct {
	Lift *LiftForm
	RPE  *RPEForm
}

func NewSession(liftUnit, rpeUnit units.Unit, p Parser) *Session {
	return &Session{
		Lift: NewLiftForm(liftUnit, p),
		RPE:  NewRPEForm(rpeUnit, p),
	}
}

// Update is the outcome of one applied input line.
type Update struct {
	Form  string
	Lines []string
}

// Apply handles a line of the form "<field> <value>". Fields may be
// prefixed with "lift." or "rpe."; unprefixed fields go to the lift form,
// except reps which only exists on the RPE form. The value may be empty to
// clear a field. Exactly the touched form is recomputed.
func (s *Session) Apply(line string) (Update, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Update{}, fmt.Errorf("empty input")
	}

	field, raw, _ := strings.Cut(line, " ")
	if k, v, ok := strings.Cut(field, "="); ok {
		field, raw = k, v
	}
	raw = strings.TrimSpace(raw)

	target := TargetLift
	if prefix, rest, ok := strings.Cut(field, "."); ok {
		target, field = strings.ToLower(prefix), rest
	} else if canonical(field) == FieldReps || canonical(field) == FieldEffort {
		target = TargetRPE
	}

	switch target {
	case TargetLift:
		if err := s.Lift.Set(field, raw); err != nil {
			return Update{}, err
		}
		return Update{Form: TargetLift, Lines: s.Lift.Recompute()}, nil
	case TargetRPE:
		if err := s.RPE.Set(field, raw); err != nil {
			return Update{}, err
		}
		return Update{Form: TargetRPE, Lines: s.RPE.Recompute()}, nil
	}
	return Update{}, fmt.Errorf("%w %q: no form named %q", ErrUnknownField, field, target)
}

// Snapshot recomputes both forms.
func (s *Session) Snapshot() []string {
	return append(s.Lift.Recompute(), s.RPE.Recompute()...)
}
