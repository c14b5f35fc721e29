package form

import (
	"errors"
	"strings"
	"testing"

	"github.com/misterclayt0n/liftcalc/internal/units"
)

func TestLiftFormRecompute(t *testing.T) {
	f := NewLiftForm(units.KG, Parser{})
	f.Set(FieldWeight, "100")
	f.Set("bf", "20")
	f.Set(FieldTarget, "80")

	lines := f.Recompute()
	if lines[0] != "Lean Body Mass: 80.0 kg" || lines[1] != "Target Lift Weight: 64.0 kg" {
		t.Fatalf("unexpected lines: %v", lines)
	}

	if err := f.Set(FieldDumbbell, "on"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := f.Recompute()[1]; got != "Target Lift Weight: 32.0 kg" {
		t.Fatalf("expected dumbbell target 32.0 kg, got %q", got)
	}
}

func TestLiftFormEmptyField(t *testing.T) {
	f := NewLiftForm(units.KG, Parser{})
	f.Set(FieldWeight, "100")
	f.Set(FieldBodyFat, "")

	for _, l := range f.Recompute() {
		if !strings.HasSuffix(l, "—") {
			t.Fatalf("expected placeholder, got %q", l)
		}
	}
}

func TestLiftFormSwitchUnit(t *testing.T) {
	f := NewLiftForm(units.KG, Parser{})
	f.Set(FieldWeight, "100")
	f.Set(FieldBodyFat, "20")
	f.Set(FieldTarget, "80")

	if err := f.Set(FieldUnit, "lbs"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Weight != "220.5" {
		t.Fatalf("expected weight field 220.5, got %q", f.Weight)
	}
	if f.Target != "80" {
		t.Fatalf("expected target percent untouched, got %q", f.Target)
	}
	if got := f.Recompute()[0]; got != "Lean Body Mass: 176.4 lbs" {
		t.Fatalf("expected 176.4 lbs, got %q", got)
	}

	f.SwitchUnit(units.KG)
	if f.Weight != "100.0" {
		t.Fatalf("expected weight field back at 100.0, got %q", f.Weight)
	}
}

func TestLiftFormSwitchUnitKeepsUnreadable(t *testing.T) {
	f := NewLiftForm(units.KG, Parser{})
	f.Set(FieldWeight, "heavy")
	f.SwitchUnit(units.LBS)

	if f.Weight != "heavy" || f.Unit != units.LBS {
		t.Fatalf("expected unreadable field kept and unit switched, got %q %s", f.Weight, f.Unit)
	}
}

func TestLiftFormUnknownField(t *testing.T) {
	f := NewLiftForm(units.KG, Parser{})
	if err := f.Set("reps", "5"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if err := f.Set(FieldUnit, "stone"); !errors.Is(err, units.ErrUnknownUnit) {
		t.Fatalf("expected ErrUnknownUnit, got %v", err)
	}
	if err := f.Set(FieldDumbbell, "maybe"); err == nil {
		t.Fatalf("expected an error for an invalid toggle")
	}
}

func TestRPEFormRecompute(t *testing.T) {
	f := NewRPEForm(units.KG, Parser{})
	f.Set(FieldWeight, "100")
	f.Set(FieldEffort, "8")
	f.Set(FieldReps, "5")

	if got := f.Recompute()[0]; got != "Estimated 1RM: 131.6 kg" {
		t.Fatalf("expected 131.6 kg, got %q", got)
	}

	f.Set(FieldEffort, "8.7")
	if got := f.Recompute()[0]; got != "Estimated 1RM: —" {
		t.Fatalf("expected placeholder, got %q", got)
	}
}

func TestRPEFormSwitchUnit(t *testing.T) {
	f := NewRPEForm(units.KG, Parser{})
	f.Set(FieldWeight, "100")
	f.Set(FieldEffort, "10")
	f.Set(FieldReps, "1")
	f.SwitchUnit(units.LBS)

	if got := f.Recompute()[0]; got != "Estimated 1RM: 220.5 lbs" {
		t.Fatalf("expected 220.5 lbs, got %q", got)
	}
}

func TestSessionApply(t *testing.T) {
	s := NewSession(units.KG, units.KG, Parser{})

	steps := []struct {
		line string
		form string
		last string
	}{
		{"weight 100", TargetLift, "Target Lift Weight: —"},
		{"bf 20", TargetLift, "Target Lift Weight: —"},
		{"target=80", TargetLift, "Target Lift Weight: 64.0 kg"},
		{"rpe.weight 100", TargetRPE, "Estimated 1RM: —"},
		{"reps 5", TargetRPE, "Estimated 1RM: —"},
		{"rpe 8", TargetRPE, "Estimated 1RM: 131.6 kg"},
		{"lift.unit lbs", TargetLift, "Target Lift Weight: 141.1 lbs"},
	}

	for _, st := range steps {
		u, err := s.Apply(st.line)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", st.line, err)
		}
		if u.Form != st.form {
			t.Fatalf("%q: expected form %s, got %s", st.line, st.form, u.Form)
		}
		if got := u.Lines[len(u.Lines)-1]; got != st.last {
			t.Fatalf("%q: expected %q, got %q", st.line, st.last, got)
		}
	}

	if s.RPE.Unit != units.KG {
		t.Fatalf("expected the rpe unit to stay kg, got %s", s.RPE.Unit)
	}
	if len(s.Snapshot()) != 3 {
		t.Fatalf("expected three display lines")
	}
}

func TestSessionApplyErrors(t *testing.T) {
	s := NewSession(units.KG, units.KG, Parser{})

	if _, err := s.Apply("   "); err == nil {
		t.Fatalf("expected an error for an empty line")
	}
	if _, err := s.Apply("squat.weight 100"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}
