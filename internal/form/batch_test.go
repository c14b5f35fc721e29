package form

import (
	"strings"
	"testing"

	"github.com/misterclayt0n/liftcalc/internal/models"
	"github.com/misterclayt0n/liftcalc/internal/units"
)

func TestEvaluate(t *testing.T) {
	file := &models.ScenarioFile{
		Lift: []models.LiftScenarioTOML{
			{Name: "bench", Weight: "100", BodyFat: "20", TargetPercent: "80"},
			{Weight: "100", BodyFat: "20", TargetPercent: "80", Unit: "lbs", WeightUnit: "kg"},
			{Weight: "", BodyFat: "20"},
			{Weight: "80", BodyFat: "120"},
			{Weight: "80", BodyFat: "20", Unit: "stone"},
		},
		RPE: []models.RPEScenarioTOML{
			{Name: "squat", Weight: "100", RPE: "8", Reps: "5"},
			{Weight: "100", RPE: "8.7", Reps: "5"},
		},
	}

	out := Evaluate(file, units.KG, units.KG, Parser{})
	if len(out) != 7 {
		t.Fatalf("expected 7 outcomes, got %d", len(out))
	}

	if out[0].Name != "bench" || out[0].Lines[1] != "Target Lift Weight: 64.0 kg" {
		t.Fatalf("unexpected first outcome: %+v", out[0])
	}
	if out[1].Name != "lift #2" || out[1].Lines[0] != "Lean Body Mass: 176.4 lbs" {
		t.Fatalf("unexpected second outcome: %+v", out[1])
	}
	if !strings.HasSuffix(out[2].Lines[0], "—") || !strings.HasSuffix(out[2].Lines[1], "—") {
		t.Fatalf("expected placeholders for a blank weight, got %v", out[2].Lines)
	}
	if out[3].Warning == "" || out[3].Lines[0] != "Lean Body Mass: -16.0 kg" {
		t.Fatalf("expected a flagged negative lean body mass, got %+v", out[3])
	}
	if out[4].Warning == "" || !strings.HasSuffix(out[4].Lines[0], "—") {
		t.Fatalf("expected an invalid unit to fail only its own scenario, got %+v", out[4])
	}
	if out[5].Kind != TargetRPE || out[5].Lines[0] != "Estimated 1RM: 131.6 kg" {
		t.Fatalf("unexpected rpe outcome: %+v", out[5])
	}
	if out[6].Lines[0] != "Estimated 1RM: —" {
		t.Fatalf("expected placeholder for effort 8.7, got %v", out[6].Lines)
	}
}
