package models

import (
	"fmt"
	"strconv"
)

//
// For TOML parsing only
//

// Field keeps a numeric value as raw text so that blank or non-numeric
// values reach the calculators the same way a typed field would. Both
// weight = 100 and weight = "100kg" decode.
type Field string

func (f *Field) UnmarshalTOML(v interface{}) error {
	switch x := v.(type) {
	case string:
		*f = Field(x)
	case int64:
		*f = Field(strconv.FormatInt(x, 10))
	case float64:
		*f = Field(strconv.FormatFloat(x, 'g', -1, 64))
	default:
		return fmt.Errorf("unsupported field value %v (%T)", v, v)
	}
	return nil
}

type LiftScenarioTOML struct {
	Name          string `toml:"name"`
	Weight        Field  `toml:"weight"`
	WeightUnit    string `toml:"weight_unit,omitempty"`
	BodyFat       Field  `toml:"body_fat"`
	TargetPercent Field  `toml:"target_percent,omitempty"`
	Dumbbell      bool   `toml:"dumbbell,omitempty"`
	Unit          string `toml:"unit,omitempty"`
}

type RPEScenarioTOML struct {
	Name   string `toml:"name"`
	Weight Field  `toml:"weight"`
	RPE    Field  `toml:"rpe"`
	Reps   Field  `toml:"reps"`
	Unit   string `toml:"unit,omitempty"`
}

type ScenarioFile struct {
	Lift []LiftScenarioTOML `toml:"lift"`
	RPE  []RPEScenarioTOML  `toml:"rpe"`
}

// ScenarioOutcome is one evaluated scenario, ready for display.
type ScenarioOutcome struct {
	Kind    string   `json:"kind"`
	Name    string   `json:"name"`
	Lines   []string `json:"lines"`
	Warning string   `json:"warning,omitempty"`
}
