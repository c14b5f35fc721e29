package units

import (
	"errors"
	"fmt"
	"strings"
)

// KgToLbs is the fixed ratio between the two supported mass units.
const KgToLbs = 2.20462

type Unit string

const (
	KG  Unit = "kg"
	LBS Unit = "lbs"
)

var ErrUnknownUnit = errors.New("unknown unit")

func (u Unit) String() string {
	return string(u)
}

func (u Unit) Valid() bool {
	return u == KG || u == LBS
}

// Other returns the opposite unit. Anything that is not lbs is treated as kg.
func (u Unit) Other() Unit {
	if u == LBS {
		return KG
	}
	return LBS
}

// ParseUnit accepts kg/kgs and lb/lbs in any case.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kg", "kgs":
		return KG, nil
	case "lb", "lbs":
		return LBS, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// Convert scales value into toUnit: multiply for lbs, divide otherwise.
func Convert(value float64, toUnit Unit) float64 {
	if toUnit == LBS {
		return value * KgToLbs
	}
	return value / KgToLbs
}

// ConvertFrom converts value expressed in from into to. Same-unit
// conversions return value untouched.
func ConvertFrom(value float64, from, to Unit) float64 {
	if from == to || from == "" {
		return value
	}
	return Convert(value, to)
}
