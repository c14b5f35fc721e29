package form

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"
)

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
)

// Parser turns raw field text into numbers. A field that cannot be read is
// reported as nil, never as an error.
type Parser struct {
	// Expressions lets fields hold arithmetic such as "2*20+60".
	Expressions bool
}

// Float reads the leading number of raw, so "80kg" gives 80. Non-finite
// results are rejected.
func (p Parser) Float(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if p.Expressions {
		if v, ok := evaluate(raw); ok {
			return &v
		}
	}

	m := floatPrefix.FindString(raw)
	if m == "" {
		return nil
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// Int reads the leading integer of raw, so "5.5" gives 5.
func (p Parser) Int(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if p.Expressions {
		if v, ok := evaluate(raw); ok && math.Abs(v) <= math.MaxInt32 {
			i := int(math.Trunc(v))
			return &i
		}
	}

	m := intPrefix.FindString(raw)
	if m == "" {
		return nil
	}
	i, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &i
}

func evaluate(raw string) (float64, bool) {
	expr, err := govaluate.NewEvaluableExpression(raw)
	if err != nil {
		return 0, false
	}
	result, err := expr.Evaluate(nil)
	if err != nil {
		return 0, false
	}
	v, ok := result.(float64)
	if !ok || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
