package calc

import (
	"math"
	"math/big"
	"strconv"

	"github.com/misterclayt0n/liftcalc/internal/units"
)

// Placeholder is what a display field shows when its inputs are insufficient.
const Placeholder = "—"

var half = big.NewFloat(0.5)

// FormatFixed1 renders v with exactly one decimal. Rounding works on the
// exact binary value of v and resolves ties away from zero, so 0.25 gives
// "0.3" while 1.45 (stored as 1.4499...) gives "1.4".
func FormatFixed1(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}

	x := new(big.Float).SetPrec(256).SetFloat64(math.Abs(v))
	x.Mul(x, big.NewFloat(10))

	n, _ := x.Int(nil)
	frac := new(big.Float).SetPrec(256).SetInt(n)
	frac.Sub(x, frac)
	if frac.Cmp(half) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	digits := n.String()
	if len(digits) < 2 {
		digits = "0" + digits
	}
	out := digits[:len(digits)-1] + "." + digits[len(digits)-1:]
	if v < 0 {
		out = "-" + out
	}
	return out
}

// label renders "<label>: <value> <unit>" or "<label>: —" when value is nil.
func label(name string, value *float64, unit units.Unit) string {
	if value == nil {
		return name + ": " + Placeholder
	}
	return name + ": " + FormatFixed1(*value) + " " + unit.String()
}
