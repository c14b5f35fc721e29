package calc

import "github.com/misterclayt0n/liftcalc/internal/units"

const (
	OneRMLabel = "Estimated 1RM"
	MaxReps    = 12
)

// efforts are the RPE columns of the chart, lowest first.
var efforts = [...]float64{8, 8.5, 9, 9.5, 10}

// rpeChart[reps-1][i] is the fraction of a 1RM that can be moved for reps
// repetitions at efforts[i].
var rpeChart = [MaxReps][len(efforts)]float64{
	{0.86, 0.89, 0.92, 0.96, 1.00},
	{0.84, 0.86, 0.89, 0.92, 0.96},
	{0.81, 0.84, 0.86, 0.89, 0.92},
	{0.79, 0.81, 0.84, 0.86, 0.89},
	{0.76, 0.79, 0.81, 0.84, 0.86},
	{0.74, 0.76, 0.79, 0.81, 0.84},
	{0.71, 0.74, 0.76, 0.79, 0.81},
	{0.69, 0.71, 0.74, 0.76, 0.79},
	{0.66, 0.69, 0.71, 0.74, 0.76},
	{0.64, 0.66, 0.69, 0.71, 0.74},
	{0.61, 0.64, 0.66, 0.69, 0.71},
	{0.59, 0.61, 0.64, 0.66, 0.69},
}

// Efforts returns the RPE values the chart has columns for.
func Efforts() []float64 {
	out := make([]float64, len(efforts))
	copy(out, efforts[:])
	return out
}

// Coefficient looks up the chart entry for reps at effort. Both keys must
// match exactly; there is no interpolation.
func Coefficient(reps int, effort float64) (float64, bool) {
	if reps < 1 || reps > MaxReps {
		return 0, false
	}
	for i, e := range efforts {
		if e == effort {
			return rpeChart[reps-1][i], true
		}
	}
	return 0, false
}

type RPEInput struct {
	Weight *float64 // in Unit
	Effort *float64
	Reps   *int
	Unit   units.Unit
}

type RPEResult struct {
	OneRM       *float64
	Coefficient float64
	Unit        units.Unit
}

// EstimateOneRM divides the lifted weight by its chart coefficient. The
// division happens in kg regardless of the display unit.
func EstimateOneRM(in RPEInput) RPEResult {
	res := RPEResult{Unit: displayUnit(in.Unit)}
	if in.Weight == nil || in.Effort == nil || in.Reps == nil {
		return res
	}

	ratio, ok := Coefficient(*in.Reps, *in.Effort)
	if !ok {
		return res
	}

	base := units.ConvertFrom(*in.Weight, res.Unit, units.KG)
	est := units.ConvertFrom(base/ratio, units.KG, res.Unit)

	res.OneRM = &est
	res.Coefficient = ratio
	return res
}

func (r RPEResult) Text() string {
	return label(OneRMLabel, r.OneRM, r.Unit)
}

// ChartRow returns the coefficients for reps in the order of Efforts, or nil
// when reps is outside the chart.
func ChartRow(reps int) []float64 {
	if reps < 1 || reps > MaxReps {
		return nil
	}
	row := rpeChart[reps-1]
	return row[:]
}
