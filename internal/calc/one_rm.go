package calc

// Epley estimates a 1RM with weight * (1 + reps/30).
func Epley(weight float64, reps int) float64 {
	if reps == 0 {
		return 0
	}

	return weight * (1 + float64(reps)/30)
}
