package calc

import (
	"math"
	"testing"
)

func TestFormatFixed1(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "0.0"},
		{64, "64.0"},
		{80.00000000000001, "80.0"},
		{100 / 0.76, "131.6"},
		{0.25, "0.3"},
		{1.05, "1.1"},
		{1.45, "1.4"},
		{-1.25, "-1.3"},
		{-0.04, "-0.0"},
		{999.96, "1000.0"},
	}

	for _, tt := range tests {
		if got := FormatFixed1(tt.in); got != tt.want {
			t.Fatalf("FormatFixed1(%v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
