package linview

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%f, %f, %f) = %f, want %f", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestFormatScalar(t *testing.T) {
	tests := []struct {
		v    float64
		prec int
		want string
	}{
		{1.5, 2, "1.50"},
		{-0.125, 3, "-0.125"},
		{0, 0, "0"},
		{math.NaN(), 2, "—"},
		{math.Inf(1), 2, "—"},
		{math.Inf(-1), 2, "—"},
	}
	for _, tt := range tests {
		if got := FormatScalar(tt.v, tt.prec); got != tt.want {
			t.Errorf("FormatScalar(%f, %d) = %q, want %q", tt.v, tt.prec, got, tt.want)
		}
	}
}

func TestParseScalarMalformedIsZero(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"2.5", 2.5},
		{" -3 ", -3},
		{"", 0},
		{"abc", 0},
		{"1.2.3", 0},
		{"NaN", 0},
		{"Inf", 0},
	}
	for _, tt := range tests {
		if got := ParseScalar(tt.in); got != tt.want {
			t.Errorf("ParseScalar(%q) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestGridModeCycle(t *testing.T) {
	if got := GridOriginal.Next(); got != GridTransformed {
		t.Errorf("Next(original) = %v", got)
	}
	if got := GridTransformed.Next(); got != GridBoth {
		t.Errorf("Next(transformed) = %v", got)
	}
	if got := GridBoth.Next(); got != GridOriginal {
		t.Errorf("Next(both) = %v", got)
	}
}
