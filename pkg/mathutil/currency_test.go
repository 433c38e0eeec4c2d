package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{
			name:     "Round down",
			value:    1234.564,
			expected: 1234.56,
		},
		{
			name:     "Round up",
			value:    1234.566,
			expected: 1234.57,
		},
		{
			name:     "Already two decimals",
			value:    0.01,
			expected: 0.01,
		},
		{
			name:     "Negative value",
			value:    -1.005,
			expected: -1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round(tt.value)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Round(%v) = %v, expected %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestHasAtMostTwoDecimals(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected bool
	}{
		{
			name:     "Whole lira",
			value:    45000,
			expected: true,
		},
		{
			name:     "Whole kuruş",
			value:    1234.56,
			expected: true,
		},
		{
			name:     "Fractional kuruş rejected",
			value:    1234.567,
			expected: false,
		},
		{
			name:     "Float addition noise tolerated",
			value:    0.1 + 0.2,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasAtMostTwoDecimals(tt.value); got != tt.expected {
				t.Errorf("HasAtMostTwoDecimals(%v) = %v, expected %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestApplyPercentage(t *testing.T) {
	if got := ApplyPercentage(6831, 25); math.Abs(got-1707.75) > 1e-9 {
		t.Errorf("ApplyPercentage(6831, 25) = %v, expected 1707.75", got)
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(45000, 35058.58); got != 35058.58 {
		t.Errorf("Min() = %v, expected 35058.58", got)
	}
	if got := Max(0.32, 0.4); got != 0.4 {
		t.Errorf("Max() = %v, expected 0.4", got)
	}
}

func TestTolerances(t *testing.T) {
	if !IsZero(0.005) {
		t.Errorf("IsZero(0.005) = false, expected true")
	}
	if !IsPositive(0.02) || IsPositive(0.005) {
		t.Errorf("IsPositive tolerance behavior unexpected")
	}
	if !IsNegative(-0.02) || IsNegative(-0.005) {
		t.Errorf("IsNegative tolerance behavior unexpected")
	}
	if !WithinTolerance(100.0, 100.009, 0.01) {
		t.Errorf("WithinTolerance(100.0, 100.009, 0.01) = false, expected true")
	}
}
