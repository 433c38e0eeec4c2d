package format

import (
	"testing"
)

func TestLira(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{
			name:     "Thousands separator and decimal comma",
			amount:   1234.56,
			expected: "1.234,56 TL",
		},
		{
			name:     "Whole amount keeps kuruş digits",
			amount:   850,
			expected: "850,00 TL",
		},
		{
			name:     "Millions",
			amount:   1000000,
			expected: "1.000.000,00 TL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lira(tt.amount); got != tt.expected {
				t.Errorf("Lira(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		expected string
	}{
		{
			name:     "Whole rate drops decimals",
			rate:     24,
			expected: "%24",
		},
		{
			name:     "Fractional rate keeps two decimals",
			rate:     4.5,
			expected: "%4,50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.rate); got != tt.expected {
				t.Errorf("Percent(%v) = %q, expected %q", tt.rate, got, tt.expected)
			}
		})
	}
}

func TestFractionLabel(t *testing.T) {
	tests := []struct {
		name        string
		numerator   float64
		denominator float64
		expected    string
	}{
		{
			name:        "Quarter",
			numerator:   0.25,
			denominator: 1,
			expected:    "1/4",
		},
		{
			name:        "Three eighths reduces cleanly",
			numerator:   0.375,
			denominator: 1,
			expected:    "3/8",
		},
		{
			name:        "Whole share",
			numerator:   1,
			denominator: 1,
			expected:    "Tamamı",
		},
		{
			name:        "Empty share",
			numerator:   0,
			denominator: 1,
			expected:    "0",
		},
		{
			name:        "Sixteenth is limited by thousandths scaling",
			numerator:   0.0625,
			denominator: 1,
			expected:    "63/1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FractionLabel(tt.numerator, tt.denominator)
			if got != tt.expected {
				t.Errorf("FractionLabel(%v, %v) = %q, expected %q", tt.numerator, tt.denominator, got, tt.expected)
			}
		})
	}
}
