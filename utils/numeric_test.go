package utils

import "testing"

func TestSanitizeNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"120", 120},
		{"120m2", 120},
		{"120 m²", 120},
		{"1.500€", 1500},
		{"1.500.000 €", 1500000},
		{"2.5", 2.5},
		{"1500,50", 1500.5},
		{"1.500,50", 1500.5},
		{"  89 ", 89},
		{"precio a convenir", 0},
		{"", 0},
		{"m2", 0},
	}

	for _, tc := range cases {
		if got := SanitizeNumber(tc.in); got != tc.want {
			t.Errorf("SanitizeNumber(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeNumberNeverNegative(t *testing.T) {
	for _, in := range []string{"-5", "−300", "-1.500€"} {
		if got := SanitizeNumber(in); got < 0 {
			t.Errorf("SanitizeNumber(%q) = %v, want non-negative", in, got)
		}
	}
}
