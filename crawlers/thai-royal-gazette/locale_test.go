package trg

import (
	"testing"
)

func TestThaiDigitsToArabic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"all thai digits", "๒๕๖๗", "2567"},
		{"mixed text passes through", "เล่ม12", "เล่ม12"},
		{"thai digits inside text", "เล่ม ๑๔๐", "เล่ม 140"},
		{"empty", "", ""},
		{"zero through nine", "๐๑๒๓๔๕๖๗๘๙", "0123456789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ThaiDigitsToArabic(tt.input); got != tt.want {
				t.Errorf("ThaiDigitsToArabic(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseThaiDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		isNil bool
	}{
		{"regular date", "๑๕ ม.ค. ๒๕๖๗", "2024-01-15", false},
		{"month without period", "๑๕ ม.ค ๒๕๖๗", "2024-01-15", false},
		{"single digit day padded", "๕ ธ.ค. ๒๕๖๖", "2023-12-05", false},
		{"unknown month encodes 00", "๑๕ xx ๒๕๖๗", "2024-00-15", false},
		{"two tokens", "๑๕ ๒๕๖๗", "", true},
		{"empty", "", "", true},
		{"extra whitespace", "๑  ก.พ.   ๒๕๖๐", "2017-02-01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseThaiDate(tt.input)
			if tt.isNil {
				if got != nil {
					t.Fatalf("ParseThaiDate(%q) = %q, want nil", tt.input, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ParseThaiDate(%q) = nil, want %q", tt.input, tt.want)
			}
			if *got != tt.want {
				t.Errorf("ParseThaiDate(%q) = %q, want %q", tt.input, *got, tt.want)
			}
		})
	}
}
