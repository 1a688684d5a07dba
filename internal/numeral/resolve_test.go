package numeral

import (
	"errors"
	"testing"
)

func TestIsValidNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", true},
		{"123", true},
		{"-1.5", true},
		{".5", true},
		{"12.", true},
		{"1.2.3", false},
		{"1e5", false},
		{"+1", false},
		{"12a", false},
		{"삼천", false},
	}

	for _, tt := range tests {
		if got := IsValidNumber(tt.input); got != tt.expected {
			t.Errorf("IsValidNumber(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		err      error
	}{
		{"empty", "", 0, ErrEmptyInput},
		{"blank", "  ", 0, ErrEmptyInput},
		{"integer", "123", 123, nil},
		{"zero digit", "0", 0, nil},
		{"padded integer", " 42 ", 42, nil},
		{"negative decimal", "-12.5", -12.5, nil},
		{"sign only", "-", 0, ErrInvalidNumber},
		{"point only", ".", 0, ErrInvalidNumber},
		{"korean words", "삼천", 3000, nil},
		{"mixed", "3억", 300000000, nil},
		{"latin text", "abc", 0, ErrNotNumber},
		{"exponent notation", "1e5", 0, ErrNotNumber},
		{"hex literal", "0x10", 0, ErrNotNumber},
		{"trailing letters", "12abc", 0, ErrNotNumber},
		{"korean text", "안녕", 0, ErrNotNumeral},
		{"zero word", "영", 0, ErrNotNumeral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.input)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Resolve(%q) error = %v, want %v", tt.input, err, tt.err)
			}
			if err == nil && got != tt.expected {
				t.Errorf("Resolve(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
