package sanitizer

import (
	"reflect"
	"testing"
)

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Priya Sharma", "Priya Sharma"},
		{"leading and trailing space", "  Andheri East  ", "Andheri East"},
		{"internal runs collapse", "Deep   Cleaning", "Deep Cleaning"},
		{"tabs and newlines", "Child\tCare\n", "Child Care"},
		{"empty", "", ""},
		{"only whitespace", "   \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"A@X.Com", "a@x.com"},
		{"  priya.sharma@example.com ", "priya.sharma@example.com"},
		{"UPPER@EXAMPLE.COM", "upper@example.com"},
	}

	for _, tt := range tests {
		if got := NormalizeEmail(tt.input); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeServiceTags(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"nil becomes empty list", nil, []string{}},
		{"empty stays empty", []string{}, []string{}},
		{"order preserved", []string{"Cooking", "Cleaning"}, []string{"Cooking", "Cleaning"}},
		{"duplicates dropped", []string{"Cleaning", " Cleaning "}, []string{"Cleaning"}},
		{"blank entries dropped", []string{"", "Laundry", "  "}, []string{"Laundry"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeServiceTags(tt.input)
			if got == nil {
				t.Fatal("NormalizeServiceTags returned nil, want non-nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeServiceTags(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
