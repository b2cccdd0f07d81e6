package utils_test

import (
	"testing"

	"globemart-backend/pkg/utils"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		def  int
		want int
	}{
		{in: "", def: 12, want: 12},
		{in: "5", def: 12, want: 5},
		{in: "-3", def: 12, want: -3},
		{in: "abc", def: 12, want: 12},
		{in: "1.5", def: 0, want: 0},
	}
	for _, tt := range tests {
		if got := utils.ParseInt(tt.in, tt.def); got != tt.want {
			t.Errorf("ParseInt(%q, %d) = %d, want %d", tt.in, tt.def, got, tt.want)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := utils.NormalizeEmail("  Ada@Example.COM "); got != "ada@example.com" {
		t.Errorf("NormalizeEmail = %q", got)
	}
}

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  MacBook  ", want: "macbook"},
		{in: "", want: ""},
		{in: "ELECTRONICS", want: "electronics"},
	}
	for _, tt := range tests {
		if got := utils.NormalizeQuery(tt.in); got != tt.want {
			t.Errorf("NormalizeQuery(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
