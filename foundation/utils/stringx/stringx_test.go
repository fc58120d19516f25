package stringx

import "testing"

func TestIsBlank(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{" \t\n", true},
		{"A ∧ B", false},
	}
	for _, tt := range tests {
		if got := IsBlank(tt.in); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"short", "A ∧ B", 10, "A ∧ B"},
		{"cut on runes", "(A → B) ↔ C", 6, "(A → …"},
		{"zero", "A", 0, ""},
		{"ellipsis longer than max", "ABCDEF", 1, "A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.maxLen, "…"); got != tt.want {
				t.Errorf("Truncate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPadding(t *testing.T) {
	if got := PadRight("¬A", 4, ' '); got != "¬A  " {
		t.Errorf("PadRight() = %q", got)
	}
	if got := PadRight("Result", 3, ' '); got != "Result" {
		t.Errorf("PadRight() should not cut, got %q", got)
	}
	if got := Center("T", 4, '-'); got != "-T--" {
		t.Errorf("Center() = %q", got)
	}
}
