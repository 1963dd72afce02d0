package match

import (
	"testing"
)

func TestClosest(t *testing.T) {
	candidates := []string{"freqs", "times", "do_something_crazy", "t"}

	tests := []struct {
		name     string
		expected string
		found    bool
	}{
		{"freq", "freqs", true},
		{"Freqs", "freqs", true},
		{"tims", "times", true},
		{"do_somethin_crazy", "do_something_crazy", true},
		{"dosomethingcrazy", "do_something_crazy", true},
		{"zzzzzz", "", false},
		{"x", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Closest(tt.name, candidates)
			if ok != tt.found {
				t.Fatalf("Closest(%q) found = %v, want %v", tt.name, ok, tt.found)
			}

			if got != tt.expected {
				t.Errorf("Closest(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestClosest_NoCandidates(t *testing.T) {
	_, ok := Closest("anything", nil)
	if ok {
		t.Error("expected no suggestion from an empty candidate list")
	}
}
