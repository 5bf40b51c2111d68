package grading

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "He DOESN'T Play", "he doesn't play"},
		{"trims edges", "  hello  ", "hello"},
		{"strips punctuation", "she plays tennis.", "she plays tennis"},
		{"keeps apostrophes", "don't", "don't"},
		{"keeps question marks", "does he play?", "does he play?"},
		{"collapses inner runs", "she   plays    tennis", "she plays tennis"},
		{"collapse after strip", "well - done", "well done"},
		{"strips slashes", "a/b", "ab"},
		{"empty", "", ""},
		{"only punctuation", ".,;:", ""},
		{"tabs and newlines", "a\tb\nc", "a b c"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.input)
			if got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"  He DOESN'T   play, tennis!  ",
		"already clean",
		"",
		"...---...",
		"¿Qué tal?",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
