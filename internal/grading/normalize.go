package grading

import "strings"

// punctuation is the fixed set stripped from free-text answers before
// comparison. Apostrophes are deliberately absent: "o'clock" and
// "oclock" stay distinct.
const punctuation = ".,/#!$%^&*;:{}=-_`~()"

// Normalize canonicalizes a free-text answer for tolerant comparison:
// trim, lower-case, strip the fixed punctuation set, collapse runs of
// whitespace to a single space. Idempotent and total on any input.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(punctuation, r) {
			continue
		}
		b.WriteRune(r)
	}
	s = b.String()

	return strings.Join(strings.Fields(s), " ")
}
