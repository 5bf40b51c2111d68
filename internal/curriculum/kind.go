package curriculum

import "strings"

// Kind identifies the grading and interaction strategy of an exercise.
// The set is closed: Grade and the screen dispatcher switch over every
// value, so adding a kind means touching those switches too.
type Kind string

const (
	KindConjugation        Kind = "conjugation"
	KindRewrite            Kind = "rewrite"
	KindFillInBlank        Kind = "fill_in_blank"
	KindMultipleChoice     Kind = "multiple_choice"
	KindRearrange          Kind = "rearrange"
	KindMatching           Kind = "matching"
	KindPhoneticsOddOneOut Kind = "phonetics_odd_one_out"
	KindClozeTest          Kind = "cloze_test"
)

// Kinds lists every exercise kind in declaration order.
var Kinds = []Kind{
	KindConjugation,
	KindRewrite,
	KindFillInBlank,
	KindMultipleChoice,
	KindRearrange,
	KindMatching,
	KindPhoneticsOddOneOut,
	KindClozeTest,
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindConjugation, KindRewrite, KindFillInBlank, KindMultipleChoice,
		KindRearrange, KindMatching, KindPhoneticsOddOneOut, KindClozeTest:
		return true
	}
	return false
}

// UsesPairs reports whether exercises of this kind carry matching pairs
// instead of question items.
func (k Kind) UsesPairs() bool {
	return k == KindMatching
}

// UsesOptions reports whether items of this kind offer discrete options
// the learner picks from.
func (k Kind) UsesOptions() bool {
	switch k {
	case KindMultipleChoice, KindPhoneticsOddOneOut, KindClozeTest:
		return true
	}
	return false
}

// Label returns a display name, e.g. "FILL IN BLANK".
func (k Kind) Label() string {
	return strings.ToUpper(strings.ReplaceAll(string(k), "_", " "))
}
