package grading

import (
	"fmt"
	"strings"

	"github.com/abhisek/lexigo/internal/curriculum"
)

// Result is the outcome of grading one exercise attempt.
type Result struct {
	CorrectCount int
	MaxScore     int
}

// Percent returns the attempt score as a whole percentage, rounded
// down. An empty exercise scores zero.
func (r Result) Percent() int {
	if r.MaxScore == 0 {
		return 0
	}
	return r.CorrectCount * 100 / r.MaxScore
}

// Grade scores one exercise given the learner's responses, keyed by
// item index. A missing response counts as incorrect. Matching
// exercises are scored by the matching game, not here; passing one in
// is a caller error, as is an exercise whose payload does not match
// its kind.
func Grade(ex *curriculum.Exercise, responses map[int]string) (Result, error) {
	check, err := checkerFor(ex.Kind)
	if err != nil {
		return Result{}, fmt.Errorf("exercise %q: %w", ex.ID, err)
	}
	if len(ex.Items) == 0 {
		return Result{}, fmt.Errorf("exercise %q: kind %s has no items", ex.ID, ex.Kind)
	}

	res := Result{MaxScore: len(ex.Items)}
	for i, item := range ex.Items {
		if check(responses[i], item.CorrectAnswer) {
			res.CorrectCount++
		}
	}
	return res, nil
}

// ItemCorrect reports whether a single response answers the item,
// using the kind's comparison rule. Kinds without an item rule
// (matching) report false.
func ItemCorrect(kind curriculum.Kind, item curriculum.QuestionItem, response string) bool {
	check, err := checkerFor(kind)
	if err != nil {
		return false
	}
	return check(response, item.CorrectAnswer)
}

// checkerFor selects the comparison rule for a kind. The switch is
// exhaustive over curriculum.Kinds; a new kind must be given a rule
// here before it can be graded.
func checkerFor(kind curriculum.Kind) (func(response, correct string) bool, error) {
	switch kind {
	case curriculum.KindConjugation, curriculum.KindRewrite,
		curriculum.KindFillInBlank, curriculum.KindRearrange:
		return normalizedEqual, nil

	case curriculum.KindMultipleChoice, curriculum.KindPhoneticsOddOneOut,
		curriculum.KindClozeTest:
		// Options are discrete tokens: case-insensitive equality only,
		// no punctuation stripping.
		return strings.EqualFold, nil

	case curriculum.KindMatching:
		return nil, fmt.Errorf("kind %s is scored by the matching game", kind)

	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}

func normalizedEqual(response, correct string) bool {
	return Normalize(response) == Normalize(correct)
}
