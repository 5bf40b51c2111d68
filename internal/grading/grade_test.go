package grading

import (
	"testing"

	"github.com/abhisek/lexigo/internal/curriculum"
)

func textExercise(kind curriculum.Kind, answers ...string) *curriculum.Exercise {
	ex := &curriculum.Exercise{ID: "ex", Kind: kind}
	for _, a := range answers {
		ex.Items = append(ex.Items, curriculum.QuestionItem{
			Prompt:        "prompt",
			CorrectAnswer: a,
			Options:       []string{a, "decoy"},
		})
	}
	return ex
}

func TestGrade_FreeTextNormalizes(t *testing.T) {
	ex := textExercise(curriculum.KindConjugation, "He doesn't play")

	tests := []struct {
		name     string
		response string
		want     int
	}{
		{"exact", "He doesn't play", 1},
		{"case", "he DOESN'T play", 1},
		{"trailing period", "He doesn't play.", 1},
		{"extra spaces", "  he   doesn't play ", 1},
		{"wrong word", "He don't play", 0},
		{"empty", "", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Grade(ex, map[int]string{0: tc.response})
			if err != nil {
				t.Fatalf("Grade: %v", err)
			}
			if res.CorrectCount != tc.want {
				t.Errorf("Grade(%q) = %d correct, want %d", tc.response, res.CorrectCount, tc.want)
			}
		})
	}
}

func TestGrade_ChoiceKindsAreCaseInsensitiveOnly(t *testing.T) {
	ex := textExercise(curriculum.KindMultipleChoice, "plays")

	tests := []struct {
		name     string
		response string
		want     int
	}{
		{"exact", "plays", 1},
		{"case folded", "PLAYS", 1},
		// Choice answers are discrete tokens, so no punctuation
		// stripping is applied the way free text gets.
		{"trailing period", "plays.", 0},
		{"padded", " plays", 0},
		{"missing", "", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Grade(ex, map[int]string{0: tc.response})
			if err != nil {
				t.Fatalf("Grade: %v", err)
			}
			if res.CorrectCount != tc.want {
				t.Errorf("Grade(%q) = %d correct, want %d", tc.response, res.CorrectCount, tc.want)
			}
		})
	}
}

func TestGrade_VerbatimAnswerAlwaysCorrect(t *testing.T) {
	answers := []string{
		"She plays tennis.",
		"DOES he work?",
		"I'm reading / a book",
	}
	for _, kind := range []curriculum.Kind{
		curriculum.KindConjugation,
		curriculum.KindRewrite,
		curriculum.KindFillInBlank,
		curriculum.KindRearrange,
	} {
		for _, a := range answers {
			ex := textExercise(kind, a)
			res, err := Grade(ex, map[int]string{0: a})
			if err != nil {
				t.Fatalf("Grade(%s): %v", kind, err)
			}
			if res.CorrectCount != 1 {
				t.Errorf("kind %s: verbatim answer %q graded incorrect", kind, a)
			}
		}
	}
}

func TestGrade_MissingResponsesCountIncorrect(t *testing.T) {
	ex := textExercise(curriculum.KindRewrite, "one", "two", "three")

	res, err := Grade(ex, map[int]string{1: "two"})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.CorrectCount != 1 || res.MaxScore != 3 {
		t.Errorf("got %d/%d, want 1/3", res.CorrectCount, res.MaxScore)
	}

	res, err = Grade(ex, nil)
	if err != nil {
		t.Fatalf("Grade(nil responses): %v", err)
	}
	if res.CorrectCount != 0 {
		t.Errorf("nil responses scored %d, want 0", res.CorrectCount)
	}
}

func TestGrade_RejectsMatchingAndUnknownKinds(t *testing.T) {
	matching := &curriculum.Exercise{
		ID:    "m1",
		Kind:  curriculum.KindMatching,
		Pairs: []curriculum.MatchingPair{{Prompt: "go", Answer: "went"}},
	}
	if _, err := Grade(matching, nil); err == nil {
		t.Error("Grade accepted a matching exercise")
	}

	unknown := textExercise(curriculum.Kind("riddle"), "x")
	if _, err := Grade(unknown, nil); err == nil {
		t.Error("Grade accepted an unknown kind")
	}

	empty := &curriculum.Exercise{ID: "e1", Kind: curriculum.KindRewrite}
	if _, err := Grade(empty, nil); err == nil {
		t.Error("Grade accepted an item exercise with no items")
	}
}

func TestResult_Percent(t *testing.T) {
	tests := []struct {
		correct, max, want int
	}{
		{0, 0, 0},
		{5, 5, 100},
		{1, 3, 33},
		{2, 3, 66},
		{7, 9, 77},
		{0, 10, 0},
	}
	for _, tc := range tests {
		got := Result{CorrectCount: tc.correct, MaxScore: tc.max}.Percent()
		if got != tc.want {
			t.Errorf("Percent(%d/%d) = %d, want %d", tc.correct, tc.max, got, tc.want)
		}
	}
}

func TestItemCorrect(t *testing.T) {
	item := curriculum.QuestionItem{CorrectAnswer: "went"}

	if !ItemCorrect(curriculum.KindConjugation, item, "Went.") {
		t.Error("free-text item rejected a normalized match")
	}
	if ItemCorrect(curriculum.KindMultipleChoice, item, "went.") {
		t.Error("choice item accepted a punctuated response")
	}
	if ItemCorrect(curriculum.KindMatching, item, "went") {
		t.Error("matching kind has no item rule and must report false")
	}
}
