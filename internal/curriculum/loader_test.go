package curriculum

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestLoad_EmbeddedUnit(t *testing.T) {
	u, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if u.Info.Number != 1 {
		t.Errorf("unit number = %d, want 1", u.Info.Number)
	}
	if len(u.Sections) == 0 {
		t.Fatal("unit has no sections")
	}
	if len(u.VocabularyItems()) == 0 {
		t.Error("unit has no vocabulary")
	}
	if len(u.Exercises()) == 0 {
		t.Fatal("unit has no exercises")
	}

	// Load caches: both calls must hand back the same Unit.
	u2, err := Load()
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if u != u2 {
		t.Error("Load returned different instances")
	}
}

func TestLoad_EveryExerciseIsWellFormed(t *testing.T) {
	u, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, ex := range u.Exercises() {
		if !ex.Kind.Valid() {
			t.Errorf("exercise %q: invalid kind %q", ex.ID, ex.Kind)
		}
		if got := u.ExerciseByID(ex.ID); got != ex {
			t.Errorf("ExerciseByID(%q) did not round-trip", ex.ID)
		}
		if ex.MaxScore() == 0 && !ex.Kind.UsesPairs() {
			t.Errorf("exercise %q has no items", ex.ID)
		}
	}
}

// minimalUnit returns a decode-ready document that passes validation,
// for tests to corrupt one field at a time.
func minimalUnit() map[string]any {
	return map[string]any{
		"unit_info": map[string]any{
			"unit_number": 1,
			"unit_title":  "Test Unit",
			"grade_level": 6,
			"description": "fixture",
		},
		"content": []any{
			map[string]any{
				"section_type": "vocabulary",
				"title":        "Words",
				"items": []any{
					map[string]any{
						"word":           "run",
						"pronunciation":  "/rʌn/",
						"part_of_speech": "verb",
						"meaning":        "to move fast",
					},
				},
			},
			map[string]any{
				"section_type": "grammar_exercises",
				"topic":        "Present simple",
				"exercises": []any{
					map[string]any{
						"id":          "g1",
						"instruction": "Conjugate.",
						"kind":        "conjugation",
						"items": []any{
							map[string]any{"prompt": "run (he)", "correct_answer": "runs"},
						},
					},
				},
			},
		},
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return data
}

func TestParse_MinimalUnit(t *testing.T) {
	u, err := Parse(mustJSON(t, minimalUnit()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := u.ExerciseByID("g1"); got == nil || got.Kind != KindConjugation {
		t.Errorf("ExerciseByID(g1) = %+v", got)
	}
	if u.ActivityCount() != 2 {
		t.Errorf("ActivityCount() = %d, want 2 (one exercise, one deck)", u.ActivityCount())
	}
}

func TestParse_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(doc map[string]any)
		wantErr string
	}{
		{
			name: "unknown kind",
			mutate: func(doc map[string]any) {
				exercise(doc)["kind"] = "riddle"
			},
			wantErr: "schema validation",
		},
		{
			name: "duplicate exercise id",
			mutate: func(doc map[string]any) {
				sec := grammarSection(doc)
				exes := sec["exercises"].([]any)
				dup := map[string]any{
					"id":          "g1",
					"instruction": "Again.",
					"kind":        "rewrite",
					"items": []any{
						map[string]any{"prompt": "p", "correct_answer": "a"},
					},
				}
				sec["exercises"] = append(exes, dup)
			},
			wantErr: "duplicate exercise id",
		},
		{
			name: "matching kind with items",
			mutate: func(doc map[string]any) {
				exercise(doc)["kind"] = "matching"
			},
			wantErr: "requires pairs",
		},
		{
			name: "item kind with pairs",
			mutate: func(doc map[string]any) {
				ex := exercise(doc)
				delete(ex, "items")
				ex["pairs"] = []any{
					map[string]any{"prompt": "go", "answer": "went"},
				}
			},
			wantErr: "requires items",
		},
		{
			name: "choice kind without options",
			mutate: func(doc map[string]any) {
				exercise(doc)["kind"] = "multiple_choice"
			},
			wantErr: "requires options",
		},
		{
			name: "vocabulary section with exercises",
			mutate: func(doc map[string]any) {
				sections := doc["content"].([]any)
				vocab := sections[0].(map[string]any)
				vocab["exercises"] = grammarSection(doc)["exercises"]
			},
			wantErr: "carries exercises",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := minimalUnit()
			tc.mutate(doc)
			_, err := Parse(mustJSON(t, doc))
			if err == nil {
				t.Fatal("Parse accepted an invalid document")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestParse_RejectsMalformedJSON(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Error("Parse accepted malformed JSON")
	}
}

func grammarSection(doc map[string]any) map[string]any {
	return doc["content"].([]any)[1].(map[string]any)
}

func exercise(doc map[string]any) map[string]any {
	return grammarSection(doc)["exercises"].([]any)[0].(map[string]any)
}
