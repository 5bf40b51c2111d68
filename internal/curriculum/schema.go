package curriculum

// unitSchema is the JSON Schema the embedded unit document must satisfy
// before structural validation runs. It checks shapes, not cross-field
// rules (kind/payload pairing and ID uniqueness are enforced in Go).
var unitSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"unit_info": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"unit_number": map[string]any{"type": "integer", "minimum": 1},
				"unit_title":  map[string]any{"type": "string", "minLength": 1},
				"grade_level": map[string]any{"type": "integer", "minimum": 1},
				"description": map[string]any{"type": "string"},
			},
			"required":             []any{"unit_number", "unit_title", "grade_level"},
			"additionalProperties": false,
		},
		"content": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"section_type": map[string]any{
						"type": "string",
						"enum": []any{"vocabulary", "grammar_exercises", "test"},
					},
					"title":     map[string]any{"type": "string"},
					"test_name": map[string]any{"type": "string"},
					"topic":     map[string]any{"type": "string"},
					"items": map[string]any{
						"type":  "array",
						"items": vocabularyItemSchema,
					},
					"exercises": map[string]any{
						"type":  "array",
						"items": exerciseSchema,
					},
				},
				"required":             []any{"section_type"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"unit_info", "content"},
	"additionalProperties": false,
}

var vocabularyItemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"word":           map[string]any{"type": "string", "minLength": 1},
		"pronunciation":  map[string]any{"type": "string"},
		"part_of_speech": map[string]any{"type": "string"},
		"meaning":        map[string]any{"type": "string", "minLength": 1},
	},
	"required":             []any{"word", "meaning"},
	"additionalProperties": false,
}

var exerciseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":          map[string]any{"type": "string", "minLength": 1},
		"instruction": map[string]any{"type": "string", "minLength": 1},
		"kind": map[string]any{
			"type": "string",
			"enum": []any{
				"conjugation", "rewrite", "fill_in_blank", "multiple_choice",
				"rearrange", "matching", "phonetics_odd_one_out", "cloze_test",
			},
		},
		"topic": map[string]any{"type": "string"},
		"items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"prompt":         map[string]any{"type": "string"},
					"correct_answer": map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items":    map[string]any{"type": "string", "minLength": 1},
					},
					"note": map[string]any{"type": "string"},
				},
				"required":             []any{"correct_answer"},
				"additionalProperties": false,
			},
		},
		"pairs": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"prompt": map[string]any{"type": "string", "minLength": 1},
					"answer": map[string]any{"type": "string", "minLength": 1},
				},
				"required":             []any{"prompt", "answer"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"id", "instruction", "kind"},
	"additionalProperties": false,
}
