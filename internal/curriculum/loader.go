package curriculum

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed data/unit1.json
var unitJSON []byte

var (
	loadOnce sync.Once
	loaded   *Unit
	loadErr  error
)

// Load parses and validates the embedded curriculum unit. The result is
// cached; every caller shares the same immutable Unit. A document that
// fails validation is a packaging error, so Load fails rather than
// degrading.
func Load() (*Unit, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(unitJSON)
	})
	return loaded, loadErr
}

// Parse decodes a unit document, checking it against the JSON Schema and
// the structural invariants the schema cannot express.
func Parse(data []byte) (*Unit, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var u Unit
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("decode unit: %w", err)
	}
	if err := validateStructure(&u); err != nil {
		return nil, err
	}
	u.index()
	return &u, nil
}

func validateSchema(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledUnitSchema()
	if err != nil {
		return err
	}
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("unit schema validation failed: %w", err)
	}
	return nil
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compiledUnitSchema compiles the unit schema once and caches it.
func compiledUnitSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw
		// bytes. Round-trip the definition through encoding/json.
		defBytes, err := json.Marshal(unitSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal unit schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			schemaErr = fmt.Errorf("parse unit schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://unit.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// validateStructure enforces the invariants that hold across fields:
// globally unique exercise IDs, kind/payload pairing, and options on
// choice-style items.
func validateStructure(u *Unit) error {
	seen := make(map[string]bool)
	for si := range u.Sections {
		sec := &u.Sections[si]

		switch sec.Type {
		case SectionVocabulary:
			if len(sec.Exercises) > 0 {
				return fmt.Errorf("vocabulary section %q carries exercises", sec.DisplayName())
			}
		case SectionGrammar, SectionTest:
			if len(sec.Items) > 0 {
				return fmt.Errorf("section %q carries vocabulary items", sec.DisplayName())
			}
		}

		for ei := range sec.Exercises {
			ex := &sec.Exercises[ei]
			if !ex.Kind.Valid() {
				return fmt.Errorf("exercise %q: unknown kind %q", ex.ID, ex.Kind)
			}
			if seen[ex.ID] {
				return fmt.Errorf("duplicate exercise id %q", ex.ID)
			}
			seen[ex.ID] = true

			if ex.Kind.UsesPairs() {
				if len(ex.Pairs) == 0 || len(ex.Items) > 0 {
					return fmt.Errorf("exercise %q: kind %s requires pairs only", ex.ID, ex.Kind)
				}
				continue
			}
			if len(ex.Items) == 0 || len(ex.Pairs) > 0 {
				return fmt.Errorf("exercise %q: kind %s requires items only", ex.ID, ex.Kind)
			}
			if ex.Kind.UsesOptions() {
				for i, item := range ex.Items {
					if len(item.Options) == 0 {
						return fmt.Errorf("exercise %q item %d: kind %s requires options", ex.ID, i, ex.Kind)
					}
				}
			}
		}
	}
	return nil
}
