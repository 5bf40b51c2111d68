package curriculum

// VocabularyItem is a single word entry in a vocabulary section.
// Items are immutable and identified by Word within their section.
type VocabularyItem struct {
	Word          string `json:"word"`
	Pronunciation string `json:"pronunciation"`
	PartOfSpeech  string `json:"part_of_speech"`
	Meaning       string `json:"meaning"`
}

// QuestionItem is one gradable unit inside an exercise.
// Options is populated only for choice-style kinds.
type QuestionItem struct {
	Prompt        string   `json:"prompt,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	Options       []string `json:"options,omitempty"`
	Note          string   `json:"note,omitempty"`
}

// MatchingPair is a left/right correspondence in a matching exercise.
// The order of the pair list is the canonical pairing.
type MatchingPair struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

// Exercise is one activity the learner can complete. Exactly one of
// Items/Pairs is populated, selected by Kind.
type Exercise struct {
	ID          string         `json:"id"`
	Instruction string         `json:"instruction"`
	Kind        Kind           `json:"kind"`
	Items       []QuestionItem `json:"items,omitempty"`
	Pairs       []MatchingPair `json:"pairs,omitempty"`
	Topic       string         `json:"topic,omitempty"`
}

// MaxScore returns the number of gradable units in the exercise.
func (e *Exercise) MaxScore() int {
	if e.Kind.UsesPairs() {
		return len(e.Pairs)
	}
	return len(e.Items)
}

// SectionType tags what a section contains.
type SectionType string

const (
	SectionVocabulary SectionType = "vocabulary"
	SectionGrammar    SectionType = "grammar_exercises"
	SectionTest       SectionType = "test"
)

// Section groups vocabulary items or exercises. Vocabulary sections
// carry Items; grammar and test sections carry Exercises.
type Section struct {
	Type      SectionType      `json:"section_type"`
	Title     string           `json:"title,omitempty"`
	TestName  string           `json:"test_name,omitempty"`
	Topic     string           `json:"topic,omitempty"`
	Items     []VocabularyItem `json:"items,omitempty"`
	Exercises []Exercise       `json:"exercises,omitempty"`
}

// DisplayName returns the most specific name available for the section.
func (s *Section) DisplayName() string {
	switch {
	case s.Title != "":
		return s.Title
	case s.TestName != "":
		return s.TestName
	case s.Topic != "":
		return s.Topic
	}
	return "Section"
}

// UnitInfo describes the curriculum unit.
type UnitInfo struct {
	Number      int    `json:"unit_number"`
	Title       string `json:"unit_title"`
	GradeLevel  int    `json:"grade_level"`
	Description string `json:"description"`
}

// Unit is the whole statically loaded curriculum document. It is
// process-wide immutable shared state; nothing mutates it after Load.
type Unit struct {
	Info     UnitInfo  `json:"unit_info"`
	Sections []Section `json:"content"`

	byID map[string]*Exercise
}

// index builds the exercise-ID lookup table.
func (u *Unit) index() {
	u.byID = make(map[string]*Exercise)
	for si := range u.Sections {
		sec := &u.Sections[si]
		for ei := range sec.Exercises {
			ex := &sec.Exercises[ei]
			u.byID[ex.ID] = ex
		}
	}
}

// ExerciseByID returns the exercise with the given id, or nil.
func (u *Unit) ExerciseByID(id string) *Exercise {
	return u.byID[id]
}

// Exercises returns every exercise in curriculum order.
func (u *Unit) Exercises() []*Exercise {
	var out []*Exercise
	for si := range u.Sections {
		sec := &u.Sections[si]
		for ei := range sec.Exercises {
			out = append(out, &sec.Exercises[ei])
		}
	}
	return out
}

// VocabularyItems returns every vocabulary item across sections.
func (u *Unit) VocabularyItems() []VocabularyItem {
	var out []VocabularyItem
	for _, sec := range u.Sections {
		if sec.Type == SectionVocabulary {
			out = append(out, sec.Items...)
		}
	}
	return out
}

// ActivityCount is the number of completable activities in the unit:
// every exercise plus one flashcard activity per vocabulary section.
// The dashboard uses it as the denominator of the completion ratio.
func (u *Unit) ActivityCount() int {
	n := 0
	for _, sec := range u.Sections {
		if sec.Type == SectionVocabulary {
			n++
			continue
		}
		n += len(sec.Exercises)
	}
	return n
}
