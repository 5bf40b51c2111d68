// Package progress holds the learner's cumulative state and the pure
// reducers that advance it. The host owns the single mutable reference;
// everything here is a value-in, value-out function.
package progress

import "sort"

// Progress is the learner's lifetime state: total XP, the set of
// completed exercises, the best score recorded per exercise, and the
// words marked difficult.
type Progress struct {
	XP             int             `json:"xp"`
	Completed      map[string]bool `json:"completed"`
	Scores         map[string]int  `json:"scores"`
	DifficultWords map[string]bool `json:"difficult_words"`
}

// New returns the zero-value profile: no XP, nothing completed.
func New() Progress {
	return Progress{
		Completed:      make(map[string]bool),
		Scores:         make(map[string]int),
		DifficultWords: make(map[string]bool),
	}
}

// Clone returns an independent copy. Reducers operate on clones so a
// held snapshot never observes a later mutation.
func (p Progress) Clone() Progress {
	c := Progress{
		XP:             p.XP,
		Completed:      make(map[string]bool, len(p.Completed)),
		Scores:         make(map[string]int, len(p.Scores)),
		DifficultWords: make(map[string]bool, len(p.DifficultWords)),
	}
	for k, v := range p.Completed {
		c.Completed[k] = v
	}
	for k, v := range p.Scores {
		c.Scores[k] = v
	}
	for k, v := range p.DifficultWords {
		c.DifficultWords[k] = v
	}
	return c
}

// replayXPDivisor throttles XP for re-completions: a replay earns 10%
// of the XP its own accuracy would imply, rounded up. First-pass
// mastery is what gets rewarded, not grinding.
const replayXPDivisor = 10

// RecordCompletion folds one graded attempt into the profile. The
// percent score is floor(correct/max*100), or 0 for an empty exercise.
// The first completion of an exercise grants the full percent as XP;
// replays grant ceil(percent/10). The best score per exercise is
// retained even when the replay XP is throttled.
func RecordCompletion(p Progress, exerciseID string, correctCount, maxScore int) Progress {
	percent := 0
	if maxScore > 0 {
		percent = correctCount * 100 / maxScore
	}

	next := p.Clone()

	gain := percent
	if p.Completed[exerciseID] {
		gain = (percent + replayXPDivisor - 1) / replayXPDivisor
	}
	next.XP += gain
	next.Completed[exerciseID] = true
	if cur, ok := next.Scores[exerciseID]; !ok || percent > cur {
		next.Scores[exerciseID] = percent
	}
	return next
}

// XPGain returns the XP a completion would grant without applying it.
// The quiz summary shows it before the learner confirms.
func (p Progress) XPGain(exerciseID string, correctCount, maxScore int) int {
	percent := 0
	if maxScore > 0 {
		percent = correctCount * 100 / maxScore
	}
	if p.Completed[exerciseID] {
		return (percent + replayXPDivisor - 1) / replayXPDivisor
	}
	return percent
}

// ToggleDifficult flips membership of word in the difficult set. Two
// toggles restore the original profile; XP and scores are untouched.
func ToggleDifficult(p Progress, word string) Progress {
	next := p.Clone()
	if next.DifficultWords[word] {
		delete(next.DifficultWords, word)
	} else {
		next.DifficultWords[word] = true
	}
	return next
}

// CompletedCount returns how many activities have been completed.
func (p Progress) CompletedCount() int {
	return len(p.Completed)
}

// CompletionRatio returns completed/total clamped to [0,1]. Zero total
// yields zero.
func (p Progress) CompletionRatio(total int) float64 {
	if total <= 0 {
		return 0
	}
	r := float64(len(p.Completed)) / float64(total)
	if r > 1 {
		return 1
	}
	return r
}

// DifficultList returns the difficult words in sorted order for stable
// display and export.
func (p Progress) DifficultList() []string {
	words := make([]string, 0, len(p.DifficultWords))
	for w := range p.DifficultWords {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
