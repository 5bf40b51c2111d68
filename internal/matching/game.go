// Package matching implements the pair-matching mini-game: a left deck
// of prompts in canonical order and a shuffled right deck of answers,
// matched one selection at a time.
package matching

import (
	"math/rand"

	"github.com/abhisek/lexigo/internal/curriculum"
)

// Card is one selectable entry in either deck. ID is the index of the
// originating pair, stable across the shuffle.
type Card struct {
	ID   int
	Text string
}

// Outcome describes the effect of a right-deck selection.
type Outcome int

const (
	// OutcomeIgnored means the selection had no effect (no left card
	// selected, or the card is already matched).
	OutcomeIgnored Outcome = iota

	// OutcomeMatched means the pair was matched and more pairs remain.
	OutcomeMatched

	// OutcomeResolved means the pair was matched and the game is over.
	OutcomeResolved

	// OutcomeWrong means the selection did not match the selected left
	// card. The selection is cleared; the matched set is unchanged.
	OutcomeWrong
)

// Game holds the live state of one matching exercise. It is built once
// at exercise start and driven by one selection per UI event; matched
// pairs are never unmatched.
type Game struct {
	left     []Card
	right    []Card
	matched  map[int]bool
	selected int // left card id, -1 when none
}

// New builds a game from the exercise pairs. The right deck is shuffled
// with rng, so tests can fix the permutation by seeding.
func New(pairs []curriculum.MatchingPair, rng *rand.Rand) *Game {
	g := &Game{
		left:     make([]Card, len(pairs)),
		right:    make([]Card, len(pairs)),
		matched:  make(map[int]bool),
		selected: -1,
	}
	for i, p := range pairs {
		g.left[i] = Card{ID: i, Text: p.Prompt}
		g.right[i] = Card{ID: i, Text: p.Answer}
	}
	rng.Shuffle(len(g.right), func(i, j int) {
		g.right[i], g.right[j] = g.right[j], g.right[i]
	})
	return g
}

// Left returns the left deck in canonical pair order.
func (g *Game) Left() []Card { return g.left }

// Right returns the right deck in shuffled order.
func (g *Game) Right() []Card { return g.right }

// Matched reports whether the pair with the given id has been matched.
func (g *Game) Matched(id int) bool { return g.matched[id] }

// Selected returns the currently selected left card id, if any.
func (g *Game) Selected() (int, bool) {
	if g.selected < 0 {
		return 0, false
	}
	return g.selected, true
}

// Resolved reports whether every pair has been matched.
func (g *Game) Resolved() bool { return len(g.matched) == len(g.left) }

// Score returns the final score: the pair count once resolved, since
// mismatches are rejected before being counted. Partial submission is
// not modeled, so the score is zero until then.
func (g *Game) Score() int {
	if !g.Resolved() {
		return 0
	}
	return len(g.left)
}

// SelectLeft selects a left card. Selecting an already matched card is
// ignored.
func (g *Game) SelectLeft(id int) {
	if g.matched[id] {
		return
	}
	g.selected = id
}

// SelectRight attempts to match the selected left card against a right
// card. With no left selection, or on an already matched card, the
// click is ignored. A wrong pick clears the selection and leaves the
// matched set untouched.
func (g *Game) SelectRight(id int) Outcome {
	if g.selected < 0 || g.matched[id] {
		return OutcomeIgnored
	}
	if id != g.selected {
		g.selected = -1
		return OutcomeWrong
	}

	g.matched[id] = true
	g.selected = -1
	if g.Resolved() {
		return OutcomeResolved
	}
	return OutcomeMatched
}
