package matching

import (
	"math/rand"
	"testing"

	"github.com/abhisek/lexigo/internal/curriculum"
)

func testPairs(n int) []curriculum.MatchingPair {
	pairs := make([]curriculum.MatchingPair, n)
	for i := range pairs {
		pairs[i] = curriculum.MatchingPair{
			Prompt: string(rune('a' + i)),
			Answer: string(rune('A' + i)),
		}
	}
	return pairs
}

func TestGame_LeftDeckKeepsPairOrder(t *testing.T) {
	pairs := testPairs(6)
	g := New(pairs, rand.New(rand.NewSource(1)))

	for i, c := range g.Left() {
		if c.ID != i || c.Text != pairs[i].Prompt {
			t.Errorf("left[%d] = %+v, want id %d text %q", i, c, i, pairs[i].Prompt)
		}
	}
	if len(g.Right()) != len(pairs) {
		t.Fatalf("right deck has %d cards, want %d", len(g.Right()), len(pairs))
	}
}

func TestGame_ShuffleIsSeedDeterministic(t *testing.T) {
	pairs := testPairs(8)
	a := New(pairs, rand.New(rand.NewSource(42)))
	b := New(pairs, rand.New(rand.NewSource(42)))

	for i := range a.Right() {
		if a.Right()[i] != b.Right()[i] {
			t.Fatalf("same seed produced different right decks at %d", i)
		}
	}
}

func TestGame_CorrectSelectionsResolve(t *testing.T) {
	pairs := testPairs(4)
	g := New(pairs, rand.New(rand.NewSource(7)))

	for i, c := range g.Left() {
		g.SelectLeft(c.ID)
		got := g.SelectRight(c.ID)

		want := OutcomeMatched
		if i == len(pairs)-1 {
			want = OutcomeResolved
		}
		if got != want {
			t.Fatalf("selection %d: outcome %v, want %v", i, got, want)
		}
	}

	if !g.Resolved() {
		t.Error("game not resolved after matching every pair")
	}
	if g.Score() != len(pairs) {
		t.Errorf("Score() = %d, want %d", g.Score(), len(pairs))
	}
}

func TestGame_WrongPickClearsSelectionOnly(t *testing.T) {
	g := New(testPairs(3), rand.New(rand.NewSource(3)))

	g.SelectLeft(0)
	if got := g.SelectRight(1); got != OutcomeWrong {
		t.Fatalf("mismatched pick: outcome %v, want OutcomeWrong", got)
	}
	if _, ok := g.Selected(); ok {
		t.Error("selection survived a wrong pick")
	}
	for id := 0; id < 3; id++ {
		if g.Matched(id) {
			t.Errorf("wrong pick matched pair %d", id)
		}
	}

	// A wrong pick must not block the correct one afterwards.
	g.SelectLeft(0)
	if got := g.SelectRight(0); got != OutcomeMatched {
		t.Errorf("correct pick after a miss: outcome %v, want OutcomeMatched", got)
	}
}

func TestGame_IgnoredSelections(t *testing.T) {
	g := New(testPairs(2), rand.New(rand.NewSource(5)))

	if got := g.SelectRight(0); got != OutcomeIgnored {
		t.Errorf("right pick with no left selection: %v, want OutcomeIgnored", got)
	}

	g.SelectLeft(0)
	g.SelectRight(0)

	// Matched cards stay inert on both sides.
	g.SelectLeft(0)
	if _, ok := g.Selected(); ok {
		t.Error("matched left card became selected")
	}
	g.SelectLeft(1)
	if got := g.SelectRight(0); got != OutcomeIgnored {
		t.Errorf("pick on matched right card: %v, want OutcomeIgnored", got)
	}
	if !g.Matched(0) || g.Matched(1) {
		t.Error("matched set changed by ignored selections")
	}
}

func TestGame_ScoreZeroUntilResolved(t *testing.T) {
	g := New(testPairs(2), rand.New(rand.NewSource(9)))

	g.SelectLeft(0)
	g.SelectRight(0)
	if g.Score() != 0 {
		t.Errorf("partial game Score() = %d, want 0", g.Score())
	}
}

func TestGame_ShuffleCoversPermutations(t *testing.T) {
	// With 3 pairs there are 6 permutations; over many seeded builds
	// each should appear at least once.
	pairs := testPairs(3)
	rng := rand.New(rand.NewSource(123))
	seen := make(map[[3]int]int)

	for i := 0; i < 600; i++ {
		g := New(pairs, rng)
		var key [3]int
		for j, c := range g.Right() {
			key[j] = c.ID
		}
		seen[key]++
	}

	if len(seen) != 6 {
		t.Errorf("observed %d permutations of the right deck, want 6", len(seen))
	}
}
