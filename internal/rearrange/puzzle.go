// Package rearrange derives a shuffled word bank from a rearrange
// prompt and tracks the sentence the learner builds from it.
package rearrange

import (
	"math/rand"
	"strings"
)

// Tokenize splits a rearrange prompt into its puzzle tokens. Prompts
// authored as slash-separated chunks ("always/ at nine/ he.") split on
// "/"; otherwise the prompt splits on spaces. Tokens are trimmed and
// empties dropped. The canonical answer is never tokenized; grading
// compares the rebuilt sentence as a whole.
func Tokenize(prompt string) []string {
	var parts []string
	if strings.Contains(prompt, "/") {
		parts = strings.Split(prompt, "/")
	} else {
		parts = strings.Split(prompt, " ")
	}

	tokens := parts[:0]
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Puzzle is the fixed, shuffled token pool for one rearrange item plus
// the learner's picks so far. Tokens keep their pool position; picking
// marks a slot used rather than removing it, so the bank renders
// stably.
type Puzzle struct {
	tokens []string
	used   []bool
	picks  []int // pool indices in pick order
}

// New shuffles the prompt's tokens once with rng and returns the
// puzzle. The shuffle happens once per exercise item; re-rendering
// never reshuffles.
func New(prompt string, rng *rand.Rand) *Puzzle {
	tokens := Tokenize(prompt)
	rng.Shuffle(len(tokens), func(i, j int) {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	})
	return &Puzzle{
		tokens: tokens,
		used:   make([]bool, len(tokens)),
	}
}

// Tokens returns the shuffled pool.
func (p *Puzzle) Tokens() []string { return p.tokens }

// Used reports whether the pool slot i has been picked.
func (p *Puzzle) Used(i int) bool { return p.used[i] }

// Pick appends pool token i to the candidate. Out-of-range or already
// used picks are ignored.
func (p *Puzzle) Pick(i int) {
	if i < 0 || i >= len(p.tokens) || p.used[i] {
		return
	}
	p.used[i] = true
	p.picks = append(p.picks, i)
}

// UnpickLast returns the most recently picked token to the pool.
func (p *Puzzle) UnpickLast() {
	if len(p.picks) == 0 {
		return
	}
	last := p.picks[len(p.picks)-1]
	p.used[last] = false
	p.picks = p.picks[:len(p.picks)-1]
}

// Unpick returns the nth picked token (0-based, in pick order) to the
// pool, preserving the order of the remaining picks.
func (p *Puzzle) Unpick(n int) {
	if n < 0 || n >= len(p.picks) {
		return
	}
	p.used[p.picks[n]] = false
	p.picks = append(p.picks[:n], p.picks[n+1:]...)
}

// Picked returns the picked tokens in pick order.
func (p *Puzzle) Picked() []string {
	out := make([]string, len(p.picks))
	for i, idx := range p.picks {
		out[i] = p.tokens[idx]
	}
	return out
}

// Candidate returns the sentence built so far, tokens joined by single
// spaces. This whole string is what gets graded, via the normalizer;
// there is no per-token credit.
func (p *Puzzle) Candidate() string {
	return strings.Join(p.Picked(), " ")
}

// Complete reports whether every pool token has been picked.
func (p *Puzzle) Complete() bool {
	return len(p.picks) == len(p.tokens)
}
