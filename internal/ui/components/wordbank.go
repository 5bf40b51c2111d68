package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexigo/internal/rearrange"
	"github.com/abhisek/lexigo/internal/ui/theme"
)

// WordBank renders a rearrange puzzle: the sentence built so far on
// top, the shuffled token pool below. Left/right move the cursor over
// the unused pool tokens, enter picks, backspace returns the last pick.
type WordBank struct {
	Puzzle   *rearrange.Puzzle
	Cursor   int
	Revealed bool
	correct  bool
}

// NewWordBank wraps an existing puzzle.
func NewWordBank(p *rearrange.Puzzle) WordBank {
	return WordBank{Puzzle: p}
}

// Init returns nil.
func (w WordBank) Init() tea.Cmd {
	return nil
}

// Update handles token picking.
func (w WordBank) Update(msg tea.Msg) (WordBank, tea.Cmd) {
	if w.Revealed {
		return w, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	n := len(w.Puzzle.Tokens())
	switch kmsg.String() {
	case "left", "h":
		for i := w.Cursor - 1; i >= 0; i-- {
			if !w.Puzzle.Used(i) {
				w.Cursor = i
				break
			}
		}
	case "right", "l":
		for i := w.Cursor + 1; i < n; i++ {
			if !w.Puzzle.Used(i) {
				w.Cursor = i
				break
			}
		}
	case "enter", "space":
		w.Puzzle.Pick(w.Cursor)
		w.Cursor = w.nextFree(w.Cursor)
	case "backspace":
		w.Puzzle.UnpickLast()
	}

	return w, nil
}

// nextFree returns the nearest unused pool index at or after from,
// falling back to the nearest one before it.
func (w WordBank) nextFree(from int) int {
	n := len(w.Puzzle.Tokens())
	for i := from; i < n; i++ {
		if !w.Puzzle.Used(i) {
			return i
		}
	}
	for i := from - 1; i >= 0; i-- {
		if !w.Puzzle.Used(i) {
			return i
		}
	}
	return 0
}

// Reveal freezes the bank and records the grading outcome.
func (w *WordBank) Reveal(correct bool) {
	w.Revealed = true
	w.correct = correct
}

// View renders the candidate sentence and the remaining pool.
func (w WordBank) View() string {
	candidate := w.Puzzle.Candidate()
	if candidate == "" {
		candidate = "…"
	}

	line := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(candidate)
	if w.Revealed {
		if w.correct {
			line += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			line += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}

	var pool []string
	for i, tok := range w.Puzzle.Tokens() {
		if w.Puzzle.Used(i) {
			continue
		}
		chip := " " + tok + " "
		if i == w.Cursor && !w.Revealed {
			pool = append(pool, lipgloss.NewStyle().
				Background(theme.Primary).
				Foreground(theme.Text).
				Bold(true).
				Render(chip))
		} else {
			pool = append(pool, lipgloss.NewStyle().
				Background(theme.BgCard).
				Foreground(theme.Text).
				Render(chip))
		}
	}

	s := line + "\n\n"
	if len(pool) > 0 {
		s += strings.Join(pool, " ") + "\n"
	}
	return s
}
