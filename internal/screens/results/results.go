package results

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexigo/internal/router"
	"github.com/abhisek/lexigo/internal/screen"
	"github.com/abhisek/lexigo/internal/ui/layout"
	"github.com/abhisek/lexigo/internal/ui/theme"
)

// Outcome is what the completed activity reports for display.
type Outcome struct {
	ExerciseLabel string
	CorrectCount  int
	MaxScore      int
	Percent       int
	XPGained      int
	TotalXP       int
	Replay        bool
	SaveErr       error
}

// ResultsScreen shows the outcome of a completed exercise.
type ResultsScreen struct {
	outcome Outcome
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a new ResultsScreen.
func New(outcome Outcome) *ResultsScreen {
	return &ResultsScreen{outcome: outcome}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to unit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	o := s.outcome

	headline := "Well done!"
	headlineStyle := theme.Correct
	switch {
	case o.Percent == 100:
		headline = "Perfect score!"
	case o.Percent < 50:
		headline = "Keep practicing!"
		headlineStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	}

	lines := []string{
		headlineStyle.Render(headline),
		"",
		theme.Body.Render(o.ExerciseLabel),
		"",
		theme.Body.Render(fmt.Sprintf("Score: %d / %d  (%d%%)", o.CorrectCount, o.MaxScore, o.Percent)),
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("+%d XP", o.XPGained)),
		theme.Hint.Render(fmt.Sprintf("Total: %d XP", o.TotalXP)),
	}
	if o.Replay {
		lines = append(lines, "", theme.Hint.Render("Replay: XP is reduced for repeat completions"))
	}
	if o.SaveErr != nil {
		lines = append(lines, "", theme.Incorrect.Render("Progress could not be saved: "+o.SaveErr.Error()))
	}

	var content string
	for _, l := range lines {
		content += l + "\n"
	}

	card := theme.Card.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
