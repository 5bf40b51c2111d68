package matchgame

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexigo/internal/curriculum"
	"github.com/abhisek/lexigo/internal/learner"
	"github.com/abhisek/lexigo/internal/matching"
	"github.com/abhisek/lexigo/internal/router"
	"github.com/abhisek/lexigo/internal/screen"
	"github.com/abhisek/lexigo/internal/screens/results"
	"github.com/abhisek/lexigo/internal/ui/layout"
	"github.com/abhisek/lexigo/internal/ui/theme"
)

// flashClearMsg clears the wrong-pick flash after its timer fires.
type flashClearMsg struct{}

// MatchScreen drives one matching exercise: prompts on the left in
// fixed order, shuffled answers on the right. The learner selects a
// prompt, then an answer; a wrong answer flashes and clears the
// selection. The exercise completes when every pair is matched, always
// at full score.
type MatchScreen struct {
	ex   *curriculum.Exercise
	svc  *learner.Service
	game *matching.Game

	side   int // 0 left deck, 1 right deck
	cursor int
	flash  bool
	done   bool
}

var _ screen.Screen = (*MatchScreen)(nil)
var _ screen.KeyHintProvider = (*MatchScreen)(nil)

// New creates a matching screen for the exercise. rng fixes the
// right-deck shuffle.
func New(ex *curriculum.Exercise, svc *learner.Service, rng *rand.Rand) *MatchScreen {
	return &MatchScreen{
		ex:   ex,
		svc:  svc,
		game: matching.New(ex.Pairs, rng),
	}
}

func (s *MatchScreen) Init() tea.Cmd {
	return nil
}

func (s *MatchScreen) Title() string {
	if s.ex.Topic != "" {
		return s.ex.Topic
	}
	return "Matching"
}

func (s *MatchScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Tab", Description: "Switch column"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (s *MatchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case flashClearMsg:
		s.flash = false
		return s, nil
	case tea.KeyMsg:
		return s.updateKey(msg)
	}
	return s, nil
}

func (s *MatchScreen) updateKey(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.done {
		return s, nil
	}

	n := len(s.ex.Pairs)
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < n-1 {
			s.cursor++
		}
	case "tab", "left", "right", "h", "l":
		s.side = 1 - s.side
	case "enter", "space":
		return s.selectCursor()
	}

	return s, nil
}

// selectCursor applies the current cursor as a deck selection.
func (s *MatchScreen) selectCursor() (screen.Screen, tea.Cmd) {
	if s.side == 0 {
		s.game.SelectLeft(s.game.Left()[s.cursor].ID)
		// Jump to the answer column so the next pick completes the pair.
		s.side = 1
		return s, nil
	}

	switch s.game.SelectRight(s.game.Right()[s.cursor].ID) {
	case matching.OutcomeWrong:
		s.flash = true
		s.side = 0
		return s, tea.Tick(time.Second, func(time.Time) tea.Msg { return flashClearMsg{} })
	case matching.OutcomeMatched:
		s.side = 0
	case matching.OutcomeResolved:
		s.done = true
		return s, s.finish()
	}
	return s, nil
}

// finish banks the resolved game and swaps in the results screen. A
// resolved matching game always scores every pair.
func (s *MatchScreen) finish() tea.Cmd {
	score := s.game.Score()
	replay := s.svc.Progress().Completed[s.ex.ID]
	gain := s.svc.RecordCompletion(context.Background(), s.ex.ID, score, len(s.ex.Pairs))

	outcome := results.Outcome{
		ExerciseLabel: s.Title(),
		CorrectCount:  score,
		MaxScore:      len(s.ex.Pairs),
		Percent:       100,
		XPGained:      gain,
		TotalXP:       s.svc.Progress().XP,
		Replay:        replay,
		SaveErr:       s.svc.SaveErr(),
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results.New(outcome)}
	}
}

func (s *MatchScreen) View(width, height int) string {
	instruction := theme.Subtitle.Render(s.ex.Instruction)

	left := s.renderDeck(s.game.Left(), 0)
	right := s.renderDeck(s.game.Right(), 1)
	columns := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)

	status := theme.Hint.Render(fmt.Sprintf("Matched %d of %d", s.matchedCount(), len(s.ex.Pairs)))
	if s.flash {
		status = theme.Incorrect.Render("Try again!")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, instruction, "", columns, "", status)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *MatchScreen) matchedCount() int {
	count := 0
	for _, c := range s.game.Left() {
		if s.game.Matched(c.ID) {
			count++
		}
	}
	return count
}

// renderDeck renders one column of cards with cursor, selection, and
// matched styling.
func (s *MatchScreen) renderDeck(cards []matching.Card, side int) string {
	selected, hasSelection := s.game.Selected()

	var out string
	for i, c := range cards {
		prefix := "  "
		if s.side == side && s.cursor == i {
			prefix = "▸ "
		}
		line := prefix + c.Text

		switch {
		case s.game.Matched(c.ID):
			out += theme.Correct.Render(line) + "\n"
		case side == 0 && hasSelection && c.ID == selected:
			out += theme.Selected.Render(line) + "\n"
		case s.side == side && s.cursor == i:
			out += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			out += theme.Unselected.Render(line) + "\n"
		}
	}

	return lipgloss.NewStyle().Width(34).Render(out)
}
