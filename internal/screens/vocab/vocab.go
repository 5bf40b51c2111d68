package vocab

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexigo/internal/curriculum"
	"github.com/abhisek/lexigo/internal/learner"
	"github.com/abhisek/lexigo/internal/screen"
	"github.com/abhisek/lexigo/internal/speech"
	"github.com/abhisek/lexigo/internal/ui/layout"
	"github.com/abhisek/lexigo/internal/ui/theme"
)

// ActivityID keys the flashcard activity in the progress ledger. One
// pass through the deck counts as one completed activity.
func ActivityID(section *curriculum.Section) string {
	return "vocab:" + section.DisplayName()
}

// VocabScreen is the flashcard viewer for a vocabulary section.
type VocabScreen struct {
	section *curriculum.Section
	svc     *learner.Service
	speaker speech.Speaker

	index    int
	flipped  bool
	visited  map[int]bool
	recorded bool
}

var _ screen.Screen = (*VocabScreen)(nil)
var _ screen.KeyHintProvider = (*VocabScreen)(nil)

// New creates a flashcard screen over the section's vocabulary items.
func New(section *curriculum.Section, svc *learner.Service, speaker speech.Speaker) *VocabScreen {
	return &VocabScreen{
		section: section,
		svc:     svc,
		speaker: speaker,
		visited: map[int]bool{0: true},
	}
}

func (s *VocabScreen) Init() tea.Cmd {
	return nil
}

func (s *VocabScreen) Title() string {
	return s.section.DisplayName()
}

func (s *VocabScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Card"},
		{Key: "Space", Description: "Flip"},
		{Key: "P", Description: "Pronounce"},
		{Key: "D", Description: "Mark difficult"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *VocabScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	items := s.section.Items
	if len(items) == 0 {
		return s, nil
	}
	switch kmsg.String() {
	case "left", "h":
		if s.index > 0 {
			s.index--
			s.flipped = false
			s.visited[s.index] = true
		}
	case "right", "l":
		if s.index < len(items)-1 {
			s.index++
			s.flipped = false
			s.visited[s.index] = true
			s.maybeComplete()
		}
	case "space", "enter":
		s.flipped = !s.flipped
	case "p":
		// Fire-and-forget; playback failure never affects state.
		s.speaker.Speak(items[s.index].Word)
	case "d":
		s.svc.ToggleDifficult(context.Background(), items[s.index].Word)
	}

	return s, nil
}

// maybeComplete records the flashcard activity once the learner has
// seen every card, at most once per visit to this screen. Completion
// is all-or-nothing, so the score is always full; replays still earn
// the decayed XP.
func (s *VocabScreen) maybeComplete() {
	if s.recorded || len(s.visited) < len(s.section.Items) {
		return
	}
	n := len(s.section.Items)
	s.svc.RecordCompletion(context.Background(), ActivityID(s.section), n, n)
	s.recorded = true
}

func (s *VocabScreen) View(width, height int) string {
	items := s.section.Items
	if len(items) == 0 {
		return theme.Hint.Render("No vocabulary in this section.")
	}
	item := items[s.index]
	p := s.svc.Progress()

	star := " "
	if p.DifficultWords[item.Word] {
		star = lipgloss.NewStyle().Foreground(theme.Accent).Render("★")
	}

	var face string
	if s.flipped {
		face = theme.Body.Render(item.Meaning)
	} else {
		face = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(item.Word) + "\n" +
			theme.Subtitle.Render(item.Pronunciation)
		if item.PartOfSpeech != "" {
			face += "\n" + theme.Hint.Render("("+item.PartOfSpeech+")")
		}
	}

	card := theme.Card.Width(44).Align(lipgloss.Center).Render(star + "\n" + face + "\n")
	counter := theme.Subtitle.Render(fmt.Sprintf("%d / %d", s.index+1, len(items)))

	content := lipgloss.JoinVertical(lipgloss.Center, card, "", counter)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
