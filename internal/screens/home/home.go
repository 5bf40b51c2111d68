package home

import (
	"fmt"
	"math/rand"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexigo/internal/curriculum"
	"github.com/abhisek/lexigo/internal/learner"
	"github.com/abhisek/lexigo/internal/router"
	"github.com/abhisek/lexigo/internal/screen"
	"github.com/abhisek/lexigo/internal/screens/matchgame"
	"github.com/abhisek/lexigo/internal/screens/quiz"
	"github.com/abhisek/lexigo/internal/screens/vocab"
	"github.com/abhisek/lexigo/internal/speech"
	"github.com/abhisek/lexigo/internal/ui/components"
	"github.com/abhisek/lexigo/internal/ui/layout"
	"github.com/abhisek/lexigo/internal/ui/theme"
)

// entry pairs a menu row with the progress key that drives its badge.
type entry struct {
	label      string
	activityID string
	open       func() screen.Screen
}

// HomeScreen is the unit dashboard: overall completion, then one row
// per activity in curriculum order.
type HomeScreen struct {
	unit    *curriculum.Unit
	svc     *learner.Service
	speaker speech.Speaker
	rng     *rand.Rand

	entries []entry
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the dashboard for the unit.
func New(unit *curriculum.Unit, svc *learner.Service, speaker speech.Speaker, rng *rand.Rand) *HomeScreen {
	s := &HomeScreen{
		unit:    unit,
		svc:     svc,
		speaker: speaker,
		rng:     rng,
	}
	s.buildEntries()

	items := make([]components.MenuItem, len(s.entries))
	for i, e := range s.entries {
		open := e.open
		items[i] = components.MenuItem{
			Label: e.label,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: open()}
				}
			},
		}
	}
	s.menu = components.NewMenu(items)
	s.refreshBadges()
	return s
}

// buildEntries flattens the unit into dashboard rows: one per
// vocabulary section, one per exercise.
func (s *HomeScreen) buildEntries() {
	for si := range s.unit.Sections {
		sec := &s.unit.Sections[si]

		if sec.Type == curriculum.SectionVocabulary {
			s.entries = append(s.entries, entry{
				label:      "Flashcards · " + sec.DisplayName(),
				activityID: vocab.ActivityID(sec),
				open: func() screen.Screen {
					return vocab.New(sec, s.svc, s.speaker)
				},
			})
			continue
		}

		for ei := range sec.Exercises {
			ex := &sec.Exercises[ei]
			label := ex.Kind.Label()
			if ex.Topic != "" {
				label = ex.Topic
			}
			if sec.Type == curriculum.SectionTest {
				label = sec.DisplayName() + " · " + label
			}

			open := func() screen.Screen {
				if ex.Kind == curriculum.KindMatching {
					return matchgame.New(ex, s.svc, s.rng)
				}
				return quiz.New(ex, s.svc, s.rng)
			}
			s.entries = append(s.entries, entry{label: label, activityID: ex.ID, open: open})
		}
	}
}

// refreshBadges recomputes the score badges from the current ledger.
// Called on every Update so rows reflect completions made on screens
// pushed above this one.
func (s *HomeScreen) refreshBadges() {
	p := s.svc.Progress()
	for i, e := range s.entries {
		detail := ""
		if p.Completed[e.activityID] {
			if score, ok := p.Scores[e.activityID]; ok {
				detail = theme.Correct.Render(fmt.Sprintf("✓ %d%%", score))
			} else {
				detail = theme.Correct.Render("✓")
			}
		}
		s.menu.Items[i].Detail = detail
	}
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Title() string {
	return fmt.Sprintf("Unit %d · %s", s.unit.Info.Number, s.unit.Info.Title)
}

func (s *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.refreshBadges()

	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "q" {
		return s, tea.Quit
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	s.refreshBadges()
	p := s.svc.Progress()

	total := s.unit.ActivityCount()
	bar := components.NewProgressBar(
		fmt.Sprintf("Unit progress (%d/%d)", p.CompletedCount(), total),
		p.CompletionRatio(total),
		true,
		40,
	)

	var difficult string
	if n := len(p.DifficultWords); n > 0 {
		difficult = theme.Hint.Render(fmt.Sprintf("%d word(s) marked difficult", n))
	}

	desc := theme.Subtitle.Render(s.unit.Info.Description)
	content := lipgloss.JoinVertical(lipgloss.Left,
		desc, "", bar.View(), "", s.menu.View(), difficult)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
