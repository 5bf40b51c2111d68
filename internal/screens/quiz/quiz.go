package quiz

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexigo/internal/curriculum"
	"github.com/abhisek/lexigo/internal/grading"
	"github.com/abhisek/lexigo/internal/learner"
	"github.com/abhisek/lexigo/internal/rearrange"
	"github.com/abhisek/lexigo/internal/router"
	"github.com/abhisek/lexigo/internal/screen"
	"github.com/abhisek/lexigo/internal/screens/results"
	"github.com/abhisek/lexigo/internal/ui/components"
	"github.com/abhisek/lexigo/internal/ui/layout"
	"github.com/abhisek/lexigo/internal/ui/theme"
)

// QuizScreen hosts one item-based exercise. The learner works through
// the items in any order, checks the whole set at once, reviews the
// revealed answers, and then confirms to bank the score. Progress is
// recorded exactly once, at confirmation; backing out earlier records
// nothing.
type QuizScreen struct {
	ex  *curriculum.Exercise
	svc *learner.Service

	index    int
	revealed bool
	result   grading.Result

	// one widget slice is populated, chosen by the exercise kind
	inputs  []components.TextInput
	pickers []components.OptionPicker
	banks   []components.WordBank
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen for the exercise. rng seeds the token
// shuffle of rearrange items.
func New(ex *curriculum.Exercise, svc *learner.Service, rng *rand.Rand) *QuizScreen {
	s := &QuizScreen{ex: ex, svc: svc}

	switch {
	case ex.Kind == curriculum.KindRearrange:
		for _, item := range ex.Items {
			s.banks = append(s.banks, components.NewWordBank(rearrange.New(item.Prompt, rng)))
		}
	case ex.Kind.UsesOptions():
		for _, item := range ex.Items {
			s.pickers = append(s.pickers, components.NewOptionPicker("", item.Options))
		}
	default:
		for range ex.Items {
			s.inputs = append(s.inputs, components.NewTextInput("Your answer", 120))
		}
	}

	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	if len(s.inputs) > 0 {
		return s.inputs[0].Init()
	}
	return nil
}

func (s *QuizScreen) Title() string {
	if s.ex.Topic != "" {
		return s.ex.Topic
	}
	return s.ex.Kind.Label()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.revealed {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Review items"},
			{Key: "Enter", Description: "Finish"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next item"},
	}
	if len(s.banks) > 0 {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Pick word"})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+S", Description: "Check answers"},
		layout.KeyHint{Key: "Esc", Description: "Abandon"},
	)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "tab":
		s.advance(1)
		return s, nil
	case "shift+tab":
		s.advance(-1)
		return s, nil
	case "ctrl+s":
		if !s.revealed {
			s.check()
		}
		return s, nil
	case "enter":
		if s.revealed {
			return s, s.finish()
		}
	}

	return s, s.updateWidget(msg, kmsg)
}

// advance moves the item cursor, wrapping at both ends.
func (s *QuizScreen) advance(delta int) {
	n := len(s.ex.Items)
	s.index = (s.index + delta + n) % n
}

// updateWidget routes the key to the active item's widget. Text inputs
// treat enter as "go to the next item"; the picker and the word bank
// consume enter themselves.
func (s *QuizScreen) updateWidget(msg tea.Msg, kmsg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd

	switch {
	case len(s.inputs) > 0:
		if kmsg.String() == "enter" {
			s.advance(1)
			return nil
		}
		s.inputs[s.index], cmd = s.inputs[s.index].Update(msg)
	case len(s.pickers) > 0:
		key := kmsg.String()
		confirmed := key == "enter" || key == "space"
		s.pickers[s.index], cmd = s.pickers[s.index].Update(msg)
		if confirmed && !s.revealed {
			s.advance(1)
		}
	case len(s.banks) > 0:
		s.banks[s.index], cmd = s.banks[s.index].Update(msg)
	}

	return cmd
}

// response returns the learner's current answer for item i.
func (s *QuizScreen) response(i int) string {
	switch {
	case len(s.inputs) > 0:
		return s.inputs[i].Value()
	case len(s.pickers) > 0:
		return s.pickers[i].Value()
	default:
		return s.banks[i].Puzzle.Candidate()
	}
}

// check grades every item, freezes the widgets, and switches the
// screen into review mode.
func (s *QuizScreen) check() {
	responses := make(map[int]string, len(s.ex.Items))
	for i := range s.ex.Items {
		responses[i] = s.response(i)
	}

	res, err := grading.Grade(s.ex, responses)
	if err != nil {
		// The curriculum is validated at load time, so grading can only
		// fail on a kind this screen was never built for.
		return
	}
	s.result = res
	s.revealed = true

	for i, item := range s.ex.Items {
		correct := grading.ItemCorrect(s.ex.Kind, item, responses[i])
		switch {
		case len(s.inputs) > 0:
			s.inputs[i].Reveal(correct)
		case len(s.pickers) > 0:
			s.pickers[i].Reveal(correctOptionIndex(item))
		default:
			s.banks[i].Reveal(correct)
		}
	}

	s.index = 0
}

// correctOptionIndex finds the option matching the item's answer.
func correctOptionIndex(item curriculum.QuestionItem) int {
	for i, opt := range item.Options {
		if strings.EqualFold(opt, item.CorrectAnswer) {
			return i
		}
	}
	return -1
}

// finish banks the graded attempt and swaps in the results screen.
func (s *QuizScreen) finish() tea.Cmd {
	replay := s.svc.Progress().Completed[s.ex.ID]
	gain := s.svc.RecordCompletion(context.Background(), s.ex.ID, s.result.CorrectCount, s.result.MaxScore)

	outcome := results.Outcome{
		ExerciseLabel: s.Title(),
		CorrectCount:  s.result.CorrectCount,
		MaxScore:      s.result.MaxScore,
		Percent:       s.result.Percent(),
		XPGained:      gain,
		TotalXP:       s.svc.Progress().XP,
		Replay:        replay,
		SaveErr:       s.svc.SaveErr(),
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results.New(outcome)}
	}
}

func (s *QuizScreen) View(width, height int) string {
	item := s.ex.Items[s.index]

	instruction := theme.Subtitle.Render(s.ex.Instruction)
	counter := theme.Hint.Render(fmt.Sprintf("Item %d of %d", s.index+1, len(s.ex.Items)))

	var body string
	switch {
	case len(s.pickers) > 0:
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(item.Prompt)
		body = prompt + "\n\n" + s.pickers[s.index].View()
	case len(s.banks) > 0:
		body = s.banks[s.index].View()
	default:
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(item.Prompt)
		body = prompt + "\n\n" + s.inputs[s.index].View()
	}

	if s.revealed {
		answer := theme.Hint.Render("Answer: ") + theme.Correct.Render(item.CorrectAnswer)
		score := theme.Body.Render(fmt.Sprintf("Score: %d / %d", s.result.CorrectCount, s.result.MaxScore))
		body += "\n\n" + answer + "\n\n" + score
	}
	if item.Note != "" {
		body += "\n\n" + theme.Hint.Render(item.Note)
	}

	card := theme.Card.Width(layout.MinWidth - 10).Render(body)
	content := lipgloss.JoinVertical(lipgloss.Left, instruction, "", card, "", counter)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
