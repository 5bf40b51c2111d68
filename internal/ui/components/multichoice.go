package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexigo/internal/ui/theme"
)

// optionLabels letter the choices; exercises in this curriculum never
// exceed four options.
var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// OptionPicker is a selector over an exercise item's discrete options.
// After Reveal it recolors to show the correct option and the learner's
// pick.
type OptionPicker struct {
	Prompt   string
	Options  []string
	Selected int
	Chosen   int // -1 until the learner confirms a choice
	Revealed bool
	Correct  int // index of the correct option, set before Reveal
}

// NewOptionPicker creates a picker with nothing chosen.
func NewOptionPicker(prompt string, options []string) OptionPicker {
	return OptionPicker{
		Prompt:  prompt,
		Options: options,
		Chosen:  -1,
		Correct: -1,
	}
}

// Init returns nil.
func (p OptionPicker) Init() tea.Cmd {
	return nil
}

// Update handles navigation and selection. Choices stay editable until
// the exercise is revealed.
func (p OptionPicker) Update(msg tea.Msg) (OptionPicker, tea.Cmd) {
	if p.Revealed {
		return p, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.Selected > 0 {
			p.Selected--
		}
	case "down", "j":
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
	case "enter", "space":
		p.Chosen = p.Selected
	}

	return p, nil
}

// Value returns the chosen option text, or "" when nothing is chosen.
func (p OptionPicker) Value() string {
	if p.Chosen < 0 || p.Chosen >= len(p.Options) {
		return ""
	}
	return p.Options[p.Chosen]
}

// Reveal locks the picker and marks the correct option for rendering.
func (p *OptionPicker) Reveal(correctIndex int) {
	p.Revealed = true
	p.Correct = correctIndex
}

// View renders the picker.
func (p OptionPicker) View() string {
	var s string
	if p.Prompt != "" {
		s = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(p.Prompt) + "\n\n"
	}

	for i, opt := range p.Options {
		label := optionLabels[i%len(optionLabels)]
		prefix := "  "
		if i == p.Selected && !p.Revealed {
			prefix = "▸ "
		}
		marker := " "
		if i == p.Chosen {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		if p.Revealed {
			switch {
			case i == p.Correct:
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			case i == p.Chosen:
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
			continue
		}

		if i == p.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
