package app

import (
	"fmt"
	"math/rand"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexigo/internal/curriculum"
	"github.com/abhisek/lexigo/internal/learner"
	"github.com/abhisek/lexigo/internal/router"
	"github.com/abhisek/lexigo/internal/screen"
	"github.com/abhisek/lexigo/internal/screens/home"
	"github.com/abhisek/lexigo/internal/speech"
	"github.com/abhisek/lexigo/internal/ui/layout"
)

// Options carries everything the TUI needs, wired up by the command
// layer.
type Options struct {
	Unit    *curriculum.Unit
	Learner *learner.Service
	Speaker speech.Speaker
	Rng     *rand.Rand
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	learner *learner.Service
	width   int
	height  int
}

// newAppModel creates a new AppModel with the dashboard on the stack.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Unit, opts.Learner, opts.Speaker, opts.Rng)
	return AppModel{
		router:  router.New(homeScreen),
		learner: opts.Learner,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.learner.Progress().XP, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(provider.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
