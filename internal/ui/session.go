package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"telex/internal/session"
)

type sessionModel struct {
	sess       *session.Session
	configPath string
	input      textinput.Model
	report     []string
	hasReport  bool
	width      int
	done       bool
}

// NewSessionModel returns a Bubble Tea model driving an interactive
// translate session. All loop decisions are delegated to sess; the model
// only renders and collects keystrokes.
func NewSessionModel(sess *session.Session, configPath string) tea.Model {
	ti := textinput.New()
	ti.Placeholder = "raw data string (or 'q' to quit)"
	ti.Prompt = " > "
	ti.Focus()
	return &sessionModel{
		sess:       sess,
		configPath: configPath,
		input:      ti,
		width:      80,
	}
}

func (m *sessionModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.sess.Quit()
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			outcome := m.sess.HandleInput(m.input.Value())
			if outcome.Quit {
				m.done = true
				return m, tea.Quit
			}
			m.report = outcome.Lines
			m.hasReport = true
			m.input.SetValue("")
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *sessionModel) View() string {
	if m.done {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	ruleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	fieldStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	var b strings.Builder
	header := fmt.Sprintf("telex — %s (%d fields)", m.configPath, len(m.sess.Fields()))
	b.WriteString(titleStyle.Render(truncate(header, m.width)))
	b.WriteString("\n\n")

	if m.hasReport {
		rule := ruleStyle.Render(strings.Repeat("=", ruleWidth(m.width)))
		b.WriteString(rule)
		b.WriteString("\n")
		for _, line := range m.report {
			name, value, ok := strings.Cut(line, ": ")
			if ok {
				b.WriteString(fieldStyle.Render(name + ":"))
				b.WriteString(" ")
				b.WriteString(truncate(value, m.width-runewidth.StringWidth(name)-2))
			} else {
				b.WriteString(truncate(line, m.width))
			}
			b.WriteString("\n")
		}
		b.WriteString(rule)
		b.WriteString("\n\n")
	}

	b.WriteString("Enter the entire raw data string below... (or 'q' to quit)\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

func ruleWidth(width int) int {
	if width <= 0 || width > 36 {
		return 36
	}
	return width
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
