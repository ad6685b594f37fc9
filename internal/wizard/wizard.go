// Package wizard asks for a skill name and destination in the terminal.
package wizard

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wallacegibbon/skillkit/internal/skills"
)

const (
	fieldName = iota
	fieldPath
)

// Answers is what the user entered
type Answers struct {
	Name      string
	Path      string
	Cancelled bool
}

// Model is the bubbletea model for the new-skill form
type Model struct {
	inputs    []textinput.Model
	focus     int
	err       string
	done      bool
	cancelled bool

	labelStyle lipgloss.Style
	errorStyle lipgloss.Style
	hintStyle  lipgloss.Style
}

// New creates the form. defaultPath is used when the path is left empty.
func New(defaultPath string) Model {
	name := textinput.New()
	name.Placeholder = "my-new-skill"
	name.CharLimit = skills.MaxNameLength
	name.Focus()

	path := textinput.New()
	path.Placeholder = defaultPath

	return Model{
		inputs:     []textinput.Model{name, path},
		labelStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cba6f7")),
		errorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")),
		hintStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086")),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyTab, tea.KeyShiftTab:
			cmd := m.setFocus(1 - m.focus)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.inputs[fieldName].Value())
	switch {
	case name == "":
		m.err = "Skill name is required"
		cmd := m.setFocus(fieldName)
		return m, cmd
	case skills.CheckName(name) != nil:
		m.err = skills.CheckName(name).Error()
		cmd := m.setFocus(fieldName)
		return m, cmd
	}
	m.err = ""

	if m.focus == fieldName {
		cmd := m.setFocus(fieldPath)
		return m, cmd
	}
	m.done = true
	return m, tea.Quit
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[i].Focus()
}

func (m Model) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.labelStyle.Render("Skill name") + "\n")
	b.WriteString(m.inputs[fieldName].View() + "\n\n")
	b.WriteString(m.labelStyle.Render("Create in") + "\n")
	b.WriteString(m.inputs[fieldPath].View() + "\n\n")
	if m.err != "" {
		b.WriteString(m.errorStyle.Render(m.err) + "\n\n")
	}
	b.WriteString(m.hintStyle.Render("enter: next • tab: switch field • esc: cancel") + "\n")
	return b.String()
}

// Answers returns the form values once the program has finished
func (m Model) Answers() Answers {
	if m.cancelled || !m.done {
		return Answers{Cancelled: true}
	}
	path := strings.TrimSpace(m.inputs[fieldPath].Value())
	if path == "" {
		path = m.inputs[fieldPath].Placeholder
	}
	return Answers{
		Name: strings.TrimSpace(m.inputs[fieldName].Value()),
		Path: path,
	}
}

// Run shows the form on in/out and returns the answers
func Run(defaultPath string, in io.Reader, out io.Writer) (Answers, error) {
	p := tea.NewProgram(New(defaultPath), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return Answers{}, fmt.Errorf("wizard failed: %w", err)
	}
	return final.(Model).Answers(), nil
}
