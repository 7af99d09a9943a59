package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// pageSize is used for pgup/pgdown before the terminal size is known.
const pageSize = 10

func (m SelectModel) Init() tea.Cmd {
	return nil
}

// Update handles events.
func (m SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.Aborted = true
			return m, tea.Quit
		case "enter":
			m.Done = true
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Choices)-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = len(m.Choices) - 1
		case "pgup":
			m.Cursor -= m.visibleItems()
			if m.Cursor < 0 {
				m.Cursor = 0
			}
		case "pgdown":
			m.Cursor += m.visibleItems()
			if m.Cursor > len(m.Choices)-1 {
				m.Cursor = len(m.Choices) - 1
			}
		}
	}

	return m, nil
}

func (m InputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles events.
func (m InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.Done = true
			m.Input.Blur()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}
