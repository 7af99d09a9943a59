package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("81")) // Sky Blue/Cyan

	answerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

const (
	cursorMark = "❯ "
	blankMark  = "  "
)

// visibleItems is the number of menu rows that fit under the header.
func (m SelectModel) visibleItems() int {
	if m.WindowSize.Height == 0 {
		return pageSize
	}
	// Header is 1 line, plus one spare line so the menu never scrolls the terminal.
	visible := m.WindowSize.Height - 2
	if visible < 1 {
		visible = 1
	}
	return visible
}

func (m SelectModel) View() string {
	if m.Aborted {
		return ""
	}
	if m.Done {
		return titleStyle.Render(m.Message) + " " + answerStyle.Render(m.Selected().Label) + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.Message))
	b.WriteString(" ")
	b.WriteString(dimStyle.Render("(↑/↓ to move, enter to select)"))
	b.WriteString("\n")

	// Windowing: keep the cursor near the middle of the visible rows.
	visible := m.visibleItems()
	startIdx := 0
	endIdx := len(m.Choices)
	if len(m.Choices) > visible {
		if m.Cursor >= visible/2 {
			startIdx = m.Cursor - visible/2
		}
		if startIdx+visible > len(m.Choices) {
			startIdx = len(m.Choices) - visible
		}
		endIdx = startIdx + visible
	}

	for i := startIdx; i < endIdx; i++ {
		label := m.Choices[i].Label
		if i == m.Cursor {
			b.WriteString(selectedItemStyle.Render(cursorMark))
			b.WriteString(selectedItemStyle.Render(label))
		} else {
			b.WriteString(blankMark)
			b.WriteString(label)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m InputModel) View() string {
	if m.Aborted {
		return ""
	}
	if m.Done {
		return titleStyle.Render(m.Message) + " " + answerStyle.Render(m.Value()) + "\n"
	}
	return titleStyle.Render(m.Message) + " " + m.Input.View() + "\n"
}
