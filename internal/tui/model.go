package tui

import (
	"reader/internal/prompt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SelectModel holds the state of a single-choice menu.
type SelectModel struct {
	Message string
	Choices []prompt.Choice

	// UI State
	Cursor     int
	WindowSize tea.WindowSizeMsg

	// Outcome
	Done    bool
	Aborted bool
}

// NewSelectModel returns a menu with the cursor on the first choice.
func NewSelectModel(message string, choices []prompt.Choice) SelectModel {
	return SelectModel{
		Message: message,
		Choices: choices,
	}
}

// Selected returns the choice under the cursor.
func (m SelectModel) Selected() prompt.Choice {
	return m.Choices[m.Cursor]
}

// InputModel holds the state of a free text prompt.
type InputModel struct {
	Message string
	Input   textinput.Model

	Done    bool
	Aborted bool
}

// NewInputModel returns a focused, empty line editor.
func NewInputModel(message string) InputModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()

	return InputModel{
		Message: message,
		Input:   ti,
	}
}

// Value returns the typed text.
func (m InputModel) Value() string {
	return m.Input.Value()
}
