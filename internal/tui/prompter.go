// Package tui implements prompt.Prompter with inline bubbletea programs.
package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"reader/internal/prompt"
)

// Prompter asks questions on a terminal. Every question runs its own short
// bubbletea program that exits once the user answers.
type Prompter struct {
	in  io.Reader
	out io.Writer
}

// NewPrompter returns a Prompter reading keys from in and drawing on out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

func (p *Prompter) SelectOne(message string, choices []prompt.Choice) (string, error) {
	if len(choices) == 0 {
		return "", errors.New("nothing to choose from")
	}

	final, err := p.run(NewSelectModel(message, choices))
	if err != nil {
		return "", err
	}
	m := final.(SelectModel)
	if !m.Done {
		return "", prompt.ErrInterrupted
	}
	return m.Selected().Value, nil
}

func (p *Prompter) ReadLine(message string) (string, error) {
	final, err := p.run(NewInputModel(message))
	if err != nil {
		return "", err
	}
	m := final.(InputModel)
	if !m.Done {
		return "", prompt.ErrInterrupted
	}
	return m.Value(), nil
}

func (p *Prompter) run(m tea.Model) (tea.Model, error) {
	prog := tea.NewProgram(m, tea.WithInput(p.in), tea.WithOutput(p.out))
	final, err := prog.Run()
	if err != nil {
		return nil, runError(err)
	}
	return final, nil
}

// runError turns a SIGINT delivered to the program into prompt.ErrInterrupted.
func runError(err error) error {
	if errors.Is(err, tea.ErrInterrupted) {
		return prompt.ErrInterrupted
	}
	return errors.Wrap(err, "prompt failed")
}
