// Package prompt defines how the browser asks the user for input.
package prompt

import "github.com/pkg/errors"

// ErrInterrupted is returned when the user cancels a prompt.
var ErrInterrupted = errors.New("interrupted")

// Choice is a single option of a selection menu.
type Choice struct {
	Label string // Text shown to the user
	Value string // Returned when the choice is selected
}

// Prompter asks the user questions. Each call blocks until the user answers.
type Prompter interface {
	// SelectOne shows message and choices and returns the Value of the chosen one.
	SelectOne(message string, choices []Choice) (string, error)
	// ReadLine shows message and returns the typed line.
	ReadLine(message string) (string, error)
}
