// Package nav walks the filesystem interactively until the user lands on a file.
package nav

import (
	"log"

	"github.com/pkg/errors"

	"reader/internal/model"
	"reader/internal/prompt"
)

// ChooseMessage is shown above every directory listing.
const ChooseMessage = "Choose a file or directory:"

// Navigator descends from a start path to a file chosen by the user.
type Navigator struct {
	prompter prompt.Prompter
	theme    model.Theme
}

// NewNavigator returns a Navigator that asks p for every directory choice.
func NewNavigator(p prompt.Prompter, theme model.Theme) *Navigator {
	return &Navigator{prompter: p, theme: theme}
}

// Resolve returns start if it is a file. Otherwise it lists the directory,
// asks the user to pick an entry and repeats with the chosen path.
func (n *Navigator) Resolve(start string) (string, error) {
	current := start
	for {
		isFile, err := model.IsFile(current)
		if err != nil {
			return "", err
		}
		if isFile {
			log.Printf("nav: resolved %s", current)
			return current, nil
		}

		entries, err := List(current, n.theme)
		if err != nil {
			return "", err
		}
		if len(entries) == 0 {
			return "", errors.Wrapf(model.ErrEmptyDirectory, "cannot open %s", current)
		}

		choices := make([]prompt.Choice, len(entries))
		for i, e := range entries {
			choices[i] = prompt.Choice{Label: e.Label, Value: e.FullPath}
		}

		next, err := n.prompter.SelectOne(ChooseMessage, choices)
		if err != nil {
			return "", err
		}
		log.Printf("nav: %s -> %s", current, next)
		current = next
	}
}
