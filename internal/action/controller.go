// Package action decides what to do with a resolved file.
package action

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/pkg/errors"

	"reader/internal/model"
	"reader/internal/prompt"
	"reader/internal/search"
)

const (
	ActionMessage = "Choose an action:"
	QueryMessage  = "Enter the search string:"

	Read = "read"
	Find = "find"
)

// Choices lists the available actions in menu order.
var Choices = []prompt.Choice{
	{Label: "Read", Value: Read},
	{Label: "Find", Value: Find},
}

// Controller prints a file or the lines of it that match a query.
type Controller struct {
	Prompter prompt.Prompter
	Out      io.Writer
	Theme    model.Theme
	Mode     search.Mode
}

// Run reads filePath, asks for an action and performs it. The file is read
// before any question is asked.
func (c *Controller) Run(filePath string) error {
	text, err := model.ReadText(filePath)
	if err != nil {
		return err
	}

	action, err := c.Prompter.SelectOne(ActionMessage, Choices)
	if err != nil {
		return err
	}
	log.Printf("action: %s on %s", action, filePath)

	switch action {
	case Find:
		return c.find(text)
	default:
		return c.read(text)
	}
}

func (c *Controller) read(text string) error {
	if _, err := io.WriteString(c.Out, text); err != nil {
		return errors.WithStack(err)
	}
	if !strings.HasSuffix(text, "\n") {
		if _, err := io.WriteString(c.Out, "\n"); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func (c *Controller) find(text string) error {
	query, err := c.Prompter.ReadLine(QueryMessage)
	if err != nil {
		return err
	}

	matches, err := search.Find(text, query, c.Mode, c.Theme)
	if err != nil {
		return err
	}
	log.Printf("action: %d lines match %q (%s)", len(matches), query, c.Mode)

	for _, m := range matches {
		if _, err := fmt.Fprintln(c.Out, m.Rendered); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
