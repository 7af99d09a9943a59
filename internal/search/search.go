// Package search finds the lines of a text that contain a query.
package search

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"reader/internal/model"
)

// ErrInvalidPattern is returned when a Pattern query does not compile.
var ErrInvalidPattern = errors.New("invalid search pattern")

// Mode selects how a query is matched against a line.
type Mode int

const (
	// Literal matches the query as a plain, case-sensitive substring.
	Literal Mode = iota
	// Pattern treats the query as a regular expression.
	Pattern
)

func (m Mode) String() string {
	switch m {
	case Pattern:
		return "pattern"
	default:
		return "literal"
	}
}

type matcher func(line string) (start, end int)

// Find splits text on newlines and returns a match for every line that
// contains query. Only the first occurrence on a line is emphasized. Line
// numbers are 1-based and keep their original positions.
func Find(text, query string, mode Mode, theme model.Theme) ([]model.SearchMatch, error) {
	match, err := newMatcher(query, mode)
	if err != nil {
		return nil, err
	}

	var matches []model.SearchMatch
	// A trailing newline leaves an empty last line, which is checked too.
	for i, line := range strings.Split(text, "\n") {
		start, end := match(line)
		if start < 0 {
			continue
		}
		matches = append(matches, model.SearchMatch{
			LineNumber: i + 1,
			Rendered:   render(i+1, line, start, end, theme),
		})
	}
	return matches, nil
}

func newMatcher(query string, mode Mode) (matcher, error) {
	if mode == Pattern {
		re, err := regexp.Compile(query)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidPattern, "%q: %v", query, err)
		}
		return func(line string) (int, int) {
			loc := re.FindStringIndex(line)
			if loc == nil {
				return -1, -1
			}
			return loc[0], loc[1]
		}, nil
	}

	return func(line string) (int, int) {
		idx := strings.Index(line, query)
		if idx < 0 {
			return -1, -1
		}
		return idx, idx + len(query)
	}, nil
}

func render(lineNumber int, line string, start, end int, theme model.Theme) string {
	var b strings.Builder
	b.WriteString(theme.LinePrefix.Render(fmt.Sprintf("Line-(%d)\t", lineNumber)))
	b.WriteString(line[:start])
	b.WriteString(theme.Match.Render(line[start:end]))
	b.WriteString(line[end:])
	return b.String()
}
