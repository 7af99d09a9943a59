package prompt

import "github.com/pkg/errors"

// Call records a single question asked of a Scripted prompter.
type Call struct {
	Kind    string // "select" or "line"
	Message string
	Choices []Choice
}

// Scripted is a Prompter that replays canned answers. It is meant for tests.
type Scripted struct {
	Answers []string // Answers returned in order
	Err     error    // Returned instead of an answer when set
	Calls   []Call   // Every question asked so far
}

// NewScripted returns a Scripted prompter that answers with answers in order.
func NewScripted(answers ...string) *Scripted {
	return &Scripted{Answers: answers}
}

func (s *Scripted) SelectOne(message string, choices []Choice) (string, error) {
	s.Calls = append(s.Calls, Call{Kind: "select", Message: message, Choices: choices})
	answer, err := s.next()
	if err != nil {
		return "", err
	}
	for _, c := range choices {
		if c.Value == answer {
			return answer, nil
		}
	}
	return "", errors.Errorf("scripted answer %q is not one of the %d choices", answer, len(choices))
}

func (s *Scripted) ReadLine(message string) (string, error) {
	s.Calls = append(s.Calls, Call{Kind: "line", Message: message})
	return s.next()
}

func (s *Scripted) next() (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	if len(s.Answers) == 0 {
		return "", errors.New("scripted prompter ran out of answers")
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}
