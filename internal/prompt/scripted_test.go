package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScripted_RepliesInOrder(t *testing.T) {
	s := NewScripted("b", "query")
	choices := []Choice{{Label: "A", Value: "a"}, {Label: "B", Value: "b"}}

	got, err := s.SelectOne("pick", choices)
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	line, err := s.ReadLine("type")
	require.NoError(t, err)
	assert.Equal(t, "query", line)

	require.Len(t, s.Calls, 2)
	assert.Equal(t, "select", s.Calls[0].Kind)
	assert.Equal(t, choices, s.Calls[0].Choices)
	assert.Equal(t, "line", s.Calls[1].Kind)
	assert.Equal(t, "type", s.Calls[1].Message)
}

func TestScripted_UnknownChoice(t *testing.T) {
	s := NewScripted("z")
	_, err := s.SelectOne("pick", []Choice{{Label: "A", Value: "a"}})
	assert.Error(t, err)
}

func TestScripted_OutOfAnswers(t *testing.T) {
	s := NewScripted()
	_, err := s.ReadLine("type")
	assert.Error(t, err)
}

func TestScripted_Err(t *testing.T) {
	s := &Scripted{Err: ErrInterrupted}
	_, err := s.SelectOne("pick", nil)
	assert.ErrorIs(t, err, ErrInterrupted)
}
