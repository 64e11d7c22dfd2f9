package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinderQuestions_FixedShape(t *testing.T) {
	questions := FinderQuestions()
	require.Len(t, questions, 6)
	for _, q := range questions {
		assert.NotEmpty(t, q.Key)
		assert.NotEmpty(t, q.Prompt)
		assert.NotEmpty(t, q.Options)
	}
}

func TestAdvanceFinder_LinearWalk(t *testing.T) {
	f := NewFinderState()
	questions := FinderQuestions()

	for i, q := range questions {
		assert.Equal(t, i, f.Step)
		done, err := AdvanceFinder(f, q.Key, q.Options[0].Value)
		require.NoError(t, err)
		assert.Equal(t, i == len(questions)-1, done)
	}

	assert.True(t, f.Analyzing)
	// Exactly one answer per question key.
	require.Len(t, f.Answers, len(questions))
	for _, q := range questions {
		assert.Equal(t, q.Options[0].Value, f.Answers[q.Key])
	}
}

func TestAdvanceFinder_RejectsWrongKey(t *testing.T) {
	f := NewFinderState()
	_, err := AdvanceFinder(f, "vibe", "relax")
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
	assert.Equal(t, 0, f.Step)
	assert.Empty(t, f.Answers)
}

func TestAdvanceFinder_RejectsUnknownOption(t *testing.T) {
	f := NewFinderState()
	_, err := AdvanceFinder(f, "climate", "volcanic")
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
	assert.Empty(t, f.Answers)
}

func TestAdvanceFinder_NoInputAfterCompletion(t *testing.T) {
	f := NewFinderState()
	for _, q := range FinderQuestions() {
		_, err := AdvanceFinder(f, q.Key, q.Options[0].Value)
		require.NoError(t, err)
	}

	_, err := AdvanceFinder(f, "climate", "beach")
	require.Error(t, err)
	assert.IsType(t, &FlowError{}, err)
}
