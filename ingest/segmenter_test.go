package ingest

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSplitSentences_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, SplitSentences(""))
}

func TestSentenceSplitter_TwoSentences(t *testing.T) {
	t.Parallel()

	got := NewSentenceSplitter(nil).Split("Hello world. How are you?")

	require.Len(t, got, 2)
	for _, s := range got {
		assert.NotEmpty(t, s)
		assert.Equal(t, strings.TrimSpace(s), s)
	}
	assert.Contains(t, got[0], "Hello world")
	assert.Contains(t, got[1], "How are you")
}

func TestSentenceSplitter_SingleSentenceNoTerminator(t *testing.T) {
	t.Parallel()

	got := NewSentenceSplitter(nil).Split("no punctuation here")
	require.Len(t, got, 1)
	assert.Equal(t, "no punctuation here", got[0])
}

// failingStrategy simulates an unavailable linguistic resource.
type failingStrategy struct{}

func (failingStrategy) name() string                    { return "failing" }
func (failingStrategy) split(string) ([]string, error) { return nil, errors.New("resource unavailable") }

func TestSentenceSplitter_FallbackOnPrimaryFailure(t *testing.T) {
	t.Parallel()

	var fallbackErr error
	s := NewSentenceSplitter(zap.NewNop())
	s.primary = failingStrategy{}
	s.OnFallback = func(err error) { fallbackErr = err }

	got := s.Split("Hello world. How are you?")

	require.Len(t, got, 2)
	assert.Equal(t, "Hello world", got[0])
	assert.Equal(t, "How are you", got[1])
	assert.Error(t, fallbackErr)
}

func TestRegexStrategy_Deterministic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "terminal runs collapse",
			input: "Really?! Yes... sure.",
			want:  []string{"Really", " Yes", " sure", ""},
		},
		{
			name:  "mixed terminators",
			input: "One. Two! Three?",
			want:  []string{"One", " Two", " Three", ""},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := regexStrategy{}.split(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
