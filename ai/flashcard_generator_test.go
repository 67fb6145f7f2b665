package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlashcards(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		content := `[{"term":"Variable","definition":"A named value."},{"term":"Equation","definition":"A statement of equality."}]`
		flashcards, err := ParseFlashcards(content)
		require.NoError(t, err)
		require.Len(t, flashcards, 2)
		assert.Equal(t, "Variable", flashcards[0].Term)
	})

	t.Run("ValidWithSurroundingText", func(t *testing.T) {
		content := "Sure! Here are your cards:\n[{\"term\":\"T\",\"definition\":\"D\"}]\nHappy studying."
		flashcards, err := ParseFlashcards(content)
		require.NoError(t, err)
		require.Len(t, flashcards, 1)
	})

	t.Run("NotAnArray", func(t *testing.T) {
		_, err := ParseFlashcards(`{"term":"T","definition":"D"}`)
		require.Error(t, err)
	})

	t.Run("MissingDefinition", func(t *testing.T) {
		_, err := ParseFlashcards(`[{"term":"T"}]`)
		require.Error(t, err)
	})

	t.Run("MissingTerm", func(t *testing.T) {
		_, err := ParseFlashcards(`[{"definition":"D"}]`)
		require.Error(t, err)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := ParseFlashcards("[]")
		require.Error(t, err)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		_, err := ParseFlashcards(`[{"term":"T","definition":]`)
		require.Error(t, err)
	})
}

func TestChatCompletionWithoutAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := ChatCompletion("system", "user", 100, 0.5)
	require.ErrorIs(t, err, ErrUnavailable)
}
