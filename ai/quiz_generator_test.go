package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackQuestions(t *testing.T) {
	t.Run("EasyKeepsBaseWording", func(t *testing.T) {
		questions := FallbackQuestions("Algebra", "easy")
		require.Len(t, questions, 5)
		assert.Equal(t, "What is the basic concept of Algebra?", questions[0].Question)
		assert.Equal(t, "How would you describe Algebra in simple terms?", questions[2].Question)
	})

	t.Run("MediumBumpsWording", func(t *testing.T) {
		questions := FallbackQuestions("Algebra", "medium")
		assert.Equal(t, "What is the intermediate concept of Algebra?", questions[0].Question)
		assert.Equal(t, "How would you describe Algebra in moderate terms?", questions[2].Question)
	})

	t.Run("HardBumpsWording", func(t *testing.T) {
		questions := FallbackQuestions("Algebra", "hard")
		assert.Equal(t, "What is the advanced concept of Algebra?", questions[0].Question)
		assert.Equal(t, "How would you describe Algebra in complex terms?", questions[2].Question)
	})

	t.Run("AnswersStayInRange", func(t *testing.T) {
		for _, q := range FallbackQuestions("Algebra", "hard") {
			assert.GreaterOrEqual(t, q.CorrectAnswer, 0)
			assert.Less(t, q.CorrectAnswer, len(q.Options))
		}
	})
}

func TestParseQuizQuestions(t *testing.T) {
	t.Run("ValidWithSurroundingText", func(t *testing.T) {
		content := `Here you go:
[{"question":"Q1","options":["a","b","c","d"],"correct_answer":1,"explanation":"e"}]
Enjoy!`
		questions, err := parseQuizQuestions(content)
		require.NoError(t, err)
		require.Len(t, questions, 1)
		assert.Equal(t, "Q1", questions[0].Question)
	})

	t.Run("NoArray", func(t *testing.T) {
		_, err := parseQuizQuestions("I cannot help with that.")
		require.Error(t, err)
	})

	t.Run("AnswerIndexOutOfRange", func(t *testing.T) {
		content := `[{"question":"Q1","options":["a","b"],"correct_answer":5,"explanation":"e"}]`
		_, err := parseQuizQuestions(content)
		require.Error(t, err)
	})

	t.Run("EmptySet", func(t *testing.T) {
		_, err := parseQuizQuestions("[]")
		require.Error(t, err)
	})
}
