package ask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRelatedQuestions(t *testing.T) {
	t.Run("One question per line", func(t *testing.T) {
		text := "What are the side effects of lisinopril?\nCan lisinopril be taken with potassium supplements?"

		questions := parseRelatedQuestions(text, 3)

		assert.Equal(t, []string{
			"What are the side effects of lisinopril?",
			"Can lisinopril be taken with potassium supplements?",
		}, questions)
	})

	t.Run("Blank lines are skipped and order preserved", func(t *testing.T) {
		text := "Q1\n\nQ2\nQ3\nQ4"

		questions := parseRelatedQuestions(text, 3)

		assert.Equal(t, []string{"Q1", "Q2", "Q3"}, questions)
	})

	t.Run("Lines are trimmed", func(t *testing.T) {
		text := "  Q1  \n\t Q2 \n"

		questions := parseRelatedQuestions(text, 5)

		assert.Equal(t, []string{"Q1", "Q2"}, questions)
	})

	t.Run("Empty completion", func(t *testing.T) {
		questions := parseRelatedQuestions("", 3)

		assert.Empty(t, questions)
	})
}
