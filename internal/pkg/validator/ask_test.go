package validator

import (
	"strings"
	"testing"

	"github.com/hrishabhb/PharmAssistAI/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestValidateAsk(t *testing.T) {
	v := New()

	t.Run("Valid question", func(t *testing.T) {
		err := v.ValidateAsk(&entity.AskRequest{Question: "What is aspirin used for?"})
		assert.NoError(t, err)
	})

	t.Run("Empty question", func(t *testing.T) {
		err := v.ValidateAsk(&entity.AskRequest{Question: ""})
		assert.ErrorIs(t, err, entity.ErrMissingField)
	})

	t.Run("Whitespace-only question", func(t *testing.T) {
		err := v.ValidateAsk(&entity.AskRequest{Question: "   \n\t "})
		assert.ErrorIs(t, err, entity.ErrMissingField)
	})

	t.Run("Oversized question", func(t *testing.T) {
		err := v.ValidateAsk(&entity.AskRequest{Question: strings.Repeat("a", 2001)})
		assert.ErrorIs(t, err, entity.ErrInvalidParameter)
	})

	t.Run("At the length limit", func(t *testing.T) {
		err := v.ValidateAsk(&entity.AskRequest{Question: strings.Repeat("a", 2000)})
		assert.NoError(t, err)
	})
}
