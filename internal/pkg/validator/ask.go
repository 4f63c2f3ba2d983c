package validator

import (
	"fmt"
	"strings"

	"github.com/hrishabhb/PharmAssistAI/internal/entity"
)

// ValidateAsk validates an AskRequest
func (v *Validator) ValidateAsk(req *entity.AskRequest) error {
	if strings.TrimSpace(req.Question) == "" {
		return fmt.Errorf("%w: question", entity.ErrMissingField)
	}

	if len(req.Question) > v.maxQuestionLength {
		return fmt.Errorf("%w: question longer than %d characters", entity.ErrInvalidParameter, v.maxQuestionLength)
	}

	return nil
}
