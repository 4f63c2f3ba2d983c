package ask

import (
	"context"

	"github.com/hrishabhb/PharmAssistAI/internal/entity"
)

type AskUsecase interface {
	Ask(ctx context.Context, question string) *entity.AskResult
}
