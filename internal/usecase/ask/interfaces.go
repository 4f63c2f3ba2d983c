package ask

import (
	"context"

	"github.com/hrishabhb/PharmAssistAI/internal/entity"
)

type VectorStoreConnector interface {
	Retrieve(ctx context.Context, question string, k int) ([]entity.Passage, error)
}

type LLMConnector interface {
	// Complete returns the completion text, or "" on any failure.
	Complete(ctx context.Context, prompt string, maxTokens int, stop []string) string
}

type PubMedConnector interface {
	// Search never fails; service errors resolve to a fixed fallback entry.
	Search(ctx context.Context, query string, maxResults int) []entity.RelatedPaper
}
