package ask

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/hrishabhb/PharmAssistAI/internal/entity"
	"go.uber.org/zap"
)

// synthesize builds the grounded answer prompt and returns the trimmed
// completion. An empty return means the model call failed; the assembler
// treats that as a hard failure for the request.
func (uc *AskUsecase) synthesize(ctx context.Context, question, docContext string) string {
	prompt := buildAnswerPrompt(question, docContext)

	ctxzap.Info(ctx, "synthesizing answer", zap.Int("context_length", len(docContext)))

	completion := uc.llm.Complete(ctx, prompt, uc.cfg.AnswerMaxTokens, nil)

	return strings.TrimSpace(completion)
}

// IsOffTopic reports whether an answer is an off-topic refusal. It is a
// literal substring match against the refusal phrasing the answer prompt
// instructs; keep the two in sync.
func IsOffTopic(answer string) bool {
	return strings.Contains(answer, entity.OffTopicMarker)
}
