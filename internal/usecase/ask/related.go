package ask

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// relatedQuestionsMaxTokens bounds the follow-up question completion.
const relatedQuestionsMaxTokens = 256

// extractRelatedQuestions asks the model for follow-up questions grounded in
// the retrieved context and returns at most count of them.
func (uc *AskUsecase) extractRelatedQuestions(ctx context.Context, docContext string, count int) []string {
	prompt := buildRelatedQuestionsPrompt(docContext, count)

	response := uc.llm.Complete(ctx, prompt, relatedQuestionsMaxTokens, nil)
	if response == "" {
		ctxzap.Info(ctx, "related question generation returned empty completion")
		return nil
	}

	questions := parseRelatedQuestions(response, count)

	ctxzap.Info(ctx, "related questions extracted", zap.Int("count", len(questions)))

	return questions
}

// parseRelatedQuestions splits the completion on newlines, keeping any
// non-empty trimmed line, in order, capped at count. No validation that a
// line is actually a question.
func parseRelatedQuestions(text string, count int) []string {
	var questions []string

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		questions = append(questions, line)
		if len(questions) == count {
			break
		}
	}

	return questions
}
