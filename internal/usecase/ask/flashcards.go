package ask

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/hrishabhb/PharmAssistAI/internal/entity"
	"go.uber.org/zap"
)

const (
	flashcardAnswerMarker   = "\nAnswer: "
	flashcardQuestionPrefix = "Question: "

	// flashcardMaxTokens leaves room for a handful of two-line cards.
	flashcardMaxTokens = 500
)

// extractFlashcards asks the model for study flashcards and parses the
// completion into at most count question/answer pairs.
func (uc *AskUsecase) extractFlashcards(ctx context.Context, docContext, question string, count int) []entity.Flashcard {
	prompt := buildFlashcardPrompt(docContext, question, count)

	response := uc.llm.Complete(ctx, prompt, flashcardMaxTokens, nil)
	if response == "" {
		ctxzap.Info(ctx, "flashcard generation returned empty completion")
		return nil
	}

	cards, dropped := parseFlashcards(response, count)
	if dropped > 0 {
		// Dropped blocks are not user-visible; count them so prompt/format
		// drift stays detectable.
		ctxzap.Info(ctx, "dropped malformed flashcard blocks", zap.Int("dropped", dropped))
	}

	ctxzap.Info(ctx, "flashcards extracted", zap.Int("count", len(cards)))

	return cards
}

// parseFlashcards splits the completion on blank-line boundaries and accepts
// only blocks of the exact "Question: ...\nAnswer: ..." shape. Malformed
// blocks are dropped without affecting the parsing of later blocks. The
// second return value is the number of dropped blocks.
func parseFlashcards(text string, count int) ([]entity.Flashcard, int) {
	var cards []entity.Flashcard
	dropped := 0

	for _, block := range strings.Split(strings.TrimSpace(text), "\n\n") {
		if strings.TrimSpace(block) == "" {
			continue
		}

		parts := strings.Split(block, flashcardAnswerMarker)
		if len(parts) != 2 {
			dropped++
			continue
		}

		question := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(parts[0]), flashcardQuestionPrefix))
		answer := strings.TrimSpace(parts[1])
		if question == "" || answer == "" {
			dropped++
			continue
		}

		cards = append(cards, entity.Flashcard{
			Question: question,
			Answer:   answer,
		})
	}

	if len(cards) > count {
		cards = cards[:count]
	}

	return cards, dropped
}
