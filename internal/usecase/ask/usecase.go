package ask

import (
	"context"
	"fmt"
	"sync"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/hrishabhb/PharmAssistAI/internal/config"
	"github.com/hrishabhb/PharmAssistAI/internal/entity"
	"go.uber.org/zap"
)

// AskUsecase orchestrates one question: retrieve passages, synthesize a
// grounded answer, then extract flashcards, related questions and related
// papers, and assemble the response envelope.
type AskUsecase struct {
	cfg         config.AskConfig
	vectorStore VectorStoreConnector
	llm         LLMConnector
	pubmed      PubMedConnector
	logger      *zap.Logger
}

// NewUsecase creates a new ask use case
func NewUsecase(
	cfg config.AskConfig,
	vectorStore VectorStoreConnector,
	llm LLMConnector,
	pubmed PubMedConnector,
	logger *zap.Logger,
) *AskUsecase {
	return &AskUsecase{
		cfg:         cfg,
		vectorStore: vectorStore,
		llm:         llm,
		pubmed:      pubmed,
		logger:      logger,
	}
}

// Ask runs the full pipeline and always returns a usable envelope: the
// synthesized answer with its study artifacts, the fixed insufficient-info
// notice, an off-topic refusal with artifacts suppressed, or an error-flavored
// answer. It never panics across its boundary.
func (uc *AskUsecase) Ask(ctx context.Context, question string) (result *entity.AskResult) {
	defer func() {
		if r := recover(); r != nil {
			ctxzap.Error(ctx, "ask pipeline panicked", zap.Any("panic", r))
			result = errorResult(fmt.Errorf("%v", r))
		}
	}()

	passages, err := uc.vectorStore.Retrieve(ctx, question, uc.cfg.TopK)
	if err != nil {
		// Retrieval failure degrades to the insufficient-information path.
		ctxzap.Warn(ctx, "passage retrieval failed", zap.Error(err))
		return insufficientInfoResult()
	}

	if len(passages) == 0 {
		ctxzap.Warn(ctx, "no passages found for question")
		return insufficientInfoResult()
	}

	docContext := joinPassages(passages)

	answer := uc.synthesize(ctx, question, docContext)
	if answer == "" {
		ctxzap.Error(ctx, "answer synthesis returned empty completion")
		return errorResult(entity.ErrEmptyCompletion)
	}

	flashcards, related, papers := uc.extractExtras(ctx, question, docContext)

	result = &entity.AskResult{
		Answer:           answer,
		Sources:          numberSources(passages),
		RelatedQuestions: related,
		RelatedPapers:    papers,
		Flashcards:       flashcards,
	}

	uc.applyOffTopicOverride(ctx, result)

	return result
}

// extractExtras runs the three independent post-synthesis stages
// concurrently. A failure in one branch leaves the others intact: each
// branch recovers its own panics and resolves to its own fallback value.
func (uc *AskUsecase) extractExtras(ctx context.Context, question, docContext string) (
	flashcards []entity.Flashcard, related []string, papers []entity.RelatedPaper,
) {
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		defer uc.recoverBranch(ctx, "flashcards")
		flashcards = uc.extractFlashcards(ctx, docContext, question, uc.cfg.FlashcardCount)
	}()

	go func() {
		defer wg.Done()
		defer uc.recoverBranch(ctx, "related_questions")
		related = uc.extractRelatedQuestions(ctx, docContext, uc.cfg.RelatedQuestionCount)
	}()

	go func() {
		defer wg.Done()
		defer uc.recoverBranch(ctx, "related_papers")
		papers = uc.pubmed.Search(ctx, question, uc.cfg.RelatedPaperCount)
	}()

	wg.Wait()

	if papers == nil {
		papers = []entity.RelatedPaper{{Citation: entity.PaperSearchErrorMessage}}
	}

	return flashcards, related, papers
}

func (uc *AskUsecase) recoverBranch(ctx context.Context, branch string) {
	if r := recover(); r != nil {
		ctxzap.Error(ctx, "extraction branch panicked",
			zap.String("branch", branch),
			zap.Any("panic", r),
		)
	}
}

// applyOffTopicOverride suppresses all study artifacts when the answer is an
// off-topic refusal. The marker is the literal refusal phrasing the answer
// prompt instructs; this runs after assembly regardless of which path
// produced the answer.
func (uc *AskUsecase) applyOffTopicOverride(ctx context.Context, result *entity.AskResult) {
	if !IsOffTopic(result.Answer) {
		return
	}

	ctxzap.Info(ctx, "answer is off-topic, suppressing study artifacts")

	result.IsOffTopic = true
	result.Sources = nil
	result.RelatedQuestions = nil
	result.RelatedPapers = nil
	result.Flashcards = nil
}

func insufficientInfoResult() *entity.AskResult {
	return &entity.AskResult{
		Answer: entity.InsufficientInfoAnswer,
	}
}

func errorResult(err error) *entity.AskResult {
	return &entity.AskResult{
		Answer: fmt.Sprintf("An error occurred: %s", err),
	}
}
