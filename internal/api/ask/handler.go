package ask

import (
	"encoding/json"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/hrishabhb/PharmAssistAI/internal/entity"
	"github.com/hrishabhb/PharmAssistAI/internal/pkg/logger"
	"github.com/hrishabhb/PharmAssistAI/internal/pkg/response"
	"github.com/hrishabhb/PharmAssistAI/internal/pkg/validator"
	"go.uber.org/zap"
)

type Handler struct {
	usecase          AskUsecase
	validator        *validator.Validator
	exampleQuestions []string
}

func NewHandler(
	usecase AskUsecase,
	validator *validator.Validator,
	exampleQuestions []string,
) *Handler {
	return &Handler{
		usecase:          usecase,
		validator:        validator,
		exampleQuestions: exampleQuestions,
	}
}

// Ask handles POST /ask - Answer a question with sources and study artifacts
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Ask")

	var req entity.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.ValidateAsk(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctxzap.Info(ctx, "answering question", zap.Int("question_length", len(req.Question)))

	// The pipeline never fails outright; it always produces an envelope.
	result := h.usecase.Ask(ctx, req.Question)

	ctxzap.Info(ctx, "question answered",
		zap.Bool("is_off_topic", result.IsOffTopic),
		zap.Int("source_count", len(result.Sources)),
		zap.Int("flashcard_count", len(result.Flashcards)),
	)

	response.Success(w, toAskResponse(result))
}

// ExampleQuestions handles GET /questions - List precomposed example questions
func (h *Handler) ExampleQuestions(w http.ResponseWriter, r *http.Request) {
	response.Success(w, entity.ExampleQuestionsResponse{
		Questions: h.exampleQuestions,
	})
}
