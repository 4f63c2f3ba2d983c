package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/hrishabhb/PharmAssistAI/internal/entity"
	"github.com/hrishabhb/PharmAssistAI/internal/pkg/formatter"
	"github.com/hrishabhb/PharmAssistAI/internal/pkg/logger"
	"github.com/hrishabhb/PharmAssistAI/internal/pkg/validator"
	"go.uber.org/zap"
)

type Handler struct {
	manager   SessionManager
	validator *validator.Validator
}

func NewHandler(manager SessionManager, validator *validator.Validator) *Handler {
	return &Handler{
		manager:   manager,
		validator: validator,
	}
}

// CreateSession handles POST /session - Start a new study session
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreateSession")

	session, err := h.manager.Create(ctx)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toSessionDTO(session))
}

// GetSession handles GET /session/{id} - Fetch current session state
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "GetSession")

	session, err := h.manager.Get(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toSessionDTO(session))
}

// DeleteSession handles DELETE /session/{id} - Discard a session
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "DeleteSession")

	if err := h.manager.Delete(ctx, sessionID); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "session deleted")
	w.WriteHeader(http.StatusNoContent)
}

// SubmitQuestion handles POST /session/{id}/question - Ask within a session
func (h *Handler) SubmitQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "SubmitQuestion")

	var req entity.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateAsk(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
		return
	}

	ctxzap.Info(ctx, "submitting question", zap.Int("question_length", len(req.Question)))

	session, err := h.manager.SubmitQuestion(ctx, sessionID, req.Question)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toSessionDTO(session))
}

// NextFlashcard handles POST /session/{id}/flashcards/next - Advance the deck
func (h *Handler) NextFlashcard(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "NextFlashcard")

	session, err := h.manager.AdvanceFlashcard(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toSessionDTO(session))
}

// PreviousFlashcard handles POST /session/{id}/flashcards/previous - Rewind the deck
func (h *Handler) PreviousFlashcard(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "PreviousFlashcard")

	session, err := h.manager.RewindFlashcard(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toSessionDTO(session))
}

// RevealFlashcard handles POST /session/{id}/flashcards/reveal - Toggle the answer
func (h *Handler) RevealFlashcard(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "RevealFlashcard")

	session, err := h.manager.ToggleAnswer(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toSessionDTO(session))
}

// SelectRelatedQuestion handles POST /session/{id}/related/{index} - Resubmit a
// related question as the session's new question
func (h *Handler) SelectRelatedQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "SelectRelatedQuestion")

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid related question index",
			fmt.Errorf("%w: %v", entity.ErrInvalidParameter, err))
		return
	}

	session, err := h.manager.SelectRelatedQuestion(ctx, sessionID, index)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toSessionDTO(session))
}

// StudySheet handles GET /session/{id}/study-sheet - Export the current answer
// and flashcards as a downloadable document
func (h *Handler) StudySheet(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "StudySheet")

	format, err := entity.ParseResultFormat(r.URL.Query().Get("format"))
	if err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid format", err)
		return
	}

	sheet, err := h.manager.StudySheet(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	factory := formatter.NewFactory()
	fmtr, err := factory.Create(format)
	if err != nil {
		h.respondError(ctx, w, http.StatusNotImplemented, "format not implemented", err)
		return
	}

	body, err := fmtr.Format(sheet)
	if err != nil {
		h.respondError(ctx, w, http.StatusInternalServerError, "failed to format study sheet", err)
		return
	}

	ctxzap.Info(ctx, "study sheet exported", zap.String("format", string(format)))
	w.Header().Set("Content-Type", fmtr.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"study-sheet-%s%s\"", sessionID, fmtr.FileExtension()))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (h *Handler) sessionContext(r *http.Request, action string) (context.Context, string) {
	sessionID := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("session_id", sessionID),
		zap.String("action", action),
	)
	return ctx, sessionID
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	ctxzap.Error(ctx, message, zap.Error(err))
	h.respondJSON(w, status, entity.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrSessionNotFound) {
		h.respondError(ctx, w, http.StatusNotFound, "session not found", err)
	} else if errors.Is(err, entity.ErrInvalidParameter) || errors.Is(err, entity.ErrMissingField) {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	} else if errors.Is(err, entity.ErrNoAnswer) || errors.Is(err, entity.ErrNoFlashcards) || errors.Is(err, entity.ErrRelatedQuestionIndex) || errors.Is(err, entity.ErrSessionOffTopic) {
		h.respondError(ctx, w, http.StatusConflict, "invalid session state", err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
