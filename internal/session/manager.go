package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/hrishabhb/PharmAssistAI/internal/entity"
	"go.uber.org/zap"
)

// AskUsecase is the pipeline the manager submits questions to.
type AskUsecase interface {
	Ask(ctx context.Context, question string) *entity.AskResult
}

// Manager owns session state. All mutation goes through the named
// transitions below; handlers never touch Session fields directly.
type Manager struct {
	storage Storage
	ask     AskUsecase
	logger  *zap.Logger
}

func NewManager(storage Storage, ask AskUsecase, logger *zap.Logger) *Manager {
	return &Manager{
		storage: storage,
		ask:     ask,
		logger:  logger,
	}
}

// Create starts an empty session.
func (m *Manager) Create(ctx context.Context) (*Session, error) {
	now := time.Now()
	session := &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := m.storage.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	ctxzap.Info(ctx, "session created", zap.String("session_id", session.ID))

	return session, nil
}

// Get retrieves a session by id.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	session, err := m.storage.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	return session, nil
}

// Delete removes a session.
func (m *Manager) Delete(ctx context.Context, id string) error {
	if err := m.storage.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// SubmitQuestion runs the ask pipeline for the question and stores the
// result on the session, resetting the flashcard cursor.
func (m *Manager) SubmitQuestion(ctx context.Context, id, question string) (*Session, error) {
	session, err := m.storage.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	result := m.ask.Ask(ctx, question)

	session.Question = question
	session.Result = result
	session.CardIndex = 0
	session.ShowAnswer = false

	if err := m.save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// AdvanceFlashcard moves the flashcard cursor forward, wrapping past the end
// of the deck, and hides the answer again.
func (m *Manager) AdvanceFlashcard(ctx context.Context, id string) (*Session, error) {
	return m.moveFlashcard(ctx, id, 1)
}

// RewindFlashcard moves the flashcard cursor backward, wrapping past the
// start of the deck, and hides the answer again.
func (m *Manager) RewindFlashcard(ctx context.Context, id string) (*Session, error) {
	return m.moveFlashcard(ctx, id, -1)
}

func (m *Manager) moveFlashcard(ctx context.Context, id string, step int) (*Session, error) {
	session, err := m.storage.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if !session.HasFlashcards() {
		return nil, entity.ErrNoFlashcards
	}

	deckSize := len(session.Result.Flashcards)
	session.CardIndex = (session.CardIndex + step + deckSize) % deckSize
	session.ShowAnswer = false

	if err := m.save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// ToggleAnswer reveals or hides the answer of the card under the cursor.
func (m *Manager) ToggleAnswer(ctx context.Context, id string) (*Session, error) {
	session, err := m.storage.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if !session.HasFlashcards() {
		return nil, entity.ErrNoFlashcards
	}

	session.ShowAnswer = !session.ShowAnswer

	if err := m.save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// SelectRelatedQuestion resubmits the related question at index as the
// session's new question.
func (m *Manager) SelectRelatedQuestion(ctx context.Context, id string, index int) (*Session, error) {
	session, err := m.storage.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.Result == nil {
		return nil, entity.ErrNoAnswer
	}

	if index < 0 || index >= len(session.Result.RelatedQuestions) {
		return nil, entity.ErrRelatedQuestionIndex
	}

	question := session.Result.RelatedQuestions[index]

	ctxzap.Info(ctx, "resubmitting related question", zap.Int("index", index))

	return m.SubmitQuestion(ctx, id, question)
}

// StudySheet builds the exportable study sheet for the session's current
// answer.
func (m *Manager) StudySheet(ctx context.Context, id string) (*entity.StudySheet, error) {
	session, err := m.storage.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.Result == nil {
		return nil, entity.ErrNoAnswer
	}

	if session.Result.IsOffTopic {
		return nil, entity.ErrSessionOffTopic
	}

	return &entity.StudySheet{
		Question:   session.Question,
		Answer:     session.Result.Answer,
		Flashcards: session.Result.Flashcards,
	}, nil
}

func (m *Manager) save(ctx context.Context, session *Session) error {
	session.UpdatedAt = time.Now()

	if err := m.storage.Set(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}
