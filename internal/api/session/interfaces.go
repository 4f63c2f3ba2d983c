package session

import (
	"context"

	"github.com/hrishabhb/PharmAssistAI/internal/entity"
	sessionstate "github.com/hrishabhb/PharmAssistAI/internal/session"
)

type SessionManager interface {
	Create(ctx context.Context) (*sessionstate.Session, error)
	Get(ctx context.Context, id string) (*sessionstate.Session, error)
	Delete(ctx context.Context, id string) error
	SubmitQuestion(ctx context.Context, id, question string) (*sessionstate.Session, error)
	AdvanceFlashcard(ctx context.Context, id string) (*sessionstate.Session, error)
	RewindFlashcard(ctx context.Context, id string) (*sessionstate.Session, error)
	ToggleAnswer(ctx context.Context, id string) (*sessionstate.Session, error)
	SelectRelatedQuestion(ctx context.Context, id string, index int) (*sessionstate.Session, error)
	StudySheet(ctx context.Context, id string) (*entity.StudySheet, error)
}
