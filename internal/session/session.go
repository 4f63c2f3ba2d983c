package session

import (
	"time"

	"github.com/hrishabhb/PharmAssistAI/internal/entity"
)

// Session is the per-user UI state: the current question with its result
// envelope plus the flashcard viewer cursor. It is owned by the Manager and
// mutated only through the named transitions.
type Session struct {
	ID         string            `json:"id"`
	Question   string            `json:"question,omitempty"`
	Result     *entity.AskResult `json:"result,omitempty"`
	CardIndex  int               `json:"card_index"`
	ShowAnswer bool              `json:"show_answer"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// HasFlashcards reports whether the session has a deck to navigate.
func (s *Session) HasFlashcards() bool {
	return s.Result != nil && len(s.Result.Flashcards) > 0
}

// CurrentFlashcard returns the card under the cursor, or nil when there is
// no deck.
func (s *Session) CurrentFlashcard() *entity.Flashcard {
	if !s.HasFlashcards() {
		return nil
	}
	return &s.Result.Flashcards[s.CardIndex]
}
