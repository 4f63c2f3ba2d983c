package session

import (
	"github.com/hrishabhb/PharmAssistAI/internal/entity"
	sessionstate "github.com/hrishabhb/PharmAssistAI/internal/session"
)

// toSessionDTO converts a session to its outbound representation. The
// flashcard deck is projected down to the single card under the cursor,
// with the answer included only once revealed.
func toSessionDTO(s *sessionstate.Session) *entity.SessionDTO {
	dto := &entity.SessionDTO{
		ID:        s.ID,
		Question:  s.Question,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}

	if s.Result == nil {
		return dto
	}

	dto.Answer = s.Result.Answer
	dto.IsOffTopic = s.Result.IsOffTopic
	dto.Disclaimer = entity.Disclaimer
	dto.Sources = s.Result.Sources
	dto.RelatedQuestions = s.Result.RelatedQuestions
	dto.RelatedPapers = s.Result.RelatedPapers

	if card := s.CurrentFlashcard(); card != nil {
		view := &entity.FlashcardViewDTO{
			Position: s.CardIndex + 1,
			Total:    len(s.Result.Flashcards),
			Question: card.Question,
		}
		if s.ShowAnswer {
			view.Answer = card.Answer
		}
		dto.Flashcard = view
	}

	return dto
}
