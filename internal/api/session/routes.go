package session

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers session routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/session", func(r chi.Router) {
		r.Post("/", h.CreateSession)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetSession)
			r.Delete("/", h.DeleteSession)
			r.Post("/question", h.SubmitQuestion)
			r.Post("/flashcards/next", h.NextFlashcard)
			r.Post("/flashcards/previous", h.PreviousFlashcard)
			r.Post("/flashcards/reveal", h.RevealFlashcard)
			r.Post("/related/{index}", h.SelectRelatedQuestion)
			r.Get("/study-sheet", h.StudySheet)
		})
	})
}
