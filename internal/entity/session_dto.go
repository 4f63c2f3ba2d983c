package entity

import "time"

// ErrorResponse is the error body returned by API handlers.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SessionDTO is the outbound representation of a session. The flashcard
// deck is exposed one card at a time through the viewer cursor; the card's
// answer is present only after it has been revealed.
type SessionDTO struct {
	ID               string            `json:"id"`
	Question         string            `json:"question,omitempty"`
	Answer           string            `json:"answer,omitempty"`
	IsOffTopic       bool              `json:"is_off_topic"`
	Disclaimer       string            `json:"disclaimer,omitempty"`
	Sources          []Source          `json:"sources,omitempty"`
	RelatedQuestions []string          `json:"related_questions,omitempty"`
	RelatedPapers    []RelatedPaper    `json:"related_papers,omitempty"`
	Flashcard        *FlashcardViewDTO `json:"flashcard,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// FlashcardViewDTO is the card under the viewer cursor.
type FlashcardViewDTO struct {
	Position int    `json:"position"`
	Total    int    `json:"total"`
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
}
