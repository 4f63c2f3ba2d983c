package entity

import "errors"

// Domain errors
var (
	// Ask errors
	ErrEmptyCompletion = errors.New("language model returned an empty response")

	// Session errors
	ErrSessionNotFound        = errors.New("session not found")
	ErrNoAnswer               = errors.New("no answer has been generated yet")
	ErrNoFlashcards           = errors.New("no flashcards to navigate")
	ErrRelatedQuestionIndex   = errors.New("related question index out of range")
	ErrSessionOffTopic        = errors.New("off-topic answers have no study artifacts")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidParameter = errors.New("invalid parameter")
)
