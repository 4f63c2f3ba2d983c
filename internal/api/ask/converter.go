package ask

import "github.com/hrishabhb/PharmAssistAI/internal/entity"

// toAskResponse converts an AskResult to the outbound envelope
func toAskResponse(result *entity.AskResult) *entity.AskResponse {
	return &entity.AskResponse{
		Answer:           result.Answer,
		IsOffTopic:       result.IsOffTopic,
		Disclaimer:       entity.Disclaimer,
		Sources:          result.Sources,
		RelatedQuestions: result.RelatedQuestions,
		RelatedPapers:    result.RelatedPapers,
		Flashcards:       result.Flashcards,
	}
}
