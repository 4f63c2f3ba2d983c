package entity

// AskRequest is the inbound body for POST /ask and session question
// submission.
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse is the outbound envelope for one answered question.
type AskResponse struct {
	Answer           string         `json:"answer"`
	IsOffTopic       bool           `json:"is_off_topic"`
	Disclaimer       string         `json:"disclaimer"`
	Sources          []Source       `json:"sources"`
	RelatedQuestions []string       `json:"related_questions"`
	RelatedPapers    []RelatedPaper `json:"related_papers"`
	Flashcards       []Flashcard    `json:"flashcards"`
}

// ExampleQuestionsResponse lists the precomposed example questions offered
// to the user.
type ExampleQuestionsResponse struct {
	Questions []string `json:"questions"`
}
