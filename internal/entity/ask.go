package entity

// Fixed user-facing texts. The off-topic marker is coupled to the refusal
// phrasing the answer prompt instructs the model to use; the assembler
// matches it verbatim.
const (
	InsufficientInfoAnswer = "I don't have enough information to answer this question."
	OffTopicMarker         = "I'm sorry, but I can only"
	Disclaimer             = "PharmAssistAI is not a substitute for professional medical advice. Always seek guidance from a healthcare provider."

	NoRelatedPapersMessage  = "No directly related papers found. Try broadening your search query."
	PaperSearchErrorMessage = "An error occurred while searching for related papers. Please try again later."
)

// Passage is a text chunk retrieved from the vector store, ranked by
// similarity to the question.
type Passage struct {
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Source is a passage as presented to the user, numbered from 1 in
// similarity order.
type Source struct {
	Number   int               `json:"number"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Flashcard is a question/answer pair extracted from a model completion.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// RelatedPaper is a formatted literature citation with its article URL.
// Fallback entries carry the fixed message in Citation and an empty URL.
type RelatedPaper struct {
	Citation string `json:"citation"`
	URL      string `json:"url,omitempty"`
}

// AskResult is the full envelope produced for one question.
type AskResult struct {
	Answer           string         `json:"answer"`
	IsOffTopic       bool           `json:"is_off_topic"`
	Sources          []Source       `json:"sources"`
	RelatedQuestions []string       `json:"related_questions"`
	RelatedPapers    []RelatedPaper `json:"related_papers"`
	Flashcards       []Flashcard    `json:"flashcards"`
}

// StudySheet is the exportable bundle of one answered question plus its
// flashcards.
type StudySheet struct {
	Question   string
	Answer     string
	Flashcards []Flashcard
}
