package validator

// Validator validates inbound API requests.
type Validator struct {
	maxQuestionLength int
}

const defaultMaxQuestionLength = 2000

func New() *Validator {
	return &Validator{
		maxQuestionLength: defaultMaxQuestionLength,
	}
}
