package llm

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector is a canned-response stand-in for the language model
// endpoint, enabled with ENABLE_MOCKS.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

const mockAnswer = `Aspirin is contraindicated in patients with a known allergy to NSAIDs, ` +
	`active peptic ulcer disease, or bleeding disorders. It should be avoided in children ` +
	`with viral illnesses due to the risk of Reye's syndrome, and used with caution alongside ` +
	`other anticoagulants because of the increased bleeding risk. (MOCK)`

const mockFlashcards = `Question: What is the main bleeding-related contraindication of Aspirin?
Answer: Active peptic ulcer disease and bleeding disorders.

Question: Why should Aspirin be avoided in children with viral illnesses?
Answer: Because of the risk of Reye's syndrome.

Question: Which drug class increases bleeding risk when combined with Aspirin?
Answer: Anticoagulants.`

const mockRelatedQuestions = `What are the common drug interactions of Aspirin?
Is low-dose Aspirin safe for long-term cardiovascular prophylaxis?
What monitoring is recommended for patients on Aspirin therapy?`

// Complete routes prompts to canned responses by sniffing for the prompt
// section headers.
func (m *MockConnector) Complete(ctx context.Context, prompt string, maxTokens int, stop []string) string {
	ctxzap.Info(ctx, "[MOCK] generating completion", zap.Int("max_tokens", maxTokens))

	var response string
	switch {
	case strings.Contains(prompt, "flashcards"):
		response = mockFlashcards
	case strings.Contains(prompt, "Questions:"):
		response = mockRelatedQuestions
	default:
		response = mockAnswer
	}

	return truncateAtStop(response, stop)
}
