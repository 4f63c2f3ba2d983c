package ask

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hrishabhb/PharmAssistAI/internal/config"
	"github.com/hrishabhb/PharmAssistAI/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubVectorStore struct {
	passages []entity.Passage
	err      error
	calls    int
}

func (s *stubVectorStore) Retrieve(ctx context.Context, question string, k int) ([]entity.Passage, error) {
	s.calls++
	return s.passages, s.err
}

// stubLLM routes completions by sniffing the prompt the same way the real
// connector's mock does: the flashcard and related-question prompts carry
// distinctive template text.
type stubLLM struct {
	answer     string
	flashcards string
	related    string
	calls      int
}

func (s *stubLLM) Complete(ctx context.Context, prompt string, maxTokens int, stop []string) string {
	s.calls++
	switch {
	case strings.Contains(prompt, "flashcards"):
		return s.flashcards
	case strings.Contains(prompt, "Questions:"):
		return s.related
	default:
		return s.answer
	}
}

type stubPubMed struct {
	papers []entity.RelatedPaper
	panics bool
}

func (s *stubPubMed) Search(ctx context.Context, query string, maxResults int) []entity.RelatedPaper {
	if s.panics {
		panic("pubmed stub exploded")
	}
	return s.papers
}

func defaultAskConfig() config.AskConfig {
	return config.AskConfig{
		TopK:                 4,
		AnswerMaxTokens:      500,
		FlashcardCount:       3,
		RelatedQuestionCount: 3,
		RelatedPaperCount:    3,
	}
}

func testPassages() []entity.Passage {
	return []entity.Passage{
		{Content: "Aspirin is indicated for pain relief.", Metadata: map[string]string{"qdrant_point_id": "p1"}},
		{Content: "Aspirin is contraindicated in active peptic ulcer disease.", Metadata: map[string]string{"qdrant_point_id": "p2"}},
		{Content: "Aspirin inhibits cyclooxygenase.", Metadata: map[string]string{"qdrant_point_id": "p3"}},
		{Content: "Common adverse reactions include GI upset.", Metadata: map[string]string{"qdrant_point_id": "p4"}},
	}
}

func newTestUsecase(vs *stubVectorStore, llm *stubLLM, pm *stubPubMed) *AskUsecase {
	return NewUsecase(defaultAskConfig(), vs, llm, pm, zap.NewNop())
}

func TestAsk_HappyPath(t *testing.T) {
	vs := &stubVectorStore{passages: testPassages()}
	llm := &stubLLM{
		answer:     "Aspirin relieves pain and reduces fever.",
		flashcards: "Question: What does aspirin inhibit?\nAnswer: Cyclooxygenase.\n\nQuestion: Name a contraindication.\nAnswer: Active peptic ulcer disease.",
		related:    "What is the maximum daily dose of aspirin?\nCan aspirin be used in children?",
	}
	pm := &stubPubMed{papers: []entity.RelatedPaper{
		{Citation: "Smith J. Aspirin revisited. J Pharm. 2020.", URL: "https://pubmed.ncbi.nlm.nih.gov/12345/"},
	}}

	result := newTestUsecase(vs, llm, pm).Ask(context.Background(), "What is aspirin used for?")

	require.NotNil(t, result)
	assert.Equal(t, "Aspirin relieves pain and reduces fever.", result.Answer)
	assert.False(t, result.IsOffTopic)

	require.Len(t, result.Sources, 4)
	for i, source := range result.Sources {
		assert.Equal(t, i+1, source.Number)
		assert.NotEmpty(t, source.Content)
	}
	assert.Equal(t, "p1", result.Sources[0].Metadata["qdrant_point_id"])

	require.Len(t, result.Flashcards, 2)
	assert.Equal(t, "What does aspirin inhibit?", result.Flashcards[0].Question)

	assert.Equal(t, []string{
		"What is the maximum daily dose of aspirin?",
		"Can aspirin be used in children?",
	}, result.RelatedQuestions)

	require.Len(t, result.RelatedPapers, 1)
	assert.Equal(t, "https://pubmed.ncbi.nlm.nih.gov/12345/", result.RelatedPapers[0].URL)
}

func TestAsk_EmptyRetrieval(t *testing.T) {
	vs := &stubVectorStore{passages: nil}
	llm := &stubLLM{answer: "should never be used"}
	pm := &stubPubMed{}

	result := newTestUsecase(vs, llm, pm).Ask(context.Background(), "Something obscure")

	require.NotNil(t, result)
	assert.Equal(t, entity.InsufficientInfoAnswer, result.Answer)
	assert.Empty(t, result.Sources)
	assert.Empty(t, result.Flashcards)
	assert.Empty(t, result.RelatedQuestions)
	assert.Empty(t, result.RelatedPapers)
	assert.Equal(t, 0, llm.calls, "no model call should happen without passages")
}

func TestAsk_RetrievalError(t *testing.T) {
	vs := &stubVectorStore{err: errors.New("vector store unreachable")}
	llm := &stubLLM{answer: "should never be used"}
	pm := &stubPubMed{}

	result := newTestUsecase(vs, llm, pm).Ask(context.Background(), "What is metformin?")

	require.NotNil(t, result)
	assert.Equal(t, entity.InsufficientInfoAnswer, result.Answer)
	assert.Equal(t, 0, llm.calls)
}

func TestAsk_EmptySynthesis(t *testing.T) {
	vs := &stubVectorStore{passages: testPassages()}
	llm := &stubLLM{answer: ""}
	pm := &stubPubMed{}

	result := newTestUsecase(vs, llm, pm).Ask(context.Background(), "What is aspirin?")

	require.NotNil(t, result)
	assert.True(t, strings.HasPrefix(result.Answer, "An error occurred: "))
	assert.Empty(t, result.Sources)
}

func TestAsk_OffTopicSuppressesArtifacts(t *testing.T) {
	vs := &stubVectorStore{passages: testPassages()}
	llm := &stubLLM{
		answer:     "I'm sorry, but I can only assist with pharmacy and medical-related inquiries.",
		flashcards: "Question: Q1\nAnswer: A1",
		related:    "Q1\nQ2",
	}
	pm := &stubPubMed{papers: []entity.RelatedPaper{{Citation: "some paper"}}}

	result := newTestUsecase(vs, llm, pm).Ask(context.Background(), "Who won the world cup?")

	require.NotNil(t, result)
	assert.True(t, result.IsOffTopic)
	assert.Contains(t, result.Answer, entity.OffTopicMarker)
	assert.Nil(t, result.Sources)
	assert.Nil(t, result.Flashcards)
	assert.Nil(t, result.RelatedQuestions)
	assert.Nil(t, result.RelatedPapers)
}

func TestAsk_PubMedPanicIsolated(t *testing.T) {
	vs := &stubVectorStore{passages: testPassages()}
	llm := &stubLLM{
		answer:     "Aspirin relieves pain.",
		flashcards: "Question: Q1\nAnswer: A1",
		related:    "Q1",
	}
	pm := &stubPubMed{panics: true}

	result := newTestUsecase(vs, llm, pm).Ask(context.Background(), "What is aspirin used for?")

	require.NotNil(t, result)
	assert.Equal(t, "Aspirin relieves pain.", result.Answer)

	// The other branches survive the panic.
	require.Len(t, result.Flashcards, 1)
	assert.Equal(t, []string{"Q1"}, result.RelatedQuestions)

	// The papers branch resolves to the fixed error entry.
	require.Len(t, result.RelatedPapers, 1)
	assert.Equal(t, entity.PaperSearchErrorMessage, result.RelatedPapers[0].Citation)
	assert.Empty(t, result.RelatedPapers[0].URL)
}

func TestAsk_EmptyExtrasLeaveAnswerIntact(t *testing.T) {
	vs := &stubVectorStore{passages: testPassages()}
	llm := &stubLLM{
		answer:     "Aspirin relieves pain.",
		flashcards: "",
		related:    "",
	}
	pm := &stubPubMed{papers: []entity.RelatedPaper{{Citation: entity.NoRelatedPapersMessage}}}

	result := newTestUsecase(vs, llm, pm).Ask(context.Background(), "What is aspirin used for?")

	require.NotNil(t, result)
	assert.Equal(t, "Aspirin relieves pain.", result.Answer)
	assert.Empty(t, result.Flashcards)
	assert.Empty(t, result.RelatedQuestions)
	require.Len(t, result.RelatedPapers, 1)
	assert.Equal(t, entity.NoRelatedPapersMessage, result.RelatedPapers[0].Citation)
}

func TestIsOffTopic(t *testing.T) {
	assert.True(t, IsOffTopic("I'm sorry, but I can only assist with pharmacy topics."))
	assert.True(t, IsOffTopic("Well. I'm sorry, but I can only help with medication questions."))
	assert.False(t, IsOffTopic("Aspirin is an NSAID."))
	assert.False(t, IsOffTopic(""))
}

func TestJoinPassages(t *testing.T) {
	joined := joinPassages([]entity.Passage{
		{Content: "first"},
		{Content: "second"},
	})

	assert.Equal(t, "first second", joined)
}
