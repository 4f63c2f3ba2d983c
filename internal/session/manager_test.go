package session

import (
	"context"
	"testing"
	"time"

	"github.com/hrishabhb/PharmAssistAI/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAsk struct {
	result *entity.AskResult
	asked  []string
}

func (s *stubAsk) Ask(ctx context.Context, question string) *entity.AskResult {
	s.asked = append(s.asked, question)
	return s.result
}

func answeredResult() *entity.AskResult {
	return &entity.AskResult{
		Answer: "Aspirin relieves pain.",
		Sources: []entity.Source{
			{Number: 1, Content: "passage one"},
		},
		RelatedQuestions: []string{"What is the max dose?", "Is it safe in pregnancy?"},
		Flashcards: []entity.Flashcard{
			{Question: "Card 1", Answer: "Answer 1"},
			{Question: "Card 2", Answer: "Answer 2"},
			{Question: "Card 3", Answer: "Answer 3"},
		},
	}
}

func newTestManager(t *testing.T, ask *stubAsk) *Manager {
	t.Helper()
	return NewManager(NewCacheStorage(time.Hour), ask, zap.NewNop())
}

func createAnswered(t *testing.T, m *Manager) *Session {
	t.Helper()
	ctx := context.Background()

	created, err := m.Create(ctx)
	require.NoError(t, err)

	answered, err := m.SubmitQuestion(ctx, created.ID, "What is aspirin used for?")
	require.NoError(t, err)

	return answered
}

func TestManager_CreateAndGet(t *testing.T) {
	m := newTestManager(t, &stubAsk{})
	ctx := context.Background()

	created, err := m.Create(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Nil(t, created.Result)

	got, err := m.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestManager_GetUnknownSession(t *testing.T) {
	m := newTestManager(t, &stubAsk{})

	_, err := m.Get(context.Background(), "no-such-id")

	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestManager_Delete(t *testing.T) {
	m := newTestManager(t, &stubAsk{})
	ctx := context.Background()

	created, err := m.Create(ctx)
	require.NoError(t, err)

	require.NoError(t, m.Delete(ctx, created.ID))

	_, err = m.Get(ctx, created.ID)
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestManager_SubmitQuestion(t *testing.T) {
	ask := &stubAsk{result: answeredResult()}
	m := newTestManager(t, ask)

	session := createAnswered(t, m)

	assert.Equal(t, []string{"What is aspirin used for?"}, ask.asked)
	assert.Equal(t, "What is aspirin used for?", session.Question)
	require.NotNil(t, session.Result)
	assert.Equal(t, "Aspirin relieves pain.", session.Result.Answer)
	assert.Equal(t, 0, session.CardIndex)
	assert.False(t, session.ShowAnswer)
}

func TestManager_SubmitQuestionResetsCursor(t *testing.T) {
	ask := &stubAsk{result: answeredResult()}
	m := newTestManager(t, ask)
	ctx := context.Background()

	session := createAnswered(t, m)

	moved, err := m.AdvanceFlashcard(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, 1, moved.CardIndex)

	_, err = m.ToggleAnswer(ctx, session.ID)
	require.NoError(t, err)

	resubmitted, err := m.SubmitQuestion(ctx, session.ID, "How does aspirin work?")
	require.NoError(t, err)
	assert.Equal(t, 0, resubmitted.CardIndex)
	assert.False(t, resubmitted.ShowAnswer)
}

func TestManager_FlashcardNavigation(t *testing.T) {
	ask := &stubAsk{result: answeredResult()}
	m := newTestManager(t, ask)
	ctx := context.Background()

	session := createAnswered(t, m)

	t.Run("Advance wraps past the end", func(t *testing.T) {
		for _, want := range []int{1, 2, 0, 1} {
			moved, err := m.AdvanceFlashcard(ctx, session.ID)
			require.NoError(t, err)
			assert.Equal(t, want, moved.CardIndex)
		}
	})

	t.Run("Rewind wraps past the start", func(t *testing.T) {
		for _, want := range []int{0, 2, 1} {
			moved, err := m.RewindFlashcard(ctx, session.ID)
			require.NoError(t, err)
			assert.Equal(t, want, moved.CardIndex)
		}
	})

	t.Run("Moving hides a revealed answer", func(t *testing.T) {
		toggled, err := m.ToggleAnswer(ctx, session.ID)
		require.NoError(t, err)
		require.True(t, toggled.ShowAnswer)

		moved, err := m.AdvanceFlashcard(ctx, session.ID)
		require.NoError(t, err)
		assert.False(t, moved.ShowAnswer)
	})
}

func TestManager_ToggleAnswer(t *testing.T) {
	ask := &stubAsk{result: answeredResult()}
	m := newTestManager(t, ask)
	ctx := context.Background()

	session := createAnswered(t, m)

	toggled, err := m.ToggleAnswer(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, toggled.ShowAnswer)

	toggled, err = m.ToggleAnswer(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, toggled.ShowAnswer)
}

func TestManager_FlashcardOpsWithoutDeck(t *testing.T) {
	m := newTestManager(t, &stubAsk{})
	ctx := context.Background()

	created, err := m.Create(ctx)
	require.NoError(t, err)

	_, err = m.AdvanceFlashcard(ctx, created.ID)
	assert.ErrorIs(t, err, entity.ErrNoFlashcards)

	_, err = m.RewindFlashcard(ctx, created.ID)
	assert.ErrorIs(t, err, entity.ErrNoFlashcards)

	_, err = m.ToggleAnswer(ctx, created.ID)
	assert.ErrorIs(t, err, entity.ErrNoFlashcards)
}

func TestManager_SelectRelatedQuestion(t *testing.T) {
	ask := &stubAsk{result: answeredResult()}
	m := newTestManager(t, ask)
	ctx := context.Background()

	session := createAnswered(t, m)

	resubmitted, err := m.SelectRelatedQuestion(ctx, session.ID, 1)
	require.NoError(t, err)

	assert.Equal(t, "Is it safe in pregnancy?", resubmitted.Question)
	assert.Equal(t, []string{"What is aspirin used for?", "Is it safe in pregnancy?"}, ask.asked)
	assert.Equal(t, 0, resubmitted.CardIndex)
}

func TestManager_SelectRelatedQuestionBounds(t *testing.T) {
	ask := &stubAsk{result: answeredResult()}
	m := newTestManager(t, ask)
	ctx := context.Background()

	session := createAnswered(t, m)

	_, err := m.SelectRelatedQuestion(ctx, session.ID, -1)
	assert.ErrorIs(t, err, entity.ErrRelatedQuestionIndex)

	_, err = m.SelectRelatedQuestion(ctx, session.ID, 2)
	assert.ErrorIs(t, err, entity.ErrRelatedQuestionIndex)
}

func TestManager_SelectRelatedQuestionWithoutAnswer(t *testing.T) {
	m := newTestManager(t, &stubAsk{})
	ctx := context.Background()

	created, err := m.Create(ctx)
	require.NoError(t, err)

	_, err = m.SelectRelatedQuestion(ctx, created.ID, 0)
	assert.ErrorIs(t, err, entity.ErrNoAnswer)
}

func TestManager_StudySheet(t *testing.T) {
	ask := &stubAsk{result: answeredResult()}
	m := newTestManager(t, ask)
	ctx := context.Background()

	session := createAnswered(t, m)

	sheet, err := m.StudySheet(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "What is aspirin used for?", sheet.Question)
	assert.Equal(t, "Aspirin relieves pain.", sheet.Answer)
	assert.Len(t, sheet.Flashcards, 3)
}

func TestManager_StudySheetOffTopic(t *testing.T) {
	ask := &stubAsk{result: &entity.AskResult{
		Answer:     "I'm sorry, but I can only assist with pharmacy topics.",
		IsOffTopic: true,
	}}
	m := newTestManager(t, ask)

	session := createAnswered(t, m)

	_, err := m.StudySheet(context.Background(), session.ID)
	assert.ErrorIs(t, err, entity.ErrSessionOffTopic)
}

func TestManager_StudySheetWithoutAnswer(t *testing.T) {
	m := newTestManager(t, &stubAsk{})
	ctx := context.Background()

	created, err := m.Create(ctx)
	require.NoError(t, err)

	_, err = m.StudySheet(ctx, created.ID)
	assert.ErrorIs(t, err, entity.ErrNoAnswer)
}

func TestSession_CurrentFlashcard(t *testing.T) {
	session := &Session{Result: answeredResult(), CardIndex: 2}

	card := session.CurrentFlashcard()
	require.NotNil(t, card)
	assert.Equal(t, "Card 3", card.Question)

	empty := &Session{}
	assert.Nil(t, empty.CurrentFlashcard())
}
