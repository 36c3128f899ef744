package contentgen

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/llm"
	"github.com/abhisek/focusloop/internal/mastery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quizRequest(m Modality) ArtifactRequest {
	return ArtifactRequest{
		Topic:      "fractions",
		Difficulty: mastery.DifficultyMedium,
		Modality:   m,
		Subtopics:  []string{"equal parts", "equivalent fractions"},
		Student: StudentContext{
			TypicalAnswerStyle: mastery.StyleGuess,
			SubtopicMastery:    map[string]float64{"equal parts": 80},
			Misconceptions:     []string{"denominator-addition"},
			Avoid:              []string{"What is half of 8?"},
		},
	}
}

func validQuiz() map[string]any {
	return map[string]any{
		"questions": []map[string]any{
			{"prompt": "Shade 2 of 4 equal parts. What fraction is shaded?", "choices": []string{"1/2", "1/4", "2/3"}, "answer": "1/2", "explanation": "2/4 = 1/2", "subtopic": "equal parts"},
			{"prompt": "Name a fraction equal to 3/6.", "choices": []string{}, "answer": "1/2", "explanation": "Divide by 3", "subtopic": "equivalent fractions"},
		},
	}
}

func TestGenerateArtifactQuiz(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(validQuiz()))
	g := New(mock, DefaultConfig())

	a, err := g.GenerateArtifact(context.Background(), quizRequest(ModalityQuiz))
	require.NoError(t, err)
	assert.Equal(t, KindQuiz, a.Kind)
	assert.Equal(t, SourceLLM, a.Source)
	assert.NotEmpty(t, a.ID)
	require.NotNil(t, a.Quiz)
	assert.Nil(t, a.Flashcards)
	assert.Equal(t, 2, a.ItemCount())
	assert.Equal(t, "equivalent fractions", a.ItemSubtopic(1))
	assert.Equal(t, "1/2", a.ItemAnswer(0))
	assert.Empty(t, a.ItemAnswer(2))
	assert.False(t, a.Quiz.Questions[0].RequireRationale)

	require.Len(t, mock.Calls, 1)
	call := mock.Calls[0]
	assert.Equal(t, QuizSchema, call.Schema)
	msg := call.Messages[0].Content
	for _, want := range []string{"Topic: fractions", "Difficulty: medium", "denominator-addition", "What is half of 8?", "- equal parts: 80", "guess"} {
		assert.Contains(t, msg, want)
	}
}

func TestGenerateArtifactExplainRequiresRationale(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(validQuiz()))
	a, err := New(mock, DefaultConfig()).GenerateArtifact(context.Background(), quizRequest(ModalityExplain))
	require.NoError(t, err)
	assert.Equal(t, KindQuiz, a.Kind)
	assert.Equal(t, ModalityExplain, a.Modality)
	for _, q := range a.Quiz.Questions {
		assert.True(t, q.RequireRationale)
	}
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "Rationale required: true")
}

func TestGenerateArtifactFlashcardsAndGame(t *testing.T) {
	cards := map[string]any{"cards": []map[string]any{
		{"front": "What is a numerator?", "back": "The top number", "subtopic": "equal parts"},
		{"front": "Is 2/4 equal to 1/2?", "back": "Yes", "subtopic": "equivalent fractions"},
	}}
	game := map[string]any{
		"title": "Fraction dash", "rules": "Be quick", "time_limit_secs": 90,
		"rounds": []map[string]any{
			{"prompt": "1/2 of 10?", "answer": "5", "subtopic": "equal parts"},
			{"prompt": "2/4 = ?/2", "answer": "1", "subtopic": "equivalent fractions"},
		},
	}
	mock := llm.NewMockProvider(llm.MockJSON(cards), llm.MockJSON(game))
	g := New(mock, DefaultConfig())

	a, err := g.GenerateArtifact(context.Background(), quizRequest(ModalityFlashcards))
	require.NoError(t, err)
	assert.Equal(t, KindFlashcards, a.Kind)
	assert.Equal(t, []string{"What is a numerator?", "Is 2/4 equal to 1/2?"}, a.Prompts())

	a, err = g.GenerateArtifact(context.Background(), quizRequest(ModalityMicroGame))
	require.NoError(t, err)
	assert.Equal(t, KindMicroGame, a.Kind)
	assert.Equal(t, 90, a.MicroGame.TimeLimitSecs)
	assert.Equal(t, MicroGameSchema, mock.Calls[1].Schema)
}

func TestGenerateArtifactValidatorRejects(t *testing.T) {
	tests := []struct {
		name      string
		questions []map[string]any
		validator string
	}{
		{
			"answer not among choices",
			[]map[string]any{
				{"prompt": "Pick half", "choices": []string{"1/3", "1/4"}, "answer": "1/2", "explanation": "", "subtopic": "equal parts"},
				{"prompt": "Equal to 2/4?", "choices": []string{}, "answer": "", "explanation": "", "subtopic": "equivalent fractions"},
			},
			"structural",
		},
		{
			"unrequested subtopic",
			[]map[string]any{
				{"prompt": "Add 1/2 and 1/3", "choices": []string{}, "answer": "5/6", "explanation": "", "subtopic": "adding fractions"},
			},
			"coverage",
		},
		{
			"missing subtopic",
			[]map[string]any{
				{"prompt": "Shade half", "choices": []string{}, "answer": "", "explanation": "", "subtopic": "equal parts"},
			},
			"coverage",
		},
		{
			"repeats avoided prompt",
			[]map[string]any{
				{"prompt": "what is  HALF of 8?", "choices": []string{}, "answer": "4", "explanation": "", "subtopic": "equal parts"},
				{"prompt": "Equal to 2/4?", "choices": []string{}, "answer": "", "explanation": "", "subtopic": "equivalent fractions"},
			},
			"dedup",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockJSON(map[string]any{"questions": tt.questions}))
			_, err := New(mock, DefaultConfig()).GenerateArtifact(context.Background(), quizRequest(ModalityQuiz))
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.validator, verr.Validator)
			assert.True(t, verr.Retryable)
		})
	}
}

func TestGenerateArtifactInvalidRequest(t *testing.T) {
	mock := llm.NewMockProvider()
	g := New(mock, DefaultConfig())

	bad := []ArtifactRequest{
		{Difficulty: mastery.DifficultyEasy, Modality: ModalityQuiz, Subtopics: []string{"a"}},
		{Topic: "t", Difficulty: "extreme", Modality: ModalityQuiz, Subtopics: []string{"a"}},
		{Topic: "t", Difficulty: mastery.DifficultyEasy, Modality: "essay", Subtopics: []string{"a"}},
		{Topic: "t", Difficulty: mastery.DifficultyEasy, Modality: ModalityQuiz},
	}
	for i, req := range bad {
		_, err := g.GenerateArtifact(context.Background(), req)
		assert.ErrorIs(t, err, apperr.ErrValidation, "case %d", i)
	}
	assert.Empty(t, mock.Calls)
}

func TestBuildConceptMap(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(map[string]any{"subtopics": []map[string]any{
		{"name": "light energy", "prerequisites": []string{}},
		{"name": "chlorophyll", "prerequisites": []string{"light energy"}},
	}}))
	m, err := New(mock, DefaultConfig()).BuildConceptMap(context.Background(), "photosynthesis")
	require.NoError(t, err)
	assert.Equal(t, "photosynthesis", m.Topic)
	assert.Equal(t, []string{"light energy", "chlorophyll"}, m.Names())
	assert.Equal(t, ConceptMapSchema, mock.Calls[0].Schema)
}

func TestBuildConceptMapRejectsForwardPrerequisite(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(map[string]any{"subtopics": []map[string]any{
		{"name": "chlorophyll", "prerequisites": []string{"light energy"}},
		{"name": "light energy", "prerequisites": []string{}},
	}}))
	_, err := New(mock, DefaultConfig()).BuildConceptMap(context.Background(), "photosynthesis")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "later subtopic")
}

func TestGenerateArtifactProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	_, err := New(mock, DefaultConfig()).GenerateArtifact(context.Background(), quizRequest(ModalityQuiz))
	var rl *llm.ErrRateLimit
	assert.True(t, errors.As(err, &rl))
}
