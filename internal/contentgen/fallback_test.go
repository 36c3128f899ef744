package contentgen

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slowGenerator struct{}

func (slowGenerator) GenerateArtifact(ctx context.Context, _ ArtifactRequest) (*Artifact, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowGenerator) BuildConceptMap(ctx context.Context, _ string) (*ConceptMap, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestFallbackUsesPrimaryWhenHealthy(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(validQuiz()))
	g := NewGenerator(mock, DefaultConfig(), time.Second, nil)

	a, err := g.GenerateArtifact(context.Background(), quizRequest(ModalityQuiz))
	require.NoError(t, err)
	assert.Equal(t, SourceLLM, a.Source)
}

func TestFallbackOnProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	g := NewGenerator(mock, DefaultConfig(), time.Second, nil)

	a, err := g.GenerateArtifact(context.Background(), quizRequest(ModalityQuiz))
	require.NoError(t, err)
	assert.Equal(t, SourceTemplate, a.Source)
}

func TestFallbackOnValidatorFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(map[string]any{"questions": []map[string]any{
		{"prompt": "off topic", "choices": []string{}, "answer": "", "explanation": "", "subtopic": "geometry"},
	}}))
	g := NewGenerator(mock, DefaultConfig(), time.Second, nil)

	a, err := g.GenerateArtifact(context.Background(), quizRequest(ModalityQuiz))
	require.NoError(t, err)
	assert.Equal(t, SourceTemplate, a.Source)
}

func TestFallbackOnTimeout(t *testing.T) {
	g := WithFallback(slowGenerator{}, NewTemplate(3), 10*time.Millisecond, nil)

	a, err := g.GenerateArtifact(context.Background(), quizRequest(ModalityMicroGame))
	require.NoError(t, err)
	assert.Equal(t, SourceTemplate, a.Source)

	m, err := g.BuildConceptMap(context.Background(), "fractions")
	require.NoError(t, err)
	assert.Equal(t, "equal parts", m.Subtopics[0].Name)
}

func TestFallbackWithoutProvider(t *testing.T) {
	g := NewGenerator(nil, DefaultConfig(), 0, nil)
	a, err := g.GenerateArtifact(context.Background(), quizRequest(ModalityFlashcards))
	require.NoError(t, err)
	assert.Equal(t, SourceTemplate, a.Source)
}

func TestFallbackInvalidRequestNotMasked(t *testing.T) {
	mock := llm.NewMockProvider()
	g := NewGenerator(mock, DefaultConfig(), time.Second, nil)

	_, err := g.GenerateArtifact(context.Background(), ArtifactRequest{Topic: "x"})
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Empty(t, mock.Calls)

	_, err = g.BuildConceptMap(context.Background(), "")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
