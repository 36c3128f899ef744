package contentgen

import (
	"context"
	"testing"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/mastery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateConceptMap(t *testing.T) {
	g := NewTemplate(0)

	m, err := g.BuildConceptMap(context.Background(), "  Fractions ")
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, "equal parts", m.Subtopics[0].Name)
	s, ok := m.Find("comparing fractions")
	require.True(t, ok)
	assert.Equal(t, []string{"equivalent fractions"}, s.Prerequisites)

	m, err = g.BuildConceptMap(context.Background(), "medieval castles")
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, []string{"foundations", "core ideas", "applications"}, m.Names())

	// Callers may mutate the result without touching the built-in map.
	m.Subtopics[1].Prerequisites[0] = "changed"
	again, _ := g.BuildConceptMap(context.Background(), "history")
	assert.Equal(t, "foundations", again.Subtopics[1].Prerequisites[0])

	_, err = g.BuildConceptMap(context.Background(), " ")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestTemplateArtifactsPassValidators(t *testing.T) {
	g := NewTemplate(5)
	for _, m := range Modalities {
		for _, d := range []mastery.Difficulty{mastery.DifficultyEasy, mastery.DifficultyMedium, mastery.DifficultyHard} {
			req := ArtifactRequest{
				Topic:      "fractions",
				Difficulty: d,
				Modality:   m,
				Subtopics:  []string{"equal parts", "equivalent fractions"},
			}
			a, err := g.GenerateArtifact(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, SourceTemplate, a.Source)
			assert.Equal(t, m.Kind(), a.Kind)
			assert.Equal(t, 5, a.ItemCount())
			for _, v := range DefaultConfig().Validators {
				assert.Nil(t, v.Validate(a, req), "%s/%s failed %s", m, d, v.Name())
			}
		}
	}
}

func TestTemplateArtifactIsDeterministic(t *testing.T) {
	g := NewTemplate(4)
	req := quizRequest(ModalityFlashcards)
	a, err := g.GenerateArtifact(context.Background(), req)
	require.NoError(t, err)
	b, err := g.GenerateArtifact(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, a.Prompts(), b.Prompts())
}

func TestTemplateCoversEverySubtopic(t *testing.T) {
	subs := []string{"a", "b", "c", "d", "e", "f", "g"}
	a, err := NewTemplate(3).GenerateArtifact(context.Background(), ArtifactRequest{
		Topic: "letters", Difficulty: mastery.DifficultyEasy, Modality: ModalityQuiz, Subtopics: subs,
	})
	require.NoError(t, err)
	assert.Equal(t, len(subs), a.ItemCount())
	assert.Nil(t, (&CoverageValidator{}).Validate(a, ArtifactRequest{Subtopics: subs}))
}

func TestTemplateAvoidsShownPrompts(t *testing.T) {
	g := NewTemplate(2)
	req := ArtifactRequest{
		Topic: "fractions", Difficulty: mastery.DifficultyEasy, Modality: ModalityExplain,
		Subtopics: []string{"equal parts"},
	}
	first, err := g.GenerateArtifact(context.Background(), req)
	require.NoError(t, err)
	for _, q := range first.Quiz.Questions {
		assert.True(t, q.RequireRationale)
	}

	req.Student.Avoid = first.Prompts()
	second, err := g.GenerateArtifact(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, (&DedupValidator{}).Validate(second, req))
}
