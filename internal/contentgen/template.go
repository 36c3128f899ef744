package contentgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/mastery"
	"github.com/google/uuid"
)

// curriculum holds built-in concept maps for common topics. Keys are
// lower-case topic names.
var curriculum = map[string][]Subtopic{
	"fractions": {
		{Name: "equal parts"},
		{Name: "numerators and denominators", Prerequisites: []string{"equal parts"}},
		{Name: "equivalent fractions", Prerequisites: []string{"numerators and denominators"}},
		{Name: "comparing fractions", Prerequisites: []string{"equivalent fractions"}},
		{Name: "adding fractions", Prerequisites: []string{"equivalent fractions"}},
	},
	"multiplication": {
		{Name: "repeated addition"},
		{Name: "times tables", Prerequisites: []string{"repeated addition"}},
		{Name: "multiplying by ten", Prerequisites: []string{"times tables"}},
		{Name: "multi-digit multiplication", Prerequisites: []string{"times tables", "multiplying by ten"}},
	},
	"photosynthesis": {
		{Name: "light energy"},
		{Name: "chlorophyll", Prerequisites: []string{"light energy"}},
		{Name: "carbon dioxide and water"},
		{Name: "glucose production", Prerequisites: []string{"chlorophyll", "carbon dioxide and water"}},
	},
}

// genericSubtopics is the three-part map used for topics without a
// built-in curriculum.
var genericSubtopics = []Subtopic{
	{Name: "foundations"},
	{Name: "core ideas", Prerequisites: []string{"foundations"}},
	{Name: "applications", Prerequisites: []string{"core ideas"}},
}

var stems = map[mastery.Difficulty][]string{
	mastery.DifficultyEasy: {
		"What is meant by %s in %s?",
		"Give a simple example of %s in %s.",
		"Which word or rule best describes %s in %s?",
	},
	mastery.DifficultyMedium: {
		"How would you use %s to solve a %s problem?",
		"Explain the steps of %s in a %s example.",
		"What changes when %s is applied to a new %s problem?",
	},
	mastery.DifficultyHard: {
		"Where does %s break down or combine with other ideas in %s?",
		"Design a %[2]s problem that can only be solved with %[1]s.",
		"Compare two methods for %s in %s and say which is better.",
	},
}

// TemplateGenerator produces deterministic artifacts without a model.
// It is the fallback when no LLM is configured or the LLM fails.
type TemplateGenerator struct {
	items int
}

// NewTemplate creates a TemplateGenerator producing itemsPerArtifact items
// (at least one per subtopic).
func NewTemplate(itemsPerArtifact int) *TemplateGenerator {
	if itemsPerArtifact <= 0 {
		itemsPerArtifact = DefaultConfig().ItemsPerArtifact
	}
	return &TemplateGenerator{items: itemsPerArtifact}
}

func (g *TemplateGenerator) BuildConceptMap(_ context.Context, topic string) (*ConceptMap, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, apperr.Invalid("concept map topic is required")
	}
	subs, ok := curriculum[strings.ToLower(strings.TrimSpace(topic))]
	if !ok {
		subs = genericSubtopics
	}
	out := make([]Subtopic, len(subs))
	for i, s := range subs {
		out[i] = Subtopic{Name: s.Name, Prerequisites: append([]string(nil), s.Prerequisites...)}
	}
	return &ConceptMap{Topic: topic, Subtopics: out}, nil
}

func (g *TemplateGenerator) GenerateArtifact(_ context.Context, req ArtifactRequest) (*Artifact, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	n := max(g.items, len(req.Subtopics))
	if n > maxItems {
		n = maxItems
	}
	prompts := g.prompts(req, n)

	a := &Artifact{
		ID:         uuid.NewString(),
		Kind:       req.Modality.Kind(),
		Modality:   req.Modality,
		Topic:      req.Topic,
		Difficulty: req.Difficulty,
		Subtopics:  req.Subtopics,
		Source:     SourceTemplate,
	}
	switch a.Kind {
	case KindFlashcards:
		a.Flashcards = &Flashcards{}
		for i, p := range prompts {
			sub := req.Subtopics[i%len(req.Subtopics)]
			a.Flashcards.Cards = append(a.Flashcards.Cards, Flashcard{
				Front:    p,
				Back:     fmt.Sprintf("Recall the key rule of %s and one example from %s.", sub, req.Topic),
				Subtopic: sub,
			})
		}
	case KindMicroGame:
		a.MicroGame = &MicroGame{
			Title:         fmt.Sprintf("%s sprint", req.Topic),
			Rules:         "Answer each round before the timer runs out. Skipped rounds count as misses.",
			TimeLimitSecs: 180 - 30*req.Difficulty.Index(),
		}
		for i, p := range prompts {
			sub := req.Subtopics[i%len(req.Subtopics)]
			a.MicroGame.Rounds = append(a.MicroGame.Rounds, GameRound{
				Prompt:   p,
				Answer:   fmt.Sprintf("Any answer that correctly applies %s.", sub),
				Subtopic: sub,
			})
		}
	default:
		a.Quiz = &Quiz{}
		explain := req.Modality == ModalityExplain
		for i, p := range prompts {
			if explain {
				p = "Explain your reasoning: " + p
			}
			a.Quiz.Questions = append(a.Quiz.Questions, QuizQuestion{
				Prompt:           p,
				Subtopic:         req.Subtopics[i%len(req.Subtopics)],
				RequireRationale: explain,
			})
		}
	}
	return a, nil
}

// prompts picks n stems round-robin over the subtopics, skipping any the
// learner has already seen when an unseen variant exists.
func (g *TemplateGenerator) prompts(req ArtifactRequest, n int) []string {
	seen := make(map[string]bool, len(req.Student.Avoid)+n)
	for _, p := range req.Student.Avoid {
		key := normalize(p)
		seen[key] = true
		if rest, ok := strings.CutPrefix(key, "explain your reasoning: "); ok {
			seen[rest] = true
		}
	}

	bank := stems[req.Difficulty]
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		sub := req.Subtopics[i%len(req.Subtopics)]
		start := i / len(req.Subtopics)
		var p string
		for k := 0; k < len(bank); k++ {
			p = fmt.Sprintf(bank[(start+k)%len(bank)], sub, req.Topic)
			if !seen[normalize(p)] {
				break
			}
		}
		if seen[normalize(p)] {
			p = fmt.Sprintf("%s (round %d)", fmt.Sprintf(bank[start%len(bank)], sub, req.Topic), i+1)
		}
		seen[normalize(p)] = true
		out = append(out, p)
	}
	return out
}
