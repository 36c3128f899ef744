package contentgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/llm"
	"github.com/google/uuid"
)

// SourceLLM and SourceTemplate tag where an artifact came from.
const (
	SourceLLM      = "llm"
	SourceTemplate = "template"
)

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg.withDefaults()}
}

// GenerateArtifact requests an artifact of the modality's kind and runs the
// validator chain over it.
func (g *LLMGenerator) GenerateArtifact(ctx context.Context, req ArtifactRequest) (*Artifact, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeArtifact)

	kind := req.Modality.Kind()
	r := llm.UserRequest(artifactSystemPrompt, buildArtifactMessage(req, g.config), schemaFor(kind))
	r.MaxTokens = g.config.MaxTokens
	r.Temperature = g.config.Temperature

	resp, err := g.provider.Generate(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	a := &Artifact{
		ID:         uuid.NewString(),
		Kind:       kind,
		Modality:   req.Modality,
		Topic:      req.Topic,
		Difficulty: req.Difficulty,
		Subtopics:  req.Subtopics,
		Source:     SourceLLM,
	}
	var target any
	switch kind {
	case KindFlashcards:
		a.Flashcards = &Flashcards{}
		target = a.Flashcards
	case KindMicroGame:
		a.MicroGame = &MicroGame{}
		target = a.MicroGame
	default:
		a.Quiz = &Quiz{}
		target = a.Quiz
	}
	if err := json.Unmarshal(resp.Content, target); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if req.Modality == ModalityExplain {
		for i := range a.Quiz.Questions {
			a.Quiz.Questions[i].RequireRationale = true
		}
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(a, req); verr != nil {
			return nil, verr
		}
	}
	return a, nil
}

type conceptMapOutput struct {
	Subtopics []Subtopic `json:"subtopics"`
}

// BuildConceptMap asks the LLM to decompose topic.
func (g *LLMGenerator) BuildConceptMap(ctx context.Context, topic string) (*ConceptMap, error) {
	if topic == "" {
		return nil, apperr.Invalid("concept map topic is required")
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeConceptMap)

	r := llm.UserRequest(conceptMapSystemPrompt, buildConceptMapMessage(topic), ConceptMapSchema)
	r.MaxTokens = g.config.MaxTokens

	resp, err := g.provider.Generate(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("LLM concept map failed: %w", err)
	}

	var raw conceptMapOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	m := &ConceptMap{Topic: topic, Subtopics: raw.Subtopics}
	if err := m.Validate(); err != nil {
		return nil, &ValidationError{Validator: "concept-map", Message: err.Error(), Retryable: true}
	}
	return m, nil
}
