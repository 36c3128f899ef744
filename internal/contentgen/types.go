// Package contentgen produces practice artifacts and concept maps, from an
// LLM or from deterministic templates.
package contentgen

import (
	"context"
	"slices"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/mastery"
)

// Generator produces practice content.
type Generator interface {
	// GenerateArtifact returns a validated artifact for req.
	GenerateArtifact(ctx context.Context, req ArtifactRequest) (*Artifact, error)

	// BuildConceptMap breaks a topic into ordered subtopics.
	BuildConceptMap(ctx context.Context, topic string) (*ConceptMap, error)
}

// Modality is the practice format a learner works in.
type Modality string

const (
	ModalityQuiz       Modality = "quiz"
	ModalityFlashcards Modality = "flashcards"
	ModalityMicroGame  Modality = "micro_game"
	// ModalityExplain is a quiz whose answers require a written rationale.
	ModalityExplain Modality = "explain"
)

// Modalities in rotation order.
var Modalities = []Modality{ModalityQuiz, ModalityFlashcards, ModalityMicroGame, ModalityExplain}

// Valid reports whether m is a known modality.
func (m Modality) Valid() bool { return slices.Contains(Modalities, m) }

// Kind returns the artifact payload used for m.
func (m Modality) Kind() Kind {
	switch m {
	case ModalityFlashcards:
		return KindFlashcards
	case ModalityMicroGame:
		return KindMicroGame
	default:
		return KindQuiz
	}
}

// ParseModality validates s. An empty string selects the quiz modality.
func ParseModality(s string) (Modality, error) {
	if s == "" {
		return ModalityQuiz, nil
	}
	m := Modality(s)
	if !m.Valid() {
		return "", apperr.Invalid("unknown modality %q", s)
	}
	return m, nil
}

// Kind discriminates the Artifact union.
type Kind string

const (
	KindFlashcards Kind = "flashcards"
	KindQuiz       Kind = "quiz"
	KindMicroGame  Kind = "micro_game"
)

// Artifact is one loop's practice content. Exactly one payload is set,
// matching Kind.
type Artifact struct {
	ID         string             `json:"id"`
	Kind       Kind               `json:"kind"`
	Modality   Modality           `json:"modality"`
	Topic      string             `json:"topic"`
	Difficulty mastery.Difficulty `json:"difficulty"`
	Subtopics  []string           `json:"subtopics"`
	// Source is "llm" or "template".
	Source string `json:"source"`

	Flashcards *Flashcards `json:"flashcards,omitempty"`
	Quiz       *Quiz       `json:"quiz,omitempty"`
	MicroGame  *MicroGame  `json:"micro_game,omitempty"`
}

// Flashcards is a deck of prompt/answer cards.
type Flashcards struct {
	Cards []Flashcard `json:"cards"`
}

type Flashcard struct {
	Front    string `json:"front"`
	Back     string `json:"back"`
	Subtopic string `json:"subtopic"`
}

// Quiz is a list of questions. Choices is empty for open questions.
type Quiz struct {
	Questions []QuizQuestion `json:"questions"`
}

type QuizQuestion struct {
	Prompt           string   `json:"prompt"`
	Choices          []string `json:"choices,omitempty"`
	Answer           string   `json:"answer,omitempty"`
	Explanation      string   `json:"explanation,omitempty"`
	Subtopic         string   `json:"subtopic"`
	RequireRationale bool     `json:"require_rationale,omitempty"`
}

// MicroGame is a short timed game of rounds.
type MicroGame struct {
	Title         string      `json:"title"`
	Rules         string      `json:"rules"`
	TimeLimitSecs int         `json:"time_limit_secs"`
	Rounds        []GameRound `json:"rounds"`
}

type GameRound struct {
	Prompt   string `json:"prompt"`
	Answer   string `json:"answer"`
	Subtopic string `json:"subtopic"`
}

// ItemCount returns the number of gradable items in the artifact.
func (a *Artifact) ItemCount() int {
	switch a.Kind {
	case KindFlashcards:
		if a.Flashcards != nil {
			return len(a.Flashcards.Cards)
		}
	case KindQuiz:
		if a.Quiz != nil {
			return len(a.Quiz.Questions)
		}
	case KindMicroGame:
		if a.MicroGame != nil {
			return len(a.MicroGame.Rounds)
		}
	}
	return 0
}

// ItemSubtopic returns the subtopic of item i, or "" when out of range.
func (a *Artifact) ItemSubtopic(i int) string {
	if i < 0 || i >= a.ItemCount() {
		return ""
	}
	switch a.Kind {
	case KindFlashcards:
		return a.Flashcards.Cards[i].Subtopic
	case KindQuiz:
		return a.Quiz.Questions[i].Subtopic
	case KindMicroGame:
		return a.MicroGame.Rounds[i].Subtopic
	}
	return ""
}

// ItemAnswer returns the expected answer of item i, or "" when out of range
// or the item is open.
func (a *Artifact) ItemAnswer(i int) string {
	if i < 0 || i >= a.ItemCount() {
		return ""
	}
	switch a.Kind {
	case KindFlashcards:
		return a.Flashcards.Cards[i].Back
	case KindQuiz:
		return a.Quiz.Questions[i].Answer
	case KindMicroGame:
		return a.MicroGame.Rounds[i].Answer
	}
	return ""
}

// ConceptMap is a topic broken into ordered subtopics.
type ConceptMap struct {
	Topic     string     `json:"topic"`
	Subtopics []Subtopic `json:"subtopics"`
}

// Subtopic is one node of a concept map. Prerequisites name other
// subtopics of the same map.
type Subtopic struct {
	Name          string   `json:"name"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}

// Names returns the subtopic names in map order.
func (m *ConceptMap) Names() []string {
	out := make([]string, len(m.Subtopics))
	for i, s := range m.Subtopics {
		out[i] = s.Name
	}
	return out
}

// Find returns the named subtopic.
func (m *ConceptMap) Find(name string) (Subtopic, bool) {
	for _, s := range m.Subtopics {
		if s.Name == name {
			return s, true
		}
	}
	return Subtopic{}, false
}

// Validate checks that the map is non-empty, names are unique and every
// prerequisite refers to an earlier subtopic.
func (m *ConceptMap) Validate() error {
	if m.Topic == "" {
		return apperr.Invalid("concept map has no topic")
	}
	if len(m.Subtopics) == 0 {
		return apperr.Invalid("concept map for %q has no subtopics", m.Topic)
	}
	seen := make(map[string]bool, len(m.Subtopics))
	for _, s := range m.Subtopics {
		if s.Name == "" {
			return apperr.Invalid("concept map for %q has an unnamed subtopic", m.Topic)
		}
		if seen[s.Name] {
			return apperr.Invalid("duplicate subtopic %q", s.Name)
		}
		for _, p := range s.Prerequisites {
			if !seen[p] {
				return apperr.Invalid("subtopic %q requires unknown or later subtopic %q", s.Name, p)
			}
		}
		seen[s.Name] = true
	}
	return nil
}

// StudentContext personalizes generation.
type StudentContext struct {
	TypicalAnswerStyle mastery.AnswerStyle `json:"typical_answer_style,omitempty"`
	SubtopicMastery    map[string]float64  `json:"subtopic_mastery,omitempty"`
	Misconceptions     []string            `json:"misconceptions,omitempty"`
	// Avoid lists item prompts already shown in this session.
	Avoid []string `json:"avoid,omitempty"`
}

// ArtifactRequest asks for one artifact.
type ArtifactRequest struct {
	Topic      string
	Difficulty mastery.Difficulty
	Modality   Modality
	Subtopics  []string
	Student    StudentContext
}

// Validate rejects malformed requests before any generation is attempted.
func (r ArtifactRequest) Validate() error {
	if r.Topic == "" {
		return apperr.Invalid("artifact topic is required")
	}
	if r.Difficulty.Index() < 0 {
		return apperr.Invalid("unknown difficulty %q", r.Difficulty)
	}
	if !r.Modality.Valid() {
		return apperr.Invalid("unknown modality %q", r.Modality)
	}
	if len(r.Subtopics) == 0 {
		return apperr.Invalid("artifact needs at least one subtopic")
	}
	return nil
}

// Prompts returns the learner-facing prompt of every item.
func (a *Artifact) Prompts() []string {
	out := make([]string, 0, a.ItemCount())
	switch a.Kind {
	case KindFlashcards:
		if a.Flashcards == nil {
			break
		}
		for _, c := range a.Flashcards.Cards {
			out = append(out, c.Front)
		}
	case KindQuiz:
		if a.Quiz == nil {
			break
		}
		for _, q := range a.Quiz.Questions {
			out = append(out, q.Prompt)
		}
	case KindMicroGame:
		if a.MicroGame == nil {
			break
		}
		for _, r := range a.MicroGame.Rounds {
			out = append(out, r.Prompt)
		}
	}
	return out
}
