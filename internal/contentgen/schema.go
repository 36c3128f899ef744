package contentgen

import "github.com/abhisek/focusloop/internal/llm"

func str() map[string]any { return map[string]any{"type": "string"} }

func object(required []string, props map[string]any) map[string]any {
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

func items(item map[string]any) map[string]any {
	return map[string]any{
		"type":     "array",
		"items":    item,
		"minItems": 1,
		"maxItems": maxItems,
	}
}

// FlashcardsSchema is the response schema for a flashcard deck.
var FlashcardsSchema = &llm.Schema{
	Name:        "flashcards-artifact",
	Description: "A deck of practice flashcards",
	Definition: object([]string{"cards"}, map[string]any{
		"cards": items(object([]string{"front", "back", "subtopic"}, map[string]any{
			"front":    str(),
			"back":     str(),
			"subtopic": str(),
		})),
	}),
}

// QuizSchema is the response schema for quiz and explain artifacts.
var QuizSchema = &llm.Schema{
	Name:        "quiz-artifact",
	Description: "A short practice quiz",
	Definition: object([]string{"questions"}, map[string]any{
		"questions": items(object([]string{"prompt", "choices", "answer", "explanation", "subtopic"}, map[string]any{
			"prompt": str(),
			"choices": map[string]any{
				"type":  "array",
				"items": str(),
			},
			"answer":      str(),
			"explanation": str(),
			"subtopic":    str(),
		})),
	}),
}

// MicroGameSchema is the response schema for a micro game.
var MicroGameSchema = &llm.Schema{
	Name:        "micro-game-artifact",
	Description: "A short timed learning game",
	Definition: object([]string{"title", "rules", "time_limit_secs", "rounds"}, map[string]any{
		"title": str(),
		"rules": str(),
		"time_limit_secs": map[string]any{
			"type":    "integer",
			"minimum": 30,
			"maximum": 600,
		},
		"rounds": items(object([]string{"prompt", "answer", "subtopic"}, map[string]any{
			"prompt":   str(),
			"answer":   str(),
			"subtopic": str(),
		})),
	}),
}

// ConceptMapSchema is the response schema for concept map construction.
var ConceptMapSchema = &llm.Schema{
	Name:        "concept-map",
	Description: "A topic broken into ordered subtopics with prerequisites",
	Definition: object([]string{"subtopics"}, map[string]any{
		"subtopics": map[string]any{
			"type":     "array",
			"minItems": 2,
			"maxItems": 10,
			"items": object([]string{"name", "prerequisites"}, map[string]any{
				"name": str(),
				"prerequisites": map[string]any{
					"type":  "array",
					"items": str(),
				},
			}),
		},
	}),
}

func schemaFor(k Kind) *llm.Schema {
	switch k {
	case KindFlashcards:
		return FlashcardsSchema
	case KindMicroGame:
		return MicroGameSchema
	default:
		return QuizSchema
	}
}
