package diagnosis

import "github.com/abhisek/focusloop/internal/llm"

// EvaluationSchema defines the JSON schema for LLM answer evaluation.
var EvaluationSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "Grading of a learner's answer, with an optional misconception from a known taxonomy",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"correctness": map[string]any{
				"type": "string",
				"enum": []any{"correct", "incorrect", "partial"},
			},
			"reasoning_quality": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     5,
				"description": "1 = pure guess, 5 = expert explanation",
			},
			"answer_style": map[string]any{
				"type": "string",
				"enum": []any{"guess", "skip", "worked", "rushed"},
			},
			"confidence_level": map[string]any{
				"type":        "string",
				"enum":        []any{"low", "medium", "high"},
				"description": "How confident the learner appears in their answer",
			},
			"misunderstanding_label": map[string]any{
				"type":        "string",
				"description": "ID of the matching misconception from the candidate list, or an empty string",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One or two encouraging sentences addressed to the learner",
			},
		},
		"required":             []any{"correctness", "reasoning_quality", "answer_style", "confidence_level", "misunderstanding_label", "feedback"},
		"additionalProperties": false,
	},
}
