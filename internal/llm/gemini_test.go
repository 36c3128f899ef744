package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-lite", "gemini-2.5-flash-lite"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question":          map[string]any{"type": "string"},
			"reasoning_quality": map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
			"correctness":       map[string]any{"type": "string", "enum": []string{"correct", "incorrect", "partial"}},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 2,
				"maxItems": 6,
			},
		},
		"required": []string{"question", "correctness"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	rq := schema.Properties["reasoning_quality"]
	if rq.Type != "INTEGER" || rq.Minimum == nil || *rq.Minimum != 1 || rq.Maximum == nil || *rq.Maximum != 5 {
		t.Fatalf("integer bounds not converted: %+v", rq)
	}
	if len(schema.Properties["correctness"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["correctness"].Enum))
	}
	opts := schema.Properties["options"]
	if opts.Type != "ARRAY" || opts.Items.Type != "STRING" {
		t.Fatalf("array not converted: %+v", opts)
	}
	if opts.MinItems == nil || *opts.MinItems != 2 || opts.MaxItems == nil || *opts.MaxItems != 6 {
		t.Fatalf("array bounds not converted")
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestBuildGeminiSchemaFromDecodedJSON(t *testing.T) {
	def := map[string]any{
		"type":     "object",
		"required": []any{"a"},
		"properties": map[string]any{
			"a": map[string]any{"type": "number", "minimum": 0.5},
		},
	}
	schema := buildGeminiSchema(def)
	if len(schema.Required) != 1 || schema.Properties["a"].Type != "NUMBER" || *schema.Properties["a"].Minimum != 0.5 {
		t.Fatalf("decoded JSON schema not converted: %+v", schema)
	}
}
