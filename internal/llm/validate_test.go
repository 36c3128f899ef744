package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-learner",
		Description: "A test object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":  map[string]any{"type": "string"},
				"age":   map[string]any{"type": "integer", "minimum": 0},
				"style": map[string]any{"type": "string", "enum": []any{"guess", "skip", "worked", "rushed"}},
			},
			"required":             []any{"name", "age"},
			"additionalProperties": false,
		},
	}
}

func TestValidateJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"name":"Ada","age":10,"style":"worked"}`, false},
		{"optional omitted", `{"name":"Bo","age":8}`, false},
		{"missing required", `{"name":"Cy"}`, true},
		{"wrong type", `{"name":"Di","age":"ten"}`, true},
		{"bad enum", `{"name":"Ev","age":9,"style":"doodle"}`, true},
		{"extra property", `{"name":"Fa","age":9,"mood":"happy"}`, true},
		{"negative", `{"name":"Gu","age":-1}`, true},
		{"malformed", `{not json}`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSON(testSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateJSON err = %v, wantErr %v", err, tt.wantErr)
			}
			var inv *ErrInvalidResponse
			if err != nil && !errors.As(err, &inv) {
				t.Fatalf("expected ErrInvalidResponse, got %T", err)
			}
		})
	}
}

func TestValidateJSON_NilSchema(t *testing.T) {
	if err := ValidateJSON(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateJSON_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name: "test-nested",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"topic": map[string]any{"type": "string"},
				"subtopics": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"name":          map[string]any{"type": "string"},
							"prerequisites": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						},
						"required": []string{"name"},
					},
				},
			},
			"required": []string{"topic", "subtopics"},
		},
	}

	valid := json.RawMessage(`{"topic":"fractions","subtopics":[{"name":"halves","prerequisites":[]}]}`)
	if err := ValidateJSON(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if err := ValidateJSON(schema, json.RawMessage(`{"topic":"fractions","subtopics":[]}`)); err == nil {
		t.Fatal("expected error for empty subtopics")
	}
	if err := ValidateJSON(schema, json.RawMessage(`{"topic":"fractions","subtopics":[{"prerequisites":[]}]}`)); err == nil {
		t.Fatal("expected error for subtopic without name")
	}
}
