package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestOpenAIServer(t *testing.T, handler http.HandlerFunc) string {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server.URL + "/v1"
}

func openAICompletion(content, finish string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4.1-mini",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": finish,
			}},
			"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
		})
	}
}

func TestOpenAIProvider_HappyPath(t *testing.T) {
	var gotBody map[string]any
	url := newTestOpenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		openAICompletion(`{"name":"Ada","age":9}`, "stop")(w, r)
	})
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", Model: "gpt-mini", BaseURL: url})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}

	resp, err := p.Generate(context.Background(), UserRequest("You write quizzes.", "One question.", testSchema()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 {
		t.Fatalf("unexpected usage: %+v", resp.Usage)
	}
	if gotBody["model"] != "gpt-4.1-mini" {
		t.Fatalf("friendly model name not resolved: %v", gotBody["model"])
	}
	if _, ok := gotBody["response_format"]; !ok {
		t.Fatal("schema request did not set response_format")
	}
	msgs, _ := gotBody["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected system + user messages, got %d", len(msgs))
	}
}

func TestOpenAIProvider_LengthFinish(t *testing.T) {
	url := newTestOpenAIServer(t, openAICompletion(`{"name":`, "length"))
	p, _ := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-mini", BaseURL: url})

	_, err := p.Generate(context.Background(), UserRequest("", "x", testSchema()))
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got: %T (%v)", err, err)
	}
}

func TestOpenAIProvider_ErrorMapping(t *testing.T) {
	for _, tt := range []struct {
		status int
		want   string
	}{
		{http.StatusTooManyRequests, "rate"},
		{http.StatusInternalServerError, "unavailable"},
		{http.StatusBadRequest, "rejected"},
	} {
		url := newTestOpenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(tt.status)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"type": "x", "message": "boom"},
			})
		})
		p, _ := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-mini", BaseURL: url})
		_, err := p.Generate(context.Background(), UserRequest("", "test", nil))

		var (
			rl *ErrRateLimit
			un *ErrProviderUnavailable
			rj *ErrRequestRejected
		)
		ok := false
		switch tt.want {
		case "rate":
			ok = errors.As(err, &rl)
		case "unavailable":
			ok = errors.As(err, &un)
		case "rejected":
			ok = errors.As(err, &rj)
		}
		if !ok {
			t.Errorf("status %d: got %T (%v), want %s", tt.status, err, err, tt.want)
		}
	}
}

func TestOpenRouterProvider(t *testing.T) {
	var path string
	url := newTestOpenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		openAICompletion(`plain text`, "stop")(w, r)
	})

	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: "anthropic/claude-3-haiku", BaseURL: url})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "anthropic/claude-3-haiku" {
		t.Errorf("model = %q, want pass-through", p.ModelID())
	}
	if p.Name() != ProviderOpenRouter {
		t.Errorf("name = %q", p.Name())
	}
	if _, err := p.Generate(context.Background(), UserRequest("", "hi", nil)); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if path != "/v1/chat/completions" {
		t.Errorf("request path = %q", path)
	}

	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "x"}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}
