package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/abhisek/focusloop/internal/store"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockJSON(map[string]int{"b": 2}),
	)

	resp1, err := mock.Generate(context.Background(), UserRequest("", "first", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` || resp1.Usage.InputTokens != 10 || resp1.StopReason != "end" {
		t.Fatalf("unexpected first response: %+v", resp1)
	}

	resp2, err := mock.Generate(context.Background(), UserRequest("", "second", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	_, err := NewMockProvider().Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_ValidatesAgainstSchema(t *testing.T) {
	mock := NewMockProvider(MockJSON(map[string]any{"name": "Ada"}))
	_, err := mock.Generate(context.Background(), UserRequest("", "x", testSchema()))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	if _, ok := mock.LastCall(); ok {
		t.Fatal("LastCall should be empty")
	}

	_, _ = mock.Generate(context.Background(), UserRequest("sys", "hello", nil))

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	last, ok := mock.LastCall()
	if !ok || last.System != "sys" || last.Messages[0].Content != "hello" {
		t.Fatalf("unexpected last call: %+v", last)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}
	ctx = WithPurpose(ctx, PurposeEvaluation)
	if p := PurposeFrom(ctx); p != PurposeEvaluation {
		t.Fatalf("expected %q, got %q", PurposeEvaluation, p)
	}
}

func TestRequestDefaults(t *testing.T) {
	if got := (Request{}).withDefaults().MaxTokens; got != DefaultMaxTokens {
		t.Fatalf("MaxTokens = %d", got)
	}
	if got := (Request{MaxTokens: 64}).withDefaults().MaxTokens; got != 64 {
		t.Fatalf("explicit MaxTokens overridden: %d", got)
	}
}

func TestIsTransient(t *testing.T) {
	cases := map[string]struct {
		err  error
		want bool
	}{
		"nil":         {nil, false},
		"unavailable": {&ErrProviderUnavailable{}, true},
		"rate":        {&ErrRateLimit{}, true},
		"invalid":     {&ErrInvalidResponse{Err: errors.New("x")}, true},
		"rejected":    {&ErrRequestRejected{StatusCode: 401, Err: errors.New("x")}, false},
		"truncated":   {&ErrMaxTokensExceeded{}, false},
	}
	for name, c := range cases {
		if got := IsTransient(c.err); got != c.want {
			t.Errorf("%s: IsTransient = %v, want %v", name, got, c.want)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"disabled", Config{}, false},
		{"anthropic without key", Config{Provider: ProviderAnthropic}, true},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: ProviderOpenAI}, true},
		{"openrouter with key", Config{Provider: ProviderOpenRouter, OpenRouter: OpenRouterConfig{APIKey: "k"}}, false},
		{"gemini without key", Config{Provider: ProviderGemini}, true},
		{"mock needs no key", Config{Provider: ProviderMock}, false},
		{"unknown provider", Config{Provider: "unknown"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Discover(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg := DefaultConfig()
	if !cfg.Discover() {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != ProviderAnthropic || cfg.Anthropic.APIKey != "sk-ant" {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	explicit := Config{Provider: ProviderMock}
	if !explicit.Discover() || explicit.Provider != ProviderMock {
		t.Fatal("explicit provider must win over discovery")
	}

	t.Setenv("ANTHROPIC_API_KEY", "")
	none := DefaultConfig()
	if none.Discover() || none.Enabled() {
		t.Fatal("expected no provider without keys")
	}
}

type recordingAudit struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingAudit) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, data)
	return r.err
}

func TestLoggingProvider_RecordsEvents(t *testing.T) {
	audit := &recordingAudit{}
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`), Usage: Usage{InputTokens: 7, OutputTokens: 3}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithLogging(mock, audit, nil)
	ctx := WithPurpose(context.Background(), PurposeArtifact)

	if _, err := p.Generate(ctx, UserRequest("sys", "make a quiz", nil)); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := p.Generate(ctx, UserRequest("sys", "again", nil)); err == nil {
		t.Fatal("expected error")
	}

	if len(audit.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(audit.events))
	}
	ok, failed := audit.events[0], audit.events[1]
	if !ok.Success || ok.Purpose != PurposeArtifact || ok.InputTokens != 7 || ok.Provider != "mock" {
		t.Errorf("unexpected success event: %+v", ok)
	}
	if ok.RequestBody == "" || ok.ResponseBody != `{"ok":true}` {
		t.Errorf("bodies not captured: %+v", ok)
	}
	if failed.Success || failed.ErrorMessage == "" {
		t.Errorf("unexpected failure event: %+v", failed)
	}
}

func TestLoggingProvider_AuditFailureDoesNotFailRequest(t *testing.T) {
	audit := &recordingAudit{err: errors.New("db locked")}
	p := WithLogging(NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)}), audit, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("audit failure leaked: %v", err)
	}
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{}, nil, nil)
	if err != nil || p != nil {
		t.Fatalf("disabled config: got %v, %v", p, err)
	}

	p, err = NewProvider(context.Background(), Config{Provider: ProviderMock}, nil, nil)
	if err != nil {
		t.Fatalf("mock config: %v", err)
	}
	if p.ModelID() != "mock" || ProviderName(p) != "mock" {
		t.Fatalf("decorators hide the base provider: %q %q", p.ModelID(), ProviderName(p))
	}

	if _, err := NewProvider(context.Background(), Config{Provider: ProviderOpenAI}, nil, nil); err == nil {
		t.Fatal("expected validation error")
	}
}
