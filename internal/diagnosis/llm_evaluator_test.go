package diagnosis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/llm"
	"github.com/abhisek/focusloop/internal/mastery"
)

func fractionsRequest() EvaluateRequest {
	return EvaluateRequest{
		StudentID:      "stu",
		SkillID:        "sk",
		Domain:         "fractions",
		Category:       "conceptual",
		QuestionText:   "Which is larger, 1/8 or 1/4?",
		StudentAnswer:  "1/8 because 8 is bigger",
		ExpectedAnswer: "1/4",
		TimeSecs:       12,
		HintsUsed:      1,
		SkillMastery:   35,
	}
}

func TestLLMEvaluator_MatchesMisconception(t *testing.T) {
	resp := json.RawMessage(`{"correctness":"incorrect","reasoning_quality":2,"answer_style":"worked","confidence_level":"high","misunderstanding_label":"concept-whole-number-bias","feedback":"Smaller pieces come from bigger denominators."}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})

	ev, err := NewLLMEvaluator(mock, DefaultEvaluatorConfig()).EvaluateAttempt(context.Background(), fractionsRequest())
	if err != nil {
		t.Fatalf("EvaluateAttempt: %v", err)
	}
	if ev.Correctness != mastery.Incorrect || ev.ConfidenceLevel != mastery.ConfidenceHigh {
		t.Errorf("unexpected grading: %+v", ev.GradedAttempt)
	}
	if ev.MisunderstandingLabel != "concept-whole-number-bias" {
		t.Errorf("label = %q", ev.MisunderstandingLabel)
	}
	if ev.Evaluator != "llm" {
		t.Errorf("evaluator = %q", ev.Evaluator)
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Skill: fractions (conceptual)", "Expected answer: 1/4", "Time taken: 12 seconds", "concept-whole-number-bias:", "gen-misread-question:"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "proc-step-omission") {
		t.Error("prompt lists misconceptions from another category")
	}
}

func TestLLMEvaluator_DropsUnknownLabel(t *testing.T) {
	resp := json.RawMessage(`{"correctness":"partial","reasoning_quality":3,"answer_style":"worked","confidence_level":"medium","misunderstanding_label":"invented-label","feedback":"Close."}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})

	ev, err := NewLLMEvaluator(mock, DefaultEvaluatorConfig()).EvaluateAttempt(context.Background(), fractionsRequest())
	if err != nil {
		t.Fatalf("EvaluateAttempt: %v", err)
	}
	if ev.MisunderstandingLabel != "" {
		t.Errorf("label = %q, want dropped", ev.MisunderstandingLabel)
	}
}

func TestLLMEvaluator_NoExpectedAnswer(t *testing.T) {
	resp := json.RawMessage(`{"correctness":"correct","reasoning_quality":4,"answer_style":"worked","confidence_level":"medium","misunderstanding_label":"","feedback":"Nice."}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})

	req := fractionsRequest()
	req.ExpectedAnswer = ""
	if _, err := NewLLMEvaluator(mock, DefaultEvaluatorConfig()).EvaluateAttempt(context.Background(), req); err != nil {
		t.Fatalf("EvaluateAttempt: %v", err)
	}
	if strings.Contains(mock.Calls[0].Messages[0].Content, "Expected answer") {
		t.Error("prompt mentions an expected answer that was not given")
	}
}

func TestLLMEvaluator_SchemaViolation(t *testing.T) {
	resp := json.RawMessage(`{"correctness":"maybe","reasoning_quality":9,"answer_style":"worked","confidence_level":"medium","misunderstanding_label":"","feedback":""}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})

	_, err := NewLLMEvaluator(mock, DefaultEvaluatorConfig()).EvaluateAttempt(context.Background(), fractionsRequest())
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestFallbackEvaluator(t *testing.T) {
	t.Run("primary ok", func(t *testing.T) {
		resp := json.RawMessage(`{"correctness":"correct","reasoning_quality":5,"answer_style":"worked","confidence_level":"high","misunderstanding_label":"","feedback":"Great."}`)
		ev, err := NewEvaluator(llm.NewMockProvider(llm.MockResponse{Content: resp}), DefaultEvaluatorConfig(), time.Second, nil).
			EvaluateAttempt(context.Background(), fractionsRequest())
		if err != nil || ev.Evaluator != "llm" {
			t.Fatalf("got %+v, %v", ev, err)
		}
	})

	t.Run("provider down", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
		ev, err := NewEvaluator(mock, DefaultEvaluatorConfig(), time.Second, nil).
			EvaluateAttempt(context.Background(), fractionsRequest())
		if err != nil {
			t.Fatalf("EvaluateAttempt: %v", err)
		}
		if !strings.HasPrefix(ev.Evaluator, "heuristic/") || ev.Correctness != mastery.Partial {
			t.Errorf("got %+v, want heuristic partial", ev)
		}
	})

	t.Run("no provider", func(t *testing.T) {
		ev, err := NewEvaluator(nil, DefaultEvaluatorConfig(), 0, nil).EvaluateAttempt(context.Background(), fractionsRequest())
		if err != nil || ev.Evaluator != "heuristic/default" {
			t.Fatalf("got %+v, %v", ev, err)
		}
	})

	t.Run("invalid request surfaces", func(t *testing.T) {
		mock := llm.NewMockProvider()
		_, err := NewEvaluator(mock, DefaultEvaluatorConfig(), time.Second, nil).
			EvaluateAttempt(context.Background(), EvaluateRequest{})
		if !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("err = %v, want validation", err)
		}
		if len(mock.Calls) != 0 {
			t.Error("provider called for an invalid request")
		}
	})
}
