package apperr

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindNone},
		{"validation", Invalid("student id is required"), KindValidation},
		{"not found", NotFound("skill %q", "abc"), KindNotFound},
		{"conflict", Conflict("loop %d open", 2), KindStateConflict},
		{"session active", ErrSessionAlreadyActive, KindStateConflict},
		{"loop sealed wrapped", fmt.Errorf("record results: %w", ErrLoopAlreadySealed), KindStateConflict},
		{"no skills", ErrNoSkillsAvailable, KindValidation},
		{"unavailable", Unavailable("load skills", errors.New("connection refused")), KindUnavailable},
		{"deadline", fmt.Errorf("generate: %w", context.DeadlineExceeded), KindUnavailable},
		{"plain", errors.New("boom"), KindInternal},
		{"internal", Internal("encode", errors.New("bad")), KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestSpecificSentinelsStayDistinct(t *testing.T) {
	err := fmt.Errorf("start loop: %w", ErrInvalidLoopSequence)
	if !errors.Is(err, ErrInvalidLoopSequence) {
		t.Fatal("expected ErrInvalidLoopSequence to match")
	}
	if errors.Is(err, ErrLoopAlreadySealed) {
		t.Fatal("ErrInvalidLoopSequence must not match ErrLoopAlreadySealed")
	}
}

func TestUnavailableKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := Unavailable("save skill", cause)
	if !errors.Is(err, cause) {
		t.Error("expected the cause to stay in the chain")
	}
	again := Unavailable("retry", err)
	if KindOf(again) != KindUnavailable {
		t.Errorf("KindOf = %q", KindOf(again))
	}
	if Unavailable("noop", nil) != nil {
		t.Error("Unavailable(nil) should be nil")
	}
}
