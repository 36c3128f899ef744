package diagnosis

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/llm"
	"github.com/abhisek/focusloop/internal/logging"
	"github.com/sirupsen/logrus"
)

// FallbackEvaluator tries a primary evaluator under a deadline and falls
// back to a secondary one on any failure other than an invalid request.
type FallbackEvaluator struct {
	primary  Evaluator
	fallback Evaluator
	timeout  time.Duration
	log      logrus.FieldLogger
}

// WithFallback wraps primary. A nil primary always uses fallback.
func WithFallback(primary, fallback Evaluator, timeout time.Duration, log logrus.FieldLogger) *FallbackEvaluator {
	if log == nil {
		log = logging.Discard()
	}
	return &FallbackEvaluator{primary: primary, fallback: fallback, timeout: timeout, log: log}
}

func (f *FallbackEvaluator) EvaluateAttempt(ctx context.Context, req EvaluateRequest) (*Evaluation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if f.primary != nil {
		pctx, cancel := ctx, context.CancelFunc(func() {})
		if f.timeout > 0 {
			pctx, cancel = context.WithTimeout(ctx, f.timeout)
		}
		ev, err := f.primary.EvaluateAttempt(pctx, req)
		cancel()
		if err == nil {
			return ev, nil
		}
		if errors.Is(err, apperr.ErrValidation) {
			return nil, err
		}
		f.log.WithError(err).WithFields(logrus.Fields{
			"student_id": req.StudentID,
			"skill_id":   req.SkillID,
		}).Warn("answer evaluation failed, using heuristics")
	}
	ev, err := f.fallback.EvaluateAttempt(ctx, req)
	if err != nil {
		return nil, apperr.Unavailable("evaluate attempt", err)
	}
	return ev, nil
}

// NewEvaluator assembles the evaluator used by the engine: the LLM when a
// provider is configured, with heuristics behind it.
func NewEvaluator(provider llm.Provider, cfg EvaluatorConfig, timeout time.Duration, log logrus.FieldLogger) Evaluator {
	var primary Evaluator
	if provider != nil {
		primary = NewLLMEvaluator(provider, cfg)
	}
	return WithFallback(primary, NewHeuristic(), timeout, log)
}
