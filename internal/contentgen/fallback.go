package contentgen

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/logging"
	"github.com/sirupsen/logrus"
)

// FallbackGenerator tries a primary generator under a deadline and falls
// back to a secondary one on any failure other than an invalid request.
type FallbackGenerator struct {
	primary  Generator
	fallback Generator
	timeout  time.Duration
	log      logrus.FieldLogger
}

// WithFallback wraps primary. A nil primary always uses fallback. A zero
// timeout leaves the caller's deadline in charge.
func WithFallback(primary, fallback Generator, timeout time.Duration, log logrus.FieldLogger) *FallbackGenerator {
	if log == nil {
		log = logging.Discard()
	}
	return &FallbackGenerator{primary: primary, fallback: fallback, timeout: timeout, log: log}
}

func (g *FallbackGenerator) GenerateArtifact(ctx context.Context, req ArtifactRequest) (*Artifact, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if g.primary != nil {
		pctx, cancel := g.deadline(ctx)
		a, err := g.primary.GenerateArtifact(pctx, req)
		cancel()
		if err == nil {
			return a, nil
		}
		if errors.Is(err, apperr.ErrValidation) {
			return nil, err
		}
		g.log.WithError(err).WithFields(logrus.Fields{
			"topic":    req.Topic,
			"modality": req.Modality,
		}).Warn("artifact generation failed, using templates")
	}
	a, err := g.fallback.GenerateArtifact(ctx, req)
	if err != nil {
		return nil, apperr.Unavailable("generate artifact", err)
	}
	return a, nil
}

func (g *FallbackGenerator) BuildConceptMap(ctx context.Context, topic string) (*ConceptMap, error) {
	if g.primary != nil {
		pctx, cancel := g.deadline(ctx)
		m, err := g.primary.BuildConceptMap(pctx, topic)
		cancel()
		if err == nil {
			return m, nil
		}
		if errors.Is(err, apperr.ErrValidation) {
			return nil, err
		}
		g.log.WithError(err).WithField("topic", topic).Warn("concept map generation failed, using templates")
	}
	m, err := g.fallback.BuildConceptMap(ctx, topic)
	if err != nil && !errors.Is(err, apperr.ErrValidation) {
		return nil, apperr.Unavailable("build concept map", err)
	}
	return m, err
}

func (g *FallbackGenerator) deadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}
