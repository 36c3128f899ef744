package contentgen

import (
	"fmt"
	"slices"
	"strings"
)

const (
	maxPromptLen = 500
	maxAnswerLen = 1000
	maxItems     = 12
)

// StructuralValidator checks that the payload matches the kind and that
// every item has its required text within length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(a *Artifact, _ ArtifactRequest) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...), Retryable: true}
	}

	set := 0
	for _, p := range []bool{a.Flashcards != nil, a.Quiz != nil, a.MicroGame != nil} {
		if p {
			set++
		}
	}
	if set != 1 {
		return fail("expected exactly one payload, found %d", set)
	}

	n := a.ItemCount()
	if n == 0 {
		return fail("%s artifact has no items", a.Kind)
	}
	if n > maxItems {
		return fail("%s artifact has %d items, limit is %d", a.Kind, n, maxItems)
	}

	switch a.Kind {
	case KindFlashcards:
		for i, c := range a.Flashcards.Cards {
			if msg := text("front", c.Front, maxPromptLen); msg != "" {
				return fail("card %d: %s", i, msg)
			}
			if msg := text("back", c.Back, maxAnswerLen); msg != "" {
				return fail("card %d: %s", i, msg)
			}
		}
	case KindQuiz:
		for i, q := range a.Quiz.Questions {
			if msg := text("prompt", q.Prompt, maxPromptLen); msg != "" {
				return fail("question %d: %s", i, msg)
			}
			if len(q.Choices) > 0 {
				if len(q.Choices) < 2 {
					return fail("question %d: needs at least 2 choices", i)
				}
				if !slices.Contains(q.Choices, q.Answer) {
					return fail("question %d: answer %q is not among the choices", i, q.Answer)
				}
			}
		}
	case KindMicroGame:
		g := a.MicroGame
		if strings.TrimSpace(g.Title) == "" {
			return fail("micro game has no title")
		}
		if g.TimeLimitSecs <= 0 {
			return fail("micro game time limit must be positive")
		}
		for i, r := range g.Rounds {
			if msg := text("prompt", r.Prompt, maxPromptLen); msg != "" {
				return fail("round %d: %s", i, msg)
			}
			if msg := text("answer", r.Answer, maxAnswerLen); msg != "" {
				return fail("round %d: %s", i, msg)
			}
		}
	default:
		return fail("unknown artifact kind %q", a.Kind)
	}
	return nil
}

func text(field, s string, limit int) string {
	switch {
	case strings.TrimSpace(s) == "":
		return field + " is empty"
	case len(s) > limit:
		return fmt.Sprintf("%s exceeds %d characters", field, limit)
	}
	return ""
}

// CoverageValidator checks that items only target requested subtopics and
// that every requested subtopic gets at least one item.
type CoverageValidator struct{}

func (v *CoverageValidator) Name() string { return "coverage" }

func (v *CoverageValidator) Validate(a *Artifact, req ArtifactRequest) *ValidationError {
	covered := make(map[string]bool, len(req.Subtopics))
	for i := 0; i < a.ItemCount(); i++ {
		s := a.ItemSubtopic(i)
		if !slices.Contains(req.Subtopics, s) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("item %d targets unrequested subtopic %q", i, s),
				Retryable: true,
			}
		}
		covered[s] = true
	}
	for _, s := range req.Subtopics {
		if !covered[s] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("subtopic %q has no items", s),
				Retryable: true,
			}
		}
	}
	return nil
}

// DedupValidator rejects artifacts that repeat a prompt from the avoid
// list or within themselves.
type DedupValidator struct{}

func (v *DedupValidator) Name() string { return "dedup" }

func (v *DedupValidator) Validate(a *Artifact, req ArtifactRequest) *ValidationError {
	seen := make(map[string]bool, a.ItemCount()+len(req.Student.Avoid))
	for _, p := range req.Student.Avoid {
		seen[normalize(p)] = true
	}
	for i, p := range a.Prompts() {
		key := normalize(p)
		if seen[key] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("item %d repeats %q", i, p),
				Retryable: true,
			}
		}
		seen[key] = true
	}
	return nil
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
