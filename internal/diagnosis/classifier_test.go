package diagnosis

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/mastery"
)

func TestRunClassifiers(t *testing.T) {
	tests := []struct {
		name       string
		answer     string
		secs       float64
		wantStyle  mastery.AnswerStyle
		wantSource string
	}{
		{"empty", "", 30, mastery.StyleSkip, "trivial-answer"},
		{"single char", " 7 ", 30, mastery.StyleSkip, "trivial-answer"},
		{"stock non-answer", "I don't   know", 30, mastery.StyleSkip, "trivial-answer"},
		{"trivial beats rush", "idk", 1, mastery.StyleSkip, "trivial-answer"},
		{"fast", "one half", 4.9, mastery.StyleRushed, "speed-rush"},
		{"at threshold", "one half", 5, mastery.StyleWorked, "default"},
		{"considered", "two quarters make a half", 42, mastery.StyleWorked, "default"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style, name := RunClassifiers(DefaultClassifiers(), &EvaluateRequest{StudentAnswer: tt.answer, TimeSecs: tt.secs})
			if style != tt.wantStyle || name != tt.wantSource {
				t.Errorf("got (%q, %q), want (%q, %q)", style, name, tt.wantStyle, tt.wantSource)
			}
		})
	}
}

func TestDefaultClassifiers_Order(t *testing.T) {
	classifiers := DefaultClassifiers()
	if len(classifiers) != 2 {
		t.Fatalf("got %d classifiers, want 2", len(classifiers))
	}
	if classifiers[0].Name() != "trivial-answer" || classifiers[1].Name() != "speed-rush" {
		t.Errorf("order = %q, %q", classifiers[0].Name(), classifiers[1].Name())
	}
}

func TestHeuristicEvaluator(t *testing.T) {
	h := NewHeuristic()
	ev, err := h.EvaluateAttempt(context.Background(), EvaluateRequest{
		QuestionText: "What is 1/2 of 8?", StudentAnswer: "4", TimeSecs: 2,
	})
	if err != nil {
		t.Fatalf("EvaluateAttempt: %v", err)
	}
	// "4" is a single rune, so it is treated as trivial.
	if ev.AnswerStyle != mastery.StyleSkip {
		t.Errorf("style = %q, want skip", ev.AnswerStyle)
	}

	ev, err = h.EvaluateAttempt(context.Background(), EvaluateRequest{
		QuestionText: "Explain equivalent fractions", StudentAnswer: "same amount, different parts", TimeSecs: 40,
	})
	if err != nil {
		t.Fatalf("EvaluateAttempt: %v", err)
	}
	if ev.Correctness != mastery.Partial || ev.ReasoningQuality != 3 || ev.ConfidenceLevel != mastery.ConfidenceMedium {
		t.Errorf("unexpected grading: %+v", ev.GradedAttempt)
	}
	if ev.Evaluator != "heuristic/default" || ev.Feedback == "" {
		t.Errorf("evaluator = %q, feedback = %q", ev.Evaluator, ev.Feedback)
	}
	if err := ev.Validate(); err != nil {
		t.Errorf("heuristic produced invalid attempt: %v", err)
	}
	if d := mastery.MapToDelta(ev.GradedAttempt, 0.2); d.MasteryDelta != 0 {
		t.Errorf("heuristic grading moved mastery by %d", d.MasteryDelta)
	}
}

func TestHeuristicEvaluatorRejectsInvalid(t *testing.T) {
	for _, req := range []EvaluateRequest{
		{StudentAnswer: "x"},
		{QuestionText: "q", TimeSecs: -1},
		{QuestionText: "q", HintsUsed: -2},
	} {
		if _, err := NewHeuristic().EvaluateAttempt(context.Background(), req); !errors.Is(err, apperr.ErrValidation) {
			t.Errorf("%+v: err = %v, want validation", req, err)
		}
	}
}

func TestTaxonomy(t *testing.T) {
	all := AllMisconceptions()
	if len(all) != len(seedMisconceptions) {
		t.Fatalf("registry has %d entries, seed has %d", len(all), len(seedMisconceptions))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Errorf("AllMisconceptions not sorted or has duplicates at %q", all[i].ID)
		}
	}
	for _, m := range all {
		if m.Label == "" || m.Description == "" {
			t.Errorf("%s: missing label or description", m.ID)
		}
	}

	if GetMisconception("proc-step-omission") == nil || GetMisconception("nope") != nil {
		t.Error("GetMisconception lookup is wrong")
	}

	procedural := Candidates("procedural")
	if !containsID(procedural, "proc-step-omission") || !containsID(procedural, "gen-misread-question") {
		t.Error("procedural candidates should include procedural and general entries")
	}
	if containsID(procedural, "fact-term-confusion") {
		t.Error("procedural candidates leak factual entries")
	}
	if got := len(Candidates("unknown")); got != len(Candidates(CategoryGeneral)) {
		t.Errorf("unknown category candidates = %d, want general only", got)
	}
}

func TestHeuristicEvaluatorChecksExpectedAnswer(t *testing.T) {
	h := NewHeuristic()
	tests := []struct {
		answer    string
		secs      float64
		want      mastery.Correctness
		evaluator string
		delta     int
	}{
		{"2/4", 20, mastery.Correct, "heuristic/answer-check", 2},
		{"0.5", 3, mastery.Correct, "heuristic/speed-rush", 2},
		{"3/4", 20, mastery.Incorrect, "heuristic/answer-check", -2},
		{"half of it, I think", 20, mastery.Partial, "heuristic/default", 0},
	}
	for _, tt := range tests {
		ev, err := h.EvaluateAttempt(context.Background(), EvaluateRequest{
			QuestionText: "What fraction is 4 of 8?", StudentAnswer: tt.answer, ExpectedAnswer: "1/2", TimeSecs: tt.secs,
		})
		if err != nil {
			t.Fatalf("%q: %v", tt.answer, err)
		}
		if ev.Correctness != tt.want || ev.Evaluator != tt.evaluator {
			t.Errorf("%q: got %q via %q, want %q via %q", tt.answer, ev.Correctness, ev.Evaluator, tt.want, tt.evaluator)
		}
		if err := ev.Validate(); err != nil {
			t.Errorf("%q: invalid attempt: %v", tt.answer, err)
		}
		if d := mastery.MapToDelta(ev.GradedAttempt, 0.2); d.MasteryDelta != tt.delta {
			t.Errorf("%q: delta = %d, want %d", tt.answer, d.MasteryDelta, tt.delta)
		}
	}
}
