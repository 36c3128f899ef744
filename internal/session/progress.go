package session

import (
	"fmt"
	"math"

	"github.com/abhisek/focusloop/internal/mastery"
)

// EvaluateLoop scores a loop's results. Accuracy is correct over total.
// Frustration weighs hint usage, timing irregularity and errors; engagement
// drops with skips and irregular timing.
func EvaluateLoop(results []ItemResult, maxHints int) LoopPerformance {
	n := len(results)
	if n == 0 {
		return LoopPerformance{}
	}
	if maxHints <= 0 {
		maxHints = 3
	}

	var correct, skipped, hints int
	times := make([]float64, 0, n)
	for _, r := range results {
		if r.Skipped {
			skipped++
		} else if r.Correct {
			correct++
		}
		hints += r.HintsUsed
		times = append(times, r.TimeSecs)
	}

	total := float64(n)
	accuracy := float64(correct) / total
	hintRate := math.Min(float64(hints)/total/float64(maxHints), 1)
	cv := math.Min(coefficientOfVariation(times), 1)
	skipRate := float64(skipped) / total

	return LoopPerformance{
		Accuracy:         accuracy,
		FrustrationLevel: unit(0.5*hintRate + 0.25*cv + 0.25*(1-accuracy)),
		EngagementLevel:  unit(1 - skipRate - 0.5*cv),
		ItemsCompleted:   n - skipped,
	}
}

// coefficientOfVariation is the population standard deviation over the
// mean, or 0 when the mean is 0.
func coefficientOfVariation(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))
	if mean <= 0 {
		return 0
	}
	var sq float64
	for _, x := range xs {
		sq += (x - mean) * (x - mean)
	}
	return math.Sqrt(sq/float64(len(xs))) / mean
}

func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// NextDifficulty applies the adjustment rule. It returns nil when the
// difficulty stays the same, including when a shift is clamped.
func NextDifficulty(current mastery.Difficulty, perf LoopPerformance, cfg Config) *Adjustment {
	var (
		next   mastery.Difficulty
		reason string
	)
	switch {
	case perf.FrustrationLevel >= cfg.FrustrationLowerAt:
		next = current.Easier()
		reason = fmt.Sprintf("frustration %.2f at or above %.2f", perf.FrustrationLevel, cfg.FrustrationLowerAt)
	case perf.Accuracy >= cfg.RaiseAt:
		next = current.Harder()
		reason = fmt.Sprintf("accuracy %.2f at or above %.2f", perf.Accuracy, cfg.RaiseAt)
	case perf.Accuracy <= cfg.LowerAt:
		next = current.Easier()
		reason = fmt.Sprintf("accuracy %.2f at or below %.2f", perf.Accuracy, cfg.LowerAt)
	default:
		return nil
	}
	if next == current {
		return nil
	}
	return &Adjustment{From: current, To: next, Reason: reason}
}

// subtopicAccuracy groups results by subtopic, in first-seen order.
func subtopicAccuracy(results []ItemResult) (order []string, acc map[string]float64) {
	correct := map[string]int{}
	total := map[string]int{}
	for _, r := range results {
		if r.Subtopic == "" {
			continue
		}
		if total[r.Subtopic] == 0 {
			order = append(order, r.Subtopic)
		}
		total[r.Subtopic]++
		if r.Correct && !r.Skipped {
			correct[r.Subtopic]++
		}
	}
	acc = make(map[string]float64, len(total))
	for s, n := range total {
		acc[s] = float64(correct[s]) / float64(n)
	}
	return order, acc
}

// rollMastery blends a loop's accuracy into a subtopic's rolling mastery.
// The first observation sets the value outright.
func rollMastery(prev float64, seen bool, accuracy, weight float64) float64 {
	obs := accuracy * 100
	if !seen {
		return obs
	}
	return mastery.ClampMastery(weight*obs + (1-weight)*prev)
}
