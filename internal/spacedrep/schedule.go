// Package spacedrep schedules spaced review and plans the session that
// should follow a completed one.
package spacedrep

// BaseIntervals defines the expanding interval schedule in days.
// Stage 0 = first review after practice.
var BaseIntervals = []int{1, 3, 7, 14, 30, 60}

// MaxStage is the highest stage index in BaseIntervals.
const MaxStage = 5

// StageFor maps rolling mastery to a ladder stage. Anything below the
// mastery threshold restarts at stage 0; the band above it is split evenly
// over the remaining stages.
func StageFor(mastery, threshold float64) int {
	if mastery < threshold || threshold >= 100 {
		return 0
	}
	band := (100 - threshold) / (MaxStage - 1)
	stage := 1 + int((mastery-threshold)/band)
	return min(stage, MaxStage)
}

// IntervalDays returns the review interval for a stage.
func IntervalDays(stage int) int {
	if stage < 0 {
		stage = 0
	}
	if stage > MaxStage {
		stage = MaxStage
	}
	return BaseIntervals[stage]
}
