package spacedrep

import (
	"sort"
	"time"

	"github.com/abhisek/focusloop/internal/session"
)

// ReviewStatus describes a due item's status for display.
type ReviewStatus string

const (
	ReviewNotDue  ReviewStatus = "not_due"
	ReviewDue     ReviewStatus = "due"
	ReviewOverdue ReviewStatus = "overdue"
)

// IsDue returns true if the item is due for review (at or past the due date).
func IsDue(item session.DueItem, now time.Time) bool {
	return !now.Before(item.DueAt)
}

// OverdueDays returns how many days past due the item is. Returns 0 if not yet due.
func OverdueDays(item session.DueItem, now time.Time) float64 {
	if now.Before(item.DueAt) {
		return 0
	}
	return now.Sub(item.DueAt).Hours() / 24.0
}

// Status reports whether the item is due, and overdue once it is past half
// its interval beyond the due date.
func Status(item session.DueItem, now time.Time) ReviewStatus {
	if !IsDue(item, now) {
		return ReviewNotDue
	}
	grace := time.Duration(float64(item.IntervalDays) * 0.5 * 24 * float64(time.Hour))
	if now.After(item.DueAt.Add(grace)) {
		return ReviewOverdue
	}
	return ReviewDue
}

// DaysUntilReview returns the number of days until the item is due.
// Returns 0 if already due.
func DaysUntilReview(item session.DueItem, now time.Time) int {
	if IsDue(item, now) {
		return 0
	}
	return int(item.DueAt.Sub(now).Hours()/24.0) + 1
}

// DueItems returns the items due at now, most overdue first.
func DueItems(items []session.DueItem, now time.Time) []session.DueItem {
	var due []session.DueItem
	for _, it := range items {
		if IsDue(it, now) {
			due = append(due, it)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		if !due[i].DueAt.Equal(due[j].DueAt) {
			return due[i].DueAt.Before(due[j].DueAt)
		}
		return due[i].Subtopic < due[j].Subtopic
	})
	return due
}
