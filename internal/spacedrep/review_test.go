package spacedrep

import (
	"testing"
	"time"

	"github.com/abhisek/focusloop/internal/session"
)

var base = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func item(name string, interval int, due time.Time) session.DueItem {
	return session.DueItem{Subtopic: name, IntervalDays: interval, DueAt: due}
}

func TestIsDue(t *testing.T) {
	if IsDue(item("a", 1, base.Add(time.Hour)), base) {
		t.Error("expected not due before due date")
	}
	if !IsDue(item("a", 1, base), base) {
		t.Error("expected due on due date")
	}
}

func TestOverdueDays(t *testing.T) {
	if got := OverdueDays(item("a", 1, base.Add(48*time.Hour)), base); got != 0 {
		t.Errorf("OverdueDays() = %f, want 0", got)
	}
	got := OverdueDays(item("a", 1, base), base.Add(72*time.Hour))
	if got < 2.99 || got > 3.01 {
		t.Errorf("OverdueDays() = %f, want ~3.0", got)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want ReviewStatus
	}{
		{"not due", base.Add(-time.Hour), ReviewNotDue},
		// 7-day interval: grace is 3.5 days.
		{"within grace", base.Add(2 * 24 * time.Hour), ReviewDue},
		{"past grace", base.Add(4 * 24 * time.Hour), ReviewOverdue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Status(item("a", 7, base), tt.now); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDaysUntilReview(t *testing.T) {
	// 4.5 days in the future -> int(4.5) + 1 = 5
	if got := DaysUntilReview(item("a", 7, base.Add(108*time.Hour)), base); got != 5 {
		t.Errorf("DaysUntilReview() = %d, want 5", got)
	}
	if got := DaysUntilReview(item("a", 7, base), base.Add(time.Hour)); got != 0 {
		t.Errorf("DaysUntilReview() = %d, want 0", got)
	}
}

func TestDueItemsMostOverdueFirst(t *testing.T) {
	items := []session.DueItem{
		item("later", 3, base.Add(24*time.Hour)),
		item("b", 1, base.Add(-24*time.Hour)),
		item("oldest", 1, base.Add(-72*time.Hour)),
		item("a", 1, base.Add(-24*time.Hour)),
	}
	got := DueItems(items, base)
	want := []string{"oldest", "a", "b"}
	if len(got) != len(want) {
		t.Fatalf("DueItems() returned %d items, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Subtopic != w {
			t.Errorf("DueItems()[%d] = %q, want %q", i, got[i].Subtopic, w)
		}
	}
}
