package spacedrep

import "testing"

func TestBaseIntervals_Values(t *testing.T) {
	expected := []int{1, 3, 7, 14, 30, 60}
	if len(BaseIntervals) != len(expected) {
		t.Fatalf("expected %d base intervals, got %d", len(expected), len(BaseIntervals))
	}
	for i, v := range expected {
		if BaseIntervals[i] != v {
			t.Errorf("BaseIntervals[%d] = %d, want %d", i, BaseIntervals[i], v)
		}
	}
}

func TestStageFor(t *testing.T) {
	tests := []struct {
		mastery float64
		want    int
	}{
		{0, 0},
		{69.9, 0},
		{70, 1},
		{77, 1},
		{77.5, 2},
		{85, 3},
		{92.5, 4},
		{99, 4},
		{100, 5},
	}
	for _, tt := range tests {
		if got := StageFor(tt.mastery, 70); got != tt.want {
			t.Errorf("StageFor(%v) = %d, want %d", tt.mastery, got, tt.want)
		}
	}
	if got := StageFor(100, 100); got != 0 {
		t.Errorf("StageFor with threshold 100 = %d, want 0", got)
	}
}

func TestIntervalDays_Clamped(t *testing.T) {
	tests := []struct {
		stage    int
		expected int
	}{
		{-1, 1},
		{0, 1},
		{2, 7},
		{5, 60},
		{10, 60},
	}
	for _, tt := range tests {
		if got := IntervalDays(tt.stage); got != tt.expected {
			t.Errorf("IntervalDays(%d) = %d, want %d", tt.stage, got, tt.expected)
		}
	}
}
