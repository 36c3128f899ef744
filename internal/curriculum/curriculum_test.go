package curriculum

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/mastery"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if got := len(c.TopologicalOrder()); got != len(defaultEntries) {
		t.Fatalf("topological order has %d entries, want %d", got, len(defaultEntries))
	}
}

func TestTopologicalOrder_PrerequisitesFirst(t *testing.T) {
	c := Default()
	pos := map[string]int{}
	for i, e := range c.TopologicalOrder() {
		pos[e.Domain] = i
	}
	for _, e := range c.TopologicalOrder() {
		for _, pre := range e.Prerequisites {
			if pos[pre] >= pos[e.Domain] {
				t.Errorf("%q comes before its prerequisite %q", e.Domain, pre)
			}
		}
	}
}

func TestTopologicalOrder_Deterministic(t *testing.T) {
	first := Default().TopologicalOrder()
	for i := 0; i < 10; i++ {
		again := Default().TopologicalOrder()
		for j := range first {
			if first[j].Domain != again[j].Domain {
				t.Fatalf("order differs at %d: %q vs %q", j, first[j].Domain, again[j].Domain)
			}
		}
	}
}

func TestAvailable(t *testing.T) {
	c := Default()
	got := c.Available(map[string]bool{"number-facts": true, "place-value": true})
	names := make([]string, len(got))
	for i, e := range got {
		names[i] = e.Domain
	}
	want := "photosynthesis,plant-parts,addition"
	if strings.Join(names, ",") != want {
		t.Errorf("Available = %v, want %s", names, want)
	}
	if c.IsUnlocked("fractions", map[string]bool{"multiplication": true}) {
		t.Error("fractions should stay locked until division is mastered")
	}
	if c.IsUnlocked("unknown", nil) {
		t.Error("unknown domain reported unlocked")
	}
}

func TestDependents(t *testing.T) {
	deps := Default().Dependents("multiplication")
	if len(deps) != 2 {
		t.Errorf("Dependents(multiplication) = %v, want 2 entries", deps)
	}
}

func TestSeeds(t *testing.T) {
	seeds := Default().Seeds()
	if len(seeds) != len(defaultEntries) {
		t.Fatalf("got %d seeds", len(seeds))
	}
	for _, s := range seeds {
		if s.Domain == "times-tables" && mastery.SeedDecayRate(s.Category) != 0.25 {
			t.Errorf("times-tables should seed the factual decay rate")
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    string
	}{
		{"empty", nil, "empty"},
		{"duplicate", []Entry{{Domain: "a"}, {Domain: "a"}}, "duplicate domain"},
		{"dangling", []Entry{{Domain: "a", Prerequisites: []string{"zzz"}}, {Domain: "b"}}, "nonexistent prerequisite"},
		{"cycle", []Entry{{Domain: "r"}, {Domain: "a", Prerequisites: []string{"b"}}, {Domain: "b", Prerequisites: []string{"a"}}}, "cycle detected"},
		{"no root", []Entry{{Domain: "a", Prerequisites: []string{"a"}}}, "no root"},
		{"category", []Entry{{Domain: "a", Category: "artistic"}}, "unknown category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries)
			if !errors.Is(err, apperr.ErrValidation) {
				t.Fatalf("err = %v, want validation error", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}
