// Package curriculum holds the domain graph new students are seeded with.
package curriculum

import (
	"slices"
	"sort"

	"github.com/abhisek/focusloop/internal/mastery"
)

// Category of knowledge; it seeds a skill's decay rate.
const (
	CategoryFactual    = "factual"
	CategoryProcedural = "procedural"
	CategoryConceptual = "conceptual"
)

// Entry is one domain in the curriculum.
type Entry struct {
	Domain        string   `json:"domain" mapstructure:"domain"`
	Category      string   `json:"category" mapstructure:"category"`
	DisplayName   string   `json:"display_name" mapstructure:"display_name"`
	Prerequisites []string `json:"prerequisites,omitempty" mapstructure:"prerequisites"`
}

// Curriculum is a validated domain DAG with precomputed indices.
type Curriculum struct {
	entries    []Entry
	byDomain   map[string]*Entry
	dependents map[string][]string
	topoOrder  []Entry
}

// New validates entries and builds the graph.
func New(entries []Entry) (*Curriculum, error) {
	if err := validate(entries); err != nil {
		return nil, err
	}
	c := &Curriculum{
		entries:    slices.Clone(entries),
		byDomain:   make(map[string]*Entry, len(entries)),
		dependents: make(map[string][]string),
	}
	for i := range c.entries {
		c.byDomain[c.entries[i].Domain] = &c.entries[i]
	}
	for i := range c.entries {
		for _, pre := range c.entries[i].Prerequisites {
			c.dependents[pre] = append(c.dependents[pre], c.entries[i].Domain)
		}
	}

	// Kahn's algorithm with sorted queues for a deterministic order.
	inDegree := make(map[string]int, len(c.entries))
	var queue []string
	for _, e := range c.entries {
		inDegree[e.Domain] = len(e.Prerequisites)
		if len(e.Prerequisites) == 0 {
			queue = append(queue, e.Domain)
		}
	}
	sort.Strings(queue)
	for len(queue) > 0 {
		d := queue[0]
		queue = queue[1:]
		c.topoOrder = append(c.topoOrder, *c.byDomain[d])

		deps := slices.Clone(c.dependents[d])
		sort.Strings(deps)
		for _, dep := range deps {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}
	return c, nil
}

// Get returns an entry by domain.
func (c *Curriculum) Get(domain string) (Entry, bool) {
	e, ok := c.byDomain[domain]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// TopologicalOrder returns every entry with prerequisites first.
func (c *Curriculum) TopologicalOrder() []Entry {
	return slices.Clone(c.topoOrder)
}

// Dependents returns the domains that directly require domain.
func (c *Curriculum) Dependents(domain string) []string {
	return slices.Clone(c.dependents[domain])
}

// IsUnlocked returns true if all prerequisites of domain are in the
// mastered set.
func (c *Curriculum) IsUnlocked(domain string, mastered map[string]bool) bool {
	e, ok := c.byDomain[domain]
	if !ok {
		return false
	}
	for _, pre := range e.Prerequisites {
		if !mastered[pre] {
			return false
		}
	}
	return true
}

// Available returns unlocked domains not yet mastered, in topological
// order.
func (c *Curriculum) Available(mastered map[string]bool) []Entry {
	var out []Entry
	for _, e := range c.topoOrder {
		if !mastered[e.Domain] && c.IsUnlocked(e.Domain, mastered) {
			out = append(out, e)
		}
	}
	return out
}

// Seeds converts the curriculum to ledger seeds in topological order.
func (c *Curriculum) Seeds() []mastery.SkillSeed {
	out := make([]mastery.SkillSeed, len(c.topoOrder))
	for i, e := range c.topoOrder {
		out[i] = mastery.SkillSeed{Domain: e.Domain, Category: e.Category, DisplayName: e.DisplayName}
	}
	return out
}
