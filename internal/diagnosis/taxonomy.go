package diagnosis

import "sort"

// CategoryGeneral misconceptions apply to every skill category.
const CategoryGeneral = "general"

// Misconception defines a known misconception pattern.
type Misconception struct {
	ID          string
	Category    string // skill category, or CategoryGeneral
	Label       string
	Description string
	Examples    []string
}

// registry is the package-level misconception registry, keyed by ID.
var registry map[string]*Misconception

// byCategory indexes misconceptions by skill category.
var byCategory map[string][]*Misconception

func init() {
	registry = make(map[string]*Misconception, len(seedMisconceptions))
	byCategory = make(map[string][]*Misconception)
	for i := range seedMisconceptions {
		m := &seedMisconceptions[i]
		registry[m.ID] = m
		byCategory[m.Category] = append(byCategory[m.Category], m)
	}
}

// GetMisconception returns a misconception by ID, or nil if not found.
func GetMisconception(id string) *Misconception {
	return registry[id]
}

// Candidates returns the misconceptions an evaluator may choose from for a
// skill category: the category's own plus the general ones.
func Candidates(category string) []*Misconception {
	out := append([]*Misconception(nil), byCategory[CategoryGeneral]...)
	if category != CategoryGeneral {
		out = append(out, byCategory[category]...)
	}
	return out
}

// AllMisconceptions returns every misconception in the taxonomy, by ID.
func AllMisconceptions() []*Misconception {
	result := make([]*Misconception, 0, len(registry))
	for _, m := range registry {
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
