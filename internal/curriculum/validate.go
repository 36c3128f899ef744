package curriculum

import (
	"fmt"
	"strings"

	"github.com/abhisek/focusloop/internal/apperr"
)

var categories = map[string]bool{
	CategoryFactual:    true,
	CategoryProcedural: true,
	CategoryConceptual: true,
}

// validate performs all structural checks on the entries and reports every
// problem found.
func validate(entries []Entry) error {
	var errs []string

	if len(entries) == 0 {
		return apperr.Invalid("curriculum is empty")
	}

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		switch {
		case strings.TrimSpace(e.Domain) == "":
			errs = append(errs, "entry with empty domain")
		case seen[e.Domain]:
			errs = append(errs, fmt.Sprintf("duplicate domain %q", e.Domain))
		}
		seen[e.Domain] = true
		if e.Category != "" && !categories[e.Category] {
			errs = append(errs, fmt.Sprintf("domain %q has unknown category %q", e.Domain, e.Category))
		}
	}

	for _, e := range entries {
		for _, pre := range e.Prerequisites {
			if !seen[pre] {
				errs = append(errs, fmt.Sprintf("domain %q references nonexistent prerequisite %q", e.Domain, pre))
			}
		}
	}

	inDegree := make(map[string]int, len(entries))
	adj := make(map[string][]string)
	var queue []string
	for _, e := range entries {
		inDegree[e.Domain] = len(e.Prerequisites)
		for _, pre := range e.Prerequisites {
			adj[pre] = append(adj[pre], e.Domain)
		}
		if len(e.Prerequisites) == 0 {
			queue = append(queue, e.Domain)
		}
	}
	if len(queue) == 0 {
		errs = append(errs, "no root domains found (at least one domain must have no prerequisites)")
	}
	visited := 0
	for len(queue) > 0 {
		d := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range adj[d] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}
	if visited < len(entries) {
		var cycle []string
		for _, e := range entries {
			if inDegree[e.Domain] > 0 {
				cycle = append(cycle, e.Domain)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving domains: %s", strings.Join(cycle, ", ")))
	}

	if len(errs) > 0 {
		return apperr.Invalid("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
