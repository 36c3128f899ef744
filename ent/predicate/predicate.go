// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// FocusSession is the predicate function for focussession builders.
type FocusSession func(*sql.Selector)

// GradeEvent is the predicate function for gradeevent builders.
type GradeEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// MasteryEvent is the predicate function for masteryevent builders.
type MasteryEvent func(*sql.Selector)

// Note is the predicate function for note builders.
type Note func(*sql.Selector)

// PerformanceSnapshot is the predicate function for performancesnapshot builders.
type PerformanceSnapshot func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// Skill is the predicate function for skill builders.
type Skill func(*sql.Selector)
