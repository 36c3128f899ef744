package mastery

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/clock"
	"github.com/abhisek/focusloop/internal/keylock"
	"github.com/abhisek/focusloop/internal/logging"
	"github.com/abhisek/focusloop/internal/store"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Ledger owns every student's skills. It is the only writer of mastery and
// decay rate. Writes to one skill serialize on a per-skill lock; published
// *Skill values are never mutated, so readers only need the map lock.
type Ledger struct {
	repo  store.SkillRepo
	clock clock.Clock
	log   logrus.FieldLogger

	locks *keylock.Set
	loads singleflight.Group

	mu       sync.RWMutex
	students map[string]*studentSkills
}

type studentSkills struct {
	byID     map[string]*Skill
	byDomain map[string]string
}

// SkillSeed describes a curriculum entry.
type SkillSeed struct {
	Domain      string  `json:"domain"`
	Category    string  `json:"category"`
	DisplayName string  `json:"display_name"`
	DecayRate   float64 `json:"decay_rate,omitempty"` // zero uses the category seed
}

// Update is one graded attempt's effect on a skill.
//
// When Attempt is set it is mapped against the skill's current decay rate
// under the skill's lock, and MasteryDelta, DecayRate, Correct and an empty
// AnswerStyle are derived from it.
type Update struct {
	Attempt         *GradedAttempt
	MasteryDelta    float64
	DecayRate       float64 // new rate; zero keeps the current one
	Correct         bool
	AnswerStyle     AnswerStyle
	ResponseSeconds float64
}

// Transition is a skill before and after an update. Delta is set when the
// update carried an attempt.
type Transition struct {
	Before *Skill
	After  *Skill
	Delta  Delta
}

// NewLedger creates a Ledger. Skills are loaded lazily per student.
func NewLedger(repo store.SkillRepo, clk clock.Clock, log logrus.FieldLogger) *Ledger {
	if clk == nil {
		clk = clock.System{}
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Ledger{
		repo:     repo,
		clock:    clk,
		log:      log.WithField("component", "ledger"),
		locks:    keylock.New(),
		students: make(map[string]*studentSkills),
	}
}

// GetOrCreate returns the student's skill for domain, creating it with
// mastery 0 and the default decay rate on first encounter.
func (l *Ledger) GetOrCreate(ctx context.Context, studentID, domain string) (*Skill, error) {
	return l.getOrCreate(ctx, studentID, SkillSeed{Domain: domain})
}

// Seed creates the skills of a curriculum that the student does not have
// yet. Existing skills are left untouched. It returns all seeded domains'
// skills in input order.
func (l *Ledger) Seed(ctx context.Context, studentID string, seeds []SkillSeed) ([]*Skill, error) {
	if len(seeds) == 0 {
		return nil, apperr.Invalid("curriculum is empty")
	}
	out := make([]*Skill, 0, len(seeds))
	for _, seed := range seeds {
		s, err := l.getOrCreate(ctx, studentID, seed)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (l *Ledger) getOrCreate(ctx context.Context, studentID string, seed SkillSeed) (*Skill, error) {
	domain := strings.TrimSpace(seed.Domain)
	if studentID == "" {
		return nil, apperr.Invalid("student id is required")
	}
	if domain == "" {
		return nil, apperr.Invalid("domain is required")
	}

	st, err := l.load(ctx, studentID)
	if err != nil {
		return nil, err
	}

	unlock := l.locks.Lock("domain:" + studentID + "\x00" + domain)
	defer unlock()

	l.mu.RLock()
	if id, ok := st.byDomain[domain]; ok {
		s := st.byID[id]
		l.mu.RUnlock()
		return s.Clone(), nil
	}
	l.mu.RUnlock()

	decay := seed.DecayRate
	if decay == 0 {
		decay = SeedDecayRate(seed.Category)
	}
	display := seed.DisplayName
	if display == "" {
		display = domain
	}
	s := &Skill{
		ID:          uuid.NewString(),
		StudentID:   studentID,
		Domain:      domain,
		Category:    seed.Category,
		DisplayName: display,
		Mastery:     MinMastery,
		Confidence:  ConfidenceFor(MinMastery),
		LastSeen:    l.clock.Now(),
		DecayRate:   ClampDecayRate(decay),
	}

	l.mu.Lock()
	st.byID[s.ID] = s
	st.byDomain[domain] = s.ID
	l.mu.Unlock()

	l.persist(ctx, s)
	return s.Clone(), nil
}

// ApplyDelta applies an update to a skill and returns the new value.
func (l *Ledger) ApplyDelta(ctx context.Context, studentID, skillID string, u Update) (*Skill, error) {
	tr, err := l.Apply(ctx, studentID, skillID, u)
	if err != nil {
		return nil, err
	}
	return tr.After, nil
}

// Apply is ApplyDelta returning the skill before and after the update.
// The read-modify-write is atomic per skill. Mastery and decay rate are
// clamped; lastSeen, attempt counts and the answer style profile are
// updated.
func (l *Ledger) Apply(ctx context.Context, studentID, skillID string, u Update) (Transition, error) {
	if u.AnswerStyle != "" && !u.AnswerStyle.Valid() {
		return Transition{}, apperr.Invalid("unknown answer style %q", u.AnswerStyle)
	}
	if u.ResponseSeconds < 0 {
		return Transition{}, apperr.Invalid("negative response time")
	}
	if u.Attempt != nil {
		if err := u.Attempt.Validate(); err != nil {
			return Transition{}, err
		}
	}

	st, err := l.load(ctx, studentID)
	if err != nil {
		return Transition{}, err
	}

	unlock := l.locks.Lock("skill:" + skillID)
	defer unlock()

	l.mu.RLock()
	cur, ok := st.byID[skillID]
	l.mu.RUnlock()
	if !ok {
		return Transition{}, apperr.NotFound("skill %q for student %q", skillID, studentID)
	}

	var delta Delta
	if a := u.Attempt; a != nil {
		delta = MapToDelta(*a, cur.DecayRate)
		u.MasteryDelta = float64(delta.MasteryDelta)
		u.DecayRate = delta.NewDecayRate
		u.Correct = a.Correctness == Correct
		if u.AnswerStyle == "" {
			u.AnswerStyle = a.AnswerStyle
		}
	}

	next := cur.Clone()
	next.Mastery = ClampMastery(cur.Mastery + u.MasteryDelta)
	next.Confidence = ConfidenceFor(next.Mastery)
	if u.DecayRate > 0 {
		next.DecayRate = ClampDecayRate(u.DecayRate)
	}
	next.LastSeen = l.clock.Now()
	next.TotalAttempts++
	if u.Correct {
		next.CorrectAttempts++
	}
	if u.AnswerStyle != "" {
		if next.StyleCounts == nil {
			next.StyleCounts = make(map[AnswerStyle]int)
		}
		next.StyleCounts[u.AnswerStyle]++
		next.TypicalAnswerStyle = TypicalStyle(next.StyleCounts)
	}
	if u.ResponseSeconds > 0 {
		next.AvgResponseSecs += (u.ResponseSeconds - next.AvgResponseSecs) / float64(next.TotalAttempts)
	}

	l.mu.Lock()
	st.byID[skillID] = next
	l.mu.Unlock()

	l.persist(ctx, next)
	return Transition{Before: cur.Clone(), After: next.Clone(), Delta: delta}, nil
}

// Get returns one skill.
func (l *Ledger) Get(ctx context.Context, studentID, skillID string) (*Skill, error) {
	st, err := l.load(ctx, studentID)
	if err != nil {
		return nil, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ok := st.byID[skillID]
	if !ok {
		return nil, apperr.NotFound("skill %q for student %q", skillID, studentID)
	}
	return s.Clone(), nil
}

// Skills returns copies of all the student's skills ordered by domain.
func (l *Ledger) Skills(ctx context.Context, studentID string) ([]*Skill, error) {
	if studentID == "" {
		return nil, apperr.Invalid("student id is required")
	}
	st, err := l.load(ctx, studentID)
	if err != nil {
		return nil, err
	}
	l.mu.RLock()
	out := make([]*Skill, 0, len(st.byID))
	for _, s := range st.byID {
		out = append(out, s.Clone())
	}
	l.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Domain < out[j].Domain })
	return out, nil
}

// SubtopicMastery returns the mastery of each listed domain the student
// has a skill for. Unknown domains are omitted.
func (l *Ledger) SubtopicMastery(ctx context.Context, studentID string, domains []string) (map[string]float64, error) {
	st, err := l.load(ctx, studentID)
	if err != nil {
		return nil, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string]float64, len(domains))
	for _, d := range domains {
		if id, ok := st.byDomain[d]; ok {
			out[d] = st.byID[id].Mastery
		}
	}
	return out, nil
}

// TypicalAnswerStyle returns the student's dominant answer style for a
// domain, or "" when unknown.
func (l *Ledger) TypicalAnswerStyle(ctx context.Context, studentID, domain string) (AnswerStyle, error) {
	st, err := l.load(ctx, studentID)
	if err != nil {
		return "", err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	if id, ok := st.byDomain[domain]; ok {
		return st.byID[id].TypicalAnswerStyle, nil
	}
	return "", nil
}

// load returns the student's skills, reading them from the store once.
// Concurrent first loads for the same student share one store call.
func (l *Ledger) load(ctx context.Context, studentID string) (*studentSkills, error) {
	l.mu.RLock()
	st, ok := l.students[studentID]
	l.mu.RUnlock()
	if ok {
		return st, nil
	}

	v, err, _ := l.loads.Do(studentID, func() (any, error) {
		l.mu.RLock()
		st, ok := l.students[studentID]
		l.mu.RUnlock()
		if ok {
			return st, nil
		}

		recs, err := l.repo.LoadSkills(ctx, studentID)
		if err != nil {
			return nil, apperr.Unavailable("load skills", err)
		}
		st = &studentSkills{
			byID:     make(map[string]*Skill, len(recs)),
			byDomain: make(map[string]string, len(recs)),
		}
		for _, r := range recs {
			s := skillFromRecord(r)
			st.byID[s.ID] = s
			st.byDomain[s.Domain] = s.ID
		}

		l.mu.Lock()
		l.students[studentID] = st
		l.mu.Unlock()
		return st, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*studentSkills), nil
}

// persist writes a skill. Failures are logged; the in-memory value stays
// authoritative.
func (l *Ledger) persist(ctx context.Context, s *Skill) {
	if err := l.repo.SaveSkill(ctx, s.record()); err != nil {
		l.log.WithError(err).
			WithField("student_id", s.StudentID).
			WithField("skill_id", s.ID).
			Warn("save skill failed")
	}
}
