package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // LLM events only
}

// SkillRecord is the persisted form of a student's skill.
type SkillRecord struct {
	ID                 string
	StudentID          string
	Domain             string
	Category           string
	DisplayName        string
	Mastery            float64
	DecayRate          float64
	LastSeen           time.Time
	TotalAttempts      int
	CorrectAttempts    int
	TypicalAnswerStyle string
	StyleCounts        map[string]int
	AvgResponseSecs    float64
}

// SkillRepo persists skills.
type SkillRepo interface {
	// LoadSkills returns every skill of a student, ordered by domain.
	LoadSkills(ctx context.Context, studentID string) ([]SkillRecord, error)

	// SaveSkill inserts or replaces a skill.
	SaveSkill(ctx context.Context, rec SkillRecord) error
}

// SessionRecord is the persisted form of a focus session. Document holds
// the full JSON encoded session.
type SessionRecord struct {
	ID        string
	StudentID string
	Topic     string
	Status    string
	StartedAt time.Time
	EndedAt   *time.Time
	Document  []byte
}

// SessionRepo persists focus sessions.
type SessionRepo interface {
	// LoadSession returns the session or an apperr.ErrNotFound error.
	LoadSession(ctx context.Context, id string) (*SessionRecord, error)

	// SaveSession inserts or replaces a session.
	SaveSession(ctx context.Context, rec SessionRecord) error

	// OpenSessions returns sessions in planning or active status.
	OpenSessions(ctx context.Context) ([]SessionRecord, error)
}

// NoteRecord is a behavioral note.
type NoteRecord struct {
	ID        string
	StudentID string
	SkillID   string
	SessionID string
	Kind      string
	Detail    string
	CreatedAt time.Time
}

// NoteRepo persists behavioral notes.
type NoteRepo interface {
	AddNote(ctx context.Context, rec NoteRecord) error

	// ListNotes returns the most recent notes first. limit <= 0 means all.
	ListNotes(ctx context.Context, studentID string, limit int) ([]NoteRecord, error)
}

// PerformanceSnapshot is a point-in-time capture of a student's rolling
// performance state. Data is the JSON encoded state.
type PerformanceSnapshot struct {
	ID        int
	StudentID string
	Sequence  int64
	Timestamp time.Time
	Data      []byte
}

// SnapshotRepo manages performance snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *PerformanceSnapshot) error

	// Latest returns the most recent snapshot for the student, or nil.
	Latest(ctx context.Context, studentID string) (*PerformanceSnapshot, error)

	// Prune deletes all but the N most recent snapshots of the student.
	Prune(ctx context.Context, studentID string, keep int) error
}

// GradeEventData captures one graded attempt.
type GradeEventData struct {
	Sequence              int64
	Timestamp             time.Time
	StudentID             string
	SessionID             string
	SkillID               string
	QuestionText          string
	StudentAnswer         string
	Correctness           string
	ReasoningQuality      int
	AnswerStyle           string
	ConfidenceLevel       string
	MisunderstandingLabel string
	TimeSecs              float64
	HintsUsed             int
	MasteryDelta          int
	NewMastery            float64
	Evaluator             string
}

// MasteryEventData captures a confidence band transition.
type MasteryEventData struct {
	StudentID string
	SkillID   string
	FromBand  string
	ToBand    string
	Mastery   float64
	DecayRate float64
	SessionID string
}

// SessionEventData captures a mission or focus session transition.
type SessionEventData struct {
	Sequence   int64
	Timestamp  time.Time
	SessionID  string
	StudentID  string
	Kind       string
	Action     string
	SkillID    string
	Difficulty string
	LoopNumber int
	Accuracy   float64
	Detail     string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendGrade records a graded attempt and returns its sequence number.
	AppendGrade(ctx context.Context, data GradeEventData) (int64, error)

	// GradesAfter returns the student's grade events with sequence > after,
	// oldest first. limit <= 0 means all.
	GradesAfter(ctx context.Context, studentID string, after int64, limit int) ([]GradeEventData, error)

	AppendMastery(ctx context.Context, data MasteryEventData) error
	AppendSession(ctx context.Context, data SessionEventData) error

	// FirstSessionEvent returns the earliest event of kind for the session,
	// or an apperr.ErrNotFound error.
	FirstSessionEvent(ctx context.Context, sessionID, kind string) (*SessionEventData, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMRequests returns LLM events, newest first.
	QueryLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEventData, error)
}
