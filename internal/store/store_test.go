package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/focusloop/internal/apperr"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(DriverSQLite, fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open("oracle", "whatever"); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSkillSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.SkillRepo()
	ctx := context.Background()

	seen := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rec := SkillRecord{
		ID:          "sk-1",
		StudentID:   "stu-1",
		Domain:      "fractions",
		Category:    "procedural",
		DisplayName: "Fractions",
		Mastery:     20,
		DecayRate:   0.2,
		LastSeen:    seen,
		StyleCounts: map[string]int{"worked": 2},
	}
	if err := repo.SaveSkill(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Second save updates in place.
	rec.Mastery = 23
	rec.TotalAttempts = 1
	rec.CorrectAttempts = 1
	rec.TypicalAnswerStyle = "worked"
	if err := repo.SaveSkill(ctx, rec); err != nil {
		t.Fatalf("update: %v", err)
	}

	if err := repo.SaveSkill(ctx, SkillRecord{
		ID: "sk-2", StudentID: "stu-1", Domain: "decimals", DecayRate: 0.1, LastSeen: seen,
	}); err != nil {
		t.Fatalf("save second: %v", err)
	}

	skills, err := repo.LoadSkills(ctx, "stu-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(skills) != 2 {
		t.Fatalf("got %d skills, want 2", len(skills))
	}
	if skills[0].Domain != "decimals" || skills[1].Domain != "fractions" {
		t.Errorf("skills not ordered by domain: %q, %q", skills[0].Domain, skills[1].Domain)
	}
	got := skills[1]
	if got.Mastery != 23 || got.TotalAttempts != 1 || got.TypicalAnswerStyle != "worked" {
		t.Errorf("unexpected skill after update: %+v", got)
	}
	if got.StyleCounts["worked"] != 2 {
		t.Errorf("style counts = %v", got.StyleCounts)
	}
	if !got.LastSeen.Equal(seen) {
		t.Errorf("last seen = %v, want %v", got.LastSeen, seen)
	}

	other, err := repo.LoadSkills(ctx, "stu-2")
	if err != nil {
		t.Fatalf("load other: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected no skills for another student, got %d", len(other))
	}
}

func TestSessionSaveLoadAndOpen(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rec := SessionRecord{
		ID:        "fs-1",
		StudentID: "stu-1",
		Topic:     "fractions",
		Status:    "active",
		StartedAt: start,
		Document:  []byte(`{"id":"fs-1"}`),
	}
	if err := repo.SaveSession(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.SaveSession(ctx, SessionRecord{
		ID: "fs-2", StudentID: "stu-2", Topic: "decimals", Status: "planning", StartedAt: start,
		Document: []byte(`{}`),
	}); err != nil {
		t.Fatalf("save second: %v", err)
	}

	open, err := repo.OpenSessions(ctx)
	if err != nil {
		t.Fatalf("open sessions: %v", err)
	}
	if len(open) != 2 {
		t.Fatalf("open sessions = %d, want 2", len(open))
	}

	end := start.Add(20 * time.Minute)
	rec.Status = "completed"
	rec.EndedAt = &end
	rec.Document = []byte(`{"id":"fs-1","status":"completed"}`)
	if err := repo.SaveSession(ctx, rec); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.LoadSession(ctx, "fs-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Status != "completed" || got.EndedAt == nil || !got.EndedAt.Equal(end) {
		t.Errorf("unexpected session: %+v", got)
	}
	if string(got.Document) != `{"id":"fs-1","status":"completed"}` {
		t.Errorf("document = %s", got.Document)
	}

	open, err = repo.OpenSessions(ctx)
	if err != nil {
		t.Fatalf("open sessions: %v", err)
	}
	if len(open) != 1 || open[0].ID != "fs-2" {
		t.Errorf("open sessions after completion = %+v", open)
	}
}

func TestLoadSessionNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.SessionRepo().LoadSession(context.Background(), "missing")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestNotes(t *testing.T) {
	s := openTestStore(t)
	repo := s.NoteRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, kind := range []string{"misconception", "attention_anomaly", "confident_error"} {
		err := repo.AddNote(ctx, NoteRecord{
			ID:        fmt.Sprintf("n-%d", i),
			StudentID: "stu-1",
			SkillID:   "sk-1",
			Kind:      kind,
			Detail:    "detail",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("add note %d: %v", i, err)
		}
	}

	notes, err := repo.ListNotes(ctx, "stu-1", 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("got %d notes, want 2", len(notes))
	}
	if notes[0].Kind != "confident_error" {
		t.Errorf("newest note kind = %q, want confident_error", notes[0].Kind)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx, "stu-1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &PerformanceSnapshot{
			StudentID: "stu-1",
			Sequence:  int64(10 * (i + 1)),
			Data:      []byte(fmt.Sprintf(`{"current_streak":%d}`, i)),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	if err := repo.Save(ctx, &PerformanceSnapshot{StudentID: "stu-2", Sequence: 99, Data: []byte(`{}`)}); err != nil {
		t.Fatalf("save other: %v", err)
	}

	snap, err = repo.Latest(ctx, "stu-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil || snap.Sequence != 30 {
		t.Fatalf("latest = %+v, want sequence 30", snap)
	}
	if !strings.Contains(string(snap.Data), `"current_streak":2`) {
		t.Errorf("data = %s", snap.Data)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &PerformanceSnapshot{StudentID: "stu-1", Sequence: int64(i + 1), Data: []byte(`{}`)})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, "stu-1", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}
	count, err := s.Client().PerformanceSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Fewer than keep is a no-op.
	if err := repo.Prune(ctx, "stu-1", 10); err != nil {
		t.Fatalf("prune: %v", err)
	}
	snap, err := repo.Latest(ctx, "stu-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestGradeEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 4; i++ {
		seq, err := repo.AppendGrade(ctx, GradeEventData{
			StudentID:        "stu-1",
			SessionID:        "m-1",
			SkillID:          "sk-1",
			Correctness:      "correct",
			ReasoningQuality: 4,
			AnswerStyle:      "worked",
			ConfidenceLevel:  "medium",
			TimeSecs:         float64(10 + i),
			MasteryDelta:     3,
			NewMastery:       float64(3 * (i + 1)),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}
	// Interleave an event of another type to show the shared sequence.
	if err := repo.AppendSession(ctx, SessionEventData{SessionID: "m-1", StudentID: "stu-1", Kind: "mission", Action: "open"}); err != nil {
		t.Fatalf("append session: %v", err)
	}

	all, err := repo.GradesAfter(ctx, "stu-1", 0, 0)
	if err != nil {
		t.Fatalf("grades: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("got %d grades, want 4", len(all))
	}

	after, err := repo.GradesAfter(ctx, "stu-1", seqs[1], 0)
	if err != nil {
		t.Fatalf("grades after: %v", err)
	}
	if len(after) != 2 || after[0].Sequence != seqs[2] {
		t.Errorf("grades after %d = %+v", seqs[1], after)
	}
}

func TestGradeEventWithoutSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seq, err := repo.AppendGrade(ctx, GradeEventData{
		StudentID:        "stu-1",
		SkillID:          "sk-1",
		Correctness:      "incorrect",
		ReasoningQuality: 2,
		AnswerStyle:      "guess",
		ConfidenceLevel:  "low",
		MasteryDelta:     -2,
	})
	if err != nil {
		t.Fatalf("append without session: %v", err)
	}
	if seq == 0 {
		t.Fatal("sequence not assigned")
	}

	got, err := repo.GradesAfter(ctx, "stu-1", 0, 0)
	if err != nil {
		t.Fatalf("grades: %v", err)
	}
	if len(got) != 1 || got[0].SessionID != "" || got[0].MasteryDelta != -2 {
		t.Errorf("grades = %+v", got)
	}
}

func TestFirstSessionEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()
	opened := time.Date(2026, 5, 4, 8, 30, 0, 0, time.UTC)

	for _, data := range []SessionEventData{
		{SessionID: "m-1", StudentID: "stu-1", Kind: "mission", Action: "opened", SkillID: "sk-1", Difficulty: "easy", Detail: "quiz", Timestamp: opened},
		{SessionID: "m-1", StudentID: "stu-1", Kind: "mission", Action: "graded", SkillID: "sk-1"},
		{SessionID: "f-1", StudentID: "stu-1", Kind: "focus", Action: "started"},
	} {
		if err := repo.AppendSession(ctx, data); err != nil {
			t.Fatalf("append %s/%s: %v", data.SessionID, data.Action, err)
		}
	}

	got, err := repo.FirstSessionEvent(ctx, "m-1", "mission")
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if got.Action != "opened" || got.SkillID != "sk-1" || got.Difficulty != "easy" || got.Detail != "quiz" {
		t.Errorf("first event = %+v", got)
	}
	if !got.Timestamp.Equal(opened) {
		t.Errorf("timestamp = %v, want %v", got.Timestamp, opened)
	}

	if _, err := repo.FirstSessionEvent(ctx, "f-1", "mission"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("wrong kind err = %v", err)
	}
	if _, err := repo.FirstSessionEvent(ctx, "missing", "mission"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("missing err = %v", err)
	}
}

func TestLLMRequestEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"artifact", "evaluation", "artifact"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "anthropic", Model: "claude", Purpose: purpose, Success: true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMRequests(ctx, QueryOpts{Purpose: "artifact"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Sequence < events[1].Sequence {
		t.Error("expected newest first")
	}

	limited, err := repo.QueryLLMRequests(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(limited) != 1 || limited[0].Purpose != "artifact" {
		t.Errorf("limited = %+v", limited)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"skills", "focus_sessions", "notes", "performance_snapshots", "grade_events"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}
