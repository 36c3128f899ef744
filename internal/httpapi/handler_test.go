package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/clock"
	"github.com/abhisek/focusloop/internal/contentgen"
	"github.com/abhisek/focusloop/internal/diagnosis"
	"github.com/abhisek/focusloop/internal/engine"
	"github.com/abhisek/focusloop/internal/mastery"
	"github.com/abhisek/focusloop/internal/session"
	"github.com/abhisek/focusloop/internal/spacedrep"
	"github.com/abhisek/focusloop/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	st, err := store.Open(store.DriverSQLite, fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	clk := clock.NewManual(time.Date(2026, 6, 2, 10, 0, 0, 0, time.UTC))
	orch := session.NewOrchestrator(session.Deps{
		Repo:      st.SessionRepo(),
		Generator: contentgen.NewTemplate(3),
		Planner:   spacedrep.NewPlanner(spacedrep.DefaultConfig()),
		Clock:     clk,
	}, session.DefaultConfig())
	eng := engine.New(engine.Deps{
		Ledger:       mastery.NewLedger(st.SkillRepo(), clk, nil),
		Evaluator:    diagnosis.NewHeuristic(),
		Orchestrator: orch,
		Events:       st.EventRepo(),
		Notes:        st.NoteRepo(),
		Snapshots:    st.SnapshotRepo(),
		Clock:        clk,
	}, engine.DefaultConfig())
	return NewRouter(NewHandler(eng, "test", nil), DefaultConfig())
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	h := newTestRouter(t)
	rec := do(t, h, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["version"])
}

func TestMissionAndGradeFlow(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/v1/students/stu/missions", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "no skills yet")

	rec = do(t, h, http.MethodPost, "/api/v1/students/stu/seed", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	seeded := decodeBody[struct {
		Skills []mastery.Skill `json:"skills"`
	}](t, rec)
	assert.Len(t, seeded.Skills, 10)

	rec = do(t, h, http.MethodPost, "/api/v1/students/stu/missions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	m := decodeBody[engine.Mission](t, rec)
	assert.Equal(t, "number-facts", m.TargetSkill.Domain)

	rec = do(t, h, http.MethodGet, "/api/v1/missions/"+m.SessionID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/grades", map[string]any{
		"session_id":     m.SessionID,
		"skill_id":       m.TargetSkill.ID,
		"question_text":  "3 + 4",
		"student_answer": "I counted up from 3 and got 7",
		"time_seconds":   25,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decodeBody[engine.GradeResult](t, rec)
	assert.Equal(t, mastery.Partial, res.Evaluation.Correctness)
	assert.Equal(t, 0, res.MasteryDelta)

	rec = do(t, h, http.MethodPost, "/api/v1/grades", map[string]any{
		"student_id": "stu", "skill_id": "nope", "question_text": "q",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/students/stu/skills", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, h, http.MethodGet, "/api/v1/students/stu/notes?limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, h, http.MethodGet, "/api/v1/students/stu/notes?limit=many", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFocusSessionFlow(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/v1/sessions", map[string]any{
		"student_id": "stu", "topic": "fractions", "target_duration_seconds": 900,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	s := decodeBody[session.Session](t, rec)

	rec = do(t, h, http.MethodPost, "/api/v1/sessions", map[string]any{"student_id": "stu", "topic": "decimals"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apperr.KindStateConflict, decodeBody[errorBody](t, rec).Kind)

	base := "/api/v1/sessions/" + s.ID
	for n := 1; n <= 3; n++ {
		loopPath := fmt.Sprintf("%s/loops/%d", base, n)
		rec = do(t, h, http.MethodPost, loopPath, nil)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		l := decodeBody[session.Loop](t, rec)

		results := make([]session.ItemResult, l.Artifact.ItemCount())
		for i := range results {
			results[i] = session.ItemResult{ItemIndex: i, Correct: true, TimeSecs: 12}
		}
		rec = do(t, h, http.MethodPost, loopPath+"/results", resultsRequest{Results: results})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		rec = do(t, h, http.MethodPost, loopPath+"/complete", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodPost, base+"/loops/3/complete", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodGet, base+"/budget", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decodeBody[session.LoopBudget](t, rec).LoopsRemaining)

	rec = do(t, h, http.MethodPost, base+"/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	sum := decodeBody[engine.SessionSummary](t, rec)
	assert.Equal(t, session.StatusCompleted, sum.Session.Status)
	require.NotNil(t, sum.ReviewPlan)

	rec = do(t, h, http.MethodPost, base+"/cancel", cancelRequest{Reason: "late"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/sessions/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelWithoutBody(t *testing.T) {
	h := newTestRouter(t)
	rec := do(t, h, http.MethodPost, "/api/v1/sessions", map[string]any{"student_id": "stu", "topic": "plants"})
	require.Equal(t, http.StatusCreated, rec.Code)
	s := decodeBody[session.Session](t, rec)

	rec = do(t, h, http.MethodPost, "/api/v1/sessions/"+s.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[session.Session](t, rec)
	assert.Equal(t, session.StatusCancelled, got.Status)
	assert.Equal(t, "cancelled by learner", got.CancelReason)
}

func TestMalformedBodies(t *testing.T) {
	h := newTestRouter(t)
	for name, body := range map[string]string{
		"empty":         "",
		"not json":      "{",
		"unknown field": `{"student_id":"stu","topic":"x","colour":"red"}`,
	} {
		rec := do(t, h, http.MethodPost, "/api/v1/sessions", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
	}
	rec := do(t, h, http.MethodPost, "/api/v1/sessions", map[string]any{"student_id": "stu", "topic": "x", "modality": "podcast"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	h := newTestRouter(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/grades", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestStatusFor(t *testing.T) {
	for kind, want := range map[apperr.Kind]int{
		apperr.KindValidation:    http.StatusBadRequest,
		apperr.KindNotFound:      http.StatusNotFound,
		apperr.KindStateConflict: http.StatusConflict,
		apperr.KindUnavailable:   http.StatusServiceUnavailable,
		apperr.KindInternal:      http.StatusInternalServerError,
	} {
		assert.Equal(t, want, statusFor(kind), kind)
	}
}
