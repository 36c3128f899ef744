package httpapi

import (
	"net/http"

	"github.com/abhisek/focusloop/internal/contentgen"
	"github.com/abhisek/focusloop/internal/engine"
	"github.com/abhisek/focusloop/internal/logging"
	"github.com/abhisek/focusloop/internal/mastery"
	"github.com/abhisek/focusloop/internal/session"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Handler serves the engine's operations.
type Handler struct {
	eng     *engine.Engine
	log     logrus.FieldLogger
	version string
}

// NewHandler creates a Handler.
func NewHandler(eng *engine.Engine, version string, log logrus.FieldLogger) *Handler {
	if log == nil {
		log = logging.Discard()
	}
	return &Handler{eng: eng, log: log.WithField("component", "http"), version: version}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, map[string]any{
		"status":         "ok",
		"version":        h.version,
		"pending_events": h.eng.Outbox().Len(),
	}, http.StatusOK)
}

// === Students ===

func (h *Handler) SeedCurriculum(w http.ResponseWriter, r *http.Request) {
	skills, err := h.eng.SeedCurriculum(r.Context(), mux.Vars(r)["student"])
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	jsonResponse(w, map[string]any{"skills": skills}, http.StatusOK)
}

func (h *Handler) Skills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.eng.Skills(r.Context(), mux.Vars(r)["student"])
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	jsonResponse(w, map[string]any{"skills": skills}, http.StatusOK)
}

func (h *Handler) Notes(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 50)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	notes, err := h.eng.Notes(r.Context(), mux.Vars(r)["student"], limit)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	jsonResponse(w, map[string]any{"notes": notes}, http.StatusOK)
}

// NextMission opens a mission on the student's most urgent skill.
func (h *Handler) NextMission(w http.ResponseWriter, r *http.Request) {
	m, err := h.eng.NextMission(r.Context(), mux.Vars(r)["student"])
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	jsonResponse(w, m, http.StatusCreated)
}

// === Missions and grading ===

func (h *Handler) Mission(w http.ResponseWriter, r *http.Request) {
	m, err := h.eng.Mission(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	jsonResponse(w, m, http.StatusOK)
}

func (h *Handler) Grade(w http.ResponseWriter, r *http.Request) {
	var req engine.GradeRequest
	if err := decode(r, &req); err != nil {
		h.errorResponse(w, r, err)
		return
	}
	res, err := h.eng.GradeAttempt(r.Context(), req)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	jsonResponse(w, res, http.StatusOK)
}

// === Focus sessions ===

type startSessionRequest struct {
	StudentID             string `json:"student_id"`
	Topic                 string `json:"topic"`
	TargetDurationSeconds int    `json:"target_duration_seconds"`
	InitialDifficulty     string `json:"initial_difficulty"`
	Modality              string `json:"modality"`
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

type resultsRequest struct {
	Results []session.ItemResult `json:"results"`
}

func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decode(r, &req); err != nil {
		h.errorResponse(w, r, err)
		return
	}
	s, err := h.eng.StartFocusSession(r.Context(), session.StartRequest{
		StudentID:             req.StudentID,
		Topic:                 req.Topic,
		TargetDurationSeconds: req.TargetDurationSeconds,
		InitialDifficulty:     mastery.Difficulty(req.InitialDifficulty),
		Modality:              contentgen.Modality(req.Modality),
	})
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	jsonResponse(w, s, http.StatusCreated)
}

func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	s, err := h.eng.FocusSession(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	jsonResponse(w, s, http.StatusOK)
}

func (h *Handler) LoopBudget(w http.ResponseWriter, r *http.Request) {
	b, err := h.eng.LoopBudget(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	jsonResponse(w, b, http.StatusOK)
}

func (h *Handler) StartLoop(w http.ResponseWriter, r *http.Request) {
	n, err := loopNumber(r)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	l, err := h.eng.StartLoop(r.Context(), mux.Vars(r)["id"], n)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	jsonResponse(w, l, http.StatusCreated)
}

func (h *Handler) RecordResults(w http.ResponseWriter, r *http.Request) {
	n, err := loopNumber(r)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	var req resultsRequest
	if err := decode(r, &req); err != nil {
		h.errorResponse(w, r, err)
		return
	}
	l, err := h.eng.RecordLoopResults(r.Context(), mux.Vars(r)["id"], n, req.Results)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	jsonResponse(w, l, http.StatusOK)
}

func (h *Handler) CompleteLoop(w http.ResponseWriter, r *http.Request) {
	n, err := loopNumber(r)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	perf, err := h.eng.CompleteLoop(r.Context(), mux.Vars(r)["id"], n)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	jsonResponse(w, perf, http.StatusOK)
}

func (h *Handler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	sum, err := h.eng.CompleteFocusSession(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	jsonResponse(w, sum, http.StatusOK)
}

// CancelSession accepts an optional body with a reason.
func (h *Handler) CancelSession(w http.ResponseWriter, r *http.Request) {
	var req cancelRequest
	if r.ContentLength != 0 {
		if err := decode(r, &req); err != nil {
			h.errorResponse(w, r, err)
			return
		}
	}
	if req.Reason == "" {
		req.Reason = "cancelled by learner"
	}
	s, err := h.eng.CancelFocusSession(r.Context(), mux.Vars(r)["id"], req.Reason)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	jsonResponse(w, s, http.StatusOK)
}
