// Package httpapi exposes the engine over JSON HTTP.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// Config holds the HTTP server settings.
type Config struct {
	Addr           string        `mapstructure:"addr"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
}

// DefaultConfig returns the standard server settings.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		AllowedOrigins: []string{"*"},
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   60 * time.Second,
	}
}

// NewRouter builds the HTTP handler with every endpoint under /api/v1.
func NewRouter(h *Handler, cfg Config) http.Handler {
	r := mux.NewRouter()
	r.Use(h.logRequests)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	// Students
	api.HandleFunc("/students/{student}/seed", h.SeedCurriculum).Methods(http.MethodPost)
	api.HandleFunc("/students/{student}/skills", h.Skills).Methods(http.MethodGet)
	api.HandleFunc("/students/{student}/notes", h.Notes).Methods(http.MethodGet)
	api.HandleFunc("/students/{student}/missions", h.NextMission).Methods(http.MethodPost)

	// Missions and grading
	api.HandleFunc("/missions/{id}", h.Mission).Methods(http.MethodGet)
	api.HandleFunc("/grades", h.Grade).Methods(http.MethodPost)

	// Focus sessions
	api.HandleFunc("/sessions", h.StartSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", h.Session).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/budget", h.LoopBudget).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/complete", h.CompleteSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/cancel", h.CancelSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/loops/{n:[0-9]+}", h.StartLoop).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/loops/{n:[0-9]+}/results", h.RecordResults).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/loops/{n:[0-9]+}/complete", h.CompleteLoop).Methods(http.MethodPost)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = DefaultConfig().AllowedOrigins
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	return c.Handler(r)
}

// NewServer wraps the router in an http.Server.
func NewServer(h *Handler, cfg Config) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      NewRouter(h, cfg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Debug("request")
	})
}
