// Package fakeservice is an in-process implementation of the API that the probes check.
// It is used by the probe tests and by cmd/fakeservice for trying the runner locally.
// Options switch off individual behaviours so that each probe can be seen failing.
package fakeservice

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	uuid "github.com/nu7hatch/gouuid"
	"go.uber.org/zap"

	"github.com/statusprobe/backend-contract-tests/servicedef"
)

type Options struct {
	// Greeting replaces the root message when non-empty.
	Greeting string

	// StrictValidation rejects status payloads without client_name with HTTP 422.
	StrictValidation bool

	// DisableCORS serves responses without any CORS headers.
	DisableCORS bool

	// DropWrites answers status creation normally but never stores the record.
	DropWrites bool
}

type Server struct {
	opts   Options
	store  *Store
	logger *zap.Logger
	now    func() time.Time
}

func New(opts Options, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{opts: opts, store: NewStore(), logger: logger, now: time.Now}
}

func (s *Server) Store() *Store {
	return s.store
}

// Router serves the API under /api.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	if !s.opts.DisableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"*"},
		}))
	}
	r.NotFound(s.handleNotFound)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", s.handleRoot)
		r.Get("/status", s.handleListStatus)
		r.Post("/status", s.handleCreateStatus)
	})
	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	greeting := s.opts.Greeting
	if greeting == "" {
		greeting = servicedef.Greeting
	}
	writeJSON(w, http.StatusOK, servicedef.RootResponse{Message: greeting})
}

func (s *Server) handleListStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.List())
}

func (s *Server) handleCreateStatus(w http.ResponseWriter, r *http.Request) {
	var p servicedef.StatusCheckCreate
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, servicedef.ValidationError{Detail: "body is not a JSON object"})
		return
	}
	if p.ClientName == "" && s.opts.StrictValidation {
		writeJSON(w, http.StatusUnprocessableEntity, servicedef.ValidationError{Detail: "client_name is required"})
		return
	}

	id, err := uuid.NewV4()
	if err != nil {
		s.logger.Error("id_generation_failed", zap.Error(err))
		http.Error(w, "could not create status check", http.StatusInternalServerError)
		return
	}
	c := servicedef.StatusCheck{
		ID:         id.String(),
		ClientName: p.ClientName,
		Timestamp:  s.now().UTC().Format(servicedef.TimestampFormat),
	}
	if !s.opts.DropWrites {
		s.store.Add(c)
	}

	s.logger.Info("status_created",
		zap.String("id", c.ID),
		zap.String("client_name", c.ClientName),
		zap.Bool("stored", !s.opts.DropWrites),
	)
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, servicedef.ValidationError{Detail: "Not Found"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
