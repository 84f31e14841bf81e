// Package server provides the HTTP preview and control surface for the
// Spellsign recognizer.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/spellsign/internal/capture"
	"github.com/ayusman/spellsign/internal/recognizer"
	"github.com/ayusman/spellsign/internal/server/api"
	"github.com/ayusman/spellsign/internal/store"
)

// RecognitionSource exposes the recognizer state the server publishes.
// The recognizer implements it.
type RecognitionSource interface {
	Snapshot() recognizer.Snapshot
	IsAvailable() bool
	ErrMessage() string
}

// Config holds the server configuration. Nil fields disable the routes
// that need them.
type Config struct {
	StaticDir  string
	Store      *store.Store
	Camera     capture.Camera
	Recognizer RecognitionSource
}

// Server is the HTTP server for the Spellsign application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.Store != nil {
		templateHandler := api.NewTemplateHandler(s.config.Store)
		s.mux.Handle("/api/templates", templateHandler)
		s.mux.Handle("/api/templates/", templateHandler)
	}

	if s.config.Camera != nil {
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.Camera))
	}

	if s.config.Recognizer != nil {
		s.mux.Handle("/api/recognition", NewRecognitionHandler(s.config.Recognizer))
	}

	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.start).String(),
	}
	if s.config.Recognizer != nil {
		response["recognizer"] = s.config.Recognizer.IsAvailable()
		if msg := s.config.Recognizer.ErrMessage(); msg != "" {
			response["recognizer_error"] = msg
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
