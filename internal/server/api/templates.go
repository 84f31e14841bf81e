// Package api provides HTTP API handlers for managing sign templates.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/ayusman/spellsign/internal/detector"
	"github.com/ayusman/spellsign/internal/store"
)

// TemplateHandler handles HTTP requests for sign template resources.
// Templates are addressed by their letter.
type TemplateHandler struct {
	store *store.Store
}

// NewTemplateHandler creates a new TemplateHandler with the given store.
func NewTemplateHandler(s *store.Store) *TemplateHandler {
	return &TemplateHandler{store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests
// to the appropriate methods.
func (h *TemplateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/templates or /api/templates/{letter}
	path := strings.TrimPrefix(r.URL.Path, "/api/templates")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	letter := strings.ToUpper(path)
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, letter)
	case http.MethodDelete:
		h.delete(w, r, letter)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Request and response types

type createTemplateRequest struct {
	Letter    string    `json:"letter"`
	Tolerance float64   `json:"tolerance"`
	Features  []float64 `json:"features"`
}

type templateResponse struct {
	ID        string    `json:"id"`
	Letter    string    `json:"letter"`
	Tolerance float64   `json:"tolerance"`
	Samples   int       `json:"samples"`
	Features  []float64 `json:"features,omitempty"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

type listTemplatesResponse struct {
	Templates []templateResponse `json:"templates"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toResponse(t *store.SignTemplate) templateResponse {
	return templateResponse{
		ID:        t.ID,
		Letter:    t.Letter,
		Tolerance: t.Tolerance,
		Samples:   t.Samples,
		CreatedAt: t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: t.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func validLetter(s string) bool {
	if len(s) != 1 {
		return false
	}
	return unicode.IsLetter(rune(s[0]))
}

// list handles GET /api/templates and returns all sign templates.
func (h *TemplateHandler) list(w http.ResponseWriter, r *http.Request) {
	templates, err := h.store.Templates().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list templates")
		return
	}

	response := listTemplatesResponse{
		Templates: make([]templateResponse, 0, len(templates)),
	}
	for _, t := range templates {
		response.Templates = append(response.Templates, toResponse(t))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/templates/{letter} and returns the template with
// its feature vector.
func (h *TemplateHandler) get(w http.ResponseWriter, r *http.Request, letter string) {
	template, err := h.store.Templates().GetByLetter(letter)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Template not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get template")
		return
	}

	features, err := h.store.Templates().GetFeatures(template.ID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusInternalServerError, "Failed to get features")
		return
	}

	response := toResponse(template)
	response.Features = features
	writeJSON(w, http.StatusOK, response)
}

// create handles POST /api/templates and stores a trained template.
func (h *TemplateHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Letter = strings.ToUpper(req.Letter)
	if !validLetter(req.Letter) {
		writeError(w, http.StatusBadRequest, "Letter must be a single letter")
		return
	}
	if len(req.Features) != detector.FeatureSize {
		writeError(w, http.StatusBadRequest, "Wrong feature vector length")
		return
	}

	tolerance := req.Tolerance
	if tolerance == 0 {
		tolerance = store.DefaultTolerance
	}

	template := &store.SignTemplate{
		ID:        uuid.New().String(),
		Letter:    req.Letter,
		Tolerance: tolerance,
		Samples:   1,
	}

	if err := h.store.Templates().Create(template); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create template")
		return
	}
	if err := h.store.Templates().SetFeatures(template.ID, req.Features); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to store features")
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(template))
}

// delete handles DELETE /api/templates/{letter}.
func (h *TemplateHandler) delete(w http.ResponseWriter, r *http.Request, letter string) {
	template, err := h.store.Templates().GetByLetter(letter)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Template not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get template")
		return
	}

	if err := h.store.Templates().Delete(template.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete template")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
