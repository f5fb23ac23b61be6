package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/seantiz/roster/internal/engine"
	"github.com/seantiz/roster/internal/model"
	"github.com/seantiz/roster/internal/store"
)

// enrollmentResponse is the JSON body for a successful signup or removal.
type enrollmentResponse struct {
	Message      string             `json:"message"`
	Confirmation model.Confirmation `json:"confirmation"`
}

// errorResponse is the JSON body for every failed request.
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (s *Server) handleListActivities(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.List())
}

func (s *Server) handleGetActivity(w http.ResponseWriter, r *http.Request) {
	a, err := s.engine.Get(pathParam(r, "name"))
	if err != nil {
		s.writeEnrollmentError(w, err)
		return
	}
	if a.Participants == nil {
		a.Participants = []string{}
	}
	s.writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("email") {
		s.writeError(w, http.StatusUnprocessableEntity, "missing_parameter", "email query parameter is required")
		return
	}

	c, err := s.engine.Signup(pathParam(r, "name"), query.Get("email"))
	if err != nil {
		s.writeEnrollmentError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, enrollmentResponse{Message: c.Message, Confirmation: c})
}

func (s *Server) handleRemoveParticipant(w http.ResponseWriter, r *http.Request) {
	email := pathParam(r, "email")
	if email == "" {
		s.writeError(w, http.StatusNotFound, engine.KindNotEnrolled, "Participant not found in this activity")
		return
	}

	c, err := s.engine.Remove(pathParam(r, "name"), email)
	if err != nil {
		s.writeEnrollmentError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, enrollmentResponse{Message: c.Message, Confirmation: c})
}

// writeEnrollmentError maps an engine failure to a status code and message.
func (s *Server) writeEnrollmentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrInvalidEmail):
		s.writeError(w, http.StatusBadRequest, engine.KindInvalidEmail, "Invalid email address")
	case errors.Is(err, store.ErrActivityNotFound):
		s.writeError(w, http.StatusNotFound, engine.KindActivityNotFound, "Activity not found")
	case errors.Is(err, store.ErrNotEnrolled):
		s.writeError(w, http.StatusNotFound, engine.KindNotEnrolled, "Participant not found in this activity")
	case errors.Is(err, store.ErrAlreadyEnrolled):
		s.writeError(w, http.StatusConflict, engine.KindAlreadyEnrolled, "Student already signed up for this activity")
	case errors.Is(err, store.ErrCapacityExceeded):
		s.writeError(w, http.StatusConflict, engine.KindCapacityExceeded, "Activity is full")
	default:
		s.logger.Error("enrollment", "error", err)
		s.writeError(w, http.StatusInternalServerError, engine.KindUnknown, "internal error")
	}
}

// writeJSON writes a JSON response with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

// writeError writes a JSON error response.
func (s *Server) writeError(w http.ResponseWriter, status int, kind, message string) {
	s.writeJSON(w, status, errorResponse{Error: message, Kind: kind})
}

// pathParam returns a decoded URL parameter. chi matches against the raw path
// when the request carries escapes such as %40, so the value may still be
// encoded.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}
