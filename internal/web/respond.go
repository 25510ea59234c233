package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/vbonduro/taptime/internal/domain"
)

// maxBodyBytes caps JSON request bodies; meeting imports are the largest.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error      string                `json:"error"`
	Country    string                `json:"country,omitempty"`
	Candidates []domain.SearchResult `json:"candidates,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// statusFor maps planner outcomes onto HTTP statuses.
func statusFor(err error) int {
	var ambiguous *domain.AmbiguousError
	switch {
	case errors.As(err, &ambiguous):
		return http.StatusMultipleChoices
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrLocked):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotRecognized), errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrLimitReached), errors.Is(err, domain.ErrFailed):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, status, errorResponse{Error: "internal error"})
		return
	}

	resp := errorResponse{Error: err.Error()}
	var ambiguous *domain.AmbiguousError
	if errors.As(err, &ambiguous) {
		resp.Country = ambiguous.Country
		resp.Candidates = ambiguous.Candidates
	}
	writeJSON(w, status, resp)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
