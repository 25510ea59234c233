package web

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

const maxMeetingNameLen = 200

type saveMeetingRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleListMeetings(w http.ResponseWriter, r *http.Request) {
	meetings, err := s.service.ListMeetings(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, meetings)
}

func (s *Server) handleSaveMeeting(w http.ResponseWriter, r *http.Request) {
	var req saveMeetingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		badRequest(w, "meeting name required")
		return
	}
	if len(name) > maxMeetingNameLen {
		badRequest(w, "meeting name too long")
		return
	}

	m, err := s.service.SaveMeeting(r.Context(), name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (s *Server) handleImportMeetings(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		badRequest(w, "failed to read request body")
		return
	}

	n, err := s.service.ImportMeetings(r.Context(), body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"imported": n})
}

func (s *Server) handleOpenMeeting(w http.ResponseWriter, r *http.Request) {
	if _, err := s.service.OpenMeeting(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.service.View())
}

func (s *Server) handleDeleteMeeting(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteMeeting(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
