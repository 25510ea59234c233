package web

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vbonduro/taptime/internal/domain"
)

type queryRequest struct {
	Query string `json:"query"`
}

func (s *Server) handleListLocations(w http.ResponseWriter, r *http.Request) {
	locs := s.service.Locations()
	if locs == nil {
		locs = []domain.SavedLocation{}
	}
	writeJSON(w, http.StatusOK, locs)
}

func (s *Server) handleAddAt(w http.ResponseWriter, r *http.Request) {
	var c domain.Coordinate
	if err := decodeJSON(w, r, &c); err != nil {
		badRequest(w, err.Error())
		return
	}

	loc, err := s.service.AddAt(r.Context(), c)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, loc)
}

func (s *Server) handleAddFromSearchResult(w http.ResponseWriter, r *http.Request) {
	var result domain.SearchResult
	if err := decodeJSON(w, r, &result); err != nil {
		badRequest(w, err.Error())
		return
	}
	if strings.TrimSpace(result.Name) == "" {
		badRequest(w, "search result name required")
		return
	}

	loc, err := s.service.AddFromSearchResult(r.Context(), result)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, loc)
}

func (s *Server) handleAddByQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		badRequest(w, "query required")
		return
	}

	loc, err := s.service.AddByQuery(r.Context(), req.Query)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, loc)
}

func (s *Server) handleClearUnlocked(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]int{"removed": s.service.ClearUnlocked()})
}

func (s *Server) handleRemoveLocation(w http.ResponseWriter, r *http.Request) {
	if err := s.service.RemoveLocation(chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleToggleLock(w http.ResponseWriter, r *http.Request) {
	locked, err := s.service.ToggleLock(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"isLocked": locked})
}

func (s *Server) handleMoveLocation(w http.ResponseWriter, r *http.Request) {
	var c domain.Coordinate
	if err := decodeJSON(w, r, &c); err != nil {
		badRequest(w, err.Error())
		return
	}

	loc, err := s.service.MoveLocation(r.Context(), chi.URLParam(r, "id"), c)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loc)
}
