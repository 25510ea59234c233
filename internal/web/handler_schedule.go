package web

import (
	"net/http"

	"github.com/vbonduro/taptime/internal/domain"
)

type pivotRequest struct {
	// Timestamp is seconds since the Unix epoch.
	Timestamp float64 `json:"timestamp"`
}

type anchorRequest struct {
	LocationID string `json:"locationId"`
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.View())
}

func (s *Server) handleSetPivot(w http.ResponseWriter, r *http.Request) {
	var req pivotRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	s.service.SetPivot(domain.FromEpoch(req.Timestamp))
	writeJSON(w, http.StatusOK, s.service.View())
}

func (s *Server) handleSetAnchor(w http.ResponseWriter, r *http.Request) {
	var req anchorRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	if err := s.service.SetAnchor(req.LocationID); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.service.View())
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(s.service.ShareText()))
}
