package web

import (
	"net/http"
	"strings"

	"github.com/vbonduro/taptime/internal/domain"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	results, err := s.service.Search(query)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if results == nil {
		results = []domain.SearchResult{}
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleAutocomplete(w http.ResponseWriter, r *http.Request) {
	suggestion, _ := s.service.Autocomplete(r.URL.Query().Get("prefix"))
	writeJSON(w, http.StatusOK, map[string]string{"suggestion": suggestion})
}
