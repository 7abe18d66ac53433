package handler

import (
	"net/http"

	"github.com/karthik2365/Travel-diaries/internal/service"
)

// Export handles GET /api/v1/export.
// Returns the flat one-row-per-place export of the whole collection.
func (s *Server) Export(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context())
	if err != nil {
		s.respondError(w, err, "")
		return
	}
	if rows == nil {
		rows = []service.ExportRow{}
	}
	s.writeJSON(w, http.StatusOK, rows)
}
