package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/karthik2365/Travel-diaries/internal/domain"
)

// ErrorResponse is the JSON error envelope returned by every failing request.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondError maps a domain error onto the right status code and envelope.
// The notFoundMessage is supplied by the caller because the handler is the
// layer that knows what was being looked up (e.g. "trip not found").
func (s *Server) respondError(w http.ResponseWriter, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error: ErrorDetail{Code: "not_found", Message: notFoundMessage},
		})
	case errors.Is(err, domain.ErrValidation):
		s.writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error: ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)},
		})
	case errors.Is(err, domain.ErrLookupFailed):
		s.writeJSON(w, http.StatusBadGateway, ErrorResponse{
			Error: ErrorDetail{Code: "lookup_failed", Message: unwrapMessage(err)},
		})
	default:
		s.log.Error("internal error", "error", err)
		s.writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: ErrorDetail{Code: "internal_error", Message: "internal server error"},
		})
	}
}

// respondValidation returns a 422 for a request rejected before reaching the
// service layer (e.g. malformed body or ID).
func (s *Server) respondValidation(w http.ResponseWriter, message string) {
	s.writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error: ErrorDetail{Code: "validation_error", Message: message},
	})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel
// error, e.g. "service.TripService.Create: validation error: name is
// required" becomes "name is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, marker := range []string{
		domain.ErrValidation.Error() + ": ",
		domain.ErrLookupFailed.Error() + ": ",
	} {
		if i := strings.LastIndex(msg, marker); i >= 0 {
			return msg[i+len(marker):]
		}
	}
	return msg
}
