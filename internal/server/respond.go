// Response shaping and error classification for the HTTP adapter.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/classmap/pkg/types"
)

// errorResponse is the failure body shape: a message string under "detail".
type errorResponse struct {
	Detail string `json:"detail"`
}

// messageResponse is the confirmation body shape for delete and batch
// operations.
type messageResponse struct {
	Message string `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", zap.Error(err))
	}
}

// writeError maps a Store error to a status class: not-found and unresolved
// references to 404, input validation to 400, everything else to 500 as a
// storage failure carrying the cause message.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, types.ErrNotFound), errors.Is(err, types.ErrClassNotFound):
		status = http.StatusNotFound
	case errors.Is(err, types.ErrInvalidRelationship),
		errors.Is(err, types.ErrInvalidID),
		errors.Is(err, types.ErrInvalidName),
		errors.Is(err, types.ErrInvalidValue),
		errors.Is(err, types.ErrInvalidDataType),
		errors.Is(err, types.ErrInvalidContent):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("storage failure",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}

	s.writeJSON(w, status, errorResponse{Detail: err.Error()})
}

// decodeBody unmarshals a JSON request body into dst, rejecting unparseable
// input with a 400. Returns false if a response was already written.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body: " + err.Error()})
		return false
	}
	return true
}
