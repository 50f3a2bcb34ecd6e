// Package server exposes the Store over HTTP. It is a thin adapter: request
// parsing, response shaping, and status-code mapping only. All consistency
// rules live in the Store.
package server

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/classmap/pkg/types"
)

// Server wires the Store to an HTTP route table.
type Server struct {
	store      types.Store
	logger     *zap.Logger
	corsOrigin string
}

// New creates a Server over the given store. corsOrigin is the value for
// Access-Control-Allow-Origin; empty means "*".
func New(store types.Store, logger *zap.Logger, corsOrigin string) *Server {
	if corsOrigin == "" {
		corsOrigin = "*"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		store:      store,
		logger:     logger,
		corsOrigin: corsOrigin,
	}
}

// Handler builds the full route table wrapped in CORS and request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("GET /classes/{$}", s.handleListClasses)
	mux.HandleFunc("POST /classes/{$}", s.handleCreateClass)
	mux.HandleFunc("PATCH /classes/{id}", s.handleUpdateClass)
	mux.HandleFunc("DELETE /classes/{id}", s.handleDeleteClass)
	mux.HandleFunc("GET /classes/{id}/attributes", s.handleListAttributesByClass)
	mux.HandleFunc("GET /classes/{id}/data", s.handleListDataByClass)

	mux.HandleFunc("POST /attributes/{$}", s.handleCreateAttribute)
	mux.HandleFunc("PATCH /attributes/{id}", s.handleUpdateAttribute)
	mux.HandleFunc("DELETE /attributes/{id}", s.handleDeleteAttribute)
	mux.HandleFunc("GET /attributes/{id}/properties", s.handleListPropertiesByAttribute)

	mux.HandleFunc("POST /properties/{$}", s.handleCreateProperty)
	mux.HandleFunc("PATCH /properties/{id}", s.handleUpdateProperty)
	mux.HandleFunc("DELETE /properties/{id}", s.handleDeleteProperty)

	mux.HandleFunc("POST /data/{$}", s.handleCreateData)
	mux.HandleFunc("POST /data/batch", s.handleBatchCreateData)
	mux.HandleFunc("DELETE /data/batch", s.handleBatchDeleteData)
	mux.HandleFunc("PATCH /data/{id}", s.handleUpdateData)
	mux.HandleFunc("DELETE /data/{id}", s.handleDeleteData)

	mux.HandleFunc("GET /connections/{$}", s.handleListConnections)
	mux.HandleFunc("POST /connections/{$}", s.handleCreateConnection)
	mux.HandleFunc("DELETE /connections/{id}", s.handleDeleteConnection)

	return s.cors(s.logging(mux))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
