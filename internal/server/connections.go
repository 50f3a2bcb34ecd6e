// Connection endpoints.
package server

import "net/http"

type createConnectionRequest struct {
	SourceClass      string `json:"source_class"`
	TargetClass      string `json:"target_class"`
	RelationshipType string `json:"relationship_type"`
}

func (s *Server) handleListConnections(w http.ResponseWriter, r *http.Request) {
	conns, err := s.store.ListConnections()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, conns)
}

func (s *Server) handleCreateConnection(w http.ResponseWriter, r *http.Request) {
	var req createConnectionRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	conn, err := s.store.CreateConnection(req.SourceClass, req.TargetClass, req.RelationshipType)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, conn)
}

func (s *Server) handleDeleteConnection(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteConnection(r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, messageResponse{Message: "connection deleted"})
}
