// Property endpoints.
package server

import (
	"net/http"

	"github.com/mesh-intelligence/classmap/pkg/types"
)

type createPropertyRequest struct {
	AttributeID string `json:"attribute_id"`
	Name        string `json:"name"`
	Value       string `json:"value"`
}

func (s *Server) handleListPropertiesByAttribute(w http.ResponseWriter, r *http.Request) {
	props, err := s.store.ListPropertiesByAttribute(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, props)
}

func (s *Server) handleCreateProperty(w http.ResponseWriter, r *http.Request) {
	var req createPropertyRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	prop, err := s.store.CreateProperty(req.AttributeID, req.Name, req.Value)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, prop)
}

func (s *Server) handleUpdateProperty(w http.ResponseWriter, r *http.Request) {
	var upd types.PropertyUpdate
	if !s.decodeBody(w, r, &upd) {
		return
	}

	prop, err := s.store.UpdateProperty(r.PathValue("id"), upd)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, prop)
}

func (s *Server) handleDeleteProperty(w http.ResponseWriter, r *http.Request) {
	prop, err := s.store.DeleteProperty(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, prop)
}
