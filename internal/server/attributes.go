// Attribute endpoints.
package server

import (
	"net/http"

	"github.com/mesh-intelligence/classmap/pkg/types"
)

type createAttributeRequest struct {
	ClassID  string `json:"class_id"`
	Name     string `json:"name"`
	DataType string `json:"data_type"`
}

func (s *Server) handleListAttributesByClass(w http.ResponseWriter, r *http.Request) {
	attrs, err := s.store.ListAttributesByClass(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, attrs)
}

func (s *Server) handleCreateAttribute(w http.ResponseWriter, r *http.Request) {
	var req createAttributeRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	attr, err := s.store.CreateAttribute(req.ClassID, req.Name, req.DataType)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, attr)
}

func (s *Server) handleUpdateAttribute(w http.ResponseWriter, r *http.Request) {
	var upd types.AttributeUpdate
	if !s.decodeBody(w, r, &upd) {
		return
	}

	attr, err := s.store.UpdateAttribute(r.PathValue("id"), upd)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, attr)
}

func (s *Server) handleDeleteAttribute(w http.ResponseWriter, r *http.Request) {
	attr, err := s.store.DeleteAttribute(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, attr)
}
