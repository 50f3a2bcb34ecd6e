// Class endpoints.
package server

import (
	"net/http"

	"github.com/mesh-intelligence/classmap/pkg/types"
)

type createClassRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleListClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := s.store.ListClasses()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, classes)
}

func (s *Server) handleCreateClass(w http.ResponseWriter, r *http.Request) {
	var req createClassRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	class, err := s.store.CreateClass(req.Name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, class)
}

func (s *Server) handleUpdateClass(w http.ResponseWriter, r *http.Request) {
	var upd types.ClassUpdate
	if !s.decodeBody(w, r, &upd) {
		return
	}

	class, err := s.store.UpdateClass(r.PathValue("id"), upd)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, class)
}

func (s *Server) handleDeleteClass(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteClass(r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, messageResponse{Message: "class deleted"})
}
