// Data endpoints, including the batch insert and batch delete paths.
package server

import (
	"fmt"
	"net/http"

	"github.com/mesh-intelligence/classmap/pkg/types"
)

func (s *Server) handleListDataByClass(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.ListDataByClass(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleCreateData(w http.ResponseWriter, r *http.Request) {
	var req types.DataCreate
	if !s.decodeBody(w, r, &req) {
		return
	}

	entry, err := s.store.CreateData(req.ClassID, req.Content)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleBatchCreateData(w http.ResponseWriter, r *http.Request) {
	var items []types.DataCreate
	if !s.decodeBody(w, r, &items) {
		return
	}

	count, err := s.store.BatchCreateData(items)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("%d data entries created", count),
	})
}

func (s *Server) handleUpdateData(w http.ResponseWriter, r *http.Request) {
	var upd types.DataUpdate
	if !s.decodeBody(w, r, &upd) {
		return
	}

	entry, err := s.store.UpdateData(r.PathValue("id"), upd)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleDeleteData(w http.ResponseWriter, r *http.Request) {
	entry, err := s.store.DeleteData(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleBatchDeleteData(w http.ResponseWriter, r *http.Request) {
	var ids []string
	if !s.decodeBody(w, r, &ids) {
		return
	}

	count, err := s.store.BatchDeleteData(ids)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("%d data entries deleted", count),
	})
}
