package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hi-yolit/solutions-sub000/pkg/types"
)

func (s *Server) handleCreateResource(w http.ResponseWriter, r *http.Request) {
	var resource types.Resource
	if err := json.NewDecoder(r.Body).Decode(&resource); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if _, err := s.svc.CreateResource(&resource); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, resource)
}

func (s *Server) handleListResources(w http.ResponseWriter, r *http.Request) {
	resources, err := s.svc.ListResources()
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resources)
}

func (s *Server) handleGetResource(w http.ResponseWriter, r *http.Request) {
	resource, err := s.svc.GetResource(mux.Vars(r)["id"])
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resource)
}

func (s *Server) handleDeleteResource(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteResource(mux.Vars(r)["id"]); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleListTopLevel(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.svc.ListTopLevel(mux.Vars(r)["id"])
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summaries)
}
