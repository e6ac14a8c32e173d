package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hi-yolit/solutions-sub000/pkg/types"
)

func (s *Server) handleCreateContent(w http.ResponseWriter, r *http.Request) {
	var content types.Content
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if _, err := s.svc.CreateContent(&content); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, content)
}

func (s *Server) handleGetContent(w http.ResponseWriter, r *http.Request) {
	node, err := s.svc.GetNode(mux.Vars(r)["id"])
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, node)
}

func (s *Server) handleUpdateContent(w http.ResponseWriter, r *http.Request) {
	var content types.Content
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	content.ContentID = mux.Vars(r)["id"]
	if err := s.svc.UpdateContent(&content); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, content)
}

func (s *Server) handleDeleteSubtree(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteSubtree(mux.Vars(r)["id"]); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleGetChildren(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.svc.GetChildren(mux.Vars(r)["id"])
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleBreadcrumb(w http.ResponseWriter, r *http.Request) {
	trail, err := s.svc.Breadcrumb(mux.Vars(r)["id"])
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, trail)
}

// Navigation endpoints return 204 when there is no adjacent node. That
// is the end of content, not an error.
func (s *Server) handleNextContent(w http.ResponseWriter, r *http.Request) {
	node, err := s.svc.NextContent(mux.Vars(r)["id"])
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if node == nil {
		respondJSON(w, http.StatusNoContent, nil)
		return
	}
	respondJSON(w, http.StatusOK, node)
}

func (s *Server) handlePreviousContent(w http.ResponseWriter, r *http.Request) {
	node, err := s.svc.PreviousContent(mux.Vars(r)["id"])
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if node == nil {
		respondJSON(w, http.StatusNoContent, nil)
		return
	}
	respondJSON(w, http.StatusOK, node)
}

// moveRequest carries the re-parenting target. An empty parent_id moves
// the node to the top level of its resource.
type moveRequest struct {
	ParentID string `json:"parent_id"`
}

func (s *Server) handleMoveContent(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	id := mux.Vars(r)["id"]
	if err := s.svc.MoveContent(id, req.ParentID); err != nil {
		respondDomainError(w, err)
		return
	}
	node, err := s.svc.GetNode(id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, node)
}
