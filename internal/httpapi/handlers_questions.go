package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hi-yolit/solutions-sub000/pkg/types"
)

func (s *Server) handleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	var question types.Question
	if err := json.NewDecoder(r.Body).Decode(&question); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if _, err := s.svc.CreateQuestion(&question); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, question)
}

func (s *Server) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := s.svc.GetQuestion(mux.Vars(r)["id"])
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, question)
}

func (s *Server) handleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteQuestion(mux.Vars(r)["id"]); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handlePublishQuestion(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.svc.PublishQuestion(id); err != nil {
		respondDomainError(w, err)
		return
	}
	question, err := s.svc.GetQuestion(id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, question)
}

func (s *Server) handleUnpublishQuestion(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.svc.UnpublishQuestion(id); err != nil {
		respondDomainError(w, err)
		return
	}
	question, err := s.svc.GetQuestion(id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, question)
}

func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := s.svc.ListQuestions(mux.Vars(r)["id"])
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, questions)
}

func (s *Server) handleFirstQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := s.svc.FirstQuestion(mux.Vars(r)["id"])
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if question == nil {
		respondJSON(w, http.StatusNoContent, nil)
		return
	}
	respondJSON(w, http.StatusOK, question)
}

func (s *Server) handleLastQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := s.svc.LastQuestion(mux.Vars(r)["id"])
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if question == nil {
		respondJSON(w, http.StatusNoContent, nil)
		return
	}
	respondJSON(w, http.StatusOK, question)
}

func (s *Server) handleNextQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := s.svc.NextQuestion(mux.Vars(r)["id"])
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if question == nil {
		respondJSON(w, http.StatusNoContent, nil)
		return
	}
	respondJSON(w, http.StatusOK, question)
}

func (s *Server) handlePreviousQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := s.svc.PreviousQuestion(mux.Vars(r)["id"])
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if question == nil {
		respondJSON(w, http.StatusNoContent, nil)
		return
	}
	respondJSON(w, http.StatusOK, question)
}
