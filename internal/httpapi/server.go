// Package httpapi exposes the catalog service over a JSON HTTP surface.
//
// Routes live under /api. Domain errors map to status codes in one
// place (respond.go) so handlers stay thin: they decode, call the
// service, and hand the result off.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/hi-yolit/solutions-sub000/pkg/catalog"
)

// Server routes HTTP requests to the catalog service.
type Server struct {
	svc    *catalog.Service
	log    zerolog.Logger
	router *mux.Router
}

// NewServer builds a Server with all routes registered.
func NewServer(svc *catalog.Service, log zerolog.Logger) *Server {
	s := &Server{
		svc:    svc,
		log:    log,
		router: mux.NewRouter(),
	}
	s.routes()
	return s
}

// Router returns the configured handler, ready for http.Server.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(s.logRequests)

	api.HandleFunc("/resources", s.handleCreateResource).Methods(http.MethodPost)
	api.HandleFunc("/resources", s.handleListResources).Methods(http.MethodGet)
	api.HandleFunc("/resources/{id}", s.handleGetResource).Methods(http.MethodGet)
	api.HandleFunc("/resources/{id}", s.handleDeleteResource).Methods(http.MethodDelete)
	api.HandleFunc("/resources/{id}/contents", s.handleListTopLevel).Methods(http.MethodGet)

	api.HandleFunc("/contents", s.handleCreateContent).Methods(http.MethodPost)
	api.HandleFunc("/contents/{id}", s.handleGetContent).Methods(http.MethodGet)
	api.HandleFunc("/contents/{id}", s.handleUpdateContent).Methods(http.MethodPut)
	api.HandleFunc("/contents/{id}", s.handleDeleteSubtree).Methods(http.MethodDelete)
	api.HandleFunc("/contents/{id}/children", s.handleGetChildren).Methods(http.MethodGet)
	api.HandleFunc("/contents/{id}/breadcrumb", s.handleBreadcrumb).Methods(http.MethodGet)
	api.HandleFunc("/contents/{id}/next", s.handleNextContent).Methods(http.MethodGet)
	api.HandleFunc("/contents/{id}/previous", s.handlePreviousContent).Methods(http.MethodGet)
	api.HandleFunc("/contents/{id}/move", s.handleMoveContent).Methods(http.MethodPost)
	api.HandleFunc("/contents/{id}/questions", s.handleListQuestions).Methods(http.MethodGet)
	api.HandleFunc("/contents/{id}/questions/first", s.handleFirstQuestion).Methods(http.MethodGet)
	api.HandleFunc("/contents/{id}/questions/last", s.handleLastQuestion).Methods(http.MethodGet)

	api.HandleFunc("/questions", s.handleCreateQuestion).Methods(http.MethodPost)
	api.HandleFunc("/questions/{id}", s.handleGetQuestion).Methods(http.MethodGet)
	api.HandleFunc("/questions/{id}", s.handleDeleteQuestion).Methods(http.MethodDelete)
	api.HandleFunc("/questions/{id}/publish", s.handlePublishQuestion).Methods(http.MethodPost)
	api.HandleFunc("/questions/{id}/unpublish", s.handleUnpublishQuestion).Methods(http.MethodPost)
	api.HandleFunc("/questions/{id}/next", s.handleNextQuestion).Methods(http.MethodGet)
	api.HandleFunc("/questions/{id}/previous", s.handlePreviousQuestion).Methods(http.MethodGet)
}

// logRequests emits one structured line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
