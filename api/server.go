package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"property-search/utils"
)

// Server is the REST adapter in front of the search controller and the
// session registry.
type Server struct {
	httpServer *http.Server
	logger     *utils.Logger
}

// NewRouter wires every route under /api/v1.
func NewRouter(h *Handler, logger *utils.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/properties", h.SearchProperties)
		r.Get("/properties/{id}", h.GetProperty)
		r.Get("/search", h.SearchKeyword)
		r.Get("/suggestions", h.Suggestions)
		r.Post("/inquiries", h.CreateInquiry)

		r.Group(func(r chi.Router) {
			r.Use(SessionMiddleware)

			r.Get("/selection", h.GetSelection)
			r.Post("/favorites/{id}", h.ToggleFavorite)
			r.Post("/comparison/{id}", h.ToggleComparison)
			r.Delete("/comparison", h.ClearComparison)
			r.Put("/view-mode", h.SetViewMode)
		})
	})

	return r
}

func NewServer(port string, h *Handler, logger *utils.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           NewRouter(h, logger),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Start blocks serving HTTP until Stop is called.
func (s *Server) Start() error {
	s.logger.Info("[http] Listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api: listen %s: %w", s.httpServer.Addr, err)
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("[http] Shutting down")
	return s.httpServer.Shutdown(ctx)
}
