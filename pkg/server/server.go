// Package server exposes maze generation over HTTP.
//
// # Routes
//
//	GET    /healthz                          liveness and build info
//	GET    /v1/algorithms                    generator names
//	GET    /v1/tiles                         the 16 wall-code tiles
//	POST   /v1/mazes                         generate, analyze and archive a maze
//	GET    /v1/mazes                         recent archived mazes
//	GET    /v1/mazes/{id}                    one archived maze
//	GET    /v1/mazes/{id}/render/{format}    render an archived maze
//	DELETE /v1/mazes/{id}                    remove an archived maze
//
// Errors are JSON objects {"code": ..., "message": ...} with the status from
// [errors.HTTPStatus].
//
// [errors.HTTPStatus]: github.com/matzehuels/mazegen/pkg/errors.HTTPStatus
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/mazegen/pkg/pipeline"
	"github.com/matzehuels/mazegen/pkg/store"
)

// DefaultRequestTimeout bounds a single request.
const DefaultRequestTimeout = 30 * time.Second

// Options configures a [Server].
type Options struct {
	Runner         *pipeline.Runner
	Store          store.Store
	Logger         *log.Logger
	RequestTimeout time.Duration
	// Defaults seeds every POST /v1/mazes request body.
	Defaults pipeline.Options
}

// Server is the HTTP API. Create it with [New].
type Server struct {
	runner   *pipeline.Runner
	store    store.Store
	logger   *log.Logger
	timeout  time.Duration
	defaults pipeline.Options
	router   chi.Router
}

// New wires routes and middleware. Nil fields get a cache-less runner, an
// in-memory store and the default logger.
func New(opts Options) *Server {
	s := &Server{
		runner:   opts.Runner,
		store:    opts.Store,
		logger:   opts.Logger,
		timeout:  opts.RequestTimeout,
		defaults: opts.Defaults,
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.runner == nil {
		s.runner = pipeline.NewRunner(nil, nil, s.logger)
	}
	if s.store == nil {
		s.store = store.NewMemoryStore()
	}
	if s.timeout <= 0 {
		s.timeout = DefaultRequestTimeout
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/algorithms", s.handleAlgorithms)
		r.Get("/tiles", s.handleTiles)
		r.Route("/mazes", func(r chi.Router) {
			r.Post("/", s.handleCreate)
			r.Get("/", s.handleList)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGet)
				r.Delete("/", s.handleDelete)
				r.Get("/render/{format}", s.handleRender)
			})
		})
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errNotFound("no route for %s %s", r.Method, r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Code: "METHOD_NOT_ALLOWED", Message: "method not allowed"})
	})
	return r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
