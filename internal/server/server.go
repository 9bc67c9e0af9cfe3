// Package server exposes the board services over HTTP. Routes are thin
// wrappers: decode, call the service, encode; the engine owns all semantics.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tuckertucker/taskboard/internal/app"
)

// Server is the TaskBoard REST server
type Server struct {
	addr string
	app  *app.App
	http *http.Server
}

// NewServer creates a server for the given application container
func NewServer(addr string, application *app.App) *Server {
	s := &Server{
		addr: addr,
		app:  application,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/boards", s.handleListBoards)
	mux.HandleFunc("POST /api/boards", s.handleCreateBoard)
	mux.HandleFunc("GET /api/boards/{boardID}", s.handleGetBoard)
	mux.HandleFunc("DELETE /api/boards/{boardID}", s.handleDeleteBoard)

	mux.HandleFunc("POST /api/boards/{boardID}/columns", s.handleAddColumn)
	mux.HandleFunc("PATCH /api/boards/{boardID}/columns/{columnID}", s.handleRenameColumn)
	mux.HandleFunc("DELETE /api/boards/{boardID}/columns/{columnID}", s.handleDeleteColumn)

	mux.HandleFunc("POST /api/boards/{boardID}/cards", s.handleCreateCard)
	mux.HandleFunc("GET /api/boards/{boardID}/cards/{cardID}", s.handleGetCard)
	mux.HandleFunc("PATCH /api/boards/{boardID}/cards/{cardID}", s.handleUpdateCard)
	mux.HandleFunc("DELETE /api/boards/{boardID}/cards/{cardID}", s.handleDeleteCard)
	mux.HandleFunc("POST /api/boards/{boardID}/cards/{cardID}/move", s.handleMoveCard)

	mux.HandleFunc("POST /api/boards/{boardID}/batch", s.handleBatch)

	mux.HandleFunc("GET /api/templates", s.handleListTemplates)

	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.withMiddleware(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the server's HTTP handler, for tests
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start runs the server until the context is cancelled, then shuts down
// gracefully
func (s *Server) Start(ctx context.Context) error {
	slog.Info("server starting", "addr", s.addr)

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("server context cancelled, shutting down")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

// withMiddleware wraps the mux with request logging and metrics
func (s *Server) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		duration := time.Since(start)
		route := r.Pattern
		if route == "" {
			route = r.URL.Path
		}

		httpRequestsTotal.WithLabelValues(r.Method, route, http.StatusText(rec.status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(duration.Seconds())

		slog.Debug("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", duration)
	})
}

// statusRecorder captures the response status for logging and metrics
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
