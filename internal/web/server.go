// Package web provides the JSON HTTP API over the LightBnB store.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jeffoo713/lightBnB/internal/logging"
	"github.com/jeffoo713/lightBnB/internal/property"
	"github.com/jeffoo713/lightBnB/internal/reservation"
	"github.com/jeffoo713/lightBnB/internal/review"
	"github.com/jeffoo713/lightBnB/internal/user"
)

// Server is the API HTTP server.
type Server struct {
	users        *user.Repository
	accounts     *user.Service
	properties   *property.Repository
	reservations *reservation.Repository
	reviews      *review.Repository
	mux          *http.ServeMux
}

// NewServer creates an API server backed by d.
func NewServer(d *sqlx.DB) *Server {
	users := user.NewRepository(d)
	s := &Server{
		users:        users,
		accounts:     user.NewService(users),
		properties:   property.NewRepository(d),
		reservations: reservation.NewRepository(d),
		reviews:      review.NewRepository(d),
		mux:          http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /health", s.handleHealth)

	s.mux.HandleFunc("GET /api/properties", s.handleSearchProperties)
	s.mux.HandleFunc("POST /api/properties", s.handleAddProperty)
	s.mux.HandleFunc("GET /api/properties/{id}/reviews", s.handleListReviews)
	s.mux.HandleFunc("POST /api/properties/{id}/reviews", s.handleAddReview)

	s.mux.HandleFunc("GET /api/reservations", s.handleListReservations)
	s.mux.HandleFunc("POST /api/reservations", s.handleAddReservation)

	s.mux.HandleFunc("POST /users", s.handleRegister)
	s.mux.HandleFunc("POST /users/login", s.handleLogin)
	s.mux.HandleFunc("GET /users/{id}", s.handleGetUser)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe serves the API on port until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           logging.RequestLogger(s),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting api server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
