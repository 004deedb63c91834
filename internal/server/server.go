// Package server exposes certificate verification over HTTP. Anyone holding
// a certificate ID can confirm what was issued, without an account and
// without touching the learner's progress document.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"

	"github.com/techskyline/academy/internal/credential"
)

// Config holds server settings, loaded from the environment.
type Config struct {
	Addr            string        `env:"ACADEMY_HTTP_ADDR" envDefault:":8787"`
	ReadTimeout     time.Duration `env:"ACADEMY_HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"ACADEMY_HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"ACADEMY_HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// ConfigFromEnv loads server configuration from environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse server env: %w", err)
	}
	return cfg, nil
}

// Server serves the verification endpoints.
type Server struct {
	registry *credential.Registry
	log      *zap.Logger
	cfg      Config
}

// New creates a verification server.
func New(registry *credential.Registry, log *zap.Logger, cfg Config) *Server {
	return &Server{registry: registry, log: log, cfg: cfg}
}

// Handler returns the route table. Exposed separately so tests can drive
// it through httptest without binding a port.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /verify/{id}", s.handleVerify)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return s.logRequests(mux)
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("verification server listening", zap.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("verification server stopped")
	return nil
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	cert, err := s.registry.Lookup(r.Context(), id)
	if err != nil {
		if errors.Is(err, credential.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{
				"status": "invalid",
				"error":  "certificate not found",
				"id":     id,
			})
			return
		}
		s.log.Error("certificate lookup failed", zap.String("id", id), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status": "error",
			"error":  "verification temporarily unavailable",
		})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Status      string                 `json:"status"`
		Certificate credential.Certificate `json:"certificate"`
	}{
		Status:      "valid",
		Certificate: cert,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
