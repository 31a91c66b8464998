// Package server serves the prerendered landing page over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/vcrobe/nojs-landing/internal/site"
)

const shutdownTimeout = 5 * time.Second

// Server serves a site.Bundle and, optionally, the wasm client assets.
type Server struct {
	logger    *zap.Logger
	bundle    *site.Bundle
	assetsDir string
}

// New returns a server for bundle. An empty assetsDir disables /assets/.
func New(logger *zap.Logger, bundle *site.Bundle, assetsDir string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{logger: logger, bundle: bundle, assetsDir: assetsDir}
}

// Router returns an http.Handler with registered routes.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/index.md", s.getOnly(s.handleMarkdown))
	if s.assetsDir != "" {
		mux.HandleFunc("/assets/", s.getOnly(s.handleAsset))
	}
	mux.HandleFunc("/", s.handleIndex)
	return s.requestID(mux)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}

// ListenAndServe listens on addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}
