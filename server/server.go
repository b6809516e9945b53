// Package server exposes identifier generation over HTTP. It can be
// embedded in other binaries; cmd/idgen runs it for the serve subcommand.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/leapmux/idgen/idgen"
	"github.com/leapmux/idgen/internal/config"
	"github.com/leapmux/idgen/internal/logging"
	"github.com/leapmux/idgen/internal/metrics"
)

// Server is a reusable idgen HTTP server instance.
type Server struct {
	cfg    *config.Config
	client *idgen.Client
	server *http.Server
}

// NewServer wires the HTTP routes around a Client configured from cfg.
// Call Serve to start listening.
func NewServer(cfg *config.Config, opts ...idgen.Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	node, err := cfg.NodeID()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:    cfg,
		client: idgen.New(append([]idgen.Option{idgen.WithNode(node)}, opts...)...),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/short", s.handleShort)
	mux.HandleFunc("GET /v1/short16", s.handleShort16)
	mux.HandleFunc("GET /v1/uuid/{version}", s.handleUUID)
	mux.HandleFunc("GET /v1/nanoid", s.handleNanoID)
	mux.HandleFunc("GET /v1/inspect/{value}", s.handleInspect)
	mux.HandleFunc("GET /healthz", handleHealth)

	// Prometheus metrics endpoint.
	mux.Handle("GET /metrics", promhttp.Handler())

	h2cHandler := h2c.NewHandler(logging.HTTPMiddleware(metrics.HTTPMiddleware(mux)), &http2.Server{
		MaxConcurrentStreams: 1000,
	})

	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2cHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Client returns the identifier client behind the routes.
func (s *Server) Client() *idgen.Client {
	return s.client
}

// Serve listens on the configured address. It blocks until ctx is
// cancelled, then drains in-flight requests for up to the configured
// shutdown timeout.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen tcp: %w", err)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener is like Serve but accepts connections on ln.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		slog.Info("idgen shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			slog.Warn("shutdown incomplete", "error", err)
		}
	}()

	slog.Info("idgen listening", "addr", ln.Addr().String())
	if err := s.server.Serve(ln); err != http.ErrServerClosed {
		return fmt.Errorf("serve: %w", err)
	}

	<-shutdownDone
	return nil
}
