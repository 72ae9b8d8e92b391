// Package server exposes the builder, generator and deployer over HTTP and
// pushes live previews of the selection over a websocket.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/trebuchet-org/mosaic/internal/app"
	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	maxBodyBytes    = 1 << 20
)

// Server serves the HTTP API and the preview websocket
type Server struct {
	app *app.App
	hub *Hub
	log *slog.Logger

	// mu serializes selection edits so concurrent requests never interleave
	// a load and a save
	mu sync.Mutex
	// deploying guards the wallet, one deployment runs at a time
	deploying sync.Mutex

	debounce time.Duration
}

// New creates a server around the application. The hub must be the
// progress sink the app was built with for deployment progress to reach
// preview clients.
func New(a *app.App, hub *Hub) *Server {
	return &Server{
		app:      a,
		hub:      hub,
		log:      a.Log.With("component", "server"),
		debounce: 100 * time.Millisecond,
	}
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return net.JoinHostPort(s.app.Config.Server.Host, strconv.Itoa(s.app.Config.Server.Port))
}

// Run listens on the configured address and serves until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
// The hub and the selection watcher run alongside the HTTP server and stop
// with it.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.hub.Run(ctx)
	})
	g.Go(func() error {
		return s.watchSelection(ctx)
	})
	g.Go(func() error {
		s.log.Info("listening", "addr", ln.Addr().String())
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	// Seed the preview so the first client sees the current selection
	s.refreshPreview(ctx)

	return g.Wait()
}

// Handler returns the HTTP handler with all routes and middleware
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/generate-contract", s.handleGenerate)

	mux.HandleFunc("GET /api/components", s.handleComponents)
	mux.HandleFunc("GET /api/selection", s.handleSelection)
	mux.HandleFunc("POST /api/selection/append", s.handleAppend)
	mux.HandleFunc("POST /api/selection/remove", s.handleRemove)
	mux.HandleFunc("POST /api/selection/move", s.handleMove)
	mux.HandleFunc("DELETE /api/selection", s.handleClear)
	mux.HandleFunc("GET /api/source", s.handleSource)

	mux.HandleFunc("POST /api/deploy", s.handleDeploy)
	mux.HandleFunc("GET /api/networks", s.handleNetworks)

	mux.HandleFunc("GET /ws/preview", s.handlePreviewSocket)

	return chain(mux,
		requestID,
		s.logRequests,
		cors(s.app.Config.Server.AllowedOrigins),
	)
}

// editSelection runs a selection operation under the edit lock and
// publishes the new preview when the selection changed
func (s *Server) editSelection(ctx context.Context, params usecase.ManageSelectionParams) (*usecase.SelectionResult, error) {
	s.mu.Lock()
	result, err := s.app.ManageSelection.Execute(ctx, params)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if result.Changed {
		s.publish(result)
	}
	return result, nil
}

// refreshPreview reloads the selection and publishes it
func (s *Server) refreshPreview(ctx context.Context) {
	result, err := s.editSelection(ctx, usecase.ManageSelectionParams{Operation: usecase.SelectionShow})
	if err != nil {
		s.log.Warn("failed to reload selection", "error", err)
		return
	}
	s.publish(result)
}

func (s *Server) publish(result *usecase.SelectionResult) {
	s.hub.PublishPreview(result.Source, componentIDs(result.Components))
}

func componentIDs(defs []*domain.ComponentDefinition) []string {
	return lo.Map(defs, func(d *domain.ComponentDefinition, _ int) string { return d.ID })
}
