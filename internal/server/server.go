package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/slidesmith/slidesmith/internal/config"
	"github.com/slidesmith/slidesmith/internal/deck"
	"github.com/slidesmith/slidesmith/internal/mcpserver"
)

type Server struct {
	cfg    *config.Config
	deck   *deck.Service
	bridge *mcpserver.Bridge
	http   *http.Server
}

func New(cfg *config.Config, d *deck.Service, bridge *mcpserver.Bridge) *Server {
	s := &Server{cfg: cfg, deck: d, bridge: bridge}

	s.http = &http.Server{
		Addr:        fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:     s.setupRoutes(),
		ReadTimeout: 15 * time.Second,
		// No WriteTimeout: SSE connections stay open indefinitely.
		IdleTimeout: 120 * time.Second,
	}

	return s
}

func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.http.Addr).Msg("http server listening")
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("graceful shutdown initiated")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
