package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-version-gen/internal/config"
	"github.com/MKhiriev/go-version-gen/internal/handler"
	"github.com/MKhiriev/go-version-gen/internal/logger"
)

type server struct {
	httpServer *httpServer

	mu   sync.Mutex
	addr net.Addr

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(
		ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Serve(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
		return err
	}
	return nil
}

func (s *server) Serve(ctx context.Context) error {
	ln, err := s.httpServer.listen()
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.server.Addr, err)
	}

	s.mu.Lock()
	s.addr = ln.Addr()
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.serve(ln)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	s.Shutdown()
	err = <-errCh
	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// boundAddr returns the listener address once Serve has bound it.
func (s *server) boundAddr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}
