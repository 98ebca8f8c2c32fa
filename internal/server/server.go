package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/checkoutewb/backend/internal/config"
	handlerhttp "github.com/checkoutewb/backend/internal/handler/http"
	"github.com/checkoutewb/backend/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer builds the HTTP server over the handler's route tree.
func NewServer(handlers *handlerhttp.Handler, cfg config.Server, log *logger.Logger) (Server, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoServerAddress
	}

	return &server{
		httpServer: newHTTPServer(handlers.InitRoutes(), cfg, log),
		logger:     log,
	}, nil
}

// RunServer blocks until a termination signal arrives, then drains
// in-flight requests before returning.
func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server shut down gracefully")
}

// Shutdown gracefully stops the HTTP server.
func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
