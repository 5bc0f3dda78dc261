package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/pkostin/fieldsync/internal/config"
	"github.com/pkostin/fieldsync/internal/logger"
	"github.com/pkostin/fieldsync/internal/service"
)

var errNoServerAddress = errors.New("no diagnostics server address configured")

// shutdownTimeout bounds how long Shutdown waits for in-flight requests.
const shutdownTimeout = 5 * time.Second

type diagServer struct {
	server *http.Server
	logger *logger.Logger
}

// NewServer builds the diagnostics HTTP server. Returns errNoServerAddress
// when the address is empty, which the composition root treats as "endpoint
// disabled".
func NewServer(svc service.BatchService, cfg config.Server, log *logger.Logger) (Server, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoServerAddress
	}

	h := newHandler(svc, log)

	return &diagServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           h.routes(),
			ReadHeaderTimeout: cfg.RequestTimeout,
		},
		logger: log,
	}, nil
}

// RunServer implements Server. Blocks until the listener closes.
func (s *diagServer) RunServer() {
	s.logger.Info().
		Str("addr", s.server.Addr).
		Msg("diagnostics server listening")

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Err(err).Msg("diagnostics server ListenAndServe")
	}
}

// Shutdown implements Server.
func (s *diagServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Err(err).Msg("diagnostics server Shutdown")
	}
}
