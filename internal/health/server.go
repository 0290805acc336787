package health

import (
	"context"
	"net/http"
	"time"
)

type Logger interface {
	Info(s string)
	Warn(s string)
	Error(s string)
}

type Server struct {
	address string
	logger  Logger
	server  *http.Server
}

func NewServer(address string, logger Logger) *Server {
	const readHeaderTimeout = time.Second
	return &Server{
		address: address,
		logger:  logger,
		server: &http.Server{
			Addr:              address,
			Handler:           newHandler(),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// Run serves the liveness endpoint until the context is done and
// only returns fatal listening errors; it is meant to run in its
// own goroutine alongside the batch.
func (s *Server) Run(ctx context.Context) {
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		const shutdownTimeout = time.Second
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), shutdownTimeout)
		defer cancel()
		err := s.server.Shutdown(shutdownCtx)
		if err != nil {
			s.logger.Warn("shutting down: " + err.Error())
		}
	}()

	s.logger.Info("listening on " + s.address)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		s.logger.Error(err.Error())
	}
	<-shutdownDone
}
