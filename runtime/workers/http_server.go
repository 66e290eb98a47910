package workers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// HTTPServerWorker serves the portal until the context is canceled, then
// lets in-flight requests finish within the shutdown timeout.
type HTTPServerWorker struct {
	log             *slog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

func NewHTTPServerWorker(log *slog.Logger, server *http.Server, shutdownTimeout time.Duration) *HTTPServerWorker {
	return &HTTPServerWorker{log: log, server: server, shutdownTimeout: shutdownTimeout}
}

func (w *HTTPServerWorker) Name() string {
	return "HTTPServer"
}

func (w *HTTPServerWorker) Run(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		w.log.Info("Starting HTTP server", "address", w.server.Addr, "at", time.Now().UTC())
		errChan <- w.server.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	w.log.Info("Shutting down HTTP server gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.shutdownTimeout)
	defer cancel()
	if err := w.server.Shutdown(shutdownCtx); err != nil {
		w.log.Error("HTTP server shutdown failed", "error", err)
		return nil
	}
	<-errChan
	return nil
}
