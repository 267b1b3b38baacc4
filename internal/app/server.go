package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/specialistvlad/sysmlgraph/internal/modelgraph"
)

const shutdownTimeout = 5 * time.Second

// healthHandler answers liveness probes.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// reportHandler validates g on every request and writes the text report.
// The status is 422 when the model has validation errors.
func (a *App) reportHandler(g modelgraph.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := a.Check(r.Context(), g)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if report.Result.HasErrors() {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}
		WriteReport(w, g, report)
	}
}

// Handler serves /health and /report for g, plus /metrics when metrics are
// enabled.
func (a *App) Handler(g modelgraph.Reader) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", a.healthHandler)
	mux.HandleFunc("GET /report", a.reportHandler(g))
	if a.registry != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	}
	return mux
}

// Serve runs the HTTP server on addr until ctx is done, then shuts it down
// gracefully. ready, if non-nil, receives the bound address once the
// listener is open.
func (a *App) Serve(ctx context.Context, addr string, g modelgraph.Reader, ready chan<- net.Addr) error {
	a.logger.Debug("Configuring model server.")
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           a.Handler(g),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("🩺 Model server starting", "address", fmt.Sprintf("http://%s", ln.Addr()))
		// Serve returns http.ErrServerClosed on graceful shutdown.
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	if ready != nil {
		ready <- ln.Addr()
	}

	select {
	case err := <-errCh:
		if err != nil {
			a.logger.Error("Model server failed unexpectedly", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	a.logger.Info("🩺 Shutting down model server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Model server shutdown failed", "error", err)
		return err
	}
	a.logger.Debug("Model server shut down gracefully.")
	return nil
}
