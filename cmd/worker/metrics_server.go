package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	danglingRemovedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sweep_dangling_associations_removed_total",
			Help: "Dangling venue-review associations removed by the sweeper",
		},
		[]string{"kind"},
	)
	sweepErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sweep_errors_total",
			Help: "Sweep runs that failed, per venue kind",
		},
		[]string{"kind"},
	)
)

func recordDanglingRemoved(kind string, n int64) {
	danglingRemovedTotal.WithLabelValues(kind).Add(float64(n))
}

func recordSweepError(kind string) {
	sweepErrorsTotal.WithLabelValues(kind).Inc()
}

// runMetricsServer serves /metrics and a liveness probe until the context
// is cancelled, then shuts down gracefully.
func runMetricsServer(ctx context.Context, logger *slog.Logger, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("metrics server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown failed", slog.Any("error", err))
	}
	return <-errCh
}
