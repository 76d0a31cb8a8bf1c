package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"turismo-api/internal/config"
	pgRepo "turismo-api/internal/infra/adapter/persistence/postgres"
	"turismo-api/internal/infra/db"
	"turismo-api/internal/observability/logging"
	"turismo-api/internal/resilience/circuitbreaker"

	eventUC "turismo-api/internal/usecase/event"
	reviewUC "turismo-api/internal/usecase/review"
	venueUC "turismo-api/internal/usecase/venue"

	hhttp "turismo-api/internal/handler/http"
	hevent "turismo-api/internal/handler/http/event"
	"turismo-api/internal/handler/http/requestid"
	hreview "turismo-api/internal/handler/http/review"
	hvenue "turismo-api/internal/handler/http/venue"
)

func main() {
	logger := initLogger()

	cfg, err := config.Load("")
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler, breaker := setupServer(logger, cfg, database)
	runServer(logger, cfg, handler, breaker)
}

// initLogger initializes the process logger. LOG_FORMAT=text switches the
// JSON handler to a human-readable one for local runs.
func initLogger() *slog.Logger {
	var logger *slog.Logger
	if os.Getenv("LOG_FORMAT") == "text" {
		logger = logging.NewTextLogger()
	} else {
		logger = logging.NewLogger()
	}
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// setupServer wires repositories, use cases and handlers into the final
// HTTP handler. Store access goes through a circuit breaker so a dying
// database fails fast instead of piling up blocked requests.
func setupServer(logger *slog.Logger, cfg *config.AppConfig, database *sql.DB) (http.Handler, *circuitbreaker.DBCircuitBreaker) {
	breaker := circuitbreaker.NewDBCircuitBreaker(database)

	venueSvc := &venueUC.Service{
		Repo:  pgRepo.NewVenueRepo(breaker),
		Links: pgRepo.NewReviewLinkRepo(breaker),
	}
	reviewSvc := &reviewUC.Service{
		Repo:  pgRepo.NewReviewRepo(breaker),
		Links: pgRepo.NewReviewLinkRepo(breaker),
	}
	eventSvc := &eventUC.Service{Repo: pgRepo.NewEventRepo(breaker)}

	mux := http.NewServeMux()
	hvenue.Register(mux, venueSvc, reviewSvc, logger)
	hreview.Register(mux, reviewSvc, venueSvc, logger)
	hevent.Register(mux, eventSvc, logger)

	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Breaker: breaker, Version: cfg.Version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database, Breaker: breaker})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	return applyMiddleware(logger, cfg, mux), breaker
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): Request ID → Rate Limit → Recovery → Logging →
// Body Limit → Timeout → Metrics.
func applyMiddleware(logger *slog.Logger, cfg *config.AppConfig, handler http.Handler) http.Handler {
	rateLimiter := hhttp.NewRateLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window.Std())

	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Timeout(cfg.Server.RequestTimeout.Std())(chain)
	chain = hhttp.LimitRequestBody(cfg.Server.MaxBodyBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = rateLimiter.Limit(chain)
	chain = requestid.Middleware(chain)
	return chain
}

// runServer starts the HTTP server and blocks until shutdown completes.
func runServer(logger *slog.Logger, cfg *config.AppConfig, handler http.Handler, breaker *circuitbreaker.DBCircuitBreaker) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout.Std(),
		WriteTimeout:      cfg.Server.WriteTimeout.Std(),
		IdleTimeout:       cfg.Server.IdleTimeout.Std(),
		ReadHeaderTimeout: 10 * time.Second, // Slowloris protection
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", cfg.Version),
			slog.String("breaker", breaker.State().String()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Std())
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
