// The worker runs the link-integrity sweeper: a scheduled job that removes
// junction rows whose review or venue no longer exists. Review removal
// unlinks best-effort before deleting the review row, so a crash between
// the two steps can leave a dangling association behind; the sweeper is
// what converges the tables back.
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"turismo-api/internal/config"
	"turismo-api/internal/domain/entity"
	pgRepo "turismo-api/internal/infra/adapter/persistence/postgres"
	"turismo-api/internal/infra/db"
	"turismo-api/internal/observability/logging"
	"turismo-api/internal/repository"
	"turismo-api/internal/resilience/circuitbreaker"
)

const sweepTimeout = 2 * time.Minute

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
	waitForMigrations(logger, database)

	breaker := circuitbreaker.NewDBCircuitBreaker(database)
	links := pgRepo.NewReviewLinkRepo(breaker)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweeper := &sweeper{Links: links, Logger: logger}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Sweep.Schedule, func() {
		sweepCtx, cancel := context.WithTimeout(ctx, sweepTimeout)
		defer cancel()
		sweeper.Run(sweepCtx)
	}); err != nil {
		logger.Error("invalid sweep schedule",
			slog.String("schedule", cfg.Sweep.Schedule),
			slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("worker starting",
		slog.String("schedule", cfg.Sweep.Schedule),
		slog.String("metrics_addr", cfg.Sweep.MetricsAddr))

	// One sweep right away so a freshly deployed worker converges the
	// tables without waiting for the first tick.
	func() {
		sweepCtx, cancel := context.WithTimeout(ctx, sweepTimeout)
		defer cancel()
		sweeper.Run(sweepCtx)
	}()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		scheduler.Start()
		<-gctx.Done()
		stopCtx := scheduler.Stop()
		<-stopCtx.Done() // wait for a running sweep to finish
		return nil
	})

	g.Go(func() error {
		return runMetricsServer(gctx, logger, cfg.Sweep.MetricsAddr)
	})

	if err := g.Wait(); err != nil {
		logger.Error("worker failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker stopped")
}

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

func initDatabase(logger *slog.Logger) *sql.DB {
	return db.Open()
}

// waitForMigrations blocks until the API's migrations have created the
// junction tables. The worker and API start concurrently in compose.
func waitForMigrations(logger *slog.Logger, database *sql.DB) {
	const probe = "SELECT 1 FROM place_reviews LIMIT 1"
	for i := 0; i < 10; i++ {
		if _, err := database.Exec(probe); err == nil {
			return
		}
		logger.Info("waiting for migrations, retrying in 3s", slog.Int("attempt", i+1))
		time.Sleep(3 * time.Second)
	}
	logger.Error("migrations did not complete in time")
	os.Exit(1)
}

// sweeper deletes dangling junction rows for every venue kind.
type sweeper struct {
	Links  repository.ReviewLinkRepository
	Logger *slog.Logger
}

func (s *sweeper) Run(ctx context.Context) {
	start := time.Now()
	var total int64
	for _, kind := range entity.Kinds() {
		removed, err := s.Links.DeleteDangling(ctx, kind)
		if err != nil {
			s.Logger.Error("sweep failed",
				slog.String("kind", string(kind)),
				slog.Any("error", err))
			recordSweepError(string(kind))
			continue
		}
		if removed > 0 {
			s.Logger.Info("removed dangling associations",
				slog.String("kind", string(kind)),
				slog.Int64("removed", removed))
		}
		recordDanglingRemoved(string(kind), removed)
		total += removed
	}
	s.Logger.Info("sweep completed",
		slog.Int64("total_removed", total),
		slog.Duration("elapsed", time.Since(start)))
}
