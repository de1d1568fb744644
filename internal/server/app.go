// Package server wires the application together: configuration, database
// and migrations, the change fan-out engine over LISTEN/NOTIFY, the gRPC
// endpoint and the metrics endpoint, with coordinated graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/mbalakin/seizurelog/internal/logging"
	"github.com/mbalakin/seizurelog/internal/server/config"
	"github.com/mbalakin/seizurelog/internal/server/feed"
	gs "github.com/mbalakin/seizurelog/internal/server/grpc"
	"github.com/mbalakin/seizurelog/internal/server/models"
	"github.com/mbalakin/seizurelog/internal/server/repositories/repomanager"
	"github.com/mbalakin/seizurelog/internal/server/services"
)

// Notification channels the migration-installed triggers publish on.
const (
	profileChannel = "profile_changes"
	seizureChannel = "seizure_changes"
)

type App struct {
	config *config.Config
	logger logging.Logger
}

func NewApp(cfg *config.Config) *App {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	return &App{config: cfg, logger: logger}
}

// Run starts everything and blocks until a termination signal or the first
// fatal component error, then shuts the rest down.
func (app *App) Run(ctx context.Context) error {

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...")

	db, err := sql.Open("pgx", app.config.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migrations error: %w", err)
	}

	registry := prometheus.NewRegistry()
	feedMetrics := feed.NewMetrics(registry)

	// Each feed holds a dedicated LISTEN connection.
	profileSource, err := feed.OpenPGSource[models.Profile](ctx, app.config.DatabaseDSN, profileChannel)
	if err != nil {
		return err
	}
	defer profileSource.Close(context.Background())

	seizureSource, err := feed.OpenPGSource[models.Seizure](ctx, app.config.DatabaseDSN, seizureChannel)
	if err != nil {
		return err
	}
	defer seizureSource.Close(context.Background())

	profileHub := feed.NewHub[models.Profile](app.logger, profileSource, "profiles",
		feed.WithQueueDepth[models.Profile](app.config.SubscriberQueueDepth),
		feed.WithMetrics[models.Profile](feedMetrics),
	)
	seizureHub := feed.NewHub[models.Seizure](app.logger, seizureSource, "seizures",
		feed.WithQueueDepth[models.Seizure](app.config.SubscriberQueueDepth),
		feed.WithTombstoneRule[models.Seizure](models.Seizure.Tombstoned),
		feed.WithMetrics[models.Seizure](feedMetrics),
	)

	sessionService := services.NewSessionService(db, rm, app.config)
	userService := services.NewUserService(db, rm, sessionService)
	profileService := services.NewProfileService(db, rm)
	seizureService := services.NewSeizureService(db, rm)

	grpcServer := gs.NewGRPCServer(app.config, app.logger,
		userService, sessionService, profileService, seizureService,
		feed.NewManager[models.Profile](profileHub, nil),
		feed.NewManager[models.Seizure](seizureHub, models.Seizure.RangeValue),
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return ignoreCancel(profileHub.Run(ctx))
	})
	g.Go(func() error {
		return ignoreCancel(seizureHub.Run(ctx))
	})
	g.Go(func() error {
		return grpcServer.Run(ctx)
	})
	g.Go(func() error {
		return app.runMetricsServer(ctx, registry)
	})

	return g.Wait()
}

// ignoreCancel keeps an orderly shutdown from surfacing as a failure.
func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (app *App) runMetricsServer(ctx context.Context, registry *prometheus.Registry) error {

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	srv := &http.Server{Addr: app.config.EndpointAddrMetrics, Handler: mux}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping metrics server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	app.logger.Info(ctx, "Starting metrics server", "address", app.config.EndpointAddrMetrics)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
