package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/graph"
	"github.com/goliatone/go-club-setup/internal/config"
	"github.com/goliatone/go-club-setup/internal/events"
	"github.com/goliatone/go-club-setup/internal/logging"
	"github.com/goliatone/go-club-setup/internal/server"
	"github.com/goliatone/go-club-setup/internal/service"
	"github.com/goliatone/go-club-setup/internal/setup"
	"github.com/goliatone/go-club-setup/internal/storage"
	"github.com/goliatone/go-club-setup/internal/store"
)

func main() {
	configDir := flag.String("config", ".", "directory holding an optional config.yaml")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configDir); err != nil {
		fmt.Fprintf(os.Stderr, "club-setup: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configDir string) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Server.Env, cfg.Server.LogLevel)
	if err != nil {
		return err
	}
	defer logging.Sync(logger)

	client, err := clubsetup.SetupDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	db := client.DB()
	defer db.Close()

	if err := clubsetup.MigrateSchema(ctx, db); err != nil {
		return err
	}

	bus := events.NewBus(events.WithLogger(logger))
	if cfg.Events.RedisURL != "" {
		redisClient, err := events.NewRedisClient(cfg.Events.RedisURL)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		bus.AddSink(events.NewRedisStreamPublisher(redisClient, cfg.Events.Stream, logger))
	}

	var uploader storage.Uploader = storage.Disabled{}
	if cfg.S3.Enabled() {
		s3Uploader, err := storage.NewS3Uploader(ctx, cfg.S3, logger)
		if err != nil {
			return err
		}
		uploader = s3Uploader
	} else {
		logger.Warn("AWS_BUCKET_NAME is not set, file uploads are disabled")
	}

	stores := service.NewStores(clubsetup.RegisterRepositories(db))
	tracker := setup.NewTracker(stores.Clubs, setup.WithLogger(logger))
	tracker.Subscribe(bus)

	services := service.New(
		stores,
		tracker,
		uploader,
		store.NewExtrasStats(db),
		service.WithEmitter(bus),
		service.WithLogger(logger),
	)

	schema, err := graph.NewSchema(services, graph.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("build schema: %w", err)
	}

	srv := server.New(schema,
		server.WithLogger(logger),
		server.WithDatabase(db),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(cfg.Server.Addr())
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
