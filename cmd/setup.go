package cmd

import (
	"context"
	"fmt"

	"template-verifier/core/config"
	"template-verifier/core/database"
	"template-verifier/core/history"
	"template-verifier/core/logger"
	"template-verifier/core/storage"
	"template-verifier/feature/compare"

	"go.uber.org/zap"
)

// loadEnvironment loads the configuration and builds the logger.
func loadEnvironment() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logg, nil
}

// openHistory connects to the history database when it is enabled.
// It returns a nil store and a no-op close func otherwise.
func openHistory(ctx context.Context, cfg database.Config) (*history.Store, func(), error) {
	if !cfg.Enabled {
		return nil, func() {}, nil
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	store := history.NewStore(db)
	if err := store.Migrate(ctx); err != nil {
		closeDB()
		return nil, nil, err
	}
	return store, closeDB, nil
}

// buildService wires the comparison service and its optional sinks.
func buildService(ctx context.Context, cfg *config.Config, logg *zap.Logger, opts ...compare.ServiceOption) (*compare.Service, func(), error) {
	tasks, err := compare.Plan(cfg.Compare)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid compare configuration: %w", err)
	}

	runner := compare.NewRunner(
		compare.DirOpener(cfg.Compare.Extensions...),
		compare.Options{
			FailOnExtra:       cfg.Compare.FailOnExtra,
			AbortOnParseError: cfg.Compare.AbortOnParseError,
			Parallel:          cfg.Compare.Parallel,
		},
		logg,
	)

	store, closeHistory, err := openHistory(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open run history: %w", err)
	}
	if store != nil {
		opts = append(opts, compare.WithHistory(store))
		logg.Info("Run history enabled", zap.String("driver", cfg.Database.Driver))
	}

	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			closeHistory()
			return nil, nil, err
		}
		opts = append(opts, compare.WithArchive(compare.NewArchive(client, cfg.Storage)))
		logg.Info("Report archive enabled", zap.String("bucket", cfg.Storage.Bucket))
	}

	return compare.NewService(runner, tasks, logg, opts...), closeHistory, nil
}
