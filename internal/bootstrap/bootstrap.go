package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"

	"styr/internal/basedirs"
	"styr/internal/config"
	"styr/internal/logging"
	"styr/internal/storage"
	"styr/internal/storage/migrate"
	"styr/internal/storage/records"
	"styr/internal/storage/sqlite"
)

const (
	databaseName   = "styr.db"
	recordFileName = "styr-config.json"
)

// OpenStore constructs the base directory store described by cfg.
// It resolves the data directory, prepares the configured backend and loads
// the persisted list. The caller owns the returned store and must Close it.
func OpenStore(ctx context.Context, cfg config.Config, logger logging.Logger) (*basedirs.Store, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	dataDir, err := storage.DataDir(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	backend, err := openBackend(ctx, cfg, dataDir)
	if err != nil {
		return nil, err
	}
	logger.Info("base directory storage ready", "backend", cfg.Storage.Backend, "dataDir", dataDir)

	opts := []basedirs.Option{basedirs.WithLogger(logger)}
	if cfg.Store.RequireAbsolute {
		opts = append(opts, basedirs.RequireAbsolute())
	}
	store, err := basedirs.Open(ctx, backend, opts...)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}
	return store, nil
}

func openBackend(ctx context.Context, cfg config.Config, dataDir string) (basedirs.Backend, error) {
	switch cfg.Storage.Backend {
	case config.BackendFile:
		return basedirs.NewFileBackend(filepath.Join(dataDir, recordFileName)), nil
	case config.BackendSQLite, "":
		db, err := sqlite.Open(filepath.Join(dataDir, databaseName))
		if err != nil {
			return nil, err
		}
		if err := migrate.Up(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return basedirs.NewSQLBackend(records.NewRepository(db), cfg.Storage.RecordName), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
