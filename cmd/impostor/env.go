package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/elimpostor/elimpostor/cmd/impostor/shared"
	"github.com/elimpostor/elimpostor/internal/appconfig"
	"github.com/elimpostor/elimpostor/internal/storage"
)

// env wires the pieces every command needs: configuration, logger, and
// the bounded persistence store.
type env struct {
	config  appconfig.Config
	logger  *log.Logger
	kv      storage.Store
	cleanup func()
}

func newEnv(g *Globals) (*env, error) {
	config, err := appconfig.Load(g.ConfigFile)
	if err != nil {
		return nil, err
	}
	logger := shared.SetupLogger(config.LogLevel, g.Debug)

	var backend storage.Store
	cleanup := func() {}
	switch config.Storage.Backend {
	case appconfig.BackendMemory:
		backend = storage.NewMemory()
	case appconfig.BackendFile:
		backend, err = storage.NewFile(config.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("open file storage: %w", err)
		}
	case appconfig.BackendSQLite:
		db, err := storage.OpenSQLite(config.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite storage: %w", err)
		}
		backend = db
		cleanup = func() {
			if err := db.Close(); err != nil {
				logger.Warn("closing sqlite storage failed", "error", err)
			}
		}
	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.Storage.Backend)
	}

	return &env{
		config:  config,
		logger:  logger,
		kv:      storage.NewBounded(backend, logger),
		cleanup: cleanup,
	}, nil
}
