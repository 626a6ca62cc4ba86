package main

import (
	"fmt"

	"github.com/traitel/calmnight/internal/config"
	"github.com/traitel/calmnight/internal/database"
	"github.com/traitel/calmnight/internal/record"
	"github.com/traitel/calmnight/internal/statistics"
	"github.com/traitel/calmnight/internal/wellness"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openRepository opens the configured storage backend. The returned function releases it.
func openRepository(cfg *config.Config) (record.BatchRepository, func() error, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendMySQL:
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		return record.NewDBRepository(db), db.Close, nil
	default:
		return record.NewYAMLRepository(cfg.Storage.DataDirectory), func() error { return nil }, nil
	}
}

// newService loads the config and opens a wellness.Service on the configured storage.
func newService() (*config.Config, *wellness.Service, func() error, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	repo, closeRepo, err := openRepository(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, wellness.NewService(repo, statistics.NewOptions(cfg.Analytics)), closeRepo, nil
}
