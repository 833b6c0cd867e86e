package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/prepwise/studyplan/internal/analytics"
	"github.com/prepwise/studyplan/internal/catalog"
	"github.com/prepwise/studyplan/internal/config"
	"github.com/prepwise/studyplan/internal/database"
	"github.com/prepwise/studyplan/internal/planner"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func openDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}
	return db, nil
}

func newService(cfg *config.Config, db *sqlx.DB) *planner.Service {
	return planner.NewService(
		catalog.NewDBProfileRepository(db),
		analytics.NewDBRepository(db),
		planner.NewDBPlanRepository(db, cfg.Planner.RetryAttempts),
	)
}
