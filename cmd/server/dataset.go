package main

import (
	"context"
	"fmt"

	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/db"
	"launchdash/internal/jobs"
)

// openDataset performs the initial load from the configured source. It
// returns the loader for later reloads and, for the Postgres source, the
// open database. On error nothing is left open.
func openDataset(ctx context.Context, cfg *config.Config) (*dataset.Table, jobs.LoadFunc, *db.DB, error) {
	if !cfg.UsesPostgres() {
		load := func(context.Context) (*dataset.Table, error) {
			return dataset.LoadFile(cfg.DatasetFile, dataset.Options{Sheet: cfg.DatasetSheet})
		}
		table, err := load(ctx)
		if err != nil {
			return nil, nil, nil, err
		}
		return table, load, nil, nil
	}

	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	table, err := database.LoadTable(ctx)
	if err != nil {
		database.Close()
		return nil, nil, nil, err
	}
	return table, database.LoadTable, database, nil
}
