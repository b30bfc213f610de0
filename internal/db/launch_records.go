package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"launchdash/internal/dataset"
	"launchdash/internal/models"
)

// ImportLaunchRecords replaces all stored launch records with records,
// keeping their order in the position column.
func (d *DB) ImportLaunchRecords(ctx context.Context, records []models.LaunchRecord) (int64, error) {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM launch_records`); err != nil {
		return 0, fmt.Errorf("failed to clear launch records: %w", err)
	}

	now := time.Now()
	n, err := tx.CopyFrom(ctx,
		pgx.Identifier{"launch_records"},
		[]string{"position", "launch_site", "payload_mass_kg", "outcome_class", "imported_at"},
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			r := records[i]
			return []any{i + 1, r.LaunchSite, r.PayloadMassKg, int16(r.OutcomeClass), now}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to copy launch records: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}
	return n, nil
}

// LoadLaunchRecords returns all stored launch records in import order.
func (d *DB) LoadLaunchRecords(ctx context.Context) ([]models.LaunchRecord, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT launch_site, payload_mass_kg, outcome_class
		FROM launch_records
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.LaunchRecord
	for rows.Next() {
		var r models.LaunchRecord
		var class int16
		if err := rows.Scan(&r.LaunchSite, &r.PayloadMassKg, &class); err != nil {
			return nil, err
		}
		r.OutcomeClass = int(class)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoLaunchRecords
	}
	return records, nil
}

// CountLaunchRecords returns the number of stored launch records.
func (d *DB) CountLaunchRecords(ctx context.Context) (int64, error) {
	var n int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM launch_records`).Scan(&n)
	return n, err
}

// LoadTable reads the stored launch records into a dataset table.
func (d *DB) LoadTable(ctx context.Context) (*dataset.Table, error) {
	records, err := d.LoadLaunchRecords(ctx)
	if err != nil {
		return nil, err
	}
	return dataset.New(records, "postgres")
}
