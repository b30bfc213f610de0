package jobs

import (
	"context"
	"log/slog"
	"time"

	"launchdash/internal/dataset"
	"launchdash/internal/metrics"
)

// LoadFunc builds a fresh table from the configured source.
type LoadFunc func(ctx context.Context) (*dataset.Table, error)

// Reloader periodically rebuilds the dataset and publishes it to a holder.
type Reloader struct {
	holder   *dataset.Holder
	load     LoadFunc
	interval time.Duration
}

// NewReloader creates a new periodic reloader.
func NewReloader(holder *dataset.Holder, load LoadFunc, interval time.Duration) *Reloader {
	return &Reloader{
		holder:   holder,
		load:     load,
		interval: interval,
	}
}

// Start runs the reload loop until ctx is cancelled.
func (r *Reloader) Start(ctx context.Context) {
	slog.Info("dataset reloader started", "interval", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("dataset reloader stopped")
			return
		case <-ticker.C:
			reload(ctx, r.holder, r.load)
		}
	}
}

// reload builds a new table and swaps it in. On failure the current table
// stays in service.
func reload(ctx context.Context, holder *dataset.Holder, load LoadFunc) bool {
	table, err := load(ctx)
	if err != nil {
		metrics.RecordReload(metrics.ReloadFailed)
		slog.Error("dataset reload failed, keeping previous dataset", "error", err)
		return false
	}
	metrics.RecordReload(metrics.ReloadSucceeded)
	holder.Replace(table)
	return true
}
