// Package dataset loads launch records and exposes them as an immutable table.
package dataset

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"launchdash/internal/models"
)

// Table is an ordered, read-only set of launch records plus values derived
// once at construction. It is safe to share across goroutines.
type Table struct {
	id       uuid.UUID
	source   string
	loadedAt time.Time

	records    []models.LaunchRecord
	sites      []string
	siteIndex  map[string]struct{}
	minPayload float64
	maxPayload float64
}

// New validates records and builds a table. The slice is copied, so later
// changes by the caller are not observed.
func New(records []models.LaunchRecord, source string) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	t := &Table{
		id:        uuid.New(),
		source:    source,
		loadedAt:  time.Now(),
		records:   make([]models.LaunchRecord, len(records)),
		siteIndex: make(map[string]struct{}),
	}
	copy(t.records, records)

	for i, r := range t.records {
		if err := validateRecord(r); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		if _, seen := t.siteIndex[r.LaunchSite]; !seen {
			t.siteIndex[r.LaunchSite] = struct{}{}
			t.sites = append(t.sites, r.LaunchSite)
		}
		if i == 0 || r.PayloadMassKg < t.minPayload {
			t.minPayload = r.PayloadMassKg
		}
		if i == 0 || r.PayloadMassKg > t.maxPayload {
			t.maxPayload = r.PayloadMassKg
		}
	}

	return t, nil
}

func validateRecord(r models.LaunchRecord) error {
	if r.LaunchSite == "" {
		return fmt.Errorf("%w: empty launch site", ErrMalformedRow)
	}
	if r.LaunchSite == models.AllSites {
		return fmt.Errorf("%w: launch site %q is reserved", ErrMalformedRow, models.AllSites)
	}
	if r.PayloadMassKg < 0 {
		return fmt.Errorf("%w: negative payload mass %v", ErrMalformedRow, r.PayloadMassKg)
	}
	if r.OutcomeClass != models.OutcomeFailure && r.OutcomeClass != models.OutcomeSuccess {
		return fmt.Errorf("%w: class must be 0 or 1, got %d", ErrMalformedRow, r.OutcomeClass)
	}
	return nil
}

// ID identifies this particular load of the dataset.
func (t *Table) ID() uuid.UUID { return t.id }

// Source describes where the records came from (file path or "postgres").
func (t *Table) Source() string { return t.source }

// LoadedAt is when the table was built.
func (t *Table) LoadedAt() time.Time { return t.loadedAt }

// Len returns the number of records.
func (t *Table) Len() int { return len(t.records) }

// Records returns a copy of the records in source order.
func (t *Table) Records() []models.LaunchRecord {
	out := make([]models.LaunchRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Each calls fn for every record in source order without copying.
func (t *Table) Each(fn func(models.LaunchRecord)) {
	for _, r := range t.records {
		fn(r)
	}
}

// Sites returns the distinct launch sites in first-seen order.
func (t *Table) Sites() []string {
	out := make([]string, len(t.sites))
	copy(out, t.sites)
	return out
}

// HasSite reports whether site was observed in the table.
func (t *Table) HasSite(site string) bool {
	_, ok := t.siteIndex[site]
	return ok
}

// MinPayload returns the smallest payload mass in the table.
func (t *Table) MinPayload() float64 { return t.minPayload }

// MaxPayload returns the largest payload mass in the table.
func (t *Table) MaxPayload() float64 { return t.maxPayload }

// PayloadBounds returns [MinPayload, MaxPayload] as a range.
func (t *Table) PayloadBounds() models.PayloadRange {
	return models.PayloadRange{Low: t.minPayload, High: t.maxPayload}
}

// SiteOptions returns the dropdown options: ALL first, then each site.
// labels maps a site id to a display name; allLabel names the ALL entry.
func (t *Table) SiteOptions(allLabel string, labels map[string]string) []models.SiteOption {
	if allLabel == "" {
		allLabel = "All sites"
	}
	opts := make([]models.SiteOption, 0, len(t.sites)+1)
	opts = append(opts, models.SiteOption{Label: allLabel, Value: models.AllSites})
	for _, site := range t.sites {
		label := site
		if l, ok := labels[site]; ok && l != "" {
			label = l
		}
		opts = append(opts, models.SiteOption{Label: label, Value: site})
	}
	return opts
}
