package dataset

import (
	"log/slog"
	"sync/atomic"
)

// Holder publishes the current table to request handlers. Tables are never
// mutated; a reload builds a new table and swaps it in whole.
type Holder struct {
	current atomic.Pointer[Table]
}

// NewHolder creates a holder serving t.
func NewHolder(t *Table) *Holder {
	h := &Holder{}
	h.current.Store(t)
	return h
}

// Current returns the table in service. Handlers should call it once per
// request and use the result throughout.
func (h *Holder) Current() *Table {
	return h.current.Load()
}

// Replace publishes t and returns the table it replaced. A nil t is ignored.
func (h *Holder) Replace(t *Table) *Table {
	if t == nil {
		return h.current.Load()
	}
	old := h.current.Swap(t)
	slog.Info("dataset replaced", "id", t.ID(), "source", t.Source(), "records", t.Len())
	return old
}
