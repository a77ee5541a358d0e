package ruleset

import "sync/atomic"

// Holder publishes the process-wide rule table. Classification calls read a
// consistent snapshot via Current; out-of-band refreshes build a new table
// and Swap it in. A batch run captures one snapshot for its whole duration.
type Holder struct {
	table atomic.Pointer[Table]
}

// NewHolder creates a holder seeded with the given table.
func NewHolder(t *Table) *Holder {
	h := &Holder{}
	h.table.Store(t)
	return h
}

// Current returns the table snapshot in effect right now.
func (h *Holder) Current() *Table {
	return h.table.Load()
}

// Swap atomically replaces the published table. The previous snapshot stays
// valid for callers already holding it.
func (h *Holder) Swap(t *Table) {
	h.table.Store(t)
}
