package stats

import (
	"pigeonhole/internal/model"
)

// Tally accumulates the outcome of an organize run. Organizing is
// single-threaded, so the counters need no synchronization.
type Tally struct {
	scanned     int
	moved       int
	overwrites  int
	bytesMoved  int64
	perCategory map[string]int
}

// NewTally returns an empty tally for the given number of scanned files.
func NewTally(scanned int) *Tally {
	return &Tally{
		scanned:     scanned,
		perCategory: make(map[string]int),
	}
}

// RecordMove counts one relocated (or planned) file.
func (t *Tally) RecordMove(m model.Move) {
	t.moved++
	t.bytesMoved += m.Size
	t.perCategory[m.Category]++
	if m.Overwrote {
		t.overwrites++
	}
}

// Snapshot freezes the tally into the report's stats form.
func (t *Tally) Snapshot() *model.Stats {
	per := make(map[string]int, len(t.perCategory))
	for category, count := range t.perCategory {
		per[category] = count
	}
	return &model.Stats{
		Scanned:     t.scanned,
		Moved:       t.moved,
		Overwrites:  t.overwrites,
		BytesMoved:  t.bytesMoved,
		PerCategory: per,
	}
}
