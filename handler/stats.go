package handler

import (
	"sync/atomic"

	"github.com/philipp01105/taglog/core"
)

// Stats tracks per-level write counters of a Writer. Lines at ranks
// between the named levels are counted under the nearest lower level.
type Stats struct {
	processed [core.NumLevels]atomic.Uint64
	failed    [core.NumLevels]atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

func slot(level core.Level) int {
	i := 0
	for j, l := range core.Levels {
		if level >= l {
			i = j
		}
	}
	return i
}

// IncrementProcessed counts one line delivered to one sink
func (s *Stats) IncrementProcessed(level core.Level) {
	s.processed[slot(level)].Add(1)
}

// IncrementFailed counts one sink failure
func (s *Stats) IncrementFailed(level core.Level) {
	s.failed[slot(level)].Add(1)
}

// GetProcessed returns the processed count for a level
func (s *Stats) GetProcessed(level core.Level) uint64 {
	return s.processed[slot(level)].Load()
}

// GetFailed returns the failure count for a level
func (s *Stats) GetFailed(level core.Level) uint64 {
	return s.failed[slot(level)].Load()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.processed {
		s.processed[i].Store(0)
		s.failed[i].Store(0)
	}
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Processed      map[core.Level]uint64
	Failed         map[core.Level]uint64
	ProcessedTotal uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Processed: make(map[core.Level]uint64, core.NumLevels),
		Failed:    make(map[core.Level]uint64, core.NumLevels),
	}
	for i, l := range core.Levels {
		p, f := s.processed[i].Load(), s.failed[i].Load()
		snap.Processed[l] = p
		snap.Failed[l] = f
		snap.ProcessedTotal += p
		snap.FailedTotal += f
	}
	return snap
}
