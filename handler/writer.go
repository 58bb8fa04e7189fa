package handler

import (
	"sync"

	"go.uber.org/multierr"

	"github.com/philipp01105/taglog/core"
)

// Writer fans a line out to every registered sink in registration order.
// With no sink registered it writes to its fallback (stderr by default).
type Writer struct {
	mu       sync.RWMutex
	sinks    []Sink
	fallback Sink
	stats    *Stats
}

// NewWriter creates a fan-out writer. A nil fallback selects Stderr().
func NewWriter(fallback Sink, sinks ...Sink) *Writer {
	if fallback == nil {
		fallback = Stderr()
	}
	return &Writer{
		sinks:    append([]Sink(nil), sinks...),
		fallback: fallback,
		stats:    NewStats(),
	}
}

// Add registers a sink after the existing ones.
func (w *Writer) Add(s Sink) {
	if s == nil {
		return
	}
	w.mu.Lock()
	// copy on write so Write can iterate a snapshot without the lock
	next := make([]Sink, len(w.sinks), len(w.sinks)+1)
	copy(next, w.sinks)
	w.sinks = append(next, s)
	w.mu.Unlock()
}

// Remove unregisters the first occurrence of s. It reports whether the
// sink was registered.
func (w *Writer) Remove(s Sink) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, cur := range w.sinks {
		if cur == s {
			next := make([]Sink, 0, len(w.sinks)-1)
			next = append(next, w.sinks[:i]...)
			w.sinks = append(next, w.sinks[i+1:]...)
			return true
		}
	}
	return false
}

// Sinks returns the registered sinks in order
func (w *Writer) Sinks() []Sink {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]Sink(nil), w.sinks...)
}

// Write sends line to every sink. Every sink is attempted; failures are
// returned as *core.SinkWriteError values combined with multierr.
func (w *Writer) Write(level core.Level, line string) error {
	w.mu.RLock()
	sinks := w.sinks
	w.mu.RUnlock()

	if len(sinks) == 0 {
		return w.writeOne(w.fallback, level, line)
	}

	var errs error
	for _, s := range sinks {
		errs = multierr.Append(errs, w.writeOne(s, level, line))
	}
	return errs
}

func (w *Writer) writeOne(s Sink, level core.Level, line string) error {
	if err := Deliver(s, level, line); err != nil {
		w.stats.IncrementFailed(level)
		return err
	}
	w.stats.IncrementProcessed(level)
	return nil
}

// Deliver writes line to a single sink, preferring WriteLevel when the
// sink implements LevelSink. A failure is wrapped in *core.SinkWriteError.
func Deliver(s Sink, level core.Level, line string) error {
	var err error
	if ls, ok := s.(LevelSink); ok {
		err = ls.WriteLevel(level, line)
	} else {
		err = s.Write(line)
	}
	if err != nil {
		return &core.SinkWriteError{Sink: s, Err: err}
	}
	return nil
}

// Stats returns a snapshot of the write counters
func (w *Writer) Stats() Snapshot {
	return w.stats.GetSnapshot()
}
