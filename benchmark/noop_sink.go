package benchmark

import (
	"github.com/philipp01105/taglog/core"
)

// noopSink discards lines after touching them so the render is not
// optimized away.
type noopSink struct{}

func newNoopSink() *noopSink {
	return &noopSink{}
}

func (s *noopSink) Write(line string) error {
	_ = len(line)
	return nil
}

func (s *noopSink) WriteLevel(_ core.Level, line string) error {
	return s.Write(line)
}
