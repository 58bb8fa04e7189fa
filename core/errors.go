package core

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidPattern is returned when a pattern argument is neither a
	// string nor a list of strings.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidLevel is returned when a level is neither a known name nor
	// a numeric rank. The offending configuration call still applies
	// everything else and leaves the level unchanged.
	ErrInvalidLevel = errors.New("invalid level")
)

// SinkWriteError reports a failure of one registered sink. It is returned
// to the caller of the log method that produced the line.
type SinkWriteError struct {
	Sink any
	Err  error
}

func (e *SinkWriteError) Error() string {
	return fmt.Sprintf("sink %T: %v", e.Sink, e.Err)
}

// Unwrap returns the underlying write error
func (e *SinkWriteError) Unwrap() error {
	return e.Err
}
