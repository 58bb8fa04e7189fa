package formatter

import "time"

// Options controls how one line is rendered.
type Options struct {
	// UseColors wraps tag, level and delta in ANSI colors. Without colors
	// the line starts with a UTC timestamp instead.
	UseColors bool
	// Depth limits object inspection for %o (negative for unlimited)
	Depth int
	// Trace appends the call site as (file:line)
	Trace bool
	// TagWidth is the fixed tag column width, 0 disables it
	TagWidth int
	// LevelWidth is the fixed level column width, 0 disables it
	LevelWidth int
	// TimestampFormat is used when colors are off (default: RFC1123)
	TimestampFormat string
}

// DefaultOptions returns the process-wide defaults.
func DefaultOptions() Options {
	return Options{
		UseColors:       true,
		Depth:           2,
		TagWidth:        12,
		LevelWidth:      7,
		TimestampFormat: time.RFC1123,
	}
}

// Overrides is a partial Options; nil fields leave the base value alone.
type Overrides struct {
	UseColors       *bool
	Depth           *int
	Trace           *bool
	TagWidth        *int
	LevelWidth      *int
	TimestampFormat *string
}

// Merge applies layers over o in order, later layers winning. The usual
// chain is defaults, then logger overrides, then call overrides.
func (o Options) Merge(layers ...Overrides) Options {
	for _, l := range layers {
		if l.UseColors != nil {
			o.UseColors = *l.UseColors
		}
		if l.Depth != nil {
			o.Depth = *l.Depth
		}
		if l.Trace != nil {
			o.Trace = *l.Trace
		}
		if l.TagWidth != nil {
			o.TagWidth = *l.TagWidth
		}
		if l.LevelWidth != nil {
			o.LevelWidth = *l.LevelWidth
		}
		if l.TimestampFormat != nil {
			o.TimestampFormat = *l.TimestampFormat
		}
	}
	return o
}

// Merge combines two override sets, fields set in next winning.
func (o Overrides) Merge(next Overrides) Overrides {
	if next.UseColors != nil {
		o.UseColors = next.UseColors
	}
	if next.Depth != nil {
		o.Depth = next.Depth
	}
	if next.Trace != nil {
		o.Trace = next.Trace
	}
	if next.TagWidth != nil {
		o.TagWidth = next.TagWidth
	}
	if next.LevelWidth != nil {
		o.LevelWidth = next.LevelWidth
	}
	if next.TimestampFormat != nil {
		o.TimestampFormat = next.TimestampFormat
	}
	return o
}

// Bool returns a pointer to b, for building Overrides.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i, for building Overrides.
func Int(i int) *int { return &i }

// String returns a pointer to s, for building Overrides.
func String(s string) *string { return &s }
