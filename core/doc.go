// Package core defines the shared types used across taglog.
//
// Level is the severity scale. Ranks follow the classic debug-module
// layout (verbose 0, debug 10, info 20, warn 30, error 40, fatal 90) so
// a numeric threshold such as 25 sits between info and warn. ParseLevel
// accepts names, one-letter aliases and numeric ranks and reports
// anything else as ErrInvalidLevel.
//
// Entry is the record handed from a Logger to the formatter: the tag,
// the severity, the palette color assigned to the tag, the delta since
// the previous emit of the same tag and the substituted message.
//
// The error kinds live here too so that every package can wrap them
// without an import cycle: ErrInvalidPattern and ErrInvalidLevel for
// configuration calls, SinkWriteError for a failing output sink.
package core
