// Package handler delivers rendered lines to output sinks.
//
// A Sink has a single capability, Write(line) error. Writer fans each
// line out to every registered sink in registration order and falls back
// to standard error while nothing is registered. A failing sink does not
// stop the others: every failure is wrapped in a *core.SinkWriteError and
// the combined error is returned to the log call that produced the line.
//
// Sinks that care about severity can implement LevelSink; Writer detects
// it per call.
//
// Built-in sinks:
//
//   - ConsoleSink writes to any io.Writer; Stderr, Stdout and NewFD cover
//     the process descriptors.
//   - filehandler.FileSink appends to a file.
//   - zaphandler.Sink forwards lines into a *zap.Logger.
//
// Writer also keeps per-level processed and failed counters through
// Stats.
package handler
