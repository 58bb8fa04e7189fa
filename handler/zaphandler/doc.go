// Package zaphandler bridges taglog into go.uber.org/zap. Register a
// Sink on a logging context to have every rendered line logged by an
// existing *zap.Logger.
package zaphandler
