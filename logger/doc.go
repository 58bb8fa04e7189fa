// Package logger is the public API of taglog. Most users only need to
// import this package.
//
// Loggers are identified by a tag such as "db:query". A Context owns the
// set of enable/disable rules and every Logger created from it; there is
// exactly one Logger per tag, so holding on to a Logger is fine:
//
//	log := logger.Get("db:query")
//	log.Info("%d rows in %s", n, elapsed)
//
// Rules use '*' as the only wildcard and are consulted in insertion
// order; the first rule whose pattern matches a tag decides whether it
// is enabled and, if the rule carries one, its level:
//
//	logger.Enable("db:*,!db:noisy", "info")
//
// A tag no rule matches is disabled. Each rule change resynchronizes
// every registered Logger before Enable returns.
//
// Each Logger keeps a small dispatch table with one entry per severity.
// Suppressed entries are no-ops, so a disabled Debug call costs one
// atomic load and an indirect call and does not touch the clock.
//
// The default Context is created on first use from the environment:
// DEBUG holds the initial rule specification and TAGLOG_* variables set
// the default level, colors, inspection depth, tracing and output file
// descriptor (see package config). Use NewBuilder for a custom Context
// and SetDefault to install it.
package logger
