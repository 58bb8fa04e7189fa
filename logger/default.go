package logger

import (
	"sync"

	"github.com/philipp01105/taglog/config"
	"github.com/philipp01105/taglog/handler"
)

var (
	defaultCtx *Context
	defaultMu  sync.RWMutex
)

// NewFromEnv builds a context from the process environment (see package
// config). The context is usable even when err is non-nil; err only
// reports settings that were ignored.
func NewFromEnv() (*Context, error) {
	cfg, err := config.Load()
	return NewBuilder().WithConfig(cfg).Build(), err
}

// Default returns the process-wide context, bootstrapping it from the
// environment on first use.
func Default() *Context {
	defaultMu.RLock()
	c := defaultCtx
	defaultMu.RUnlock()
	if c != nil {
		return c
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultCtx == nil {
		defaultCtx, _ = NewFromEnv()
	}
	return defaultCtx
}

// SetDefault sets the process-wide context
func SetDefault(c *Context) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultCtx = c
}

// Package-level convenience functions using the default context

// Get returns the logger for tag from the default context
func Get(tag string) *Logger {
	return Default().Get(tag)
}

// Enable adds enable rules to the default context
func Enable(patterns any, level ...any) error {
	return Default().Enable(patterns, level...)
}

// Disable adds disable rules to the default context
func Disable(patterns any) error {
	return Default().Disable(patterns)
}

// Remove deletes rules from the default context
func Remove(patterns any) error {
	return Default().Remove(patterns)
}

// IsEnabled reports whether tag is enabled in the default context
func IsEnabled(tag string) bool {
	return Default().IsEnabled(tag)
}

// AddWriter registers a sink on the default context
func AddWriter(s handler.Sink) {
	Default().AddWriter(s)
}

// RemoveWriter unregisters a sink from the default context
func RemoveWriter(s handler.Sink) bool {
	return Default().RemoveWriter(s)
}
