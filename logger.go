// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package trapraster

import (
	"context"
	"log/slog"
	"sync/atomic"
)

var currentLogger atomic.Pointer[slog.Logger]

func init() {
	currentLogger.Store(newNopLogger())
}

// nopHandler discards every record; it backs the package's logger until
// SetLogger installs a real one.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h nopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h nopHandler) WithGroup(string) slog.Handler           { return h }

func newNopLogger() *slog.Logger {
	return slog.New(nopHandler{})
}

// SetLogger installs l as the package-wide logger for rasterizer
// diagnostics (complex-scan fallbacks, inactive-array heap spills).
// Passing nil restores the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	currentLogger.Store(l)
}

func logger() *slog.Logger {
	return currentLogger.Load()
}
