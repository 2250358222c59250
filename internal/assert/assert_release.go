// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !trapraster_debug

package assert

// True is a no-op in release builds.
func True(cond bool, msg string) {}

// Check is a no-op in release builds; cond is never called, so callers
// can pass an expensive check without paying for it outside debug builds.
func Check(cond func() bool, msg string) {}
