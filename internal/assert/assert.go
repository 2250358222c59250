// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package assert provides structural invariant checks compiled in only
// under the trapraster_debug build tag, mirroring the original
// rasterizer's DBG==1 Assert macro without a runtime cost in release
// builds.
package assert
