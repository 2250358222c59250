// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sweep implements the trapezoid recognizer, the trapezoid
// emitter, and the top-level vertical-sweep driver that ties the active
// and inactive edge structures and the coverage buffer together into a
// stream of primitives for a Sink.
package sweep

import (
	"github.com/gogpu/trapraster/coverage"
	"github.com/gogpu/trapraster/internal/active"
	"github.com/gogpu/trapraster/internal/edge"
	"github.com/gogpu/trapraster/internal/fixedmath"
	"github.com/gogpu/trapraster/internal/inactive"
)

// Sink is the geometry sink the sweep driver calls synchronously. It
// must not re-enter the driver.
type Sink interface {
	AddTrapezoid(yTop, xTopLeft, xTopRight, yBottom, xBotLeft, xBotRight, leftExpand, rightExpand float64) error
	AddComplexScan(pixelY int32, intervals *coverage.Interval) error
}

// FillMode selects how the active edge list's pairwise/winding structure
// is interpreted.
type FillMode int

const (
	// FillAlternate treats consecutive active-edge pairs as in/out spans.
	FillAlternate FillMode = iota
	// FillWinding accumulates WindingDirection and fills while non-zero.
	FillWinding
)

// Logger receives the sweep's debug events. NewDriver installs NopLogger,
// which the package's own tests keep; the root package wires a
// slog-backed implementation.
type Logger interface {
	DebugFallbackToComplexScan(y int32)
}

// NopLogger implements Logger by discarding every event.
type NopLogger struct{}

// DebugFallbackToComplexScan discards the event.
func (NopLogger) DebugFallbackToComplexScan(int32) {}

// Driver runs one vertical sweep from yCurrent to yBottom over the given
// active list and inactive cursor, emitting primitives to sink.
type Driver struct {
	FillMode FillMode
	Coverage *coverage.Buffer
	Sink     Sink
	Log      Logger
}

// NewDriver returns a Driver with a fresh coverage buffer and a nop
// logger; callers typically override Log.
func NewDriver(sink Sink, mode FillMode) *Driver {
	return &Driver{
		FillMode: mode,
		Coverage: coverage.New(),
		Sink:     sink,
		Log:      NopLogger{},
	}
}

// RasterizeEdges is the top-level sweep loop described in the design:
// it admits edges from the inactive cursor, alternates between the
// trapezoid fast path and the complex-scan fallback, retires expired
// edges, and flushes a final partial row if the sweep didn't end on a
// pixel boundary.
func (d *Driver) RasterizeEdges(activeHead *edge.Edge, cursor *inactive.Cursor, yCurrent, yBottom int32) error {
	nextInactiveY := active.InsertNewEdges(activeHead, yCurrent, cursor)

	for yCurrent < yBottom {
		firstReal := activeHead.Next
		yNext := yCurrent

		canAttemptTrapezoids := (yCurrent&fixedmath.ShiftMask) == 0 &&
			!edge.IsTailSentinel(firstReal) &&
			nextInactiveY >= yCurrent+fixedmath.ShiftSize

		if canAttemptTrapezoids {
			yNext = ComputeTrapezoidsEndScan(d.FillMode, firstReal, yCurrent, nextInactiveY)
			if yNext >= yCurrent+fixedmath.ShiftSize {
				if err := OutputTrapezoids(d.Sink, firstReal, yCurrent, yNext); err != nil {
					return err
				}
			}
		}

		if yNext > yCurrent {
			yCurrent = yNext
			retireExpired(activeHead, yCurrent)
		} else {
			if edge.IsTailSentinel(firstReal) {
				yNext = nextInactiveY
			} else {
				yNext = yCurrent + 1
				d.Log.DebugFallbackToComplexScan(yCurrent)
				if d.FillMode == FillAlternate {
					d.Coverage.FillEdgesAlternating(activeHead, yCurrent)
				} else {
					d.Coverage.FillEdgesWinding(activeHead, yCurrent)
				}
			}

			if yNext > (yCurrent | fixedmath.ShiftMask) {
				if err := d.flushRow(yCurrent); err != nil {
					return err
				}
			}

			yCurrent = yNext
			active.AdvanceDDAAndUpdateActiveEdgeList(yCurrent, activeHead)
		}

		if yCurrent == nextInactiveY {
			nextInactiveY = active.InsertNewEdges(activeHead, yCurrent, cursor)
		}
	}

	if (yCurrent & fixedmath.ShiftMask) != 0 {
		if err := d.flushRow(yCurrent); err != nil {
			return err
		}
	}

	return nil
}

// flushRow hands the accumulated coverage intervals to the sink as one
// complex scan and resets the buffer for the next row.
func (d *Driver) flushRow(ySubpixel int32) error {
	pixelY := ySubpixel >> fixedmath.Shift
	if err := d.Sink.AddComplexScan(pixelY, d.Coverage.FlushRow()); err != nil {
		return err
	}
	d.Coverage.Reset()
	return nil
}

// retireExpired unlinks active edges whose EndY has passed, used after
// the trapezoid path advances the DDA by a whole run (the DDA itself was
// already advanced inside OutputTrapezoids).
func retireExpired(head *edge.Edge, y int32) {
	prev := head
	cur := head.Next
	for cur != nil && !edge.IsTailSentinel(cur) {
		if cur.EndY <= y {
			cur = cur.Next
			prev.Next = cur
		} else {
			prev = cur
			cur = cur.Next
		}
	}
}
