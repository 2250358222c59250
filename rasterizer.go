// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package trapraster converts a flattened 2D path into a stream of
// drawing primitives for a geometry sink: either axis-aligned complex
// scanlines carrying per-pixel coverage, or simple trapezoids carrying
// per-edge antialiasing falloff. See internal/sweep for the vertical
// sweep that drives the decision between the two.
package trapraster

import (
	"fmt"

	"github.com/gogpu/trapraster/coverage"
	"github.com/gogpu/trapraster/internal/edge"
	"github.com/gogpu/trapraster/internal/enum"
	"github.com/gogpu/trapraster/internal/fixedmath"
	"github.com/gogpu/trapraster/internal/inactive"
	"github.com/gogpu/trapraster/internal/sweep"
)

// FillMode selects how overlapping subpaths combine.
type FillMode int

const (
	// FillAlternate fills using the even-odd rule.
	FillAlternate FillMode = iota
	// FillWinding fills wherever the signed winding count is non-zero.
	FillWinding
)

// Status summarizes the outcome of RasterizePath.
type Status int

const (
	// StatusOK means the sweep completed and the sink reported filled
	// area. A path whose coordinates exceed the fixed-point bound also
	// reports OK, with no calls to sink.
	StatusOK Status = iota
	// StatusEmpty means the path produced no fillable geometry: no
	// non-horizontal segment survived flattening and vertical clipping,
	// or the sink's IsEmpty reported no positive area after the sweep.
	StatusEmpty
	// StatusSinkError means the sink returned an error, aborting the
	// sweep partway through.
	StatusSinkError
	// StatusOutOfMemory is reserved for allocation-failure reporting;
	// Go's allocator panics rather than returning an error, so this
	// status is currently unused but kept for parity with the
	// documented contract.
	StatusOutOfMemory
)

// Sink is the geometry sink RasterizePath calls synchronously and in
// monotonically increasing y order. Implementations must not call back
// into the Rasterizer that is driving them.
type Sink interface {
	// AddTrapezoid reports one simple trapezoid spanning [yTop, yBottom)
	// in pixel-space float coordinates, with per-edge antialiasing
	// falloff distances leftExpand/rightExpand.
	AddTrapezoid(yTop, xTopLeft, xTopRight, yBottom, xBotLeft, xBotRight, leftExpand, rightExpand float64) error
	// AddComplexScan reports one pixel row's worth of coverage deltas,
	// sorted ascending by X and terminated by a sentinel node with
	// X == math.MaxInt32.
	AddComplexScan(pixelY int32, intervals *coverage.Interval) error
	// IsEmpty reports whether the sink has received any primitive
	// describing positive fill area since it was last used. RasterizePath
	// calls this once the sweep completes to distinguish a degenerate
	// zero-area path (e.g. a line segment closed back onto itself) from
	// one that actually filled something; a sink that tracks nothing
	// should return false. A Sink reused across multiple RasterizePath
	// calls must clear its own tracking state at the start of each call
	// it is passed to — RasterizePath only ever reads this at the end of
	// the sweep it just drove.
	IsEmpty() bool
}

// Rasterizer holds scratch storage reused across RasterizePath calls: an
// edge store, an inactive-array backing slice, and a sweep driver
// wrapping a coverage buffer, following the teacher's pattern of a
// single long-lived Rasterizer wrapping a reused ActiveEdgeTable.
type Rasterizer struct {
	store   *edge.Store
	edges   []*edge.Edge
	backing []inactive.Entry
	driver  *sweep.Driver
}

// NewRasterizer returns a ready-to-use Rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{store: edge.NewStore(), backing: make([]inactive.Entry, 0, inactive.StackCapacity)}
}

// RasterizePath flattens points/verbs through transform, clips vertically
// to clip, sweeps the result under mode, and reports each primitive to
// sink.
func (r *Rasterizer) RasterizePath(points []PointF, verbs []Verb, transform Affine, clip Rect, mode FillMode, sink Sink) (Status, error) {
	r.store.Reset()

	enumPoints := make([]enum.Point, len(points))
	for i, p := range points {
		enumPoints[i] = enum.Point{X: p.X, Y: p.Y}
	}
	enumVerbs := make([]enum.Verb, len(verbs))
	for i, v := range verbs {
		enumVerbs[i] = enum.Verb(v)
	}
	enumAffine := enum.Affine{A: transform.A, B: transform.B, C: transform.C, D: transform.D, E: transform.E, F: transform.F}
	enumRect := enum.Rect{X: clip.X, Y: clip.Y, Width: clip.Width, Height: clip.Height}

	maxY, overflow := enum.Enumerate(enumPoints, enumVerbs, enumAffine, enumRect, r.store)
	if overflow {
		// Coordinates exceeded the fixed-point bound: draw nothing
		// rather than wrap around into garbage geometry.
		return StatusOK, nil
	}
	if r.store.Count() == 0 {
		return StatusEmpty, nil
	}

	r.edges = r.edges[:0]
	r.store.Each(func(e *edge.Edge) {
		r.edges = append(r.edges, e)
	})

	if needed := len(r.edges) + 2; cap(r.backing) < needed {
		logger().Warn("inactive array spilled to heap allocation",
			"edges", len(r.edges), "stack_capacity", inactive.StackCapacity)
		r.backing = make([]inactive.Entry, needed)
	}
	arr := inactive.Build(r.edges, r.backing)
	cursor := arr.NewCursor()

	head := edge.NewHeadSentinel()
	head.Next = edge.NewTailSentinel()

	sweepMode := sweep.FillAlternate
	if mode == FillWinding {
		sweepMode = sweep.FillWinding
	}

	if r.driver == nil {
		r.driver = sweep.NewDriver(sink, sweepMode)
		r.driver.Log = driverLogger{}
	} else {
		r.driver.Sink = sink
		r.driver.FillMode = sweepMode
		r.driver.Coverage.Reset()
	}

	// At least one edge survived enumeration (checked above), so the
	// cursor's first StartY is always a real value here, never the
	// tail sentinel's math.MaxInt32.
	yStart := cursor.StartY() &^ fixedmath.ShiftMask

	if err := r.driver.RasterizeEdges(head, cursor, yStart, maxY); err != nil {
		return StatusSinkError, fmt.Errorf("trapraster: sink: %w", err)
	}

	if sink.IsEmpty() {
		// Edges were enumerated but every primitive the sweep produced
		// was zero-area (e.g. a path that retraces itself exactly): the
		// sink is in the best position to know this, since it saw the
		// actual coordinates.
		return StatusEmpty, nil
	}

	return StatusOK, nil
}

// driverLogger adapts the package logger to sweep.Logger.
type driverLogger struct{}

func (driverLogger) DebugFallbackToComplexScan(y int32) {
	logger().Debug("falling back to complex scan", "pixel_y", y>>fixedmath.Shift)
}
