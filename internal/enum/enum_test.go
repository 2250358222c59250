// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package enum

import (
	"math"
	"testing"

	"github.com/gogpu/trapraster/internal/edge"
	"github.com/gogpu/trapraster/internal/fixedmath"
)

func identity() Affine { return Affine{A: 1, E: 1} }

func TestEnumerateAxisAlignedRectProducesTwoEdges(t *testing.T) {
	points := []Point{{10, 10}, {20, 10}, {20, 20}, {10, 20}}
	verbs := []Verb{VerbMoveTo, VerbLineTo, VerbLineTo, VerbLineTo, VerbClose}
	store := edge.NewStore()

	maxY, overflow := Enumerate(points, verbs, identity(), Rect{X: 0, Y: 0, Width: 64, Height: 64}, store)
	if overflow {
		t.Fatal("unexpected overflow")
	}
	if store.Count() != 2 {
		t.Fatalf("Count() = %d, want 2 (top and bottom are horizontal, contribute nothing)", store.Count())
	}
	wantMaxY := int32(20 * fixedmath.ShiftSize)
	if maxY != wantMaxY {
		t.Errorf("maxY = %d, want %d", maxY, wantMaxY)
	}

	var xs []int32
	store.Each(func(e *edge.Edge) { xs = append(xs, e.X) })
	if len(xs) != 2 || (xs[0] != 10*fixedmath.ShiftSize && xs[1] != 10*fixedmath.ShiftSize) {
		t.Errorf("edge X values = %v, want one at %d", xs, 10*fixedmath.ShiftSize)
	}
}

func TestEnumerateSkipsHorizontalSegments(t *testing.T) {
	points := []Point{{0, 5}, {10, 5}}
	verbs := []Verb{VerbMoveTo, VerbLineTo, VerbClose}
	store := edge.NewStore()

	Enumerate(points, verbs, identity(), Rect{X: 0, Y: 0, Width: 100, Height: 100}, store)
	if store.Count() != 0 {
		t.Errorf("Count() = %d, want 0 for a purely horizontal path", store.Count())
	}
}

func TestEnumerateClipsVerticallyAndAdvancesX(t *testing.T) {
	// A 45-degree diagonal from (0,0) to (20,20), clipped to y in [5,15).
	points := []Point{{0, 0}, {20, 20}, {0, 20}}
	verbs := []Verb{VerbMoveTo, VerbLineTo, VerbLineTo, VerbClose}
	store := edge.NewStore()

	Enumerate(points, verbs, identity(), Rect{X: 0, Y: 5, Width: 100, Height: 10}, store)

	var diag *edge.Edge
	store.Each(func(e *edge.Edge) {
		if e.Dx != 0 || e.ErrorUp != 0 {
			diag = e
		}
	})
	if diag == nil {
		t.Fatal("expected the diagonal edge to survive clipping")
	}
	wantStartY := int32(5 * fixedmath.ShiftSize)
	wantEndY := int32(15 * fixedmath.ShiftSize)
	if diag.StartY != wantStartY || diag.EndY != wantEndY {
		t.Errorf("diag clipped to [%d,%d), want [%d,%d)", diag.StartY, diag.EndY, wantStartY, wantEndY)
	}
	// At y=5 on a 45-degree line from the origin, x should also be 5.
	wantX := int32(5 * fixedmath.ShiftSize)
	if diag.X != wantX {
		t.Errorf("diag.X at clip top = %d, want %d", diag.X, wantX)
	}
}

func TestEnumerateOverflowReportsTrue(t *testing.T) {
	huge := float64(fixedmath.CoordinateBound) * 2
	points := []Point{{0, 0}, {huge, huge}}
	verbs := []Verb{VerbMoveTo, VerbLineTo, VerbClose}
	store := edge.NewStore()

	_, overflow := Enumerate(points, verbs, identity(), Rect{X: 0, Y: 0, Width: 100, Height: 100}, store)
	if !overflow {
		t.Error("expected overflow=true for out-of-bound coordinates")
	}
}

func TestEnumerateEmptyPathReportsZeroEdges(t *testing.T) {
	store := edge.NewStore()
	maxY, overflow := Enumerate(nil, nil, identity(), Rect{X: 0, Y: 0, Width: 10, Height: 10}, store)
	if overflow {
		t.Error("unexpected overflow on empty path")
	}
	if maxY != 0 || store.Count() != 0 {
		t.Errorf("maxY=%d count=%d, want 0,0", maxY, store.Count())
	}
}

func TestAffineTransformPoint(t *testing.T) {
	a := Affine{A: 2, B: 0, C: 1, D: 0, E: 3, F: -1}
	x, y := a.TransformPoint(5, 5)
	if x != 11 || y != 14 {
		t.Errorf("TransformPoint = (%v,%v), want (11,14)", x, y)
	}
}

func TestToSubpixelRoundsToNearest(t *testing.T) {
	x, y, ok := toSubpixel(identity(), Point{X: 1.04, Y: 1.06})
	if !ok {
		t.Fatal("unexpected overflow")
	}
	if x != int32(math.Round(1.04*8)) || y != int32(math.Round(1.06*8)) {
		t.Errorf("toSubpixel = (%d,%d)", x, y)
	}
}
