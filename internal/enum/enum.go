// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package enum turns a flattened path (points + move/line/close verbs)
// into monotonic, vertically clipped edges in the sweep's subpixel fixed
// point, the way FixedPointPathEnumerate does for the original
// trapezoidal rasterizer.
package enum

import (
	"math"

	"github.com/gogpu/trapraster/internal/edge"
	"github.com/gogpu/trapraster/internal/fixedmath"
)

// Point is a 2D float64 point, kept as a private mirror of the public
// path point type to avoid an import cycle with the root package (the
// same trick the teacher's internal/raster package uses for its own
// Point type).
type Point struct {
	X, Y float64
}

// Verb is a path command tag.
type Verb int

const (
	VerbMoveTo Verb = iota
	VerbLineTo
	VerbClose
)

// Affine is a private mirror of the root package's 3x2 affine matrix.
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// TransformPoint maps (x, y) through the matrix:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
func (a Affine) TransformPoint(x, y float64) (float64, float64) {
	return a.A*x + a.B*y + a.C, a.D*x + a.E*y + a.F
}

// Rect is an integer device-pixel clip rectangle.
type Rect struct {
	X, Y, Width, Height int32
}

// subpixelScale converts device-pixel coordinates into the sweep's
// unified subpixel space (fixedmath.ShiftSize per axis, per the
// GLOSSARY's "device pixel space scaled by 8 on each axis").
const subpixelScale = float64(fixedmath.ShiftSize)

// Enumerate transforms points/verbs into edges appended to store,
// clipped vertically to clip, and returns the maximum EndY among
// appended edges. overflow is true if any transformed coordinate would
// exceed fixedmath.CoordinateBound; callers must treat that as "draw
// nothing" rather than using any edges appended so far (Enumerate clears
// store itself before returning on overflow).
func Enumerate(points []Point, verbs []Verb, transform Affine, clip Rect, store *edge.Store) (maxY int32, overflow bool) {
	clipTop := clip.Y * fixedmath.ShiftSize
	clipBottom := (clip.Y + clip.Height) * fixedmath.ShiftSize

	var current, subpathStart Point
	var haveCurrent bool
	maxY = math.MinInt32

	emit := func(p0, p1 Point) bool {
		sx0, sy0, ok0 := toSubpixel(transform, p0)
		sx1, sy1, ok1 := toSubpixel(transform, p1)
		if !ok0 || !ok1 {
			return false
		}
		if sy0 == sy1 {
			return true // horizontal edges contribute nothing
		}

		e, ok := buildEdge(sx0, sy0, sx1, sy1, clipTop, clipBottom)
		if !ok {
			return true // fully clipped away, not an error
		}
		store.Append(e)
		if e.EndY > maxY {
			maxY = e.EndY
		}
		return true
	}

	closeIfNeeded := func() bool {
		if haveCurrent && (current.X != subpathStart.X || current.Y != subpathStart.Y) {
			if !emit(current, subpathStart) {
				return false
			}
		}
		return true
	}

	overflowed := func() (int32, bool) {
		store.Reset()
		return 0, true
	}

	pi := 0 // separate cursor: VerbClose consumes no Points entry
	for _, v := range verbs {
		switch v {
		case VerbMoveTo:
			if !closeIfNeeded() {
				return overflowed()
			}
			current = points[pi]
			subpathStart = points[pi]
			haveCurrent = true
			pi++

		case VerbLineTo:
			if !haveCurrent {
				current = points[pi]
				subpathStart = points[pi]
				haveCurrent = true
				pi++
				continue
			}
			if !emit(current, points[pi]) {
				return overflowed()
			}
			current = points[pi]
			pi++

		case VerbClose:
			if !closeIfNeeded() {
				return overflowed()
			}
			current = subpathStart
		}
	}
	if !closeIfNeeded() {
		return overflowed()
	}

	if store.Count() == 0 {
		return 0, false
	}
	return maxY, false
}

// toSubpixel transforms p and scales it into subpixel space, reporting
// false if the result would exceed fixedmath.CoordinateBound.
func toSubpixel(transform Affine, p Point) (x, y int32, ok bool) {
	tx, ty := transform.TransformPoint(p.X, p.Y)
	sx := tx * subpixelScale
	sy := ty * subpixelScale
	if math.Abs(sx) > fixedmath.CoordinateBound || math.Abs(sy) > fixedmath.CoordinateBound {
		return 0, 0, false
	}
	return int32(math.Round(sx)), int32(math.Round(sy)), true
}

// buildEdge constructs a y-monotonic DDA edge from (x0,y0)-(x1,y1),
// clipped vertically to [clipTop, clipBottom). Returns ok=false if the
// segment is entirely outside the clip range.
func buildEdge(x0, y0, x1, y1, clipTop, clipBottom int32) (edge.Edge, bool) {
	winding := int32(1)
	if y0 > y1 {
		winding = -1
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	if y1 <= clipTop || y0 >= clipBottom {
		return edge.Edge{}, false
	}

	dyDen := int64(y1 - y0)
	dxNum := int64(x1 - x0)
	dx := dxNum / dyDen
	rem := dxNum - dx*dyDen
	if rem < 0 {
		rem += dyDen
		dx--
	}

	e := edge.Edge{
		X:                x0,
		Error:            -int32(dyDen),
		ErrorUp:          int32(rem),
		ErrorDown:        int32(dyDen),
		Dx:               int32(dx),
		StartY:           y0,
		EndY:             y1,
		WindingDirection: winding,
	}

	if clipTop > e.StartY {
		advance := clipTop - e.StartY
		x, errv := fixedmath.AdvanceDDASingleStep(&e, advance)
		e.X, e.Error = x, errv
		e.StartY = clipTop
	}
	if clipBottom < e.EndY {
		e.EndY = clipBottom
	}
	if e.StartY >= e.EndY {
		return edge.Edge{}, false
	}

	return e, true
}
