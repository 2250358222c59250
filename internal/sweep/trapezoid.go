// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sweep

import (
	"github.com/gogpu/trapraster/internal/edge"
	"github.com/gogpu/trapraster/internal/fixedmath"
)

// ComputeTrapezoidsEndScan determines the largest sub-scanline
// yBottom <= yNextInactive such that the active edge list, advanced to
// yBottom, still forms a run of disjoint simple trapezoids. Returns
// yCurrent to signal "no trapezoid row can be emitted here".
//
// Precondition: yCurrent is pixel-aligned ((yCurrent & ShiftMask) == 0).
func ComputeTrapezoidsEndScan(mode FillMode, edgeCurrent *edge.Edge, yCurrent, yNextInactive int32) int32 {
	if mode == FillWinding {
		for e := edgeCurrent; !edge.IsTailSentinel(e); e = e.Next.Next {
			if e.WindingDirection == e.Next.WindingDirection {
				// Not reducible to an alternating pairwise fill; the
				// winding-mode fast path doesn't apply (see Non-goals).
				return yCurrent
			}
		}
	}

	yBottom := yNextInactive
	for e := edgeCurrent; !edge.IsTailSentinel(e); e = e.Next {
		if e.EndY < yBottom {
			yBottom = e.EndY
		}

		left, right := e, e.Next
		if edge.IsTailSentinel(right) {
			continue
		}

		expandBound := fixedmath.ShiftSize +
			fixedmath.ComputeDeltaUpperBound(left, fixedmath.HalfShiftSize) +
			fixedmath.ComputeDeltaUpperBound(right, fixedmath.HalfShiftSize)

		topDist := fixedmath.ComputeDistanceLowerBound(left, right) - expandBound
		if topDist < 0 {
			return yCurrent
		}

		converging := left.Dx > right.Dx ||
			(left.Dx == right.Dx && fixedmath.IsFractionGreaterThan(left.ErrorUp, left.ErrorDown, right.ErrorUp, right.ErrorDown))
		if !converging {
			continue
		}

		advance := yBottom - yCurrent
		xL, _, xR, _ := fixedmath.AdvanceDDAMultipleSteps(left, right, advance)
		xL += expandBound

		if xL >= xR {
			bottomDist := xL - xR + 1
			yBottom = yCurrent + (advance*topDist)/(topDist+bottomDist)
			if yBottom < yCurrent+fixedmath.ShiftSize {
				return yCurrent
			}
		}
	}

	yBottom &^= fixedmath.ShiftMask
	return yBottom
}

// OutputTrapezoids advances the DDA over [yCurrent, yNext) for every
// consecutive active-edge pair starting at edgeHead, computes each
// edge's pixel-space falloff, calls sink.AddTrapezoid, and leaves each
// edge mutated in place to its bottom (X, Error).
func OutputTrapezoids(sink Sink, edgeHead *edge.Edge, yCurrent, yNext int32) error {
	advance := yNext - yCurrent
	left := edgeHead
	right := edgeHead.Next

	for {
		xL, errL, xR, errR := fixedmath.AdvanceDDAMultipleSteps(left, right, advance)

		yTop := pixelY(yCurrent)
		yBot := pixelY(yNext)

		xTopLeft := subpixelXToPixel(left.X, left.Error, left.ErrorDown)
		xTopRight := subpixelXToPixel(right.X, right.Error, right.ErrorDown)

		leftInvSlope := float64(left.Dx) + float64(left.ErrorUp)/float64(left.ErrorDown)
		rightInvSlope := float64(right.Dx) + float64(right.ErrorUp)/float64(right.ErrorDown)

		leftDelta := 0.5 + 0.5*absf(leftInvSlope)
		rightDelta := 0.5 + 0.5*absf(rightInvSlope)

		xBotLeft := subpixelXToPixel(xL, errL, left.ErrorDown)
		xBotRight := subpixelXToPixel(xR, errR, right.ErrorDown)

		if err := sink.AddTrapezoid(yTop, xTopLeft, xTopRight, yBot, xBotLeft, xBotRight, leftDelta, rightDelta); err != nil {
			return err
		}

		left.X, left.Error = xL, errL
		right.X, right.Error = xR, errR

		if edge.IsTailSentinel(right.Next) {
			break
		}
		left = right.Next
		right = left.Next
	}

	return nil
}

func pixelY(subpixelY int32) float64 {
	return float64(subpixelY) / float64(fixedmath.ShiftSize)
}

// subpixelXToPixel converts a DDA position back to a true pixel-space x.
// errVal sits in [-errDown, 0) (see internal/edge.Edge); the sub-subpixel
// fraction it encodes is 1 + errVal/errDown, which is 0 exactly when the
// edge sits precisely on x (no accumulated remainder yet).
func subpixelXToPixel(x, errVal, errDown int32) float64 {
	frac := 1 + float64(errVal)/float64(errDown)
	return (float64(x) + frac) / float64(fixedmath.ShiftSize)
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
