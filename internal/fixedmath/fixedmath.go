// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package fixedmath provides the fixed-point primitives used by the
// trapezoidal sweep: exact 32x32->64 multiplication, fraction comparisons,
// multi-step DDA advance, and the conservative delta/distance bounds the
// trapezoid recognizer relies on.
package fixedmath

// Shift is the overscan factor exponent: one pixel covers 1<<Shift
// sub-scanlines on each axis.
const Shift = 3

// ShiftSize is the number of sub-scanlines per pixel (1<<Shift).
const ShiftSize = 1 << Shift

// HalfShiftSize is half a pixel in sub-scanline units.
const HalfShiftSize = ShiftSize / 2

// ShiftMask masks the sub-scanline bits of a subpixel-y coordinate.
const ShiftMask = ShiftSize - 1

// Fix4Shift is the 28.4 fixed-point fractional bit count.
const Fix4Shift = 4

// Fix4One is one unit in 28.4 fixed point.
const Fix4One = 1 << Fix4Shift

// CoordinateBound is the maximum absolute value of any subpixel-space
// coordinate, leaving two bits of working headroom as required by
// AdvanceDDAMultipleSteps.
const CoordinateBound = 1 << 26

// IsFractionGreaterThan reports whether numA/denA > numB/denB.
// Both denominators must be >= 1; callers on the hot path rely on this.
func IsFractionGreaterThan(numA, denA, numB, denB int32) bool {
	return int64(numA)*int64(denB) > int64(numB)*int64(denA)
}

// IsFractionLessThan reports whether numA/denA < numB/denB.
// Both denominators must be >= 1.
func IsFractionLessThan(numA, denA, numB, denB int32) bool {
	return int64(numA)*int64(denB) < int64(numB)*int64(denA)
}

// DDAEdge is the minimal view of an edge that AdvanceDDAMultipleSteps and
// the bound computations need. internal/edge.Edge satisfies it.
type DDAEdge interface {
	CurX() int32
	CurError() int32
	DxStep() int32
	ErrUp() int32
	ErrDown() int32
}

// AdvanceDDAMultipleSteps computes where edgeL and edgeR would land after
// advancing the DDA by dy sub-scanlines, without mutating either edge.
//
// The result error terms preserve the Error ∈ [-ErrorDown, 0) bias: every
// step that would push Error to zero or above borrows one extra unit of X
// and folds ErrorDown back in, so callers never need to special-case a
// zero crossing.
func AdvanceDDAMultipleSteps(edgeL, edgeR DDAEdge, dy int32) (xL, errL, xR, errR int32) {
	xL, errL = AdvanceDDASingleStep(edgeL, dy)
	xR, errR = AdvanceDDASingleStep(edgeR, dy)
	return
}

// AdvanceDDASingleStep advances one edge by dy sub-scanlines, preserving
// the same Error ∈ [-ErrorDown, 0) bias AdvanceDDAMultipleSteps does.
// Exported so callers outside the hot sweep loop (path enumeration's
// clip-time x adjustment) can reuse the identical carry arithmetic
// instead of duplicating it.
func AdvanceDDASingleStep(e DDAEdge, dy int32) (x, errOut int32) {
	x = e.CurX() + dy*e.DxStep()

	errAcc := int64(e.CurError()) + int64(dy)*int64(e.ErrUp())
	if errAcc >= 0 {
		errDown := int64(e.ErrDown())
		q := errAcc / errDown
		delta := int32(q) + 1
		x += delta
		errAcc -= errDown * int64(delta)
	}

	return x, int32(errAcc)
}

// ComputeDeltaUpperBound returns a value >= dy*|1/slope| in subpixel units
// for the edge's slope, biasing the negative-error convention out of the
// way before taking the absolute value.
func ComputeDeltaUpperBound(e DDAEdge, dy int32) int32 {
	dx := e.DxStep()
	errUp := e.ErrUp()

	if errUp == 0 {
		return dy * abs32(dx)
	}

	var absDx, absErrUp int32
	if dx >= 0 {
		absDx = dx
		absErrUp = errUp
	} else {
		absDx = -dx - 1
		absErrUp = -errUp + e.ErrDown()
	}

	return dy*absDx + (dy*absErrUp)/e.ErrDown() + 1
}

// ComputeDistanceLowerBound returns a value <=
// (Rx + Re/ReD) - (Lx + Le/LeD) for the current positions of edgeL and
// edgeR. Preconditions: both errors negative, edgeL.X <= edgeR.X.
func ComputeDistanceLowerBound(edgeL, edgeR DDAEdge) int32 {
	dist := edgeR.CurX() - edgeL.CurX()

	if IsFractionLessThan(
		edgeR.CurError()+1, edgeR.ErrDown(),
		edgeL.CurError()+1, edgeL.ErrDown(),
	) {
		dist--
	}

	return dist
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
