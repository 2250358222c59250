// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package trapraster

// PointF is a 2D point in the caller's source coordinate space, before
// Affine is applied.
type PointF struct {
	X, Y float64
}

// Verb is a path command, interpreted in order alongside a Points slice:
// each VerbMoveTo and VerbLineTo consumes the next point.
type Verb int

const (
	// VerbMoveTo starts a new subpath at the corresponding point.
	VerbMoveTo Verb = iota
	// VerbLineTo draws a straight segment to the corresponding point.
	VerbLineTo
	// VerbClose draws a straight segment back to the current subpath's
	// start point. It consumes no Points entry.
	VerbClose
)

// Affine is a 2D affine transform:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// IdentityAffine returns the identity transform.
func IdentityAffine() Affine {
	return Affine{A: 1, E: 1}
}

// TranslateAffine returns a pure translation.
func TranslateAffine(tx, ty float64) Affine {
	return Affine{A: 1, E: 1, C: tx, F: ty}
}

// ScaleAffine returns a pure scale about the origin.
func ScaleAffine(sx, sy float64) Affine {
	return Affine{A: sx, E: sy}
}

// Multiply returns the transform that applies a first, then b (b.Multiply
// composed with a, i.e. result = b ∘ a).
func (a Affine) Multiply(b Affine) Affine {
	return Affine{
		A: b.A*a.A + b.B*a.D,
		B: b.A*a.B + b.B*a.E,
		C: b.A*a.C + b.B*a.F + b.C,
		D: b.D*a.A + b.E*a.D,
		E: b.D*a.B + b.E*a.E,
		F: b.D*a.C + b.E*a.F + b.F,
	}
}

// TransformPoint maps (x, y) through the matrix.
func (a Affine) TransformPoint(x, y float64) (float64, float64) {
	return a.A*x + a.B*y + a.C, a.D*x + a.E*y + a.F
}

// IsIdentity reports whether a is exactly the identity transform.
func (a Affine) IsIdentity() bool {
	return a == IdentityAffine()
}

// Rect is an integer device-pixel clip rectangle, half-open on both axes:
// it covers [X, X+Width) x [Y, Y+Height).
type Rect struct {
	X, Y, Width, Height int32
}
