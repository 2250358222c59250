// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fixedmath

import "testing"

func TestIsFractionGreaterThan(t *testing.T) {
	cases := []struct {
		name                   string
		numA, denA, numB, denB int32
		want                   bool
	}{
		{"equal", 1, 2, 2, 4, false},
		{"greater", 3, 4, 1, 2, true},
		{"less", 1, 4, 1, 2, false},
		{"negative numerators", -1, 2, -3, 4, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsFractionGreaterThan(c.numA, c.denA, c.numB, c.denB); got != c.want {
				t.Errorf("IsFractionGreaterThan(%d/%d, %d/%d) = %v, want %v", c.numA, c.denA, c.numB, c.denB, got, c.want)
			}
		})
	}
}

func TestIsFractionLessThanIsConsistentWithGreaterThan(t *testing.T) {
	pairs := [][4]int32{{1, 3, 2, 3}, {5, 7, 1, 7}, {-2, 5, 3, 5}}
	for _, p := range pairs {
		gt := IsFractionGreaterThan(p[0], p[1], p[2], p[3])
		lt := IsFractionLessThan(p[0], p[1], p[2], p[3])
		if gt && lt {
			t.Fatalf("%v cannot be both greater and less than %v", p[:2], p[2:])
		}
	}
}

type fakeEdge struct {
	x, errVal, dx, errUp, errDown int32
}

func (f fakeEdge) CurX() int32     { return f.x }
func (f fakeEdge) CurError() int32 { return f.errVal }
func (f fakeEdge) DxStep() int32   { return f.dx }
func (f fakeEdge) ErrUp() int32    { return f.errUp }
func (f fakeEdge) ErrDown() int32  { return f.errDown }

func TestAdvanceDDAMultipleStepsNoCarry(t *testing.T) {
	// dx=2 per step, errUp=0: x should advance by exactly dy*dx, error
	// stays pinned at -errDown (no fractional accumulation at all).
	l := fakeEdge{x: 100, errVal: -10, dx: 2, errUp: 0, errDown: 10}
	r := fakeEdge{x: 200, errVal: -5, dx: -1, errUp: 0, errDown: 5}

	xL, errL, xR, errR := AdvanceDDAMultipleSteps(l, r, 4)
	if xL != 108 || errL != -10 {
		t.Errorf("left: got x=%d err=%d, want x=108 err=-10", xL, errL)
	}
	if xR != 196 || errR != -5 {
		t.Errorf("right: got x=%d err=%d, want x=196 err=-5", xR, errR)
	}
}

func TestAdvanceDDAMultipleStepsWithCarry(t *testing.T) {
	// errDown=10, errUp=7, starting error -10: after 2 steps the
	// accumulator is -10 + 14 = 4, which is >= 0, so it must borrow one
	// extra unit of x and fold errDown back in: 4 - 10 = -6.
	e := fakeEdge{x: 0, errVal: -10, dx: 1, errUp: 7, errDown: 10}
	x, errOut, _, _ := AdvanceDDAMultipleSteps(e, e, 2)

	// raw x = dy*dx = 2; errAcc = -10+2*7 = 4 >= 0, so one extra unit of
	// x is borrowed and errDown folded back in: x=3, err=4-10=-6.
	if x != 3 || errOut != -6 {
		t.Errorf("got x=%d err=%d, want x=3 err=-6", x, errOut)
	}
}

func TestAdvanceDDAMultipleStepsErrorStaysBiased(t *testing.T) {
	e := fakeEdge{x: 0, errVal: -3, dx: 0, errUp: 5, errDown: 7}
	for dy := int32(1); dy <= 20; dy++ {
		_, errOut, _, _ := AdvanceDDAMultipleSteps(e, e, dy)
		if errOut < -7 || errOut >= 0 {
			t.Fatalf("dy=%d: error %d out of [-7,0)", dy, errOut)
		}
	}
}

func TestComputeDeltaUpperBoundNonNegative(t *testing.T) {
	cases := []fakeEdge{
		{dx: 3, errUp: 0, errDown: 1},
		{dx: 3, errUp: 2, errDown: 5},
		{dx: -4, errUp: 0, errDown: 1},
		{dx: -4, errUp: 3, errDown: 5},
		{dx: 0, errUp: 1, errDown: 8},
	}
	for _, e := range cases {
		got := ComputeDeltaUpperBound(e, HalfShiftSize)
		if got < 0 {
			t.Errorf("ComputeDeltaUpperBound(%+v) = %d, want >= 0", e, got)
		}
	}
}

func TestComputeDistanceLowerBound(t *testing.T) {
	left := fakeEdge{x: 10, errVal: -4, errDown: 8}
	right := fakeEdge{x: 20, errVal: -2, errDown: 8}

	got := ComputeDistanceLowerBound(left, right)
	// Raw gap is 10; right's fraction (-2+1)/8 = -1/8 is greater than
	// left's (-4+1)/8 = -3/8, so right is NOT less than left and no
	// decrement is expected.
	if got != 10 {
		t.Errorf("ComputeDistanceLowerBound = %d, want 10", got)
	}
}
