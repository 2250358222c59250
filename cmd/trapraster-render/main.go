// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command trapraster-render is a reference Sink implementation: it
// rasterizes a small built-in path and writes the result as a PNG,
// exercising golang.org/x/image/draw for the optional preview resize.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/draw"

	trapraster "github.com/gogpu/trapraster"
	"github.com/gogpu/trapraster/coverage"
)

func main() {
	out := flag.String("out", "trapraster-demo.png", "output PNG path")
	width := flag.Int("width", 256, "canvas width")
	height := flag.Int("height", 256, "canvas height")
	scale := flag.Float64("scale", 1.0, "preview scale factor, applied with x/image/draw")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		trapraster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	sink := newImageSink(*width, *height)
	r := trapraster.NewRasterizer()

	points, verbs := trianglePath(*width, *height)
	status, err := r.RasterizePath(points, verbs, trapraster.IdentityAffine(),
		trapraster.Rect{X: 0, Y: 0, Width: int32(*width), Height: int32(*height)},
		trapraster.FillAlternate, sink)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rasterize:", err)
		os.Exit(1)
	}
	if status != trapraster.StatusOK {
		fmt.Fprintln(os.Stderr, "rasterize: unexpected status", status)
		os.Exit(1)
	}

	img := sink.toRGBA()
	if *scale != 1.0 {
		img = resize(img, *scale)
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintln(os.Stderr, "create:", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		os.Exit(1)
	}
}

// trianglePath returns a simple triangle filling most of a width x
// height canvas.
func trianglePath(width, height int) ([]trapraster.PointF, []trapraster.Verb) {
	w, h := float64(width), float64(height)
	points := []trapraster.PointF{
		{X: w * 0.5, Y: h * 0.1},
		{X: w * 0.9, Y: h * 0.9},
		{X: w * 0.1, Y: h * 0.9},
	}
	verbs := []trapraster.Verb{trapraster.VerbMoveTo, trapraster.VerbLineTo, trapraster.VerbLineTo, trapraster.VerbClose}
	return points, verbs
}

func resize(src *image.RGBA, scale float64) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(b.Dx())*scale), int(float64(b.Dy())*scale)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// imageSink accumulates trapezoid and complex-scan coverage directly
// into a per-pixel alpha buffer, approximating the antialiasing a real
// GPU tessellator would apply from the same primitives.
type imageSink struct {
	width, height int
	alpha         []float64 // row-major, width*height, coverage in [0,1]
	sawArea       bool
}

func newImageSink(width, height int) *imageSink {
	return &imageSink{width: width, height: height, alpha: make([]float64, width*height)}
}

func (s *imageSink) at(x, y int) *float64 {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return nil
	}
	return &s.alpha[y*s.width+x]
}

// AddTrapezoid fills every pixel row it spans, lerping the left/right
// edge between the trapezoid's top and bottom x and softening
// leftExpand/rightExpand pixels of falloff at each edge.
func (s *imageSink) AddTrapezoid(yTop, xTopLeft, xTopRight, yBottom, xBotLeft, xBotRight, leftExpand, rightExpand float64) error {
	rowStart := int(math.Floor(yTop))
	rowEnd := int(math.Ceil(yBottom))
	if rowEnd <= rowStart {
		return nil
	}

	for row := rowStart; row < rowEnd; row++ {
		rowCenter := float64(row) + 0.5
		if rowCenter < yTop || rowCenter >= yBottom {
			continue
		}
		t := (rowCenter - yTop) / (yBottom - yTop)
		xl := xTopLeft + t*(xBotLeft-xTopLeft)
		xr := xTopRight + t*(xBotRight-xTopRight)

		colStart := int(math.Floor(xl - leftExpand))
		colEnd := int(math.Ceil(xr + rightExpand))
		for col := colStart; col < colEnd; col++ {
			colCenter := float64(col) + 0.5
			cov := edgeCoverage(colCenter, xl, leftExpand) * edgeCoverage(xr, colCenter, rightExpand)
			if cov <= 0 {
				continue
			}
			s.sawArea = true
			if p := s.at(col, row); p != nil {
				*p = math.Min(1, *p+cov)
			}
		}
	}
	return nil
}

// edgeCoverage is 1 inside, 0 outside, and linearly ramps across
// [boundary-expand, boundary+expand].
func edgeCoverage(x, boundary, expand float64) float64 {
	if expand <= 0 {
		if x >= boundary {
			return 1
		}
		return 0
	}
	d := (x - boundary) / (2 * expand)
	switch {
	case d <= -0.5:
		return 0
	case d >= 0.5:
		return 1
	default:
		return d + 0.5
	}
}

// AddComplexScan folds a row's (x, delta) coverage transitions into
// per-pixel alpha. Interval.X is in the same subpixel-x units as active
// edges (coverage.ShiftSize per pixel column, see
// internal/sweep.subpixelXToPixel), so each span is converted to a pixel
// range and split across columns it partially covers, weighted by the
// fraction of the column each span overlaps.
func (s *imageSink) AddComplexScan(pixelY int32, intervals *coverage.Interval) error {
	const maxCoverage = float64(coverage.ShiftSize * coverage.ShiftSize)
	const subScale = float64(coverage.ShiftSize)
	running := int32(0)
	for cur := intervals; cur != nil && cur.X != math.MaxInt32; cur = cur.Next {
		running += cur.Delta
		next := cur.Next
		if next == nil {
			break
		}
		cov := float64(running) / maxCoverage
		if cov <= 0 {
			continue
		}
		s.sawArea = true

		xStart := float64(cur.X) / subScale
		xEnd := float64(next.X) / subScale
		colStart := int(math.Floor(xStart))
		colEnd := int(math.Ceil(xEnd))
		for col := colStart; col < colEnd; col++ {
			overlap := math.Min(xEnd, float64(col+1)) - math.Max(xStart, float64(col))
			if overlap <= 0 {
				continue
			}
			if p := s.at(col, int(pixelY)); p != nil {
				*p = math.Min(1, *p+cov*overlap)
			}
		}
	}
	return nil
}

// IsEmpty reports whether no trapezoid or complex-scan call contributed
// positive coverage anywhere in the image.
func (s *imageSink) IsEmpty() bool { return !s.sawArea }

func (s *imageSink) toRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			a := s.alpha[y*s.width+x]
			v := uint8(a * 255)
			img.SetRGBA(x, y, color.RGBA{R: 20, G: 90, B: 200, A: v})
		}
	}
	return img
}
