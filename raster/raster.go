// Package raster feeds VertexSource outlines to scanline rasterizers.
//
// The rasterizers themselves are external: golang.org/x/image/vector for
// coverage masks and github.com/srwiley/rasterx for direct fills. Both
// use the non-zero winding rule, which is what contour and stroke
// outlines are built for.
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/outline"
	"github.com/gogpu/outline/imagespan"
	"github.com/gogpu/outline/path"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Bounds returns the integer pixel rectangle covering all vertices of
// the path at pathID. ok is false for a path without vertices.
func Bounds(src path.VertexSource, pathID int) (r image.Rectangle, ok bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	src.Rewind(pathID)
	for {
		x, y, cmd := src.Vertex()
		if cmd.IsStop() {
			break
		}
		if !cmd.IsVertex() {
			continue
		}
		ok = true
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	if !ok {
		return image.Rectangle{}, false
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	), true
}

// AddToVector adds the path at pathID to r, offset by (-dx, -dy).
// Sub-paths are closed on EndPoly and before every new MoveTo.
func AddToVector(r *vector.Rasterizer, src path.VertexSource, pathID int, dx, dy float64) int {
	open := false
	n := 0
	src.Rewind(pathID)
	for {
		x, y, cmd := src.Vertex()
		switch {
		case cmd.IsStop():
			if open {
				r.ClosePath()
			}
			return n
		case cmd.IsMoveTo():
			if open {
				r.ClosePath()
			}
			r.MoveTo(float32(x-dx), float32(y-dy))
			open = true
			n++
		case cmd.IsLineTo():
			if !open {
				r.MoveTo(float32(x-dx), float32(y-dy))
				open = true
			} else {
				r.LineTo(float32(x-dx), float32(y-dy))
			}
			n++
		case cmd.IsEndPoly():
			if open {
				r.ClosePath()
				open = false
			}
		}
	}
}

// Mask rasterizes the path at pathID into a coverage mask covering bounds.
func Mask(src path.VertexSource, pathID int, bounds image.Rectangle) *image.Alpha {
	mask := image.NewAlpha(bounds)
	if bounds.Empty() {
		return mask
	}
	r := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	n := AddToVector(r, src, pathID, float64(bounds.Min.X), float64(bounds.Min.Y))
	if n == 0 {
		return mask
	}
	r.Draw(mask, bounds, image.Opaque, image.Point{})

	if outline.DebugEnabled() {
		outline.Logger().Debug("raster: mask",
			"vertices", n, "bounds", bounds.String())
	}
	return mask
}

// FillVector fills the path at pathID on dst with a solid color.
func FillVector(dst draw.Image, src path.VertexSource, pathID int, c color.Color) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	if AddToVector(r, src, pathID, float64(b.Min.X), float64(b.Min.Y)) == 0 {
		return
	}
	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// FillSpans fills the path at pathID on dst with colors produced by gen.
// The generator is called once per covered row with the horizontal extent
// of the row's coverage.
func FillSpans(dst draw.Image, src path.VertexSource, pathID int, gen imagespan.Generator) {
	b, ok := spanBounds(dst, src, pathID)
	if !ok {
		return
	}
	mask := Mask(src, pathID, b)
	colors := image.NewRGBA(b)
	generateRows(colors, mask, b.Min.Y, b.Max.Y, gen)
	draw.DrawMask(dst, b, colors, b.Min, mask, b.Min, draw.Over)
}

// spanBounds clips the path bounds to dst.
func spanBounds(dst draw.Image, src path.VertexSource, pathID int) (image.Rectangle, bool) {
	pb, ok := Bounds(src, pathID)
	if !ok {
		return image.Rectangle{}, false
	}
	b := pb.Intersect(dst.Bounds())
	return b, !b.Empty()
}

// generateRows fills rows [y0, y1) of colors over the covered extent of
// each mask row.
func generateRows(colors *image.RGBA, mask *image.Alpha, y0, y1 int, gen imagespan.Generator) {
	b := colors.Bounds()
	row := make([]color.RGBA, b.Dx())
	for y := y0; y < y1; y++ {
		x0, x1 := rowExtent(mask, b, y)
		if x0 >= x1 {
			continue
		}
		seg := row[:x1-x0]
		gen.Generate(seg, x0, y)
		i := colors.PixOffset(x0, y)
		for _, c := range seg {
			colors.Pix[i+0] = c.R
			colors.Pix[i+1] = c.G
			colors.Pix[i+2] = c.B
			colors.Pix[i+3] = c.A
			i += 4
		}
	}
}

// rowExtent returns the covered pixel range [x0, x1) of row y.
func rowExtent(mask *image.Alpha, b image.Rectangle, y int) (x0, x1 int) {
	off := mask.PixOffset(b.Min.X, y)
	pix := mask.Pix[off : off+b.Dx()]
	lo, hi := 0, len(pix)
	for lo < hi && pix[lo] == 0 {
		lo++
	}
	for hi > lo && pix[hi-1] == 0 {
		hi--
	}
	return b.Min.X + lo, b.Min.X + hi
}
