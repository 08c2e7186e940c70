package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/outline/path"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// toFixed converts a coordinate pair to 26.6 fixed point.
func toFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(x * 64)),
		Y: fixed.Int26_6(math.Round(y * 64)),
	}
}

// AddToAdder streams the path at pathID into a rasterx Adder (a Filler,
// Stroker or Dasher). It returns the number of vertices sent.
func AddToAdder(a rasterx.Adder, src path.VertexSource, pathID int) int {
	open := false
	n := 0
	src.Rewind(pathID)
	for {
		x, y, cmd := src.Vertex()
		switch {
		case cmd.IsStop():
			if open {
				a.Stop(false)
			}
			return n
		case cmd.IsMoveTo():
			if open {
				a.Stop(false)
			}
			a.Start(toFixed(x, y))
			open = true
			n++
		case cmd.IsLineTo():
			if open {
				a.Line(toFixed(x, y))
			} else {
				a.Start(toFixed(x, y))
				open = true
			}
			n++
		case cmd.IsEndPoly():
			if open {
				a.Stop(cmd.IsClosed())
				open = false
			}
		}
	}
}

// FillRasterx fills the path at pathID on dst with a solid color using
// the rasterx scanner.
func FillRasterx(dst *image.RGBA, src path.VertexSource, pathID int, c color.Color) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), dst, b)
	filler := rasterx.NewFiller(b.Dx(), b.Dy(), scanner)
	filler.SetWinding(true)
	filler.SetColor(c)
	if AddToAdder(filler, src, pathID) == 0 {
		return
	}
	filler.Draw()
}
