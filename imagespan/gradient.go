package imagespan

import (
	"image/color"
	"math"

	"github.com/gogpu/outline/span"
)

// lutSize is the number of entries of a gradient color table.
const lutSize = 256

// LinearGradient colors pixels by their transformed x coordinate: d1 maps
// to the first color, d2 to the last, values outside are padded.
//
// Place the gradient with the interpolator's transformer (for a gradient
// from point A to point B, the inverse of the matrix that maps the unit
// x axis onto A→B).
type LinearGradient struct {
	it     span.Interpolator
	d1, d2 int // gradient range in subpixel units
	lut    [lutSize]color.RGBA
}

var _ Generator = (*LinearGradient)(nil)

// NewLinearGradient creates a two-color gradient over [d1, d2] in
// transformed space. Colors are interpolated in premultiplied space.
func NewLinearGradient(it span.Interpolator, d1, d2 float64, c1, c2 color.Color) *LinearGradient {
	scale := float64(int(1) << it.SubpixelShift())
	g := &LinearGradient{
		it: it,
		d1: int(math.Round(d1 * scale)),
		d2: int(math.Round(d2 * scale)),
	}
	if g.d2 == g.d1 {
		g.d2 = g.d1 + 1
	}
	a := color.RGBAModel.Convert(c1).(color.RGBA)
	b := color.RGBAModel.Convert(c2).(color.RGBA)
	for i := range g.lut {
		g.lut[i] = lerpRGBA(a, b, i, lutSize-1)
	}
	return g
}

// Generate fills len(dst) pixels starting at (x, y).
func (g *LinearGradient) Generate(dst []color.RGBA, x, y int) {
	if len(dst) == 0 {
		return
	}
	g.it.Begin(float64(x)+0.5, float64(y)+0.5, len(dst))
	dd := g.d2 - g.d1
	for i := range dst {
		sx, _ := g.it.Coordinates()
		d := (sx - g.d1) * lutSize / dd
		dst[i] = g.lut[clamp(d, 0, lutSize-1)]
		g.it.Advance()
	}
}

func lerpRGBA(a, b color.RGBA, i, n int) color.RGBA {
	mix := func(p, q uint8) uint8 {
		return uint8((int(p)*(n-i) + int(q)*i + n/2) / n)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
