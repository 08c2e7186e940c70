// Package span maps horizontal source-space spans to fixed-point target
// coordinates for image and gradient sampling.
//
// An interpolator samples its Transformer only at a few points of each
// span (the two endpoints for Linear, every chunk boundary for Subdiv) and
// fills the pixels in between with dda.Line steps. The result is exact for
// affine transforms up to rounding and a linear approximation otherwise.
//
// Interpolators borrow their Transformer: it must outlive them and must
// not change between Begin and the last Advance of a span.
package span

import (
	"math"

	"github.com/gogpu/outline"
	"github.com/gogpu/outline/path"
)

// DefaultSubpixelShift is the default number of fractional bits in the
// produced coordinates (256 subpixel steps per unit).
const DefaultSubpixelShift = 8

// maxSubpixelShift keeps coordinates of typical raster sizes inside int32.
const maxSubpixelShift = 16

// Transformer maps a point in place. It must be deterministic.
type Transformer = path.Transformer

// TransformerFunc adapts a function to a Transformer.
type TransformerFunc func(x, y *float64)

// Transform calls f.
func (f TransformerFunc) Transform(x, y *float64) { f(x, y) }

// Interpolator yields target coordinates for consecutive source pixels.
//
//	it.Begin(x+0.5, y+0.5, n)
//	for i := 0; i < n; i++ {
//	    sx, sy := it.Coordinates()
//	    // sample at (sx, sy) >> it.SubpixelShift()
//	    it.Advance()
//	}
type Interpolator interface {
	Begin(x, y float64, length int)
	Resynchronize(xe, ye float64, length int)
	Advance()
	Coordinates() (x, y int)
	SubpixelShift() uint
}

// Option configures an interpolator.
type Option func(*options)

type options struct {
	subpixelShift uint
	subdivShift   uint
}

func defaultOptions() options {
	return options{
		subpixelShift: DefaultSubpixelShift,
		subdivShift:   DefaultSubdivShift,
	}
}

// WithSubpixelShift sets the number of fractional bits in coordinates.
// Values above 16 are clamped.
func WithSubpixelShift(shift uint) Option {
	return func(o *options) {
		if shift > maxSubpixelShift {
			outline.Logger().Warn("span: subpixel shift clamped",
				"shift", shift, "max", maxSubpixelShift)
			shift = maxSubpixelShift
		}
		o.subpixelShift = shift
	}
}

// WithSubdivShift sets the chunk size of Subdiv to 2^shift pixels.
// Linear ignores it.
func WithSubdivShift(shift uint) Option {
	return func(o *options) {
		o.subdivShift = clampSubdivShift(shift)
	}
}

// toFixed converts v to subpixel units, rounding half away from zero.
func toFixed(v, scale float64) int {
	return int(math.Round(v * scale))
}
