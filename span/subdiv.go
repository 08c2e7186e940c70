package span

import (
	"github.com/gogpu/outline"
	"github.com/gogpu/outline/dda"
)

// DefaultSubdivShift is the default chunk size exponent of Subdiv (16 pixels).
const DefaultSubdivShift = 4

const maxSubdivShift = 16

func clampSubdivShift(shift uint) uint {
	if shift > maxSubdivShift {
		outline.Logger().Warn("span: subdiv shift clamped",
			"shift", shift, "max", maxSubdivShift)
		return maxSubdivShift
	}
	return shift
}

// Subdiv interpolates a span in chunks of 2^SubdivShift pixels and
// re-samples the transformer at every chunk boundary, which bounds the
// linear approximation error to what a single chunk accrues.
type Subdiv struct {
	trans Transformer
	shift uint
	scale float64

	subdivShift uint
	subdivSize  int
	subdivMask  int

	lx dda.Line
	ly dda.Line

	srcX      float64 // source x of the current pixel
	srcY      float64
	pos       int // steps taken in the current chunk
	remaining int // steps left in the span
}

var _ Interpolator = (*Subdiv)(nil)

// NewSubdiv creates a subdividing interpolator over t.
func NewSubdiv(t Transformer, opts ...Option) *Subdiv {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Subdiv{
		trans: t,
		shift: o.subpixelShift,
		scale: float64(int(1) << o.subpixelShift),
	}
	s.SetSubdivShift(o.subdivShift)
	return s
}

// Transformer returns the borrowed transformer.
func (s *Subdiv) Transformer() Transformer { return s.trans }

// SetTransformer replaces the transformer. Call Begin afterwards.
func (s *Subdiv) SetTransformer(t Transformer) { s.trans = t }

// SubpixelShift returns the number of fractional bits in coordinates.
func (s *Subdiv) SubpixelShift() uint { return s.shift }

// SubdivShift returns the chunk size exponent.
func (s *Subdiv) SubdivShift() uint { return s.subdivShift }

// SetSubdivShift sets the chunk size to 2^shift pixels. Call Begin afterwards.
func (s *Subdiv) SetSubdivShift(shift uint) {
	s.subdivShift = clampSubdivShift(shift)
	s.subdivSize = 1 << s.subdivShift
	s.subdivMask = s.subdivSize - 1
}

// Begin starts a span of length pixels at source point (x, y).
// A length below 1 is treated as 1.
func (s *Subdiv) Begin(x, y float64, length int) {
	length = max(length, 1)
	s.srcX = x
	s.srcY = y
	s.pos = 0
	s.remaining = length

	tx, ty := x, y
	s.trans.Transform(&tx, &ty)
	s.startChunk(toFixed(tx, s.scale), toFixed(ty, s.scale))
}

// Resynchronize continues from the current coordinates toward the
// transformed point (xe, ye), reached after length more steps. The
// continuation is taken as a horizontal run ending at (xe, ye), so chunk
// boundaries are re-sampled along that row.
func (s *Subdiv) Resynchronize(xe, ye float64, length int) {
	length = max(length, 1)
	s.srcX = xe - float64(length)
	s.srcY = ye
	s.pos = 0
	s.remaining = length
	s.startChunk(s.lx.Value(), s.ly.Value())
}

// startChunk builds the interpolators from (x1, y1) to the transformed
// end of the next chunk.
func (s *Subdiv) startChunk(x1, y1 int) {
	n := min(s.remaining, s.subdivSize)
	tx, ty := s.srcX+float64(n), s.srcY
	s.trans.Transform(&tx, &ty)
	s.lx = dda.NewLine(x1, toFixed(tx, s.scale), n)
	s.ly = dda.NewLine(y1, toFixed(ty, s.scale), n)
}

// Advance moves to the next pixel, re-sampling at chunk boundaries.
func (s *Subdiv) Advance() {
	s.lx.Advance()
	s.ly.Advance()
	s.srcX++
	s.pos++
	s.remaining--
	if s.pos&s.subdivMask == 0 && s.remaining > 0 {
		s.pos = 0
		s.startChunk(s.lx.Value(), s.ly.Value())
	}
}

// Coordinates returns the current target point in subpixel units.
func (s *Subdiv) Coordinates() (x, y int) {
	return s.lx.Value(), s.ly.Value()
}
