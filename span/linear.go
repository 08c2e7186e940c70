package span

import "github.com/gogpu/outline/dda"

// Linear interpolates a span between its two transformed endpoints.
//
// Only the endpoints go through the transformer, so for non-affine
// transforms the error grows with span length and with the curvature of
// the mapping. Use Subdiv to bound it.
type Linear struct {
	trans Transformer
	shift uint
	scale float64
	lx    dda.Line
	ly    dda.Line
}

var _ Interpolator = (*Linear)(nil)

// NewLinear creates a linear interpolator over t.
func NewLinear(t Transformer, opts ...Option) *Linear {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Linear{
		trans: t,
		shift: o.subpixelShift,
		scale: float64(int(1) << o.subpixelShift),
	}
}

// Transformer returns the borrowed transformer.
func (s *Linear) Transformer() Transformer { return s.trans }

// SetTransformer replaces the transformer. Call Begin afterwards.
func (s *Linear) SetTransformer(t Transformer) { s.trans = t }

// SubpixelShift returns the number of fractional bits in coordinates.
func (s *Linear) SubpixelShift() uint { return s.shift }

// Begin starts a span of length pixels at source point (x, y).
// A length below 1 is treated as 1.
func (s *Linear) Begin(x, y float64, length int) {
	length = max(length, 1)

	tx, ty := x, y
	s.trans.Transform(&tx, &ty)
	x1 := toFixed(tx, s.scale)
	y1 := toFixed(ty, s.scale)

	tx, ty = x+float64(length), y
	s.trans.Transform(&tx, &ty)
	x2 := toFixed(tx, s.scale)
	y2 := toFixed(ty, s.scale)

	s.lx = dda.NewLine(x1, x2, length)
	s.ly = dda.NewLine(y1, y2, length)
}

// Resynchronize continues from the current coordinates toward the
// transformed point (xe, ye), reached after length more steps.
func (s *Linear) Resynchronize(xe, ye float64, length int) {
	s.trans.Transform(&xe, &ye)
	s.lx = dda.NewLine(s.lx.Value(), toFixed(xe, s.scale), length)
	s.ly = dda.NewLine(s.ly.Value(), toFixed(ye, s.scale), length)
}

// Advance moves to the next pixel.
func (s *Linear) Advance() {
	s.lx.Advance()
	s.ly.Advance()
}

// Coordinates returns the current target point in subpixel units.
func (s *Linear) Coordinates() (x, y int) {
	return s.lx.Value(), s.ly.Value()
}
