package contour

import "github.com/gogpu/outline/stroke"

// Option configures a Generator or Stroker during creation.
//
// Example:
//
//	gen := contour.NewGenerator(
//	    contour.WithWidth(2),
//	    contour.WithLineJoin(stroke.LineJoinRound),
//	    contour.WithAutoDetectOrientation(true),
//	)
type Option func(*options)

// options holds optional configuration for generator creation.
type options struct {
	params     stroke.Params
	autoDetect bool
}

// defaultOptions returns the default generator options.
func defaultOptions() options {
	return options{
		params:     stroke.DefaultParams(),
		autoDetect: false,
	}
}

// WithParams replaces all stroke parameters at once.
func WithParams(p stroke.Params) Option {
	return func(o *options) {
		o.params = p
	}
}

// WithWidth sets the full stroke width.
// For a contour the outline is offset by width/2.
func WithWidth(w float64) Option {
	return func(o *options) {
		o.params.Width = w
	}
}

// WithLineCap sets the cap style. Contours are closed and ignore it.
func WithLineCap(c stroke.LineCap) Option {
	return func(o *options) {
		o.params.Cap = c
	}
}

// WithLineJoin sets the outer join style.
func WithLineJoin(j stroke.LineJoin) Option {
	return func(o *options) {
		o.params.Join = j
	}
}

// WithInnerJoin sets the inner join style.
func WithInnerJoin(j stroke.InnerJoin) Option {
	return func(o *options) {
		o.params.InnerJoin = j
	}
}

// WithMiterLimit sets the outer miter limit.
func WithMiterLimit(l float64) Option {
	return func(o *options) {
		o.params.MiterLimit = l
	}
}

// WithInnerMiterLimit sets the inner miter limit.
func WithInnerMiterLimit(l float64) Option {
	return func(o *options) {
		o.params.InnerMiterLimit = l
	}
}

// WithApproximationScale sets the round join tessellation scale.
func WithApproximationScale(s float64) Option {
	return func(o *options) {
		o.params.ApproximationScale = s
	}
}

// WithAutoDetectOrientation enables orientation detection from the
// polygon's signed area when the input carries no orientation flag.
func WithAutoDetectOrientation(v bool) Option {
	return func(o *options) {
		o.autoDetect = v
	}
}
