// Package stroke computes the offset vertices of stroke caps and joins.
//
// The functions here are the geometric kernel shared by the contour and
// stroke generators: given two or three consecutive path vertices and a
// half-width, they append the points that form the cap or join on one
// side of the path. The sign of the width selects the side.
//
// # Line Caps
//
// Line caps define the shape of stroke endpoints:
//   - LineCapButt: Flat cap ending exactly at the endpoint
//   - LineCapSquare: Square cap extending width/2 beyond the endpoint
//   - LineCapRound: Semicircular cap with radius = width/2
//
// # Line Joins
//
// Outer joins:
//   - LineJoinMiter: Sharp corner; past the miter limit the corner is clipped at the limit
//   - LineJoinMiterRevert: Sharp corner; past the limit falls back to a bevel
//   - LineJoinRound: Circular arc at corners
//   - LineJoinBevel: Straight line across the corner
//   - LineJoinMiterRound: Sharp corner; past the limit falls back to an arc
//
// Inner joins (the concave side of a corner) use InnerJoin.
//
// # Approximation Scale
//
// Round caps and joins are tessellated so that the chord error stays
// below 1/8 of a unit after scaling by ApproximationScale. Raise it when
// the output is magnified by a later transformation.
package stroke

import "math"

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapSquare specifies a square line cap.
	LineCapSquare
	// LineCapRound specifies a rounded line cap.
	LineCapRound
)

// LineJoin specifies the shape of outer line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp join clipped at the miter limit.
	LineJoinMiter LineJoin = iota
	// LineJoinMiterRevert specifies a sharp join that becomes a bevel past the limit.
	LineJoinMiterRevert
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
	// LineJoinMiterRound specifies a sharp join that becomes round past the limit.
	LineJoinMiterRound
)

// InnerJoin specifies the shape of inner (concave side) joins.
type InnerJoin int

const (
	// InnerJoinBevel connects the two offset segments directly.
	InnerJoinBevel InnerJoin = iota
	// InnerJoinMiter intersects the offset segments, limited by the inner miter limit.
	InnerJoinMiter
	// InnerJoinJag routes through the path vertex when the segments are too short to miter.
	InnerJoinJag
	// InnerJoinRound is like InnerJoinJag with an arc around the path vertex.
	InnerJoinRound
)

// Params defines the style used for cap and join computation.
type Params struct {
	// Width is the full stroke width; caps and joins are offset by Width/2.
	Width     float64
	Cap       LineCap
	Join      LineJoin
	InnerJoin InnerJoin
	// MiterLimit is the maximum ratio of miter length to half-width.
	MiterLimit float64
	// InnerMiterLimit bounds inner miters in the same units.
	InnerMiterLimit float64
	// ApproximationScale controls round cap and join tessellation density.
	ApproximationScale float64
}

// DefaultParams returns params with default settings.
func DefaultParams() Params {
	return Params{
		Width:              1.0,
		Cap:                LineCapButt,
		Join:               LineJoinMiter,
		InnerJoin:          InnerJoinMiter,
		MiterLimit:         4.0,
		InnerMiterLimit:    1.01,
		ApproximationScale: 1.0,
	}
}

// MiterLimitTheta returns the miter limit that allows joins down to the
// angle theta (radians) between the two segments.
func MiterLimitTheta(theta float64) float64 {
	return 1.0 / math.Sin(theta*0.5)
}
