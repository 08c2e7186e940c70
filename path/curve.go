package path

import (
	"honnef.co/go/curve"
)

// DefaultFlattenTolerance is the maximum distance between a curve and its
// polyline approximation used by AppendBezPath when tolerance is not
// positive.
const DefaultFlattenTolerance = 0.25

// AppendBezPath flattens a Bézier path into line segments and appends them
// to s. Close elements become closed EndPoly commands.
func AppendBezPath(s *Storage, p curve.BezPath, tolerance float64) {
	if tolerance <= 0 {
		tolerance = DefaultFlattenTolerance
	}
	for el := range p.Flatten(tolerance) {
		switch el.Kind {
		case curve.MoveToKind:
			s.MoveTo(el.P0.X, el.P0.Y)
		case curve.LineToKind:
			s.LineTo(el.P0.X, el.P0.Y)
		case curve.ClosePathKind:
			s.ClosePolygon()
		}
	}
}
