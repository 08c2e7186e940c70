package stroke

import (
	"math"

	"github.com/gogpu/outline"
	"github.com/gogpu/outline/path"
)

// intersectionEpsilon is the smallest denominator accepted when
// intersecting two offset lines.
const intersectionEpsilon = 1.0e-30

// Math holds the resolved stroke parameters and computes caps and joins.
// The zero value is not usable; create it with NewMath.
type Math struct {
	width      float64 // signed half-width
	widthAbs   float64
	widthEps   float64
	widthSign  float64
	cap        LineCap
	join       LineJoin
	innerJoin  InnerJoin
	miterLimit float64
	innerLimit float64
	approx     float64
}

// NewMath resolves p into a Math.
func NewMath(p Params) Math {
	m := Math{
		cap:        p.Cap,
		join:       p.Join,
		innerJoin:  p.InnerJoin,
		miterLimit: p.MiterLimit,
		innerLimit: p.InnerMiterLimit,
	}
	m.SetApproximationScale(p.ApproximationScale)
	m.SetWidth(p.Width)
	return m
}

// SetWidth sets the full stroke width. A negative width offsets to the
// other side of the path.
func (m *Math) SetWidth(w float64) {
	m.width = w * 0.5
	if m.width < 0 {
		m.widthAbs = -m.width
		m.widthSign = -1
	} else {
		m.widthAbs = m.width
		m.widthSign = 1
	}
	m.widthEps = m.widthAbs / 1024.0
}

// Width returns the full stroke width.
func (m *Math) Width() float64 { return m.width * 2 }

// SetLineCap sets the cap style.
func (m *Math) SetLineCap(c LineCap) { m.cap = c }

// SetLineJoin sets the outer join style.
func (m *Math) SetLineJoin(j LineJoin) { m.join = j }

// SetInnerJoin sets the inner join style.
func (m *Math) SetInnerJoin(j InnerJoin) { m.innerJoin = j }

// SetMiterLimit sets the outer miter limit.
func (m *Math) SetMiterLimit(l float64) { m.miterLimit = l }

// SetInnerMiterLimit sets the inner miter limit.
func (m *Math) SetInnerMiterLimit(l float64) { m.innerLimit = l }

// SetApproximationScale sets the round tessellation scale. Non-positive
// values are ignored.
func (m *Math) SetApproximationScale(s float64) {
	if s > 0 {
		m.approx = s
	} else if m.approx == 0 {
		m.approx = 1
	}
}

// Params returns the current parameters.
func (m *Math) Params() Params {
	return Params{
		Width:              m.Width(),
		Cap:                m.cap,
		Join:               m.join,
		InnerJoin:          m.innerJoin,
		MiterLimit:         m.miterLimit,
		InnerMiterLimit:    m.innerLimit,
		ApproximationScale: m.approx,
	}
}

// Cap appends the cap at v0 of the segment v0→v1 of length length.
func (m *Math) Cap(out []outline.Point, v0, v1 path.VertexDist, length float64) []outline.Point {
	dx1 := (v1.Y - v0.Y) / length * m.width
	dy1 := (v1.X - v0.X) / length * m.width

	if m.cap != LineCapRound {
		var dx2, dy2 float64
		if m.cap == LineCapSquare {
			dx2 = dy1 * m.widthSign
			dy2 = dx1 * m.widthSign
		}
		out = append(out,
			outline.Pt(v0.X-dx1-dx2, v0.Y+dy1-dy2),
			outline.Pt(v0.X+dx1-dx2, v0.Y-dy1-dy2))
		return out
	}

	da := m.arcStep()
	n := int(math.Pi / da)
	da = math.Pi / float64(n+1)
	out = append(out, outline.Pt(v0.X-dx1, v0.Y+dy1))
	if m.widthSign > 0 {
		a1 := math.Atan2(dy1, -dx1) + da
		for i := 0; i < n; i++ {
			out = append(out, outline.Pt(v0.X+math.Cos(a1)*m.width, v0.Y+math.Sin(a1)*m.width))
			a1 += da
		}
	} else {
		a1 := math.Atan2(-dy1, dx1) - da
		for i := 0; i < n; i++ {
			out = append(out, outline.Pt(v0.X+math.Cos(a1)*m.width, v0.Y+math.Sin(a1)*m.width))
			a1 -= da
		}
	}
	return append(out, outline.Pt(v0.X+dx1, v0.Y-dy1))
}

// Join appends the join at v1 between segments v0→v1 (length len1) and
// v1→v2 (length len2).
func (m *Math) Join(out []outline.Point, v0, v1, v2 path.VertexDist, len1, len2 float64) []outline.Point {
	dx1 := m.width * (v1.Y - v0.Y) / len1
	dy1 := m.width * (v1.X - v0.X) / len1
	dx2 := m.width * (v2.Y - v1.Y) / len2
	dy2 := m.width * (v2.X - v1.X) / len2

	cp := crossProduct(v0.X, v0.Y, v1.X, v1.Y, v2.X, v2.Y)
	if (cp > path.VertexDistEpsilon && m.width > 0) || (cp < -path.VertexDistEpsilon && m.width < 0) {
		return m.innerJoinPoints(out, v0, v1, v2, dx1, dy1, dx2, dy2, len1, len2)
	}

	dx := (dx1 + dx2) / 2
	dy := (dy1 + dy2) / 2
	dbevel := math.Sqrt(dx*dx + dy*dy)

	if m.join == LineJoinRound || m.join == LineJoinBevel {
		// Nearly collinear segments: the bevel is invisible, a single
		// point is enough.
		if m.approx*(m.widthAbs-dbevel) < m.widthEps {
			if xi, yi, ok := intersection(
				v0.X+dx1, v0.Y-dy1, v1.X+dx1, v1.Y-dy1,
				v1.X+dx2, v1.Y-dy2, v2.X+dx2, v2.Y-dy2); ok {
				return append(out, outline.Pt(xi, yi))
			}
			return append(out, outline.Pt(v1.X+dx1, v1.Y-dy1))
		}
	}

	switch m.join {
	case LineJoinMiter, LineJoinMiterRevert, LineJoinMiterRound:
		return m.miter(out, v0, v1, v2, dx1, dy1, dx2, dy2, m.join, m.miterLimit, dbevel)
	case LineJoinRound:
		return m.arc(out, v1.X, v1.Y, dx1, -dy1, dx2, -dy2)
	default:
		return append(out,
			outline.Pt(v1.X+dx1, v1.Y-dy1),
			outline.Pt(v1.X+dx2, v1.Y-dy2))
	}
}

func (m *Math) innerJoinPoints(out []outline.Point, v0, v1, v2 path.VertexDist, dx1, dy1, dx2, dy2, len1, len2 float64) []outline.Point {
	limit := math.Min(len1, len2) / m.widthAbs
	if limit < m.innerLimit {
		limit = m.innerLimit
	}

	switch m.innerJoin {
	case InnerJoinMiter:
		return m.miter(out, v0, v1, v2, dx1, dy1, dx2, dy2, LineJoinMiterRevert, limit, 0)
	case InnerJoinJag, InnerJoinRound:
		d := (dx1-dx2)*(dx1-dx2) + (dy1-dy2)*(dy1-dy2)
		if d < len1*len1 && d < len2*len2 {
			return m.miter(out, v0, v1, v2, dx1, dy1, dx2, dy2, LineJoinMiterRevert, limit, 0)
		}
		if m.innerJoin == InnerJoinJag {
			return append(out,
				outline.Pt(v1.X+dx1, v1.Y-dy1),
				outline.Pt(v1.X, v1.Y),
				outline.Pt(v1.X+dx2, v1.Y-dy2))
		}
		out = append(out, outline.Pt(v1.X+dx1, v1.Y-dy1), outline.Pt(v1.X, v1.Y))
		out = m.arc(out, v1.X, v1.Y, dx2, -dy2, dx1, -dy1)
		return append(out, outline.Pt(v1.X, v1.Y), outline.Pt(v1.X+dx2, v1.Y-dy2))
	default:
		return append(out,
			outline.Pt(v1.X+dx1, v1.Y-dy1),
			outline.Pt(v1.X+dx2, v1.Y-dy2))
	}
}

// miter appends a miter join, falling back according to lj when the
// miter length exceeds mlimit half-widths.
func (m *Math) miter(out []outline.Point, v0, v1, v2 path.VertexDist, dx1, dy1, dx2, dy2 float64, lj LineJoin, mlimit, dbevel float64) []outline.Point {
	di := 1.0
	lim := m.widthAbs * mlimit
	limitExceeded := true
	intersectionFailed := true

	xi, yi, ok := intersection(
		v0.X+dx1, v0.Y-dy1, v1.X+dx1, v1.Y-dy1,
		v1.X+dx2, v1.Y-dy2, v2.X+dx2, v2.Y-dy2)
	if ok {
		di = math.Hypot(xi-v1.X, yi-v1.Y)
		if di <= lim {
			out = append(out, outline.Pt(xi, yi))
			limitExceeded = false
		}
		intersectionFailed = false
	} else {
		// The three points are collinear. If v0 and v2 lie on opposite
		// sides of the perpendicular at v1 the path continues straight.
		x2 := v1.X + dx1
		y2 := v1.Y - dy1
		if (crossProduct(v0.X, v0.Y, v1.X, v1.Y, x2, y2) < 0) ==
			(crossProduct(v1.X, v1.Y, v2.X, v2.Y, x2, y2) < 0) {
			out = append(out, outline.Pt(v1.X+dx1, v1.Y-dy1))
			limitExceeded = false
		}
	}

	if !limitExceeded {
		return out
	}

	switch lj {
	case LineJoinMiterRevert:
		return append(out,
			outline.Pt(v1.X+dx1, v1.Y-dy1),
			outline.Pt(v1.X+dx2, v1.Y-dy2))
	case LineJoinMiterRound:
		return m.arc(out, v1.X, v1.Y, dx1, -dy1, dx2, -dy2)
	}

	if intersectionFailed {
		mlimit *= m.widthSign
		return append(out,
			outline.Pt(v1.X+dx1+dy1*mlimit, v1.Y-dy1+dx1*mlimit),
			outline.Pt(v1.X+dx2-dy2*mlimit, v1.Y-dy2-dx2*mlimit))
	}

	x1 := v1.X + dx1
	y1 := v1.Y - dy1
	x2 := v1.X + dx2
	y2 := v1.Y - dy2
	di = (lim - dbevel) / (di - dbevel)
	return append(out,
		outline.Pt(x1+(xi-x1)*di, y1+(yi-y1)*di),
		outline.Pt(x2+(xi-x2)*di, y2+(yi-y2)*di))
}

// arc appends an arc around (x, y) from offset (dx1, dy1) to (dx2, dy2).
func (m *Math) arc(out []outline.Point, x, y, dx1, dy1, dx2, dy2 float64) []outline.Point {
	a1 := math.Atan2(dy1*m.widthSign, dx1*m.widthSign)
	a2 := math.Atan2(dy2*m.widthSign, dx2*m.widthSign)
	da := m.arcStep()

	out = append(out, outline.Pt(x+dx1, y+dy1))
	if m.widthSign > 0 {
		if a1 > a2 {
			a2 += 2 * math.Pi
		}
		n := int((a2 - a1) / da)
		da = (a2 - a1) / float64(n+1)
		a1 += da
		for i := 0; i < n; i++ {
			out = append(out, outline.Pt(x+math.Cos(a1)*m.width, y+math.Sin(a1)*m.width))
			a1 += da
		}
	} else {
		if a1 < a2 {
			a2 -= 2 * math.Pi
		}
		n := int((a1 - a2) / da)
		da = (a1 - a2) / float64(n+1)
		a1 -= da
		for i := 0; i < n; i++ {
			out = append(out, outline.Pt(x+math.Cos(a1)*m.width, y+math.Sin(a1)*m.width))
			a1 -= da
		}
	}
	return append(out, outline.Pt(x+dx2, y+dy2))
}

// arcStep is the angular step that keeps the chord error below 1/8 unit
// at the current approximation scale.
func (m *Math) arcStep() float64 {
	return math.Acos(m.widthAbs/(m.widthAbs+0.125/m.approx)) * 2
}

func crossProduct(x1, y1, x2, y2, x, y float64) float64 {
	return (x-x2)*(y2-y1) - (y-y2)*(x2-x1)
}

// intersection intersects line a→b with line c→d.
func intersection(ax, ay, bx, by, cx, cy, dx, dy float64) (x, y float64, ok bool) {
	num := (ay-cy)*(dx-cx) - (ax-cx)*(dy-cy)
	den := (bx-ax)*(dy-cy) - (by-ay)*(dx-cx)
	if math.Abs(den) < intersectionEpsilon {
		return 0, 0, false
	}
	r := num / den
	return ax + r*(bx-ax), ay + r*(by-ay), true
}
