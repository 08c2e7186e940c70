package path

import "math"

// VertexDistEpsilon is the distance below which two consecutive vertices
// are treated as coincident.
const VertexDistEpsilon = 1e-14

// VertexDist is a vertex that caches the distance to its successor in a
// Sequence.
type VertexDist struct {
	X, Y float64
	Dist float64
}

// link stores the distance to next and reports whether the two vertices
// are distinct. Coincident vertices get a huge Dist so that a division by
// it never blows up.
func (v *VertexDist) link(next VertexDist) bool {
	v.Dist = math.Hypot(next.X-v.X, next.Y-v.Y)
	if v.Dist > VertexDistEpsilon {
		return true
	}
	v.Dist = 1 / VertexDistEpsilon
	return false
}

// Sequence is an ordered vertex buffer that coalesces coincident
// neighbours. Coalescing lags one vertex behind Add; call Close before
// reading the final geometry.
type Sequence struct {
	v []VertexDist
}

// Len returns the number of vertices.
func (s *Sequence) Len() int { return len(s.v) }

// At returns the vertex at index i.
func (s *Sequence) At(i int) VertexDist { return s.v[i] }

// Prev returns the vertex before i, wrapping around.
func (s *Sequence) Prev(i int) VertexDist { return s.v[(i+len(s.v)-1)%len(s.v)] }

// Next returns the vertex after i, wrapping around.
func (s *Sequence) Next(i int) VertexDist { return s.v[(i+1)%len(s.v)] }

// Add appends v, first dropping the current last vertex if it coincides
// with its predecessor.
func (s *Sequence) Add(v VertexDist) {
	if n := len(s.v); n > 1 && !s.v[n-2].link(s.v[n-1]) {
		s.v = s.v[:n-1]
	}
	s.v = append(s.v, v)
}

// ModifyLast replaces the last vertex with v.
func (s *Sequence) ModifyLast(v VertexDist) {
	s.RemoveLast()
	s.Add(v)
}

// RemoveLast drops the last vertex, if any.
func (s *Sequence) RemoveLast() {
	if len(s.v) > 0 {
		s.v = s.v[:len(s.v)-1]
	}
}

// RemoveAll empties the sequence, keeping its storage.
func (s *Sequence) RemoveAll() { s.v = s.v[:0] }

// Close finishes coalescing and links every vertex to its successor. When
// closed is true, trailing vertices that coincide with the first one are
// dropped and the last vertex is linked back to the first.
func (s *Sequence) Close(closed bool) {
	for len(s.v) > 1 {
		n := len(s.v)
		if s.v[n-2].link(s.v[n-1]) {
			break
		}
		t := s.v[n-1]
		s.RemoveLast()
		s.ModifyLast(t)
	}
	if closed {
		for len(s.v) > 1 {
			if s.v[len(s.v)-1].link(s.v[0]) {
				break
			}
			s.RemoveLast()
		}
	}
}

// Area returns the signed shoelace area of the sequence treated as a
// closed polygon. Positive means counter-clockwise.
func (s *Sequence) Area() float64 {
	return polygonArea(len(s.v), func(i int) (float64, float64) {
		return s.v[i].X, s.v[i].Y
	})
}

// PolygonArea returns the signed shoelace area of a closed polygon given
// by its vertices. Positive means counter-clockwise.
func PolygonArea(pts []Vertex) float64 {
	return polygonArea(len(pts), func(i int) (float64, float64) {
		return pts[i].X, pts[i].Y
	})
}

func polygonArea(n int, at func(int) (float64, float64)) float64 {
	if n < 3 {
		return 0
	}
	x0, y0 := at(0)
	x, y := x0, y0
	var sum float64
	for i := 1; i < n; i++ {
		nx, ny := at(i)
		sum += x*ny - y*nx
		x, y = nx, ny
	}
	return (sum + x*y0 - y*x0) * 0.5
}
