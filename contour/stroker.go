package contour

import (
	"github.com/gogpu/outline"
	"github.com/gogpu/outline/path"
	"github.com/gogpu/outline/stroke"
)

type strokerStatus uint8

const (
	strokerInitial strokerStatus = iota
	strokerReady
	strokerCap1
	strokerCap2
	strokerOutline1
	strokerCloseFirst
	strokerOutline2
	strokerOutVertices
	strokerEndPoly1
	strokerEndPoly2
	strokerStop
)

// Stroker builds a centred stroke outline of width Width around a path.
//
// An open path becomes one closed polygon: the left side forward, the end
// cap, the right side backward and the start cap. A closed path becomes
// two polygons, the outer side flagged CCW and the inner side flagged CW,
// which fill correctly under the non-zero rule.
type Stroker struct {
	math stroke.Math

	src        path.Sequence
	out        []outline.Point
	status     strokerStatus
	prevStatus strokerStatus
	srcVertex  int
	outVertex  int
	closed     bool
}

var _ VertexGenerator = (*Stroker)(nil)

// NewStroker creates a stroke generator. WithAutoDetectOrientation has no
// effect on it.
func NewStroker(opts ...Option) *Stroker {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Stroker{math: stroke.NewMath(o.params)}
}

// SetWidth sets the full stroke width.
func (s *Stroker) SetWidth(w float64) { s.math.SetWidth(w) }

// SetLineCap sets the cap style.
func (s *Stroker) SetLineCap(c stroke.LineCap) { s.math.SetLineCap(c) }

// SetLineJoin sets the outer join style.
func (s *Stroker) SetLineJoin(j stroke.LineJoin) { s.math.SetLineJoin(j) }

// SetInnerJoin sets the inner join style.
func (s *Stroker) SetInnerJoin(j stroke.InnerJoin) { s.math.SetInnerJoin(j) }

// SetMiterLimit sets the outer miter limit.
func (s *Stroker) SetMiterLimit(l float64) { s.math.SetMiterLimit(l) }

// SetInnerMiterLimit sets the inner miter limit.
func (s *Stroker) SetInnerMiterLimit(l float64) { s.math.SetInnerMiterLimit(l) }

// SetApproximationScale sets the round cap and join tessellation scale.
func (s *Stroker) SetApproximationScale(v float64) { s.math.SetApproximationScale(v) }

// Params returns the stroke parameters in effect.
func (s *Stroker) Params() stroke.Params { return s.math.Params() }

// RemoveAll clears the input and resets the stroker.
func (s *Stroker) RemoveAll() {
	s.src.RemoveAll()
	s.closed = false
	s.status = strokerInitial
}

// AddVertex feeds one input command.
func (s *Stroker) AddVertex(x, y float64, cmd path.Command) {
	s.status = strokerInitial
	switch {
	case cmd.IsMoveTo():
		s.src.RemoveAll()
		s.closed = false
		s.src.Add(path.VertexDist{X: x, Y: y})
	case cmd.IsVertex():
		s.src.Add(path.VertexDist{X: x, Y: y})
	case cmd.IsEndPoly():
		s.closed = cmd.IsClosed()
	}
}

// Rewind finalizes the input if it changed and restarts output.
func (s *Stroker) Rewind(int) {
	if s.status == strokerInitial {
		s.src.Close(s.closed)
		if s.src.Len() < 3 {
			s.closed = false
		}
	}
	s.status = strokerReady
	s.srcVertex = 0
	s.outVertex = 0
}

// Vertex returns the next stroke outline command.
func (s *Stroker) Vertex() (x, y float64, cmd path.Command) {
	cmd = path.CmdLineTo
	for {
		switch s.status {
		case strokerInitial:
			s.Rewind(0)

		case strokerReady:
			minLen := 2
			if s.closed {
				minLen = 3
			}
			if s.src.Len() < minLen {
				return 0, 0, path.CmdStop
			}
			if s.closed {
				s.status = strokerOutline1
			} else {
				s.status = strokerCap1
			}
			cmd = path.CmdMoveTo
			s.srcVertex = 0
			s.outVertex = 0

		case strokerCap1:
			v0 := s.src.At(0)
			s.out = s.math.Cap(s.out[:0], v0, s.src.At(1), v0.Dist)
			s.srcVertex = 1
			s.prevStatus = strokerOutline1
			s.status = strokerOutVertices
			s.outVertex = 0

		case strokerCap2:
			n := s.src.Len()
			last := s.src.At(n - 2)
			s.out = s.math.Cap(s.out[:0], s.src.At(n-1), last, last.Dist)
			s.prevStatus = strokerOutline2
			s.status = strokerOutVertices
			s.outVertex = 0

		case strokerOutline1:
			n := s.src.Len()
			if s.closed {
				if s.srcVertex >= n {
					s.prevStatus = strokerCloseFirst
					s.status = strokerEndPoly1
					continue
				}
			} else if s.srcVertex >= n-1 {
				s.status = strokerCap2
				continue
			}
			prev := s.src.Prev(s.srcVertex)
			curr := s.src.At(s.srcVertex)
			s.out = s.math.Join(s.out[:0], prev, curr, s.src.Next(s.srcVertex), prev.Dist, curr.Dist)
			s.srcVertex++
			s.prevStatus = s.status
			s.status = strokerOutVertices
			s.outVertex = 0

		case strokerCloseFirst:
			s.status = strokerOutline2
			cmd = path.CmdMoveTo

		case strokerOutline2:
			stopAt := 0
			if !s.closed {
				stopAt = 1
			}
			if s.srcVertex <= stopAt {
				s.status = strokerEndPoly2
				s.prevStatus = strokerStop
				continue
			}
			s.srcVertex--
			prev := s.src.Prev(s.srcVertex)
			curr := s.src.At(s.srcVertex)
			s.out = s.math.Join(s.out[:0], s.src.Next(s.srcVertex), curr, prev, curr.Dist, prev.Dist)
			s.prevStatus = s.status
			s.status = strokerOutVertices
			s.outVertex = 0

		case strokerOutVertices:
			if s.outVertex >= len(s.out) {
				s.status = s.prevStatus
				continue
			}
			p := s.out[s.outVertex]
			s.outVertex++
			return p.X, p.Y, cmd

		case strokerEndPoly1:
			s.status = s.prevStatus
			return 0, 0, path.EndPoly(path.FlagClose | path.FlagCCW)

		case strokerEndPoly2:
			s.status = s.prevStatus
			return 0, 0, path.EndPoly(path.FlagClose | path.FlagCW)

		default: // strokerStop
			return 0, 0, path.CmdStop
		}
	}
}
