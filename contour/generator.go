// Package contour converts paths into outline polygons.
//
// Generator offsets a closed polygon outward by half the stroke width,
// producing joins only. Stroker produces a centred stroke with caps for
// open paths. Both accept input through AddVertex and expose the result
// as a path.VertexSource; Conv connects any VertexSource to either of
// them so that stages chain without intermediate buffers.
package contour

import (
	"github.com/gogpu/outline"
	"github.com/gogpu/outline/path"
	"github.com/gogpu/outline/stroke"
)

// VertexGenerator is a path stage fed vertex by vertex.
type VertexGenerator interface {
	path.VertexSource
	RemoveAll()
	AddVertex(x, y float64, cmd path.Command)
}

// status is the state of the Generator output machine.
type status uint8

const (
	statusInitial status = iota
	statusReady
	statusOutline
	statusOutVertices
	statusEndPoly
	statusStop
)

func (s status) String() string {
	switch s {
	case statusInitial:
		return "initial"
	case statusReady:
		return "ready"
	case statusOutline:
		return "outline"
	case statusOutVertices:
		return "out_vertices"
	case statusEndPoly:
		return "end_poly"
	case statusStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Generator builds the outward offset outline of a closed polygon.
//
// The outline is computed once per accumulated input, on the first Rewind
// or Vertex call after AddVertex. Orientation decides the offset side: a
// counter-clockwise polygon (positive area) is offset with the width as
// given, a clockwise one with the width negated, so the contour grows
// outward in both cases. A negative width shrinks the polygon instead.
type Generator struct {
	math       stroke.Math
	width      float64
	autoDetect bool

	src         path.Sequence
	out         []outline.Point
	status      status
	outVertex   int
	closed      bool
	orientation path.Orientation
}

var _ VertexGenerator = (*Generator)(nil)

// NewGenerator creates a contour generator.
func NewGenerator(opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Generator{
		math:       stroke.NewMath(o.params),
		width:      o.params.Width,
		autoDetect: o.autoDetect,
	}
}

// SetWidth sets the full stroke width. Takes effect on the next geometry pass.
func (g *Generator) SetWidth(w float64) {
	g.width = w
	g.math.SetWidth(w)
}

// Width returns the full stroke width.
func (g *Generator) Width() float64 { return g.width }

// SetLineJoin sets the outer join style.
func (g *Generator) SetLineJoin(j stroke.LineJoin) { g.math.SetLineJoin(j) }

// SetInnerJoin sets the inner join style.
func (g *Generator) SetInnerJoin(j stroke.InnerJoin) { g.math.SetInnerJoin(j) }

// SetMiterLimit sets the outer miter limit.
func (g *Generator) SetMiterLimit(l float64) { g.math.SetMiterLimit(l) }

// SetMiterLimitTheta sets the miter limit from the smallest join angle.
func (g *Generator) SetMiterLimitTheta(theta float64) {
	g.math.SetMiterLimit(stroke.MiterLimitTheta(theta))
}

// SetInnerMiterLimit sets the inner miter limit.
func (g *Generator) SetInnerMiterLimit(l float64) { g.math.SetInnerMiterLimit(l) }

// SetApproximationScale sets the round join tessellation scale.
func (g *Generator) SetApproximationScale(s float64) { g.math.SetApproximationScale(s) }

// SetAutoDetectOrientation toggles orientation detection.
func (g *Generator) SetAutoDetectOrientation(v bool) { g.autoDetect = v }

// AutoDetectOrientation reports whether orientation detection is on.
func (g *Generator) AutoDetectOrientation() bool { return g.autoDetect }

// Params returns the stroke parameters in effect.
func (g *Generator) Params() stroke.Params {
	p := g.math.Params()
	p.Width = g.width
	return p
}

// Orientation returns the orientation resolved by the last geometry pass,
// or the one recorded from input if no pass ran yet.
func (g *Generator) Orientation() path.Orientation { return g.orientation }

// RemoveAll clears input and output and resets the generator.
func (g *Generator) RemoveAll() {
	g.src.RemoveAll()
	g.out = g.out[:0]
	g.closed = false
	g.orientation = path.OrientNone
	g.status = statusInitial
}

// AddVertex feeds one input command. MoveTo restarts accumulation,
// LineTo appends, EndPoly records the polygon orientation if none was
// recorded yet. Any call invalidates the computed outline.
func (g *Generator) AddVertex(x, y float64, cmd path.Command) {
	g.status = statusInitial
	switch {
	case cmd.IsMoveTo():
		g.src.RemoveAll()
		g.orientation = path.OrientNone
		g.src.Add(path.VertexDist{X: x, Y: y})
	case cmd.IsVertex():
		g.src.Add(path.VertexDist{X: x, Y: y})
	case cmd.IsEndPoly():
		if g.orientation == path.OrientNone {
			g.orientation = cmd.Orientation()
		}
	}
}

// Rewind computes the outline if the input changed and restarts output.
// The generator holds a single path, so pathID is ignored.
func (g *Generator) Rewind(int) {
	if g.status == statusInitial {
		g.build()
	}
	g.status = statusReady
	g.outVertex = 0
}

// build runs the geometry pass.
func (g *Generator) build() {
	g.out = g.out[:0]
	g.closed = false
	g.src.Close(true)

	if g.src.Len() < 3 || g.width == 0 {
		if outline.DebugEnabled() {
			outline.Logger().Debug("contour: degenerate input",
				"vertices", g.src.Len(), "width", g.width)
		}
		return
	}

	if g.autoDetect && g.orientation == path.OrientNone {
		switch area := g.src.Area(); {
		case area > 0:
			g.orientation = path.OrientCCW
		case area < 0:
			g.orientation = path.OrientCW
		}
	}

	w := g.width
	if g.orientation == path.OrientCW {
		w = -w
	}
	g.math.SetWidth(w)

	n := g.src.Len()
	for i := 0; i < n; i++ {
		prev := g.src.Prev(i)
		curr := g.src.At(i)
		g.out = g.math.Join(g.out, prev, curr, g.src.Next(i), prev.Dist, curr.Dist)
	}
	g.closed = true

	if outline.DebugEnabled() {
		outline.Logger().Debug("contour: geometry pass",
			"vertices", n, "points", len(g.out), "orientation", g.orientation.String())
	}
}

// Vertex returns the next outline command: one MoveTo, LineTo for the
// remaining points, a single EndPoly with the close flag and resolved
// orientation, then CmdStop until the next Rewind.
func (g *Generator) Vertex() (x, y float64, cmd path.Command) {
	for {
		switch g.status {
		case statusInitial:
			g.Rewind(0)
		case statusReady:
			if len(g.out) == 0 {
				g.status = statusStop
				continue
			}
			g.outVertex = 0
			g.status = statusOutline
		case statusOutline:
			p := g.out[0]
			g.outVertex = 1
			g.status = statusOutVertices
			return p.X, p.Y, path.CmdMoveTo
		case statusOutVertices:
			if g.outVertex >= len(g.out) {
				g.status = statusEndPoly
				continue
			}
			p := g.out[g.outVertex]
			g.outVertex++
			return p.X, p.Y, path.CmdLineTo
		case statusEndPoly:
			g.status = statusStop
			flags := g.orientation.Flags()
			if g.closed {
				flags |= path.FlagClose
			}
			return 0, 0, path.EndPoly(flags)
		default: // statusStop
			return 0, 0, path.CmdStop
		}
	}
}
