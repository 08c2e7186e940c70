package contour

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/outline/path"
	"github.com/gogpu/outline/stroke"
)

func addOpen(g VertexGenerator, pts [][2]float64) {
	for i, p := range pts {
		cmd := path.CmdLineTo
		if i == 0 {
			cmd = path.CmdMoveTo
		}
		g.AddVertex(p[0], p[1], cmd)
	}
}

func TestStrokerButtSegment(t *testing.T) {
	s := NewStroker(WithWidth(2))
	addOpen(s, [][2]float64{{0, 0}, {10, 0}})

	got := path.Collect(s, 0)
	assertVertices(t, []path.Vertex{
		{X: 0, Y: 1, Cmd: path.CmdMoveTo},
		{X: 0, Y: -1, Cmd: path.CmdLineTo},
		{X: 10, Y: -1, Cmd: path.CmdLineTo},
		{X: 10, Y: 1, Cmd: path.CmdLineTo},
		{Cmd: path.EndPoly(path.FlagClose | path.FlagCW)},
	}, got)
}

func TestStrokerSquareCap(t *testing.T) {
	s := NewStroker(WithWidth(2), WithLineCap(stroke.LineCapSquare))
	addOpen(s, [][2]float64{{0, 0}, {10, 0}})

	got := path.Collect(s, 0)
	require.Len(t, got, 5)
	xs := []float64{got[0].X, got[1].X, got[2].X, got[3].X}
	assert.InDeltaSlice(t, []float64{-1, -1, 11, 11}, xs, eps)
}

func TestStrokerRoundCap(t *testing.T) {
	s := NewStroker(WithWidth(4), WithLineCap(stroke.LineCapRound))
	addOpen(s, [][2]float64{{0, 0}, {10, 0}})

	got := path.Collect(s, 0)
	require.Greater(t, len(got), 5)
	for _, v := range got {
		if !v.Cmd.IsVertex() {
			continue
		}
		switch {
		case v.X < 0:
			assert.InDelta(t, 2.0, math.Hypot(v.X, v.Y), eps)
		case v.X > 10:
			assert.InDelta(t, 2.0, math.Hypot(v.X-10, v.Y), eps)
		default:
			assert.InDelta(t, 2.0, math.Abs(v.Y), eps)
		}
	}
}

func TestStrokerClosedPolygon(t *testing.T) {
	s := NewStroker(WithWidth(2))
	feed(s, squareCCW, path.FlagNone)

	got := path.Collect(s, 0)

	var polys [][]path.Vertex
	var cur []path.Vertex
	var ends []path.Command
	for _, v := range got {
		if v.Cmd.IsEndPoly() {
			polys = append(polys, cur)
			ends = append(ends, v.Cmd)
			cur = nil
			continue
		}
		cur = append(cur, v)
	}
	require.Len(t, polys, 2)
	assert.Equal(t, path.EndPoly(path.FlagClose|path.FlagCCW), ends[0])
	assert.Equal(t, path.EndPoly(path.FlagClose|path.FlagCW), ends[1])

	// One side lies at distance 1 outside the square, the other 1 inside.
	area := func(vs []path.Vertex) float64 { return math.Abs(path.PolygonArea(vs)) }
	assert.InDelta(t, 144.0, area(polys[0]), eps)
	assert.InDelta(t, 64.0, area(polys[1]), eps)
	assert.True(t, polys[0][0].Cmd.IsMoveTo())
	assert.True(t, polys[1][0].Cmd.IsMoveTo())
}

func TestStrokerDegenerate(t *testing.T) {
	s := NewStroker(WithWidth(2))
	addOpen(s, [][2]float64{{3, 3}})
	_, _, cmd := s.Vertex()
	assert.Equal(t, path.CmdStop, cmd)

	s.RemoveAll()
	_, _, cmd = s.Vertex()
	assert.Equal(t, path.CmdStop, cmd)
}

func TestStrokerParams(t *testing.T) {
	s := NewStroker(WithParams(stroke.Params{
		Width:              6,
		Cap:                stroke.LineCapRound,
		Join:               stroke.LineJoinBevel,
		InnerJoin:          stroke.InnerJoinJag,
		MiterLimit:         3,
		InnerMiterLimit:    1.5,
		ApproximationScale: 2,
	}))
	p := s.Params()
	assert.Equal(t, 6.0, p.Width)
	assert.Equal(t, stroke.LineCapRound, p.Cap)
	assert.Equal(t, stroke.InnerJoinJag, p.InnerJoin)

	s.SetWidth(1)
	s.SetLineCap(stroke.LineCapButt)
	assert.Equal(t, 1.0, s.Params().Width)
	assert.Equal(t, stroke.LineCapButt, s.Params().Cap)
}
