package contour

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/outline/path"
	"github.com/gogpu/outline/stroke"
)

const eps = 1e-9

// feed adds a closed polygon to g, with an optional orientation flag.
func feed(g VertexGenerator, pts [][2]float64, flags path.Flags) {
	for i, p := range pts {
		cmd := path.CmdLineTo
		if i == 0 {
			cmd = path.CmdMoveTo
		}
		g.AddVertex(p[0], p[1], cmd)
	}
	g.AddVertex(0, 0, path.EndPoly(path.FlagClose|flags))
}

var (
	squareCCW = [][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	squareCW  = [][2]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
)

func assertVertices(t *testing.T, want, got []path.Vertex) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Cmd, got[i].Cmd, "cmd %d", i)
		if want[i].Cmd.IsVertex() {
			assert.InDelta(t, want[i].X, got[i].X, eps, "x %d", i)
			assert.InDelta(t, want[i].Y, got[i].Y, eps, "y %d", i)
		}
	}
}

// Within the miter limit each corner yields a single point. The 8-point
// outline of the same square comes from a bevel join, see
// TestGeneratorSquareBevel.
func TestGeneratorSquareMiter(t *testing.T) {
	g := NewGenerator(WithWidth(2), WithMiterLimit(4), WithAutoDetectOrientation(true))
	feed(g, squareCCW, path.FlagNone)

	got := path.Collect(g, 0)
	assertVertices(t, []path.Vertex{
		{X: -1, Y: -1, Cmd: path.CmdMoveTo},
		{X: 11, Y: -1, Cmd: path.CmdLineTo},
		{X: 11, Y: 11, Cmd: path.CmdLineTo},
		{X: -1, Y: 11, Cmd: path.CmdLineTo},
		{Cmd: path.EndPoly(path.FlagClose | path.FlagCCW)},
	}, got)
	assert.Equal(t, path.OrientCCW, g.Orientation())
}

func TestGeneratorSquareBevel(t *testing.T) {
	g := NewGenerator(WithWidth(2), WithLineJoin(stroke.LineJoinBevel), WithAutoDetectOrientation(true))
	feed(g, squareCCW, path.FlagNone)

	got := path.Collect(g, 0)
	assertVertices(t, []path.Vertex{
		{X: -1, Y: 0, Cmd: path.CmdMoveTo},
		{X: 0, Y: -1, Cmd: path.CmdLineTo},
		{X: 10, Y: -1, Cmd: path.CmdLineTo},
		{X: 11, Y: 0, Cmd: path.CmdLineTo},
		{X: 11, Y: 10, Cmd: path.CmdLineTo},
		{X: 10, Y: 11, Cmd: path.CmdLineTo},
		{X: 0, Y: 11, Cmd: path.CmdLineTo},
		{X: -1, Y: 10, Cmd: path.CmdLineTo},
		{Cmd: path.EndPoly(path.FlagClose | path.FlagCCW)},
	}, got)
}

func TestGeneratorRoundJoinDistance(t *testing.T) {
	g := NewGenerator(WithWidth(2), WithLineJoin(stroke.LineJoinRound), WithAutoDetectOrientation(true))
	feed(g, squareCCW, path.FlagNone)

	got := path.Collect(g, 0)
	require.Greater(t, len(got), 9)
	for _, v := range got {
		if !v.Cmd.IsVertex() {
			continue
		}
		// distance from the outside of the square [0,10]x[0,10]
		dx := math.Max(math.Max(-v.X, 0), v.X-10)
		dy := math.Max(math.Max(-v.Y, 0), v.Y-10)
		assert.InDelta(t, 1.0, math.Hypot(dx, dy), 1e-9, "(%g, %g)", v.X, v.Y)
	}
}

func TestGeneratorOrientation(t *testing.T) {
	outward := func(pts [][2]float64) [][2]float64 {
		out := make([][2]float64, len(pts))
		for i, p := range pts {
			for j := range p {
				if p[j] == 0 {
					out[i][j] = -1
				} else {
					out[i][j] = 11
				}
			}
		}
		return out
	}
	inward := func(pts [][2]float64) [][2]float64 {
		out := make([][2]float64, len(pts))
		for i, p := range pts {
			for j := range p {
				if p[j] == 0 {
					out[i][j] = 1
				} else {
					out[i][j] = 9
				}
			}
		}
		return out
	}

	tests := []struct {
		name       string
		pts        [][2]float64
		flags      path.Flags
		autoDetect bool
		want       [][2]float64
		wantOrient path.Orientation
	}{
		{"ccw auto", squareCCW, path.FlagNone, true, outward(squareCCW), path.OrientCCW},
		{"cw auto", squareCW, path.FlagNone, true, outward(squareCW), path.OrientCW},
		{"ccw plain", squareCCW, path.FlagNone, false, outward(squareCCW), path.OrientNone},
		{"cw plain shrinks", squareCW, path.FlagNone, false, inward(squareCW), path.OrientNone},
		{"cw flagged", squareCW, path.FlagCW, false, outward(squareCW), path.OrientCW},
		{"flag wins over area", squareCCW, path.FlagCW, true, inward(squareCCW), path.OrientCW},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(WithWidth(2), WithAutoDetectOrientation(tt.autoDetect))
			feed(g, tt.pts, tt.flags)
			got := path.Collect(g, 0)

			require.Len(t, got, len(tt.want)+1)
			for i, w := range tt.want {
				assert.InDelta(t, w[0], got[i].X, eps, "x %d", i)
				assert.InDelta(t, w[1], got[i].Y, eps, "y %d", i)
			}
			end := got[len(got)-1].Cmd
			assert.True(t, end.IsClosed())
			assert.Equal(t, tt.wantOrient, end.Orientation())
			assert.Equal(t, tt.wantOrient, g.Orientation())
		})
	}
}

func TestGeneratorConcave(t *testing.T) {
	tests := []struct {
		name       string
		pts        [][2]float64
		want       [][2]float64
		wantOrient path.Orientation
	}{
		{
			"l-shape ccw",
			[][2]float64{{0, 0}, {10, 0}, {10, 5}, {5, 5}, {5, 10}, {0, 10}},
			[][2]float64{{-1, -1}, {11, -1}, {11, 6}, {6, 6}, {6, 11}, {-1, 11}},
			path.OrientCCW,
		},
		{
			"l-shape cw",
			[][2]float64{{0, 0}, {0, 10}, {5, 10}, {5, 5}, {10, 5}, {10, 0}},
			[][2]float64{{-1, -1}, {-1, 11}, {6, 11}, {6, 6}, {11, 6}, {11, -1}},
			path.OrientCW,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(WithWidth(2), WithAutoDetectOrientation(true))
			feed(g, tt.pts, path.FlagNone)

			want := make([]path.Vertex, 0, len(tt.want)+1)
			for i, w := range tt.want {
				cmd := path.CmdLineTo
				if i == 0 {
					cmd = path.CmdMoveTo
				}
				want = append(want, path.Vertex{X: w[0], Y: w[1], Cmd: cmd})
			}
			want = append(want, path.Vertex{Cmd: path.EndPoly(path.FlagClose | tt.wantOrient.Flags())})

			assertVertices(t, want, path.Collect(g, 0))
			assert.Equal(t, tt.wantOrient, g.Orientation())
		})
	}
}

func TestGeneratorDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		pts   [][2]float64
	}{
		{"zero width", 0, squareCCW},
		{"two vertices", 2, [][2]float64{{0, 0}, {10, 0}}},
		{"coincident", 2, [][2]float64{{5, 5}, {5, 5}, {5, 5}, {5, 5}}},
		{"closing duplicate", 2, [][2]float64{{0, 0}, {10, 0}, {0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(WithWidth(tt.width), WithAutoDetectOrientation(true))
			feed(g, tt.pts, path.FlagNone)
			g.Rewind(0)
			_, _, cmd := g.Vertex()
			assert.Equal(t, path.CmdStop, cmd)
		})
	}
}

func TestGeneratorZeroAreaNoOrientation(t *testing.T) {
	g := NewGenerator(WithWidth(2), WithAutoDetectOrientation(true))
	feed(g, [][2]float64{{0, 0}, {10, 0}, {20, 0}}, path.FlagNone)
	got := path.Collect(g, 0)
	require.NotEmpty(t, got)
	assert.Equal(t, path.OrientNone, got[len(got)-1].Cmd.Orientation())
}

func TestGeneratorRemoveAll(t *testing.T) {
	g := NewGenerator(WithWidth(2))
	feed(g, squareCCW, path.FlagNone)
	require.NotEmpty(t, path.Collect(g, 0))

	g.RemoveAll()
	_, _, cmd := g.Vertex()
	assert.Equal(t, path.CmdStop, cmd)
	assert.Equal(t, path.OrientNone, g.Orientation())
}

func TestGeneratorStopPersists(t *testing.T) {
	g := NewGenerator(WithWidth(2))
	feed(g, squareCCW, path.FlagNone)
	path.Collect(g, 0)

	for range 3 {
		_, _, cmd := g.Vertex()
		assert.Equal(t, path.CmdStop, cmd)
	}
}

func TestGeneratorRewindReplays(t *testing.T) {
	g := NewGenerator(WithWidth(3), WithLineJoin(stroke.LineJoinRound))
	feed(g, [][2]float64{{0, 0}, {30, 5}, {12, 40}, {-8, 20}}, path.FlagNone)

	first := path.Collect(g, 0)
	second := path.Collect(g, 0)
	assert.Equal(t, first, second)
}

func TestGeneratorMoveToRestarts(t *testing.T) {
	g := NewGenerator(WithWidth(2), WithAutoDetectOrientation(true))
	feed(g, [][2]float64{{100, 100}, {200, 100}, {200, 200}}, path.FlagCW)
	feed(g, squareCCW, path.FlagNone)

	got := path.Collect(g, 0)
	require.Len(t, got, 5)
	assert.InDelta(t, -1.0, got[0].X, eps)
	assert.InDelta(t, -1.0, got[0].Y, eps)
	assert.Equal(t, path.OrientCCW, got[4].Cmd.Orientation())
}

func TestGeneratorInputChangeRecomputes(t *testing.T) {
	g := NewGenerator(WithWidth(2))
	feed(g, squareCCW, path.FlagNone)
	before := path.Collect(g, 0)

	g.SetWidth(4)
	g.AddVertex(0, 10, path.CmdLineTo) // any input invalidates the outline
	after := path.Collect(g, 0)

	require.Len(t, after, len(before))
	assert.InDelta(t, -2.0, after[0].X, eps)
	assert.InDelta(t, -2.0, after[0].Y, eps)
}

func TestGeneratorParams(t *testing.T) {
	g := NewGenerator(
		WithWidth(3),
		WithLineJoin(stroke.LineJoinMiterRound),
		WithInnerJoin(stroke.InnerJoinRound),
		WithMiterLimit(6),
		WithInnerMiterLimit(2),
		WithApproximationScale(4),
	)
	p := g.Params()
	assert.Equal(t, 3.0, p.Width)
	assert.Equal(t, stroke.LineJoinMiterRound, p.Join)
	assert.Equal(t, stroke.InnerJoinRound, p.InnerJoin)
	assert.Equal(t, 6.0, p.MiterLimit)
	assert.Equal(t, 2.0, p.InnerMiterLimit)
	assert.Equal(t, 4.0, p.ApproximationScale)

	g.SetMiterLimitTheta(math.Pi / 2)
	assert.InDelta(t, math.Sqrt2, g.Params().MiterLimit, eps)

	g.SetAutoDetectOrientation(true)
	assert.True(t, g.AutoDetectOrientation())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "out_vertices", statusOutVertices.String())
	assert.Equal(t, "unknown", status(99).String())
}

func BenchmarkGenerator(b *testing.B) {
	pts := make([][2]float64, 64)
	for i := range pts {
		a := float64(i) / float64(len(pts)) * 2 * math.Pi
		r := 100.0
		if i%2 == 1 {
			r = 40
		}
		pts[i] = [2]float64{r * math.Cos(a), r * math.Sin(a)}
	}
	g := NewGenerator(WithWidth(4), WithLineJoin(stroke.LineJoinRound), WithAutoDetectOrientation(true))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		feed(g, pts, path.FlagNone)
		g.Rewind(0)
		for {
			if _, _, cmd := g.Vertex(); cmd.IsStop() {
				break
			}
		}
	}
}
