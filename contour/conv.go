package contour

import "github.com/gogpu/outline/path"

type convStatus uint8

const (
	convInitial convStatus = iota
	convAccumulate
	convGenerate
)

// Conv connects a VertexSource to a VertexGenerator. Each sub-path of the
// source is fed to the generator and the generator's output is passed
// downstream, so Conv is itself a VertexSource:
//
//	var ps path.Storage
//	// ... build ps
//	outlined := contour.NewConv(&ps, contour.NewGenerator(contour.WithWidth(4)))
//	stroked := contour.NewConv(outlined, contour.NewStroker(contour.WithWidth(1)))
type Conv struct {
	src    path.VertexSource
	gen    VertexGenerator
	status convStatus

	// first vertex of the next sub-path
	startX, startY float64
	lastCmd        path.Command
}

// NewConv creates a pipeline stage that runs gen over src.
func NewConv(src path.VertexSource, gen VertexGenerator) *Conv {
	return &Conv{src: src, gen: gen}
}

// Generator returns the wrapped generator.
func (c *Conv) Generator() VertexGenerator { return c.gen }

// Attach replaces the upstream source.
func (c *Conv) Attach(src path.VertexSource) { c.src = src }

// Rewind rewinds the upstream source at pathID.
func (c *Conv) Rewind(pathID int) {
	c.src.Rewind(pathID)
	c.status = convInitial
}

// Vertex returns the next generated vertex.
func (c *Conv) Vertex() (x, y float64, cmd path.Command) {
	for {
		switch c.status {
		case convInitial:
			c.nextStart()
			c.status = convAccumulate

		case convAccumulate:
			if c.lastCmd.IsStop() {
				return 0, 0, path.CmdStop
			}
			c.gen.RemoveAll()
			c.gen.AddVertex(c.startX, c.startY, path.CmdMoveTo)
			c.accumulate()
			c.gen.Rewind(0)
			c.status = convGenerate

		case convGenerate:
			x, y, cmd = c.gen.Vertex()
			if cmd.IsStop() {
				c.status = convAccumulate
				continue
			}
			return x, y, cmd
		}
	}
}

// accumulate feeds one sub-path into the generator and leaves the start
// of the following one in startX, startY and lastCmd.
func (c *Conv) accumulate() {
	for {
		x, y, cmd := c.src.Vertex()
		switch {
		case cmd.IsMoveTo():
			c.startX, c.startY, c.lastCmd = x, y, cmd
			return
		case cmd.IsVertex():
			c.gen.AddVertex(x, y, cmd)
		case cmd.IsEndPoly():
			c.gen.AddVertex(x, y, cmd)
			c.nextStart()
			return
		case cmd.IsStop():
			c.lastCmd = path.CmdStop
			return
		}
	}
}

// nextStart reads the first vertex of the next sub-path, skipping stray
// EndPoly commands.
func (c *Conv) nextStart() {
	for {
		x, y, cmd := c.src.Vertex()
		if cmd.IsStop() {
			c.lastCmd = path.CmdStop
			return
		}
		if cmd.IsVertex() {
			c.startX, c.startY, c.lastCmd = x, y, cmd
			return
		}
	}
}
