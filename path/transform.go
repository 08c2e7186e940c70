package path

// Transformer maps a point in place. outline.Matrix implements it.
type Transformer interface {
	Transform(x, y *float64)
}

// Transformed is a VertexSource stage that maps the coordinates of an
// upstream source through a Transformer.
type Transformed struct {
	src   VertexSource
	trans Transformer
}

// NewTransformed wraps src so that every vertex goes through t.
func NewTransformed(src VertexSource, t Transformer) *Transformed {
	return &Transformed{src: src, trans: t}
}

// SetTransformer replaces the transformer.
func (c *Transformed) SetTransformer(t Transformer) { c.trans = t }

// Rewind rewinds the upstream source.
func (c *Transformed) Rewind(pathID int) { c.src.Rewind(pathID) }

// Vertex returns the next upstream vertex, transformed.
func (c *Transformed) Vertex() (x, y float64, cmd Command) {
	x, y, cmd = c.src.Vertex()
	if cmd.IsVertex() {
		c.trans.Transform(&x, &y)
	}
	return x, y, cmd
}
