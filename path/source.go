package path

// VertexSource is the pull protocol for path geometry.
//
// Rewind positions the source at the start of the path identified by
// pathID. Vertex then returns successive vertices until it returns a
// command for which IsStop is true; after that it keeps returning CmdStop
// until the next Rewind. Coordinates are meaningful only for MoveTo and
// LineTo commands.
type VertexSource interface {
	Rewind(pathID int)
	Vertex() (x, y float64, cmd Command)
}

// Vertex is a single path vertex.
type Vertex struct {
	X, Y float64
	Cmd  Command
}

// Collect drains a source into a slice, stopping at the first CmdStop.
// Tests and debugging helpers use it; rendering code pulls vertices
// directly.
func Collect(src VertexSource, pathID int) []Vertex {
	src.Rewind(pathID)
	var out []Vertex
	for {
		x, y, cmd := src.Vertex()
		if cmd.IsStop() {
			return out
		}
		out = append(out, Vertex{X: x, Y: y, Cmd: cmd})
	}
}
