package path

// Storage is an in-memory path: a flat list of vertices where each path
// id is the index at which the path starts. Paths are separated by
// CmdStop entries so a rewound stream ends at its own path boundary.
//
// The zero value is an empty storage ready to use.
type Storage struct {
	vertices []Vertex
	iter     int
}

// RemoveAll clears all paths, keeping the storage.
func (s *Storage) RemoveAll() {
	s.vertices = s.vertices[:0]
	s.iter = 0
}

// StartNewPath terminates the current path, if any, and returns the id of
// the next one.
func (s *Storage) StartNewPath() int {
	if n := len(s.vertices); n > 0 && !s.vertices[n-1].Cmd.IsStop() {
		s.vertices = append(s.vertices, Vertex{Cmd: CmdStop})
	}
	return len(s.vertices)
}

// AddVertex appends a raw vertex.
func (s *Storage) AddVertex(x, y float64, cmd Command) {
	s.vertices = append(s.vertices, Vertex{X: x, Y: y, Cmd: cmd})
}

// MoveTo starts a new sub-path at (x, y).
func (s *Storage) MoveTo(x, y float64) { s.AddVertex(x, y, CmdMoveTo) }

// LineTo adds a straight segment to (x, y).
func (s *Storage) LineTo(x, y float64) { s.AddVertex(x, y, CmdLineTo) }

// EndPoly ends the current polygon with flags. It is a no-op right after
// another EndPoly or on an empty storage.
func (s *Storage) EndPoly(flags Flags) {
	n := len(s.vertices)
	if n == 0 || !s.vertices[n-1].Cmd.IsVertex() {
		return
	}
	s.vertices = append(s.vertices, Vertex{Cmd: EndPoly(flags)})
}

// ClosePolygon ends the current polygon as closed.
func (s *Storage) ClosePolygon() { s.EndPoly(FlagClose) }

// TotalVertices returns the number of stored commands.
func (s *Storage) TotalVertices() int { return len(s.vertices) }

// VertexAt returns the i-th stored command.
func (s *Storage) VertexAt(i int) Vertex { return s.vertices[i] }

// LastVertex returns the last stored command and false when empty.
func (s *Storage) LastVertex() (Vertex, bool) {
	if len(s.vertices) == 0 {
		return Vertex{}, false
	}
	return s.vertices[len(s.vertices)-1], true
}

// Transform maps every vertex through t in place.
func (s *Storage) Transform(t Transformer) {
	for i := range s.vertices {
		v := &s.vertices[i]
		if v.Cmd.IsVertex() {
			t.Transform(&v.X, &v.Y)
		}
	}
}

// Rewind positions the stream at the path starting at pathID.
func (s *Storage) Rewind(pathID int) {
	s.iter = pathID
}

// Vertex returns the next stored command or CmdStop at the end.
func (s *Storage) Vertex() (x, y float64, cmd Command) {
	if s.iter < 0 || s.iter >= len(s.vertices) {
		return 0, 0, CmdStop
	}
	v := s.vertices[s.iter]
	s.iter++
	return v.X, v.Y, v.Cmd
}
