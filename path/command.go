// Package path defines the vertex pull protocol shared by path storages
// and generators, together with the command encoding and the
// coalescing vertex sequence used as generator input.
package path

// Command is a path command: a kind in the low nibble plus flag bits that
// qualify CmdEndPoly.
type Command uint8

// Command kinds.
const (
	// CmdStop terminates a vertex stream.
	CmdStop Command = iota
	// CmdMoveTo starts a new sub-path.
	CmdMoveTo
	// CmdLineTo adds a straight segment.
	CmdLineTo
	// CmdEndPoly ends the current polygon. Flags carry closure and orientation.
	CmdEndPoly

	cmdMask Command = 0x0F
)

// Flags qualify a CmdEndPoly command. They are independent bits.
type Flags uint8

// Flag bits.
const (
	FlagNone  Flags = 0
	FlagCCW   Flags = 0x10
	FlagCW    Flags = 0x20
	FlagClose Flags = 0x40

	flagsMask = FlagCCW | FlagCW | FlagClose
)

// Orientation is the winding direction of a closed polygon.
type Orientation uint8

const (
	// OrientNone means the winding is unknown.
	OrientNone Orientation = iota
	// OrientCW is clockwise winding (negative shoelace area).
	OrientCW
	// OrientCCW is counter-clockwise winding (positive shoelace area).
	OrientCCW
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case OrientCW:
		return "cw"
	case OrientCCW:
		return "ccw"
	default:
		return "none"
	}
}

// Flags returns the CmdEndPoly flag bit for the orientation.
func (o Orientation) Flags() Flags {
	switch o {
	case OrientCW:
		return FlagCW
	case OrientCCW:
		return FlagCCW
	default:
		return FlagNone
	}
}

// EndPoly returns a CmdEndPoly command carrying flags.
func EndPoly(flags Flags) Command {
	return CmdEndPoly | Command(flags&flagsMask)
}

// Kind returns the command without flag bits.
func (c Command) Kind() Command { return c & cmdMask }

// Flags returns the flag bits of the command.
func (c Command) Flags() Flags { return Flags(c) & flagsMask }

// IsStop reports whether c terminates the stream.
func (c Command) IsStop() bool { return c.Kind() == CmdStop }

// IsMoveTo reports whether c starts a sub-path.
func (c Command) IsMoveTo() bool { return c.Kind() == CmdMoveTo }

// IsLineTo reports whether c is a straight segment.
func (c Command) IsLineTo() bool { return c.Kind() == CmdLineTo }

// IsVertex reports whether c carries coordinates.
func (c Command) IsVertex() bool {
	k := c.Kind()
	return k == CmdMoveTo || k == CmdLineTo
}

// IsEndPoly reports whether c ends a polygon.
func (c Command) IsEndPoly() bool { return c.Kind() == CmdEndPoly }

// IsClosed reports whether c is a CmdEndPoly with the close flag.
func (c Command) IsClosed() bool {
	return c.IsEndPoly() && c.Flags()&FlagClose != 0
}

// Orientation returns the orientation carried by a CmdEndPoly.
func (c Command) Orientation() Orientation {
	if !c.IsEndPoly() {
		return OrientNone
	}
	switch {
	case c.Flags()&FlagCW != 0:
		return OrientCW
	case c.Flags()&FlagCCW != 0:
		return OrientCCW
	default:
		return OrientNone
	}
}

// String returns a readable command name.
func (c Command) String() string {
	switch c.Kind() {
	case CmdStop:
		return "Stop"
	case CmdMoveTo:
		return "MoveTo"
	case CmdLineTo:
		return "LineTo"
	case CmdEndPoly:
		s := "EndPoly"
		if c.IsClosed() {
			s += "|Close"
		}
		if o := c.Orientation(); o != OrientNone {
			s += "|" + o.String()
		}
		return s
	default:
		return "Invalid"
	}
}
