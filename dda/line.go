// Package dda implements fixed-point digital differential analyzers:
// incremental integer interpolation along a line without multiplication
// in the stepping loop.
package dda

// Line interpolates integer samples from a start value to an end value
// over a fixed number of steps.
//
// The integer part of the slope is added on every step and the remainder
// is spread with an accumulator, so the value after Count advances is
// exactly the end value and every intermediate sample is within one unit
// of the real line. Line is a plain value; copy it to save its state.
type Line struct {
	cnt int // step count
	lft int // integer increment per step
	rem int // remainder distributed over the steps
	mod int // accumulator
	y   int // current value
}

// NewLine returns an interpolator from start to end over count steps.
// A count below 1 is treated as 1.
func NewLine(start, end, count int) Line {
	if count <= 0 {
		count = 1
	}
	l := Line{
		cnt: count,
		lft: (end - start) / count,
		rem: (end - start) % count,
		y:   start,
	}
	l.mod = l.rem
	if l.mod <= 0 {
		l.mod += count
		l.rem += count
		l.lft--
	}
	l.mod -= count
	return l
}

// Advance moves one step toward the end value.
func (l *Line) Advance() {
	l.mod += l.rem
	l.y += l.lft
	if l.mod > 0 {
		l.mod -= l.cnt
		l.y++
	}
}

// Retreat moves one step back. It exactly undoes Advance.
func (l *Line) Retreat() {
	if l.mod <= l.rem-l.cnt {
		l.mod += l.cnt
		l.y--
	}
	l.mod -= l.rem
	l.y -= l.lft
}

// Value returns the current sample.
func (l *Line) Value() int { return l.y }

// Count returns the number of steps from start to end.
func (l *Line) Count() int { return l.cnt }

// Lft returns the integer increment per step.
func (l *Line) Lft() int { return l.lft }

// Rem returns the normalized remainder per step.
func (l *Line) Rem() int { return l.rem }

// Mod returns the accumulator.
func (l *Line) Mod() int { return l.mod }
