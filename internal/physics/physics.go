// Package physics provides the integer geometry shared by all entities:
// centre locations, axis-aligned bounding boxes and overlap tests.
package physics

// Playfield dimensions in logical units.
const (
	FieldWidth  = 1280
	FieldHeight = 720
)

// Location is a mutable integer coordinate pair.
type Location struct {
	X, Y int
}

// Set moves the location in place.
func (l *Location) Set(x, y int) {
	l.X = x
	l.Y = y
}

// Box is an axis-aligned rectangle described by its centre and extent.
// Edges are derived with integer division, so odd extents lose the half unit.
type Box struct {
	Center Location
	W, H   int
}

// Left returns the x coordinate of the left edge.
func (b Box) Left() int { return b.Center.X - b.W/2 }

// Right returns the x coordinate of the right edge.
func (b Box) Right() int { return b.Center.X + b.W/2 }

// Top returns the y coordinate of the top edge.
func (b Box) Top() int { return b.Center.Y - b.H/2 }

// Bottom returns the y coordinate of the bottom edge.
func (b Box) Bottom() int { return b.Center.Y + b.H/2 }

// Contains reports whether (x, y) lies strictly inside the box.
func (b Box) Contains(x, y int) bool {
	return x > b.Left() && x < b.Right() && y > b.Top() && y < b.Bottom()
}

// Overlaps reports whether any corner of other lies strictly inside b.
//
// The test is directional: b.Overlaps(o) and o.Overlaps(b) can differ, and a
// box that fully contains b without any of its corners inside b is not
// reported. Callers pick the receiver deliberately.
func (b Box) Overlaps(other Box) bool {
	return b.Contains(other.Left(), other.Top()) ||
		b.Contains(other.Right(), other.Top()) ||
		b.Contains(other.Right(), other.Bottom()) ||
		b.Contains(other.Left(), other.Bottom())
}

// InsideBounds reports whether the box lies fully within [0,w]x[0,h].
func (b Box) InsideBounds(w, h int) bool {
	return b.Left() >= 0 && b.Top() >= 0 && b.Right() <= w && b.Bottom() <= h
}

// InsideField reports whether the box lies fully within the playfield.
func (b Box) InsideField() bool {
	return b.InsideBounds(FieldWidth, FieldHeight)
}
