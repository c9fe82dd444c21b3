package layout

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y int
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}

// Size is a width/height pair in terminal cells.
type Size struct {
	Width, Height int
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}
