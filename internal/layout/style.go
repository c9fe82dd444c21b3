package layout

// Direction specifies the primary axis of a linear container.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// String returns "row" or "column".
func (d Direction) String() string {
	if d == Column {
		return "column"
	}
	return "row"
}

// Primary returns the length of s along d.
func (d Direction) Primary(s Size) int {
	if d == Column {
		return s.Height
	}
	return s.Width
}

// Secondary returns the length of s across d.
func (d Direction) Secondary(s Size) int {
	if d == Column {
		return s.Width
	}
	return s.Height
}

// Size builds a Size from primary and secondary lengths.
func (d Direction) Size(primary, secondary int) Size {
	if d == Column {
		return Size{Width: secondary, Height: primary}
	}
	return Size{Width: primary, Height: secondary}
}
