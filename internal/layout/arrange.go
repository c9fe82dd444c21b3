package layout

// Arrange places children one after another along dir, starting at the
// top-left corner of content. primary[i] and secondary[i] are child i's
// lengths along and across dir; secondary must be at least as long as primary.
//
// Rects are not clipped to content: a too-small container gets rects that run
// past its edge, and callers decide what to do with them.
func Arrange(content Rect, dir Direction, primary, secondary []int) []Rect {
	rects := make([]Rect, len(primary))
	pos := 0
	for i, length := range primary {
		if dir == Column {
			rects[i] = Rect{X: content.X, Y: content.Y + pos, Width: secondary[i], Height: length}
		} else {
			rects[i] = Rect{X: content.X + pos, Y: content.Y, Width: length, Height: secondary[i]}
		}
		pos += length
	}
	return rects
}
