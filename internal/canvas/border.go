package canvas

import "github.com/grindlemire/go-tui-layout/internal/layout"

// BorderStyle selects the box-drawing runes of an outline.
type BorderStyle int

const (
	BorderSingle BorderStyle = iota
	BorderRounded
	BorderDouble
	BorderThick
)

// BorderChars holds the runes used to draw a box.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the box-drawing runes for this style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderRounded:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	case BorderDouble:
		return BorderChars{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}
	case BorderThick:
		return BorderChars{'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'}
	default:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	}
}

// Box draws the outline of r and writes label into its top edge.
//
// Rects too thin for an outline degrade: a one-row rect becomes a horizontal
// rule with the label on it, a one-column rect becomes a vertical rule.
func (c *Canvas) Box(r layout.Rect, style BorderStyle, label string) {
	if r.IsEmpty() {
		return
	}
	ch := style.Chars()

	switch {
	case r.Height == 1:
		c.Fill(r, ch.Top)
		c.SetStringClipped(r.X, r.Y, label, r)
		return
	case r.Width == 1:
		c.Fill(r, ch.Left)
		return
	}

	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		c.SetRune(x, r.Y, ch.Top)
		c.SetRune(x, bottom, ch.Bottom)
	}
	for y := r.Y + 1; y < bottom; y++ {
		c.SetRune(r.X, y, ch.Left)
		c.SetRune(right, y, ch.Right)
	}
	c.SetRune(r.X, r.Y, ch.TopLeft)
	c.SetRune(right, r.Y, ch.TopRight)
	c.SetRune(r.X, bottom, ch.BottomLeft)
	c.SetRune(right, bottom, ch.BottomRight)

	c.SetStringClipped(r.X+1, r.Y, label, layout.NewRect(r.X+1, r.Y, r.Width-2, 1))
}

// Text writes s inside r, one line per row, clipped to r.
func (c *Canvas) Text(r layout.Rect, lines ...string) {
	for i, line := range lines {
		if i >= r.Height {
			return
		}
		c.SetStringClipped(r.X, r.Y+i, line, r)
	}
}
