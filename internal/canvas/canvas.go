// Package canvas draws solved layouts as box outlines on a grid of runes.
// It is used by the preview tools and has no terminal I/O of its own.
package canvas

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/go-tui-layout/internal/layout"
)

// cell is one grid position. A wide rune occupies its cell and a
// continuation cell to its right.
type cell struct {
	r    rune
	cont bool
}

// Canvas is a fixed-size grid of runes.
type Canvas struct {
	cells  []cell
	width  int
	height int
}

// New creates a canvas filled with spaces.
func New(width, height int) *Canvas {
	width, height = max(0, width), max(0, height)
	c := &Canvas{
		cells:  make([]cell, width*height),
		width:  width,
		height: height,
	}
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
	return c
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in rows.
func (c *Canvas) Height() int { return c.height }

// Bounds returns the canvas as a rect at the origin.
func (c *Canvas) Bounds() layout.Rect {
	return layout.NewRect(0, 0, c.width, c.height)
}

// SetRune puts r at (x, y). Positions outside the canvas are ignored, and a
// wide rune that does not fit before the right edge is replaced by a space.
func (c *Canvas) SetRune(x, y int, r rune) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.clearAt(x, y)

	w := runewidth.RuneWidth(r)
	if w == 2 {
		if x+1 >= c.width {
			c.cells[y*c.width+x] = cell{r: ' '}
			return
		}
		c.clearAt(x+1, y)
		c.cells[y*c.width+x+1] = cell{cont: true}
	}
	c.cells[y*c.width+x] = cell{r: r}
}

// clearAt blanks whatever wide rune covers (x, y).
func (c *Canvas) clearAt(x, y int) {
	i := y*c.width + x
	switch {
	case c.cells[i].cont:
		c.cells[i] = cell{r: ' '}
		if x > 0 {
			c.cells[i-1] = cell{r: ' '}
		}
	case runewidth.RuneWidth(c.cells[i].r) == 2 && x+1 < c.width:
		c.cells[i+1] = cell{r: ' '}
	}
}

// SetStringClipped writes s starting at (x, y), dropping anything outside
// clip. Returns the display width written.
func (c *Canvas) SetStringClipped(x, y int, s string, clip layout.Rect) int {
	clip = clip.Intersect(c.Bounds())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}

	written := 0
	curX := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if curX >= clip.Right() {
			break
		}
		if curX >= clip.X && curX+w <= clip.Right() {
			c.SetRune(curX, y, r)
			written += w
		}
		curX += w
	}
	return written
}

// Fill sets every cell of rect to r.
func (c *Canvas) Fill(rect layout.Rect, r rune) {
	rect = rect.Intersect(c.Bounds())
	step := max(1, runewidth.RuneWidth(r))
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x+step <= rect.Right(); x += step {
			c.SetRune(x, y, r)
		}
	}
}

// String returns the canvas rows joined by newlines.
func (c *Canvas) String() string {
	return c.render(false)
}

// StringTrimmed is String with trailing spaces removed from each row.
func (c *Canvas) StringTrimmed() string {
	return c.render(true)
}

func (c *Canvas) render(trim bool) string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		var line strings.Builder
		for _, cl := range c.cells[y*c.width : (y+1)*c.width] {
			if cl.cont {
				continue
			}
			line.WriteRune(cl.r)
		}
		row := line.String()
		if trim {
			row = strings.TrimRight(row, " ")
		}
		sb.WriteString(row)
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
