package tree

import (
	"strings"

	tui "github.com/grindlemire/go-tui-layout"
	"github.com/grindlemire/go-tui-layout/internal/canvas"
)

// Draw paints every displayed entry onto c, parents first. Bordered layouts
// get a rounded outline. Elements big enough for an outline get a single one
// with their text inside; smaller ones show their text, or their name when
// they have none.
func (t *Tree) Draw(c *canvas.Canvas) {
	placements := t.Placements()
	for i, e := range t.Entries {
		p := placements[i]
		if !p.Displayed {
			continue
		}
		r := p.Rect()

		if e.Layout != nil {
			if e.Layout.Border() {
				c.Box(r, canvas.BorderRounded, e.Name)
			}
			continue
		}

		text := e.Element.Text()
		if r.Width >= 3 && r.Height >= 3 {
			c.Box(r, canvas.BorderSingle, e.Name)
			c.Text(r.Inset(tui.EdgeAll(1)), strings.Split(text, "\n")...)
			continue
		}
		if text == "" {
			text = e.Name
		}
		c.Text(r, strings.Split(text, "\n")...)
	}
}
