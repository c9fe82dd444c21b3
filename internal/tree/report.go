package tree

import tui "github.com/grindlemire/go-tui-layout"

// Placement is the solved geometry of one entry.
type Placement struct {
	Name      string `yaml:"name"`
	Depth     int    `yaml:"depth"`
	Kind      string `yaml:"kind"`
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Displayed bool   `yaml:"displayed"`
	TooSmall  bool   `yaml:"too_small,omitempty"`
	Offset    int    `yaml:"offset,omitempty"`
}

// Rect returns the placement's rectangle.
func (p Placement) Rect() tui.Rect {
	return tui.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Placements reports the geometry of every entry after a solve. Entries
// that are not displayed report an empty rectangle.
func (t *Tree) Placements() []Placement {
	out := make([]Placement, 0, len(t.Entries))
	for _, e := range t.Entries {
		p := Placement{Name: e.Name, Depth: e.Depth}

		var r tui.Rect
		switch {
		case e.Layout != nil:
			p.Kind = e.Layout.Direction().String()
			p.Displayed = e.Layout.Enabled() && e.Layout.Shown()
			p.TooSmall = e.Layout.TooSmall()
			p.Offset = e.Layout.ChildOffset()
			r = e.Layout.Rect()
		default:
			p.Kind = "element"
			p.Displayed = e.Element.Displayed()
			r = e.Element.Rect()
		}
		if p.Displayed {
			p.X, p.Y, p.Width, p.Height = r.X, r.Y, r.Width, r.Height
		}
		out = append(out, p)
	}
	return out
}
