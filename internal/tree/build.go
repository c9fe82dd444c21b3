package tree

import (
	"fmt"
	"strconv"

	tui "github.com/grindlemire/go-tui-layout"
)

// Entry is one built widget, in depth-first order.
type Entry struct {
	Name    string
	Depth   int
	Widget  tui.Widget
	Layout  *tui.LinearLayout // nil for leaves
	Element *tui.Element      // nil for containers
}

// Tree is a built description.
type Tree struct {
	Root    *tui.LinearLayout
	Entries []Entry
}

// Lookup returns the entry named name.
func (t *Tree) Lookup(name string) (Entry, bool) {
	for _, e := range t.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Build turns a description into widgets whose events go through d.
// Nothing is solved until the caller posts a ResizeEvent to the root and
// drains d.
func Build(root *Node, d *tui.Dispatcher) (*Tree, error) {
	if d == nil {
		panic("tree: Build with nil dispatcher")
	}
	t := &Tree{}
	w, err := t.build(root, nameOr(root.Name, "root"), 0, d)
	if err != nil {
		return nil, err
	}
	l, ok := w.(*tui.LinearLayout)
	if !ok {
		return nil, fmt.Errorf("%w: root must be a container", ErrInvalidTree)
	}
	t.Root = l
	return t, nil
}

func (t *Tree) build(n *Node, name string, depth int, d *tui.Dispatcher) (tui.Widget, error) {
	if n.IsContainer() {
		return t.buildLayout(n, name, depth, d)
	}
	return t.buildElement(n, name, depth)
}

func (t *Tree) buildLayout(n *Node, name string, depth int, d *tui.Dispatcher) (tui.Widget, error) {
	dir, err := parseDirection(n.Direction)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	opts := []tui.LinearOption{
		tui.WithBorder(n.Border),
		tui.WithPadding(tui.EdgeAll(n.Padding)),
		tui.WithEnabled(!n.Disabled),
	}
	if depth == 0 {
		opts = append(opts, tui.WithDispatcher(d))
	}
	if n.Width != nil {
		p, err := n.Width.Policy(0)
		if err != nil {
			return nil, fmt.Errorf("%s width: %w", name, err)
		}
		opts = append(opts, tui.WithWidthPolicy(p))
	}
	if n.Height != nil {
		p, err := n.Height.Policy(0)
		if err != nil {
			return nil, fmt.Errorf("%s height: %w", name, err)
		}
		opts = append(opts, tui.WithHeightPolicy(p))
	}

	l := tui.NewLinearLayout(dir, opts...)
	t.Entries = append(t.Entries, Entry{Name: name, Depth: depth, Widget: l, Layout: l})

	for i, child := range n.Children {
		if child == nil {
			return nil, fmt.Errorf("%s: %w: child %d is empty", name, ErrInvalidTree, i)
		}
		w, err := t.build(child, nameOr(child.Name, name+"."+strconv.Itoa(i)), depth+1, d)
		if err != nil {
			return nil, err
		}
		l.Append(w)
	}

	if err := l.SetChildOffset(n.Offset); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return l, nil
}

func (t *Tree) buildElement(n *Node, name string, depth int) (tui.Widget, error) {
	opts := []tui.ElementOption{tui.WithName(name), tui.WithText(n.Text)}
	if n.Disabled {
		opts = append(opts, tui.WithDisabled())
	}

	// Hints left out of the description come from the text.
	probe := tui.NewElement(tui.WithText(n.Text))
	if n.Width != nil {
		p, err := n.Width.Policy(probe.WidthPolicy().Hint())
		if err != nil {
			return nil, fmt.Errorf("%s width: %w", name, err)
		}
		opts = append(opts, tui.WithWidth(p))
	}
	if n.Height != nil {
		p, err := n.Height.Policy(probe.HeightPolicy().Hint())
		if err != nil {
			return nil, fmt.Errorf("%s height: %w", name, err)
		}
		opts = append(opts, tui.WithHeight(p))
	}

	e := tui.NewElement(opts...)
	t.Entries = append(t.Entries, Entry{Name: name, Depth: depth, Widget: e, Element: e})
	return e, nil
}

func parseDirection(s string) (tui.Direction, error) {
	switch s {
	case "", "row":
		return tui.Row, nil
	case "column":
		return tui.Column, nil
	default:
		return 0, fmt.Errorf("%w: unknown direction %q", ErrInvalidTree, s)
	}
}

func nameOr(name, fallback string) string {
	if name != "" {
		return name
	}
	return fallback
}
