package tui

import "fmt"

// Append adds w after the last child.
func (l *LinearLayout) Append(w Widget) {
	l.Insert(len(l.children), w)
}

// Insert places w at index i, shifting later children back.
// It panics if i is out of range.
func (l *LinearLayout) Insert(i int, w Widget) {
	if w == nil {
		panic("tui: Insert of nil widget")
	}
	if i < 0 || i > len(l.children) {
		panic(fmt.Sprintf("tui: Insert index %d out of range [0, %d]", i, len(l.children)))
	}
	l.children = append(l.children, nil)
	copy(l.children[i+1:], l.children[i:])
	l.children[i] = w

	if a, ok := w.(attacher); ok {
		a.attach(l, l.dispatcher)
	}
	l.clampOffset()
	l.post(ChildAddedEvent{Child: w})
}

// Remove removes w from the layout.
// Returns true if w was found and removed.
func (l *LinearLayout) Remove(w Widget) bool {
	for i, c := range l.children {
		if c == w {
			l.RemoveAt(i)
			return true
		}
	}
	return false
}

// RemoveAt removes and returns the child at index i.
// It panics if i is out of range.
func (l *LinearLayout) RemoveAt(i int) Widget {
	if i < 0 || i >= len(l.children) {
		panic(fmt.Sprintf("tui: RemoveAt index %d out of range [0, %d)", i, len(l.children)))
	}
	w := l.children[i]
	copy(l.children[i:], l.children[i+1:])
	l.children[len(l.children)-1] = nil
	l.children = l.children[:len(l.children)-1]

	l.forget(w)
	l.clampOffset()
	l.post(ChildRemovedEvent{Child: w})
	return w
}

// Clear removes all children.
func (l *LinearLayout) Clear() {
	removed := l.children
	l.children = nil
	for _, w := range removed {
		l.forget(w)
	}
	l.clampOffset()
	for _, w := range removed {
		l.post(ChildRemovedEvent{Child: w})
	}
}

// Children returns the children in layout order.
func (l *LinearLayout) Children() []Widget {
	return append([]Widget(nil), l.children...)
}

// Len returns the number of children.
func (l *LinearLayout) Len() int {
	return len(l.children)
}

// IndexOf returns the index of w, or -1 if w is not a child.
func (l *LinearLayout) IndexOf(w Widget) int {
	for i, c := range l.children {
		if c == w {
			return i
		}
	}
	return -1
}

// forget drops everything the layout knows about a removed child.
func (l *LinearLayout) forget(w Widget) {
	delete(l.last, w)
	if a, ok := w.(attacher); ok {
		a.detach()
	}
}
