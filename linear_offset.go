package tui

import (
	"errors"
	"fmt"
)

// ErrOffsetOutOfRange is returned by SetChildOffset for an index past the
// child count.
var ErrOffsetOutOfRange = errors.New("child offset out of range")

// ChildOffset returns the index of the first child eligible for display.
// Children before it are always hidden.
func (l *LinearLayout) ChildOffset() int {
	return l.offset
}

// SetChildOffset moves the visibility window so that child i is the first
// one eligible for display. i may equal Len, which hides every child.
// An index outside [0, Len] is rejected and the offset is left alone.
func (l *LinearLayout) SetChildOffset(i int) error {
	if i < 0 || i > len(l.children) {
		return fmt.Errorf("set offset %d with %d children: %w", i, len(l.children), ErrOffsetOutOfRange)
	}
	l.moveOffset(i)
	return nil
}

// IncrementOffset hides one more leading child. It does nothing when the
// last child is already first in the window.
func (l *LinearLayout) IncrementOffset() {
	if l.offset+1 >= len(l.children) {
		return
	}
	l.moveOffset(l.offset + 1)
}

// DecrementOffset shows one more leading child. It does nothing at offset 0.
func (l *LinearLayout) DecrementOffset() {
	if l.offset == 0 {
		return
	}
	l.moveOffset(l.offset - 1)
}

func (l *LinearLayout) moveOffset(i int) {
	if i == l.offset {
		return
	}
	l.offset = i
	l.post(relayoutEvent{})
}

// clampOffset pulls the offset back into range after a topology change.
// An offset equal to the count is in range, as SetChildOffset allows it.
func (l *LinearLayout) clampOffset() {
	switch n := len(l.children); {
	case n == 0:
		l.offset = 0
	case l.offset > n:
		l.offset = n - 1
	}
}
