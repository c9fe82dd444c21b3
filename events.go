package tui

// Event is a notification delivered to a Handler by a Dispatcher.
//
// The same types travel in both directions: a LinearLayout receives
// ResizeEvent and MoveEvent from its parent and posts them to its own
// children after each solve.
type Event interface {
	isEvent()
}

// Handler receives events from a Dispatcher.
type Handler interface {
	HandleEvent(Event)
}

// ResizeEvent reports a new outer size.
type ResizeEvent struct {
	Size Size
	Old  Size
}

// MoveEvent reports a new outer top-left position.
type MoveEvent struct {
	Point Point
	Old   Point
}

// EnableEvent shows or hides a widget. A layout posts Enabled=false to a
// child it has no room for and Enabled=true before moving and resizing a
// child it displays.
type EnableEvent struct {
	Enabled bool
}

// ChildAddedEvent tells a container that Child joined its child list.
type ChildAddedEvent struct {
	Child Widget
}

// ChildRemovedEvent tells a container that Child left its child list.
type ChildRemovedEvent struct {
	Child Widget
}

// ChildPolishedEvent tells a container that Child changed its size
// policies and wants a new layout.
type ChildPolishedEvent struct {
	Child Widget
}

// relayoutEvent is posted by a layout to itself when its offset or enabled flag changes.
type relayoutEvent struct{}

func (ResizeEvent) isEvent() {}
func (MoveEvent) isEvent() {}
func (EnableEvent) isEvent() {}
func (ChildAddedEvent) isEvent() {}
func (ChildRemovedEvent) isEvent() {}
func (ChildPolishedEvent) isEvent() {}
func (relayoutEvent) isEvent() {}
