package tui

// Widget is anything a LinearLayout can hold.
//
// Enabled is the owner's flag: a widget that is not enabled takes no space.
// The layout tells a widget whether it is actually shown with EnableEvent,
// and where with MoveEvent and ResizeEvent.
//
// Widgets are used as map keys by their container and must be comparable.
// Pointer types are the norm.
type Widget interface {
	Handler
	Enabled() bool
	WidthPolicy() Policy
	HeightPolicy() Policy
}

// attacher is implemented by widgets that need to reach their container,
// for example to post ChildPolishedEvent when their policies change.
type attacher interface {
	attach(parent Handler, d *Dispatcher)
	detach()
}

// parentLink is the container side of a widget: who to tell about policy
// changes, and through which dispatcher.
type parentLink struct {
	parent     Handler
	dispatcher *Dispatcher
}

func (p *parentLink) attach(parent Handler, d *Dispatcher) {
	p.parent = parent
	p.dispatcher = d
}

func (p *parentLink) detach() {
	p.parent = nil
	p.dispatcher = nil
}

// polish tells the parent that w wants a new layout. It does nothing for a
// widget that is not in a container or whose container has no dispatcher yet.
func (p *parentLink) polish(w Widget) {
	if p.parent == nil || p.dispatcher == nil {
		return
	}
	p.dispatcher.Post(p.parent, ChildPolishedEvent{Child: w})
}
