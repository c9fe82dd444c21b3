package tui

import (
	"go.uber.org/zap"

	"github.com/grindlemire/go-tui-layout/internal/debug"
	"github.com/grindlemire/go-tui-layout/internal/layout"
)

var (
	_ Widget   = (*LinearLayout)(nil)
	_ attacher = (*LinearLayout)(nil)
)

// Outcome is a layout's last decision for one child.
type Outcome struct {
	Widget    Widget
	Displayed bool
	Rect      Rect
}

// LinearLayout places its children one after another along a row or a
// column and shares its interior between them according to their size
// policies.
//
// A LinearLayout never solves inside a method call. Geometry and topology
// changes post an event to the layout itself, and the solve runs when the
// dispatcher delivers it. The results go out to the children as EnableEvent,
// MoveEvent and ResizeEvent, so a LinearLayout can be the child of another.
type LinearLayout struct {
	parentLink

	dir      Direction
	children []Widget
	offset   int

	widthPolicy  Policy
	heightPolicy Policy
	padding      Edges
	border       bool

	enabled bool // owner flag
	shown   bool // last EnableEvent from the parent
	rect    Rect

	tooSmall bool
	outcomes []Outcome
	last     map[Widget]Rect

	dispatcher *Dispatcher
	pending    []Event
}

// LinearOption configures a LinearLayout.
type LinearOption func(*LinearLayout)

// WithDispatcher sets the dispatcher that delivers the layout's events.
// A layout without one queues its events until it is added to a container,
// then adopts the container's dispatcher.
func WithDispatcher(d *Dispatcher) LinearOption {
	return func(l *LinearLayout) {
		l.dispatcher = d
	}
}

// WithPadding sets the space between the layout's edge (or border) and its children.
func WithPadding(e Edges) LinearOption {
	return func(l *LinearLayout) {
		l.padding = e
	}
}

// WithBorder reserves a one-cell frame around the layout's interior.
func WithBorder(on bool) LinearOption {
	return func(l *LinearLayout) {
		l.border = on
	}
}

// WithWidthPolicy sets the policy the layout's own container uses for its width.
func WithWidthPolicy(p Policy) LinearOption {
	return func(l *LinearLayout) {
		l.widthPolicy = p
	}
}

// WithHeightPolicy sets the policy the layout's own container uses for its height.
func WithHeightPolicy(p Policy) LinearOption {
	return func(l *LinearLayout) {
		l.heightPolicy = p
	}
}

// WithEnabled sets the owner's enabled flag. Default is true.
func WithEnabled(on bool) LinearOption {
	return func(l *LinearLayout) {
		l.enabled = on
	}
}

// WithChildren appends children in order.
func WithChildren(children ...Widget) LinearOption {
	return func(l *LinearLayout) {
		for _, c := range children {
			l.Append(c)
		}
	}
}

// NewLinearLayout creates a layout along dir.
// Both size policies default to Expanding with hint 0.
func NewLinearLayout(dir Direction, opts ...LinearOption) *LinearLayout {
	l := &LinearLayout{
		dir:          dir,
		widthPolicy:  ExpandingPolicy(0),
		heightPolicy: ExpandingPolicy(0),
		enabled:      true,
		shown:        true,
		last:         make(map[Widget]Rect),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.dispatcher != nil {
		l.setDispatcher(l.dispatcher)
	}
	return l
}

// NewRow creates a layout that places children left to right.
func NewRow(opts ...LinearOption) *LinearLayout {
	return NewLinearLayout(Row, opts...)
}

// NewColumn creates a layout that places children top to bottom.
func NewColumn(opts ...LinearOption) *LinearLayout {
	return NewLinearLayout(Column, opts...)
}

// Direction returns the layout's primary axis.
func (l *LinearLayout) Direction() Direction { return l.dir }

// Enabled reports the owner's enabled flag.
func (l *LinearLayout) Enabled() bool { return l.enabled }

// Shown reports whether the layout's container last enabled it.
func (l *LinearLayout) Shown() bool { return l.shown }

// WidthPolicy returns the layout's own width policy.
func (l *LinearLayout) WidthPolicy() Policy { return l.widthPolicy }

// HeightPolicy returns the layout's own height policy.
func (l *LinearLayout) HeightPolicy() Policy { return l.heightPolicy }

// Border reports whether the layout reserves a one-cell frame.
func (l *LinearLayout) Border() bool { return l.border }

// Padding returns the padding inside the border.
func (l *LinearLayout) Padding() Edges { return l.padding }

// Rect returns the layout's outer rectangle.
func (l *LinearLayout) Rect() Rect { return l.rect }

// ContentRect returns the interior the children are placed in.
func (l *LinearLayout) ContentRect() Rect {
	inset := l.padding
	if l.border {
		inset = inset.Add(EdgeAll(1))
	}
	return l.rect.Inset(inset)
}

// TooSmall reports whether the last solve could not honor every child's
// minimum. It stays set until the next solve.
func (l *LinearLayout) TooSmall() bool { return l.tooSmall }

// Outcomes returns the last solve's decision for every child, in child order.
func (l *LinearLayout) Outcomes() []Outcome {
	return append([]Outcome(nil), l.outcomes...)
}

// SetEnabled changes the owner's enabled flag.
func (l *LinearLayout) SetEnabled(on bool) {
	if l.enabled == on {
		return
	}
	l.enabled = on
	l.post(relayoutEvent{})
	l.polish(l)
}

// SetWidthPolicy changes the layout's own width policy.
func (l *LinearLayout) SetWidthPolicy(p Policy) {
	if l.widthPolicy.Equal(p) {
		return
	}
	l.widthPolicy = p
	l.polish(l)
}

// SetHeightPolicy changes the layout's own height policy.
func (l *LinearLayout) SetHeightPolicy(p Policy) {
	if l.heightPolicy.Equal(p) {
		return
	}
	l.heightPolicy = p
	l.polish(l)
}

// HandleEvent applies a notification and solves when geometry may have changed.
func (l *LinearLayout) HandleEvent(ev Event) {
	switch ev := ev.(type) {
	case ResizeEvent:
		if ev.Size == l.rect.Size() {
			return
		}
		l.rect.Width, l.rect.Height = ev.Size.Width, ev.Size.Height
	case MoveEvent:
		if ev.Point == l.rect.Point() {
			return
		}
		l.rect.X, l.rect.Y = ev.Point.X, ev.Point.Y
	case EnableEvent:
		if ev.Enabled == l.shown {
			return
		}
		l.shown = ev.Enabled
	case ChildAddedEvent, ChildRemovedEvent, ChildPolishedEvent, relayoutEvent:
	default:
		return
	}
	l.relayout()
}

func (l *LinearLayout) active() bool {
	return l.enabled && l.shown
}

func (l *LinearLayout) primaryPolicy(w Widget) Policy {
	if l.dir == Column {
		return w.HeightPolicy()
	}
	return w.WidthPolicy()
}

func (l *LinearLayout) secondaryPolicy(w Widget) Policy {
	if l.dir == Column {
		return w.WidthPolicy()
	}
	return w.HeightPolicy()
}

// relayout solves both axes for the children in the visibility window and
// posts the results to every child.
func (l *LinearLayout) relayout() {
	outcomes := make([]Outcome, len(l.children))
	for i, c := range l.children {
		outcomes[i] = Outcome{Widget: c}
	}

	if !l.active() {
		l.tooSmall = false
		l.outcomes = outcomes
		l.emit()
		debug.Logger().Debug("linear layout disabled",
			zap.Stringer("direction", l.dir),
			zap.Int("children", len(l.children)),
		)
		return
	}

	content := l.ContentRect()
	var (
		visible []int
		items   []layout.Item
	)
	for i := l.offset; i < len(l.children); i++ {
		c := l.children[i]
		if !c.Enabled() {
			continue
		}
		visible = append(visible, i)
		items = append(items, layout.Item{Policy: l.primaryPolicy(c)})
	}

	tooSmall := layout.Solve(l.dir.Primary(content.Size()), items)

	primary := make([]int, len(items))
	secondary := make([]int, len(items))
	crossLength := l.dir.Secondary(content.Size())
	for k, i := range visible {
		primary[k] = items[k].Length
		size, small := layout.CrossSize(l.secondaryPolicy(l.children[i]), crossLength)
		secondary[k] = size
		tooSmall = tooSmall || small
	}

	rects := layout.Arrange(content, l.dir, primary, secondary)
	for k, i := range visible {
		r := rects[k].Intersect(content)
		if r.IsEmpty() {
			continue
		}
		outcomes[i].Displayed = true
		outcomes[i].Rect = r
	}

	l.tooSmall = tooSmall
	l.outcomes = outcomes
	l.emit()

	debug.Logger().Debug("linear layout solved",
		zap.Stringer("direction", l.dir),
		zap.Stringer("content", content),
		zap.Int("offset", l.offset),
		zap.Int("children", len(l.children)),
		zap.Int("visible", len(visible)),
		zap.Bool("too_small", tooSmall),
	)
}

// emit posts the current outcomes to the children. Shown children get
// EnableEvent, MoveEvent and ResizeEvent in that order. A hidden child
// forgets its rect, so its next Old values are zero.
func (l *LinearLayout) emit() {
	if l.dispatcher == nil {
		return
	}
	for _, o := range l.outcomes {
		if !o.Displayed {
			delete(l.last, o.Widget)
			l.dispatcher.Post(o.Widget, EnableEvent{Enabled: false})
			continue
		}
		old := l.last[o.Widget]
		l.dispatcher.Post(o.Widget, EnableEvent{Enabled: true})
		l.dispatcher.Post(o.Widget, MoveEvent{Point: o.Rect.Point(), Old: old.Point()})
		l.dispatcher.Post(o.Widget, ResizeEvent{Size: o.Rect.Size(), Old: old.Size()})
		l.last[o.Widget] = o.Rect
	}
}

// post queues ev for the layout itself.
func (l *LinearLayout) post(ev Event) {
	if l.dispatcher == nil {
		l.pending = append(l.pending, ev)
		return
	}
	l.dispatcher.Post(l, ev)
}

// attach is called by the layout's new container.
func (l *LinearLayout) attach(parent Handler, d *Dispatcher) {
	l.parentLink.attach(parent, d)
	if l.dispatcher == nil && d != nil {
		l.setDispatcher(d)
	}
}

// setDispatcher adopts d, hands it to the children and posts anything
// queued while the layout had no dispatcher.
func (l *LinearLayout) setDispatcher(d *Dispatcher) {
	l.dispatcher = d
	for _, c := range l.children {
		if a, ok := c.(attacher); ok {
			a.attach(l, d)
		}
	}
	for _, ev := range l.pending {
		d.Post(l, ev)
	}
	l.pending = nil
}
