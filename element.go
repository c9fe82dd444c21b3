package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

var (
	_ Widget   = (*Element)(nil)
	_ attacher = (*Element)(nil)
)

// Element is a leaf widget: a pair of size policies, an optional label and
// the geometry its container last gave it.
//
// Two flags describe visibility. Enabled is set by the owner and decides
// whether the element takes part in layout at all. Displayed is set by the
// container and says whether the element got a place in the last solve.
type Element struct {
	parentLink

	name string
	text string

	widthPolicy  Policy
	heightPolicy Policy

	enabled   bool
	displayed bool
	rect      Rect

	onEvent func(Event)
}

// ElementOption configures an Element.
type ElementOption func(*Element)

// WithName sets a name used in logs and tool output.
func WithName(name string) ElementOption {
	return func(e *Element) {
		e.name = name
	}
}

// WithText sets the label and derives the hints from it: the width hint is
// the display width of the widest line and the height hint is the line
// count. Policy kinds are kept.
func WithText(s string) ElementOption {
	return func(e *Element) {
		e.text = s
		e.fitText()
	}
}

// WithWidth sets the width policy.
func WithWidth(p Policy) ElementOption {
	return func(e *Element) {
		e.widthPolicy = p
	}
}

// WithHeight sets the height policy.
func WithHeight(p Policy) ElementOption {
	return func(e *Element) {
		e.heightPolicy = p
	}
}

// WithDisabled creates the element with its enabled flag off.
func WithDisabled() ElementOption {
	return func(e *Element) {
		e.enabled = false
	}
}

// WithOnEvent sets a hook called after the element applies each event.
func WithOnEvent(fn func(Event)) ElementOption {
	return func(e *Element) {
		e.onEvent = fn
	}
}

// NewElement creates an Element with the given options.
// By default both policies are Preferred with hint 0.
func NewElement(opts ...ElementOption) *Element {
	e := &Element{
		widthPolicy:  DefaultPolicy(),
		heightPolicy: DefaultPolicy(),
		enabled:      true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the element's name.
func (e *Element) Name() string { return e.name }

// Text returns the label.
func (e *Element) Text() string { return e.text }

// Enabled reports the owner's enabled flag.
func (e *Element) Enabled() bool { return e.enabled }

// Displayed reports whether the container showed the element in its last solve.
func (e *Element) Displayed() bool { return e.displayed }

// Rect returns the last rectangle the container gave the element.
func (e *Element) Rect() Rect { return e.rect }

// WidthPolicy returns the width policy.
func (e *Element) WidthPolicy() Policy { return e.widthPolicy }

// HeightPolicy returns the height policy.
func (e *Element) HeightPolicy() Policy { return e.heightPolicy }

// SetText changes the label, refits the hints and asks for a new layout.
func (e *Element) SetText(s string) {
	if e.text == s {
		return
	}
	e.text = s
	e.fitText()
	e.polish(e)
}

// SetWidthPolicy changes the width policy and asks for a new layout.
func (e *Element) SetWidthPolicy(p Policy) {
	if e.widthPolicy.Equal(p) {
		return
	}
	e.widthPolicy = p
	e.polish(e)
}

// SetHeightPolicy changes the height policy and asks for a new layout.
func (e *Element) SetHeightPolicy(p Policy) {
	if e.heightPolicy.Equal(p) {
		return
	}
	e.heightPolicy = p
	e.polish(e)
}

// SetEnabled changes the owner's enabled flag and asks for a new layout.
func (e *Element) SetEnabled(on bool) {
	if e.enabled == on {
		return
	}
	e.enabled = on
	e.polish(e)
}

// HandleEvent applies geometry and visibility from the container.
func (e *Element) HandleEvent(ev Event) {
	switch ev := ev.(type) {
	case EnableEvent:
		e.displayed = ev.Enabled
	case MoveEvent:
		e.rect.X, e.rect.Y = ev.Point.X, ev.Point.Y
	case ResizeEvent:
		e.rect.Width, e.rect.Height = ev.Size.Width, ev.Size.Height
	}
	if e.onEvent != nil {
		e.onEvent(ev)
	}
}

func (e *Element) fitText() {
	width, height := textSize(e.text)
	e.widthPolicy = e.widthPolicy.As(e.widthPolicy.Kind(), width)
	e.heightPolicy = e.heightPolicy.As(e.heightPolicy.Kind(), height)
}

// textSize returns the display width of the widest line and the line count.
func textSize(s string) (width, height int) {
	if s == "" {
		return 0, 0
	}
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line))
	}
	return width, len(lines)
}
