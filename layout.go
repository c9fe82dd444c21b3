// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package tui

import "github.com/grindlemire/go-tui-layout/internal/layout"

// Direction specifies the primary axis of a linear layout.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Kind selects how a widget's length responds to available space.
type Kind = layout.Kind

const (
	KindFixed            = layout.KindFixed
	KindMinimum          = layout.KindMinimum
	KindMaximum          = layout.KindMaximum
	KindPreferred        = layout.KindPreferred
	KindExpanding        = layout.KindExpanding
	KindMinimumExpanding = layout.KindMinimumExpanding
	KindIgnored          = layout.KindIgnored
)

// Policy describes a widget's sizing preference along one axis.
type Policy = layout.Policy

// Unbounded is the max of a policy with no upper bound.
const Unbounded = layout.Unbounded

// ErrMalformedPolicy is wrapped by errors from Policy.Validate.
var ErrMalformedPolicy = layout.ErrMalformedPolicy

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// FixedPolicy returns a policy that is always exactly hint cells long.
func FixedPolicy(hint int) Policy { return layout.FixedPolicy(hint) }

// MinimumPolicy returns a policy that is at least hint cells long.
func MinimumPolicy(hint int) Policy { return layout.MinimumPolicy(hint) }

// MaximumPolicy returns a policy that is at most hint cells long.
func MaximumPolicy(hint int) Policy { return layout.MaximumPolicy(hint) }

// PreferredPolicy returns a policy that prefers hint cells.
func PreferredPolicy(hint int) Policy { return layout.PreferredPolicy(hint) }

// ExpandingPolicy returns a policy that prefers hint cells and claims extra space first.
func ExpandingPolicy(hint int) Policy { return layout.ExpandingPolicy(hint) }

// MinimumExpandingPolicy returns a policy that is at least hint cells and claims extra space first.
func MinimumExpandingPolicy(hint int) Policy { return layout.MinimumExpandingPolicy(hint) }

// IgnoredPolicy returns a policy sized purely by its stretch share.
func IgnoredPolicy() Policy { return layout.IgnoredPolicy() }

// DefaultPolicy is the policy a widget gets when none is configured.
func DefaultPolicy() Policy { return layout.DefaultPolicy() }

// ParseKind converts a kind name such as "minimum_expanding" to a Kind.
func ParseKind(s string) (Kind, error) { return layout.ParseKind(s) }

// NewRect creates a Rect.
func NewRect(x, y, width, height int) Rect { return layout.NewRect(x, y, width, height) }

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges { return layout.EdgeAll(n) }

// EdgeSymmetric creates Edges with vertical and horizontal values.
func EdgeSymmetric(v, h int) Edges { return layout.EdgeSymmetric(v, h) }
