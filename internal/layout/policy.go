package layout

import (
	"errors"
	"fmt"
)

// Kind selects how a widget's length responds to the space its container has.
type Kind uint8

const (
	KindFixed            Kind = iota // Always exactly hint
	KindMinimum                      // At least hint, may grow
	KindMaximum                      // At most hint, may shrink to min
	KindPreferred                    // Starts at hint, may grow or shrink
	KindExpanding                    // Like Preferred, with first claim on extra space
	KindMinimumExpanding             // Like Minimum, with first claim on extra space
	KindIgnored                      // Stretch share of the container, hint unused
)

var kindNames = [...]string{
	KindFixed:            "fixed",
	KindMinimum:          "minimum",
	KindMaximum:          "maximum",
	KindPreferred:        "preferred",
	KindExpanding:        "expanding",
	KindMinimumExpanding: "minimum_expanding",
	KindIgnored:          "ignored",
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown policy kind %q", s)
}

// Unbounded is the max length of a policy with no upper bound.
const Unbounded = 1<<24 - 1

// ErrMalformedPolicy is wrapped by every error Policy.Validate returns.
var ErrMalformedPolicy = errors.New("malformed size policy")

// Policy describes a widget's sizing preference along one axis.
//
// Policies are values. The canonical constructors set the hint/min/max
// combination that defines each Kind; the With* setters change a single
// field and leave the rest alone.
type Policy struct {
	kind         Kind
	hint         int
	min          int
	max          int
	stretch      int
	canIgnoreMin bool
}

func newPolicy(k Kind, hint, minLen, maxLen int) Policy {
	return Policy{kind: k, hint: hint, min: minLen, max: maxLen, stretch: 1}
}

// FixedPolicy returns a policy that is always exactly hint long.
func FixedPolicy(hint int) Policy {
	return newPolicy(KindFixed, hint, hint, hint)
}

// MinimumPolicy returns a policy that is at least hint long.
func MinimumPolicy(hint int) Policy {
	return newPolicy(KindMinimum, hint, hint, Unbounded)
}

// MaximumPolicy returns a policy that is at most hint long.
func MaximumPolicy(hint int) Policy {
	return newPolicy(KindMaximum, hint, 0, hint)
}

// PreferredPolicy returns a policy that prefers hint but may grow or shrink.
func PreferredPolicy(hint int) Policy {
	return newPolicy(KindPreferred, hint, 0, Unbounded)
}

// ExpandingPolicy returns a policy that prefers hint and takes extra space
// before Preferred siblings do.
func ExpandingPolicy(hint int) Policy {
	return newPolicy(KindExpanding, hint, 0, Unbounded)
}

// MinimumExpandingPolicy returns a policy that is at least hint long and
// takes extra space before Preferred siblings do.
func MinimumExpandingPolicy(hint int) Policy {
	return newPolicy(KindMinimumExpanding, hint, hint, Unbounded)
}

// IgnoredPolicy returns a policy whose length is its stretch share of the
// whole container.
func IgnoredPolicy() Policy {
	return newPolicy(KindIgnored, 0, 0, Unbounded)
}

// DefaultPolicy is the policy a widget gets when none is configured.
func DefaultPolicy() Policy {
	return PreferredPolicy(0)
}

// Kind returns the policy kind.
func (p Policy) Kind() Kind { return p.kind }

// Hint returns the preferred length.
func (p Policy) Hint() int { return p.hint }

// Min returns the inclusive lower bound.
func (p Policy) Min() int { return p.min }

// Max returns the inclusive upper bound; Unbounded when there is none.
func (p Policy) Max() int { return p.max }

// Stretch returns the weight used when sharing slack or deficit.
func (p Policy) Stretch() int { return p.stretch }

// CanIgnoreMin reports whether the widget may shrink below Min as a last resort.
func (p Policy) CanIgnoreMin() bool { return p.canIgnoreMin }

// WithHint returns a copy of p with the hint replaced.
func (p Policy) WithHint(hint int) Policy {
	p.hint = hint
	return p
}

// WithMin returns a copy of p with the lower bound replaced.
func (p Policy) WithMin(minLen int) Policy {
	p.min = minLen
	return p
}

// WithMax returns a copy of p with the upper bound replaced.
func (p Policy) WithMax(maxLen int) Policy {
	p.max = maxLen
	return p
}

// WithStretch returns a copy of p with the stretch weight replaced.
// It panics if stretch is not positive.
func (p Policy) WithStretch(stretch int) Policy {
	if stretch <= 0 {
		panic(fmt.Sprintf("layout: stretch must be positive, got %d", stretch))
	}
	p.stretch = stretch
	return p
}

// WithCanIgnoreMin returns a copy of p with the last-resort shrink flag replaced.
func (p Policy) WithCanIgnoreMin(ok bool) Policy {
	p.canIgnoreMin = ok
	return p
}

// As reshapes p into the canonical form of k with the given hint, keeping
// its stretch and last-resort flag. The hint is ignored for KindIgnored.
// A non-positive stretch, as on the zero Policy, becomes 1.
func (p Policy) As(k Kind, hint int) Policy {
	var q Policy
	switch k {
	case KindFixed:
		q = FixedPolicy(hint)
	case KindMinimum:
		q = MinimumPolicy(hint)
	case KindMaximum:
		q = MaximumPolicy(hint)
	case KindExpanding:
		q = ExpandingPolicy(hint)
	case KindMinimumExpanding:
		q = MinimumExpandingPolicy(hint)
	case KindIgnored:
		q = IgnoredPolicy()
	default:
		q = PreferredPolicy(hint)
	}
	if p.stretch > 0 {
		q.stretch = p.stretch
	}
	q.canIgnoreMin = p.canIgnoreMin
	return q
}

// Equal reports whether p and other describe the same preference.
func (p Policy) Equal(other Policy) bool {
	return p == other
}

// Validate reports whether p is well formed: min <= hint <= max and a
// positive stretch. Ignored policies do not use their hint and skip that check.
func (p Policy) Validate() error {
	if int(p.kind) >= len(kindNames) {
		return fmt.Errorf("%w: unknown kind %d", ErrMalformedPolicy, p.kind)
	}
	if p.stretch <= 0 {
		return fmt.Errorf("%w: stretch %d is not positive", ErrMalformedPolicy, p.stretch)
	}
	if p.min < 0 {
		return fmt.Errorf("%w: min %d is negative", ErrMalformedPolicy, p.min)
	}
	if p.min > p.max {
		return fmt.Errorf("%w: min %d exceeds max %d", ErrMalformedPolicy, p.min, p.max)
	}
	if p.kind != KindIgnored && (p.hint < p.min || p.hint > p.max) {
		return fmt.Errorf("%w: hint %d outside [%d, %d]", ErrMalformedPolicy, p.hint, p.min, p.max)
	}
	return nil
}

// String formats the policy for logs and test failures.
func (p Policy) String() string {
	maxText := "inf"
	if p.max != Unbounded {
		maxText = fmt.Sprint(p.max)
	}
	s := fmt.Sprintf("%s(hint=%d min=%d max=%s stretch=%d", p.kind, p.hint, p.min, maxText, p.stretch)
	if p.canIgnoreMin {
		s += " can_ignore_min"
	}
	return s + ")"
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins.
func clamp(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
