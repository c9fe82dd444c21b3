package tree

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	tui "github.com/grindlemire/go-tui-layout"
)

var (
	// ErrUnknownKind is wrapped when a policy names a kind that does not exist.
	ErrUnknownKind = errors.New("unknown policy kind")
	// ErrInvalidTree is wrapped when a description cannot be built.
	ErrInvalidTree = errors.New("invalid tree")
)

// Node is one widget in a tree description.
type Node struct {
	Name      string      `yaml:"name"`
	Direction string      `yaml:"direction"`
	Border    bool        `yaml:"border"`
	Padding   int         `yaml:"padding"`
	Offset    int         `yaml:"offset"`
	Disabled  bool        `yaml:"disabled"`
	Text      string      `yaml:"text"`
	Width     *PolicySpec `yaml:"width"`
	Height    *PolicySpec `yaml:"height"`
	Children  []*Node     `yaml:"children"`
}

// IsContainer reports whether n builds into a LinearLayout.
func (n *Node) IsContainer() bool {
	return n.Direction != "" || len(n.Children) > 0
}

// PolicySpec is the YAML form of a size policy.
type PolicySpec struct {
	Kind         string `yaml:"kind"`
	Hint         *int   `yaml:"hint"`
	Min          *int   `yaml:"min"`
	Max          *int   `yaml:"max"`
	Stretch      *int   `yaml:"stretch"`
	CanIgnoreMin bool   `yaml:"can_ignore_min"`
}

// Policy converts the spec to a validated policy. fallbackHint is used when
// the spec has no hint.
func (s *PolicySpec) Policy(fallbackHint int) (tui.Policy, error) {
	kind := tui.KindPreferred
	if s.Kind != "" {
		k, err := tui.ParseKind(s.Kind)
		if err != nil {
			return tui.Policy{}, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
		}
		kind = k
	}

	hint := fallbackHint
	if s.Hint != nil {
		hint = *s.Hint
	}
	p := tui.DefaultPolicy().As(kind, hint)
	if s.Min != nil {
		p = p.WithMin(*s.Min)
	}
	if s.Max != nil {
		p = p.WithMax(*s.Max)
	}
	if s.Stretch != nil {
		if *s.Stretch <= 0 {
			return tui.Policy{}, fmt.Errorf("%w: stretch %d is not positive", tui.ErrMalformedPolicy, *s.Stretch)
		}
		p = p.WithStretch(*s.Stretch)
	}
	p = p.WithCanIgnoreMin(s.CanIgnoreMin)

	if err := p.Validate(); err != nil {
		return tui.Policy{}, err
	}
	return p, nil
}

// Parse decodes a tree description. Unknown fields are rejected.
func Parse(r io.Reader) (*Node, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var root Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty description", ErrInvalidTree)
		}
		return nil, fmt.Errorf("decoding tree: %w", err)
	}
	if !root.IsContainer() {
		return nil, fmt.Errorf("%w: root must have a direction or children", ErrInvalidTree)
	}
	return &root, nil
}

// ParseBytes is Parse for an in-memory description.
func ParseBytes(data []byte) (*Node, error) {
	return Parse(bytes.NewReader(data))
}

// Load reads and parses the description at path.
func Load(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening tree: %w", err)
	}
	defer f.Close()

	n, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}
