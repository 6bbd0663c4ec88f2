package layout

import (
	"fmt"
	"strings"
)

// SizeConstraint is a per-axis bit-set describing how a widget reacts when
// the layout offers it more or less space than it prefers.
type SizeConstraint uint8

// Policy bits.
const (
	GrowPolicy   SizeConstraint = 1 << iota // may be larger than preferred
	ExpandPolicy                            // wants any spare space
	ShrinkPolicy                            // may be smaller than preferred
	IgnorePolicy                            // excluded from layout on this axis
)

// Named constraints.
const (
	FixedConstraint            SizeConstraint = 0
	MinimumConstraint                         = GrowPolicy
	MaximumConstraint                         = ShrinkPolicy
	PreferredConstraint                       = GrowPolicy | ShrinkPolicy
	MinimumExpandingConstraint                = GrowPolicy | ExpandPolicy
	ExpandingConstraint                       = GrowPolicy | ShrinkPolicy | ExpandPolicy
	IgnoredConstraint                         = GrowPolicy | ShrinkPolicy | IgnorePolicy
)

var constraintNames = map[SizeConstraint]string{
	FixedConstraint:            "fixed",
	MinimumConstraint:          "minimum",
	MaximumConstraint:          "maximum",
	PreferredConstraint:        "preferred",
	MinimumExpandingConstraint: "minimum-expanding",
	ExpandingConstraint:        "expanding",
	IgnoredConstraint:          "ignored",
}

var policyNames = []struct {
	bit  SizeConstraint
	name string
}{
	{GrowPolicy, "grow"},
	{ExpandPolicy, "expand"},
	{ShrinkPolicy, "shrink"},
	{IgnorePolicy, "ignore"},
}

// Has reports whether every bit of p is set.
func (c SizeConstraint) Has(p SizeConstraint) bool {
	return c&p == p
}

// CanGrow reports whether GrowPolicy is set.
func (c SizeConstraint) CanGrow() bool { return c.Has(GrowPolicy) }

// CanShrink reports whether ShrinkPolicy is set.
func (c SizeConstraint) CanShrink() bool { return c.Has(ShrinkPolicy) }

// Expands reports whether ExpandPolicy is set.
func (c SizeConstraint) Expands() bool { return c.Has(ExpandPolicy) }

// Ignored reports whether IgnorePolicy is set.
func (c SizeConstraint) Ignored() bool { return c.Has(IgnorePolicy) }

// String returns the constraint name, or the '|'-joined policy bits when
// the value is not one of the named constraints.
func (c SizeConstraint) String() string {
	if name, ok := constraintNames[c]; ok {
		return name
	}
	var parts []string
	for _, p := range policyNames {
		if c.Has(p.bit) {
			parts = append(parts, p.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseConstraint parses a constraint name ("expanding") or a '|'-joined
// list of policy names ("grow|shrink"). Matching is case-insensitive.
func ParseConstraint(s string) (SizeConstraint, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range constraintNames {
		if name == s {
			return c, nil
		}
	}

	var c SizeConstraint
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		found := false
		for _, p := range policyNames {
			if p.name == part {
				c |= p.bit
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown size constraint %q", part)
		}
	}
	return c, nil
}

// MarshalText implements encoding.TextMarshaler.
func (c SizeConstraint) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *SizeConstraint) UnmarshalText(text []byte) error {
	parsed, err := ParseConstraint(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
