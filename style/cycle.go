package style

import (
	"fmt"
	"slices"
)

// Cyclic is satisfied by option values that expand into a finite value
// sequence indexed modularly, such as Cycle and Palette. Options treats any
// Cyclic keyword value as a request for per-item styling.
type Cyclic interface {
	// Values returns a copy of the resolved value sequence.
	Values() []any
	// Len returns the number of resolved values.
	Len() int
	// Take returns a Cyclic restricted to n values. Implementations either
	// truncate or resample; n < 1 leaves the length unchanged.
	Take(n int) Cyclic
}

// Cycle holds a finite value sequence that repeats when indexed beyond its
// length. Values are resolved once at construction, either from the given
// literals or from the named entry in the cycle catalog.
type Cycle struct {
	key    string
	values []any
}

// DefaultCycleKey is the catalog entry NewDefaultCycle resolves.
const DefaultCycleKey = "grayscale"

func init() {
	RegisterCycle(DefaultCycleKey, "#000000", "#555555", "#aaaaaa", "#ffffff")
}

// NewCycle creates a Cycle over the given values.
func NewCycle(values ...any) (*Cycle, error) {
	if len(values) == 0 {
		return nil, ErrNoCycleValues
	}
	return &Cycle{values: slices.Clone(values)}, nil
}

// NewCycleKey creates a Cycle from a named entry in the cycle catalog.
func NewCycleKey(key string) (*Cycle, error) {
	if key == "" {
		return nil, ErrNoCycleValues
	}
	values, ok := LookupCycle(key)
	if !ok {
		return nil, &UnknownKeyError{Key: key, Catalog: "cycles"}
	}
	if len(values) == 0 {
		return nil, ErrNoCycleValues
	}
	return &Cycle{key: key, values: values}, nil
}

// NewDefaultCycle creates a Cycle from the default catalog entry.
func NewDefaultCycle() *Cycle {
	return MustCycleKey(DefaultCycleKey)
}

// MustCycle is like NewCycle but panics on error.
// Use for package-level defaults and tests.
func MustCycle(values ...any) *Cycle {
	c, err := NewCycle(values...)
	if err != nil {
		panic(err)
	}
	return c
}

// MustCycleKey is like NewCycleKey but panics on error.
func MustCycleKey(key string) *Cycle {
	c, err := NewCycleKey(key)
	if err != nil {
		panic(err)
	}
	return c
}

// Key returns the catalog key the values were resolved from, or "" when the
// cycle was built from literals.
func (c *Cycle) Key() string { return c.key }

// Values returns a copy of the resolved values.
func (c *Cycle) Values() []any { return slices.Clone(c.values) }

// Len returns the number of resolved values.
func (c *Cycle) Len() int { return len(c.values) }

// Value returns the value at position i, wrapping modularly. Negative
// indices wrap backwards from the end.
func (c *Cycle) Value(i int) any {
	n := len(c.values)
	return c.values[((i%n)+n)%n]
}

// Take returns a Cycle over the first n values. When n < 1 or n exceeds the
// length, the full cycle is kept.
func (c *Cycle) Take(n int) Cyclic {
	values := c.values
	if n >= 1 && n < len(values) {
		values = values[:n]
	}
	return &Cycle{key: c.key, values: slices.Clone(values)}
}

func (c *Cycle) String() string {
	if c.key != "" {
		return fmt.Sprintf("Cycle(%q)", c.key)
	}
	return fmt.Sprintf("Cycle(%v)", c.values)
}
