package compositor

import (
	"maps"
	"strings"

	"github.com/gogpu/viz/internal/ident"
)

// Item is the element view the matcher works against: the type name, group
// and label of one entry in an overlay.
type Item interface {
	TypeName() string
	Group() string
	Label() string
}

// Sequence is an ordered run of items, typically an overlay.
type Sequence interface {
	Len() int
	At(i int) Item
}

// Ranges carries per-dimension display ranges, keyed by dimension name,
// handed through to operations that normalize against them.
type Ranges map[string][2]float64

// Params carries extra operation parameters fixed at registration time.
type Params map[string]any

// Operation transforms a matched overlay run into a replacement item.
type Operation interface {
	// Name identifies the operation for registry bookkeeping.
	Name() string
	// Apply runs the operation. v is the matched run, or the bare element
	// when the run holds a single item.
	Apply(v Item, ranges Ranges, params Params) (Item, error)
}

// KeyedOperation is implemented by operations that specialize per frame.
// Apply calls are routed through ApplyKeyed when a frame key is available.
type KeyedOperation interface {
	Operation
	ApplyKeyed(v Item, key any, ranges Ranges, params Params) (Item, error)
}

// Mode selects when a definition applies.
type Mode int

const (
	// ModeData definitions transform data before it reaches a plot.
	ModeData Mode = iota

	// ModeDisplay definitions transform data only at display time.
	ModeDisplay
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeData:
		return "data"
	case ModeDisplay:
		return "display"
	default:
		return "unknown"
	}
}

// component is one parsed pattern element: a type name with optional group
// and label qualifiers.
type component struct {
	typeName string
	group    string
	label    string
	parts    int
}

// Span marks a half-open [Start, End) run within a sequence.
type Span struct {
	Start, End int
}

// Compositor binds an overlay pattern such as "Image.R * Image.G * Image.B"
// to an operation. When an overlay containing a matching run is collapsed,
// the operation replaces the run and the result is regrouped under the
// definition's output group.
type Compositor struct {
	pattern    string
	components []component
	operation  Operation
	group      string
	label      string
	mode       Mode
	params     Params
}

// New parses the pattern and builds a definition. Pattern components are
// separated by "*" and each holds one to three dot-separated fields:
// type name, group and label. All labeled components must agree on the
// label.
func New(pattern string, op Operation, group string, mode Mode, params Params) (*Compositor, error) {
	if op == nil {
		return nil, ErrNilOperation
	}
	c := &Compositor{
		pattern:   pattern,
		operation: op,
		group:     group,
		mode:      mode,
		params:    maps.Clone(params),
	}
	var labels []string
	for _, part := range strings.Split(pattern, "*") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ".")
		for i, f := range fields {
			fields[i] = strings.TrimSpace(f)
		}
		if len(fields) > 3 {
			return nil, &PatternError{Pattern: pattern, Component: part, Reason: "more than three fields"}
		}
		if fields[0] == "" {
			return nil, &PatternError{Pattern: pattern, Component: part, Reason: "missing type name"}
		}
		comp := component{typeName: fields[0], parts: len(fields)}
		if len(fields) > 1 {
			comp.group = fields[1]
		}
		if len(fields) > 2 {
			comp.label = fields[2]
			labels = append(labels, comp.label)
		}
		c.components = append(c.components, comp)
	}
	if len(c.components) == 0 {
		return nil, ErrEmptyPattern
	}
	for _, l := range labels {
		if l != labels[0] {
			return nil, ErrMismatchedLabels
		}
	}
	if len(labels) > 0 {
		c.label = labels[0]
	}
	return c, nil
}

// Must is like New but panics on error.
func Must(pattern string, op Operation, group string, mode Mode, params Params) *Compositor {
	c, err := New(pattern, op, group, mode, params)
	if err != nil {
		panic(err)
	}
	return c
}

// Pattern returns the original pattern string.
func (c *Compositor) Pattern() string { return c.pattern }

// Group returns the output group applied to collapse results.
func (c *Compositor) Group() string { return c.group }

// Label returns the label shared by the pattern's labeled components, or "".
func (c *Compositor) Label() string { return c.label }

// Mode returns when the definition applies.
func (c *Compositor) Mode() Mode { return c.mode }

// Operation returns the bound operation.
func (c *Compositor) Operation() Operation { return c.operation }

// Params returns a copy of the registration parameters.
func (c *Compositor) Params() Params { return maps.Clone(c.params) }

// Width returns the number of pattern components.
func (c *Compositor) Width() int { return len(c.components) }

// matchRun scores the pattern against a window of items. Each component
// scores one point for the type name and one more per matching qualifier;
// any miss on a required field fails the whole window.
func (c *Compositor) matchRun(seq Sequence, start int) (int, bool) {
	level := 0
	for i, comp := range c.components {
		el := seq.At(start + i)
		if comp.typeName != el.TypeName() {
			return 0, false
		}
		level++
		if comp.parts == 1 {
			continue
		}
		group := el.Group()
		if comp.group != group && comp.group != ident.Sanitize(group) {
			return 0, false
		}
		level++
		if comp.parts == 2 {
			continue
		}
		label := el.Label()
		if comp.label != label && comp.label != ident.Sanitize(label) {
			return 0, false
		}
		level++
	}
	return level, true
}

// MatchLevel slides the pattern across the sequence and returns the match
// level and span of the best window. Higher levels give more specific
// matches; among equal levels the earliest window wins. ok is false when no
// window matches.
func (c *Compositor) MatchLevel(seq Sequence) (level int, span Span, ok bool) {
	width := len(c.components)
	if width > seq.Len() {
		return 0, Span{}, false
	}
	for start := 0; start+width <= seq.Len(); start++ {
		lvl, matched := c.matchRun(seq, start)
		if !matched {
			continue
		}
		if lvl > level {
			level = lvl
			span = Span{Start: start, End: start + width}
			ok = true
		}
	}
	return level, span, ok
}

// Apply runs the operation on the matched run. A sequence holding a single
// item is unwrapped first, so element-wise operations receive the bare
// element. With a non-nil key, operations that implement KeyedOperation are
// invoked through ApplyKeyed.
func (c *Compositor) Apply(v Item, ranges Ranges, key any) (Item, error) {
	if seq, ok := v.(Sequence); ok && seq.Len() == 1 {
		v = seq.At(0)
	}
	if key != nil {
		if ko, ok := c.operation.(KeyedOperation); ok {
			return ko.ApplyKeyed(v, key, ranges, c.params)
		}
	}
	return c.operation.Apply(v, ranges, c.params)
}

func (c *Compositor) String() string {
	return "Compositor(" + c.pattern + " -> " + c.group + ")"
}
