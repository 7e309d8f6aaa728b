package compositor

import (
	"slices"
	"sync"

	"github.com/gogpu/viz/internal/vlog"
)

// Registry holds compositor definitions in registration order, at most one
// per output group, together with the distinct operations they use.
type Registry struct {
	mu   sync.RWMutex
	defs []*Compositor
	ops  []Operation
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// defaultRegistry is the process-wide registry used by the package-level
// functions.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// Register adds the definition to the default registry.
func Register(c *Compositor) { defaultRegistry.Register(c) }

// Definitions returns the default registry's definitions.
func Definitions() []*Compositor { return defaultRegistry.Definitions() }

// Operations returns the default registry's operations.
func Operations() []Operation { return defaultRegistry.Operations() }

// StrongestMatch matches against the default registry.
func StrongestMatch(seq Sequence, mode Mode) (Match, bool) {
	return defaultRegistry.StrongestMatch(seq, mode)
}

// Register adds a definition. A definition for the same output group is
// removed first, so re-registering a group moves it to the end of the
// registration order. The definition's operation is recorded once by name.
func (r *Registry) Register(c *Compositor) {
	if c == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, def := range r.defs {
		if def.group == c.group {
			r.defs = slices.Delete(r.defs, i, i+1)
			vlog.Get().Debug("compositor: replacing definition",
				"group", c.group, "pattern", c.pattern)
			break
		}
	}
	r.defs = append(r.defs, c)
	name := c.operation.Name()
	for _, op := range r.ops {
		if op.Name() == name {
			return
		}
	}
	r.ops = append(r.ops, c.operation)
}

// Unregister removes the definition for the output group.
// It reports whether a definition was removed.
func (r *Registry) Unregister(group string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, def := range r.defs {
		if def.group == group {
			r.defs = slices.Delete(r.defs, i, i+1)
			return true
		}
	}
	return false
}

// Definitions returns the definitions in registration order.
func (r *Registry) Definitions() []*Compositor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.defs)
}

// ForGroup returns the definition registered for the output group.
func (r *Registry) ForGroup(group string) (*Compositor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, def := range r.defs {
		if def.group == group {
			return def, true
		}
	}
	return nil, false
}

// Operations returns the distinct operations in first-seen order.
func (r *Registry) Operations() []Operation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.ops)
}

// Len returns the number of definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}

// Reset removes every definition and operation.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs = nil
	r.ops = nil
}

// Match couples a definition with the level and span where it matched.
type Match struct {
	Level      int
	Definition *Compositor
	Span       Span
}

// StrongestMatch returns the definition applying to the sequence in the
// given mode. Candidates are ordered by ascending match level, ties keeping
// registration order, and the first candidate is returned. ok is false when
// no definition matches.
func (r *Registry) StrongestMatch(seq Sequence, mode Mode) (Match, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matches []Match
	for _, def := range r.defs {
		if def.mode != mode {
			continue
		}
		level, span, ok := def.MatchLevel(seq)
		if !ok {
			continue
		}
		matches = append(matches, Match{Level: level, Definition: def, Span: span})
	}
	if len(matches) == 0 {
		return Match{}, false
	}
	slices.SortStableFunc(matches, func(a, b Match) int {
		return a.Level - b.Level
	})
	return matches[0], true
}
