package viz

import "slices"

// ViewMap is an insertion-ordered mapping from frame keys to overlays, the
// shape produced by sampling a visualization over a dimension such as time.
// Collapse rewrites a ViewMap frame by frame.
type ViewMap struct {
	keys  []string
	index map[string]int
	vals  []*Overlay
}

// NewViewMap creates an empty ViewMap.
func NewViewMap() *ViewMap {
	return &ViewMap{index: make(map[string]int)}
}

// Set stores the overlay under the key. Re-setting an existing key replaces
// the overlay in place, keeping the key's position.
func (m *ViewMap) Set(key string, ov *Overlay) {
	if i, ok := m.index[key]; ok {
		m.vals[i] = ov
		return
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, ov)
}

// Get returns the overlay stored under the key.
func (m *ViewMap) Get(key string) (*Overlay, bool) {
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.vals[i], true
}

// Keys returns the keys in insertion order.
func (m *ViewMap) Keys() []string { return slices.Clone(m.keys) }

// At returns the i-th key and overlay in insertion order.
func (m *ViewMap) At(i int) (string, *Overlay) { return m.keys[i], m.vals[i] }

// Len returns the number of frames.
func (m *ViewMap) Len() int { return len(m.keys) }

// Clone returns a ViewMap with the same keys sharing the same overlays.
func (m *ViewMap) Clone() *ViewMap {
	c := NewViewMap()
	for i, key := range m.keys {
		c.Set(key, m.vals[i])
	}
	return c
}
