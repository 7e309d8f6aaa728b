package viz

import "slices"

// Overlay is an ordered composition of elements displayed on shared axes.
// Overlays are what compositor definitions match against.
type Overlay struct {
	Base
	items []Element
}

// NewOverlay creates an Overlay over the given elements.
func NewOverlay(items ...Element) *Overlay {
	return &Overlay{
		Base:  MakeBase("Overlay", ""),
		items: slices.Clone(items),
	}
}

// TypeName returns "Overlay".
func (o *Overlay) TypeName() string { return "Overlay" }

// Items returns a copy of the constituent elements in order.
func (o *Overlay) Items() []Element { return slices.Clone(o.items) }

// Len returns the number of constituent elements.
func (o *Overlay) Len() int { return len(o.items) }

// Item returns the i-th constituent element.
func (o *Overlay) Item(i int) Element { return o.items[i] }

// Relabel returns a copy with the group and label replaced.
func (o *Overlay) Relabel(group, label string) Element {
	c := *o
	c.Base = o.Base.relabeled(group, label)
	c.items = slices.Clone(o.items)
	return &c
}

// Traverse calls fn on the overlay and then every constituent element.
func (o *Overlay) Traverse(fn func(Element)) {
	fn(o)
	for _, el := range o.items {
		el.Traverse(fn)
	}
}

// Slice returns a fresh Overlay over the elements in [i, j).
func (o *Overlay) Slice(i, j int) *Overlay {
	return NewOverlay(o.items[i:j]...)
}

// Splice returns an Overlay with the elements in [i, j) replaced by repl.
// The result keeps this overlay's tree id, so custom options continue to
// apply to the collapsed form.
func (o *Overlay) Splice(i, j int, repl ...Element) *Overlay {
	items := make([]Element, 0, len(o.items)-(j-i)+len(repl))
	items = append(items, o.items[:i]...)
	items = append(items, repl...)
	items = append(items, o.items[j:]...)
	out := NewOverlay(items...)
	out.id = o.id
	return out
}
