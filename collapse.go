package viz

import (
	"fmt"

	"github.com/gogpu/viz/compositor"
)

// overlayItems presents an overlay to the compositor machinery, which sees
// only type names, groups and labels, never the element types themselves.
type overlayItems struct {
	ov *Overlay
}

func (s overlayItems) TypeName() string         { return s.ov.TypeName() }
func (s overlayItems) Group() string            { return s.ov.Group() }
func (s overlayItems) Label() string            { return s.ov.Label() }
func (s overlayItems) Len() int                 { return s.ov.Len() }
func (s overlayItems) At(i int) compositor.Item { return s.ov.Item(i) }

// CollapseElement applies the strongest matching compositor definition to
// the overlay: the matched run is sliced out, transformed by the
// definition's operation, regrouped under the definition's group and
// spliced back in place. The overlay is returned unchanged when nothing
// matches. The result keeps the overlay's custom tree id.
func CollapseElement(reg *compositor.Registry, ov *Overlay, key any, ranges compositor.Ranges, mode compositor.Mode) (*Overlay, error) {
	if ov == nil {
		return nil, ErrNilElement
	}
	match, ok := reg.StrongestMatch(overlayItems{ov}, mode)
	if !ok {
		return ov, nil
	}
	def := match.Definition
	sub := ov.Slice(match.Span.Start, match.Span.End)
	out, err := def.Apply(overlayItems{sub}, ranges, key)
	if err != nil {
		return nil, fmt.Errorf("viz: collapsing %s: %w", def, err)
	}
	el, ok := out.(Element)
	if !ok {
		return nil, fmt.Errorf("viz: collapsing %s: operation %q returned %T, not an element", def, def.Operation().Name(), out)
	}
	if group := def.Group(); group != "" {
		el = el.Relabel(group, "")
	}
	return ov.Splice(match.Span.Start, match.Span.End, el), nil
}

// Collapse applies CollapseElement to every frame of the map. The i'th
// entry of ranges, when present, supplies the normalization ranges of the
// i'th frame; the frame key is forwarded to keyed operations. With no
// definitions registered the map is returned as-is.
func Collapse(reg *compositor.Registry, frames *ViewMap, ranges []compositor.Ranges, mode compositor.Mode) (*ViewMap, error) {
	if frames == nil {
		return nil, ErrNilElement
	}
	if reg.Len() == 0 {
		return frames, nil
	}
	out := NewViewMap()
	for i := 0; i < frames.Len(); i++ {
		key, ov := frames.At(i)
		var rng compositor.Ranges
		if i < len(ranges) {
			rng = ranges[i]
		}
		collapsed, err := CollapseElement(reg, ov, key, rng, mode)
		if err != nil {
			return nil, err
		}
		out.Set(key, collapsed)
	}
	return out, nil
}
