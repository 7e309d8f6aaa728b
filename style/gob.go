package style

import (
	"bytes"
	"encoding/gob"

	"github.com/aclements/go-moremath/vec"
)

func init() {
	gob.Register(RGBA{})
	gob.Register(&Cycle{})
	gob.Register(&Palette{})
}

type cycleWire struct {
	Key    string
	Values []any
}

// GobEncode implements gob.GobEncoder.
func (c *Cycle) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(cycleWire{Key: c.key, Values: c.values})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (c *Cycle) GobDecode(data []byte) error {
	var w cycleWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return err
	}
	if len(w.Values) == 0 {
		return ErrNoCycleValues
	}
	c.key, c.values = w.Key, w.Values
	return nil
}

type paletteWire struct {
	Key     string
	Lo, Hi  float64
	Samples int
	Reverse bool
	Values  []any
}

// GobEncode implements gob.GobEncoder. The sampler function is not
// transmitted; decoding restores linear spacing.
func (p *Palette) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(paletteWire{
		Key:     p.key,
		Lo:      p.lo,
		Hi:      p.hi,
		Samples: p.samples,
		Reverse: p.reverse,
		Values:  p.values,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder. The sampled values travel with the
// palette, so decoding succeeds even when the colormap is not registered on
// the receiving side.
func (p *Palette) GobDecode(data []byte) error {
	var w paletteWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return err
	}
	if len(w.Values) == 0 {
		return ErrNoCycleValues
	}
	p.key, p.lo, p.hi = w.Key, w.Lo, w.Hi
	p.samples, p.reverse = w.Samples, w.Reverse
	p.sampler = vec.Linspace
	p.values = w.Values
	return nil
}

type optionsWire struct {
	GroupName string
	Allowed   []string
	Kw        Keywords
}

// GobEncode implements gob.GobEncoder.
func (o *Options) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(optionsWire{
		GroupName: o.groupName,
		Allowed:   o.allowed,
		Kw:        o.kw,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder. The keywords were validated when the
// Options was built, so decoding only re-expands the cyclic values.
func (o *Options) GobDecode(data []byte) error {
	var w optionsWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return err
	}
	rows, err := expand(w.Kw)
	if err != nil {
		return err
	}
	o.groupName, o.allowed = w.GroupName, w.Allowed
	o.kw = w.Kw.clone()
	o.rows = rows
	return nil
}

type treeWire struct {
	Identifier string
	Groups     map[string]*Options
	Children   []*OptionTree
}

// GobEncode implements gob.GobEncoder.
func (t *OptionTree) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(treeWire{
		Identifier: t.identifier,
		Groups:     t.groups,
		Children:   t.children,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder. Decoded trees come back
// instantiated, with parent links and child indices rebuilt.
func (t *OptionTree) GobDecode(data []byte) error {
	var w treeWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return err
	}
	t.identifier = w.Identifier
	t.groups = w.Groups
	t.children = w.Children
	t.childIndex = make(map[string]int, len(w.Children))
	t.instantiated = true
	for i, child := range t.children {
		child.parent = t
		t.childIndex[child.identifier] = i
	}
	return nil
}
