package viz

import (
	"bytes"
	"encoding/gob"

	"github.com/gogpu/viz/style"
)

// Concrete element types carry their own gob hooks rather than promoting
// one from Base: a promoted GobEncode would hide the payload fields of the
// embedding type from gob entirely.

func init() {
	gob.Register(&Image{})
	gob.Register(&Raster{})
	gob.Register(&Curve{})
	gob.Register(&ItemTable{})
	gob.Register(&RGB{})
	gob.Register(&Overlay{})
	gob.Register(&ViewMap{})
}

func gobMarshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gobUnmarshal(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// baseWire is the serialized form of element identity. When a dump is
// driven by a store, the custom tree stamped on the element travels
// inline; on load the id is remapped past the ids the target store has
// already issued.
type baseWire struct {
	Group string
	Label string
	ID    int64
	Tree  *style.OptionTree
}

func (b *Base) wire() baseWire {
	w := baseWire{Group: b.group, Label: b.label, ID: int64(b.id)}
	if activeCodec != nil && activeCodec.saving && b.id != 0 {
		if tree, ok := activeCodec.CustomTree(b.id); ok {
			w.Tree = tree
		}
	}
	return w
}

func (b *Base) fromWire(w baseWire) {
	b.group = w.Group
	b.label = w.Label
	b.id = TreeID(w.ID)
	if activeCodec != nil && activeCodec.loading && w.ID != 0 {
		b.id += activeCodec.loadOffset
		if w.Tree != nil {
			activeCodec.registerLoaded(b.id, w.Tree)
		}
	}
}

type imageWire struct {
	Base   baseWire
	Data   [][]float64
	Bounds [4]float64
}

// GobEncode implements gob.GobEncoder.
func (im *Image) GobEncode() ([]byte, error) {
	return gobMarshal(imageWire{Base: im.Base.wire(), Data: im.Data, Bounds: im.Bounds})
}

// GobDecode implements gob.GobDecoder.
func (im *Image) GobDecode(data []byte) error {
	var w imageWire
	if err := gobUnmarshal(data, &w); err != nil {
		return err
	}
	im.Base.fromWire(w.Base)
	im.Data = w.Data
	im.Bounds = w.Bounds
	return nil
}

type rasterWire struct {
	Base baseWire
	Data [][]float64
}

// GobEncode implements gob.GobEncoder.
func (r *Raster) GobEncode() ([]byte, error) {
	return gobMarshal(rasterWire{Base: r.Base.wire(), Data: r.Data})
}

// GobDecode implements gob.GobDecoder.
func (r *Raster) GobDecode(data []byte) error {
	var w rasterWire
	if err := gobUnmarshal(data, &w); err != nil {
		return err
	}
	r.Base.fromWire(w.Base)
	r.Data = w.Data
	return nil
}

type curveWire struct {
	Base   baseWire
	Points []Point
}

// GobEncode implements gob.GobEncoder.
func (c *Curve) GobEncode() ([]byte, error) {
	return gobMarshal(curveWire{Base: c.Base.wire(), Points: c.Points})
}

// GobDecode implements gob.GobDecoder.
func (c *Curve) GobDecode(data []byte) error {
	var w curveWire
	if err := gobUnmarshal(data, &w); err != nil {
		return err
	}
	c.Base.fromWire(w.Base)
	c.Points = w.Points
	return nil
}

type itemTableWire struct {
	Base  baseWire
	Items []TableItem
}

// GobEncode implements gob.GobEncoder.
func (t *ItemTable) GobEncode() ([]byte, error) {
	return gobMarshal(itemTableWire{Base: t.Base.wire(), Items: t.Items})
}

// GobDecode implements gob.GobDecoder.
func (t *ItemTable) GobDecode(data []byte) error {
	var w itemTableWire
	if err := gobUnmarshal(data, &w); err != nil {
		return err
	}
	t.Base.fromWire(w.Base)
	t.Items = w.Items
	return nil
}

type rgbWire struct {
	Base  baseWire
	Red   *Image
	Green *Image
	Blue  *Image
}

// GobEncode implements gob.GobEncoder.
func (r *RGB) GobEncode() ([]byte, error) {
	return gobMarshal(rgbWire{Base: r.Base.wire(), Red: r.Red, Green: r.Green, Blue: r.Blue})
}

// GobDecode implements gob.GobDecoder.
func (r *RGB) GobDecode(data []byte) error {
	var w rgbWire
	if err := gobUnmarshal(data, &w); err != nil {
		return err
	}
	r.Base.fromWire(w.Base)
	r.Red, r.Green, r.Blue = w.Red, w.Green, w.Blue
	return nil
}

type overlayWire struct {
	Base  baseWire
	Items []Element
}

// GobEncode implements gob.GobEncoder.
func (o *Overlay) GobEncode() ([]byte, error) {
	return gobMarshal(overlayWire{Base: o.Base.wire(), Items: o.items})
}

// GobDecode implements gob.GobDecoder.
func (o *Overlay) GobDecode(data []byte) error {
	var w overlayWire
	if err := gobUnmarshal(data, &w); err != nil {
		return err
	}
	o.Base.fromWire(w.Base)
	o.items = w.Items
	return nil
}

type viewMapWire struct {
	Keys []string
	Vals []*Overlay
}

// GobEncode implements gob.GobEncoder.
func (m *ViewMap) GobEncode() ([]byte, error) {
	return gobMarshal(viewMapWire{Keys: m.keys, Vals: m.vals})
}

// GobDecode implements gob.GobDecoder.
func (m *ViewMap) GobDecode(data []byte) error {
	var w viewMapWire
	if err := gobUnmarshal(data, &w); err != nil {
		return err
	}
	m.keys = w.Keys
	m.index = make(map[string]int, len(w.Keys))
	for i, key := range w.Keys {
		m.index[key] = i
	}
	m.vals = w.Vals
	return nil
}
