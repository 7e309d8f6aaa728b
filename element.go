package viz

import "slices"

// TreeID identifies a custom option tree issued by a Store. The zero value
// means the element resolves against the store's global tree.
type TreeID int64

// Element is the contract visualization objects expose to the options
// machinery. Identity is a type name plus a user-facing group and label;
// the tree id couples an element to a custom option tree, if any.
type Element interface {
	// TypeName returns the element's fixed type name, such as "Image".
	TypeName() string
	// Group returns the semantic group, defaulting to the type name.
	Group() string
	// Label returns the user-facing label, "" when unlabeled.
	Label() string
	// ID returns the custom option tree id, zero for none.
	ID() TreeID
	// SetID stamps the element with a custom option tree id.
	SetID(id TreeID)
	// Relabel returns a copy with the group and label replaced. Empty
	// arguments keep the current values.
	Relabel(group, label string) Element
	// Traverse calls fn on the element and every nested element.
	Traverse(fn func(Element))
}

// Composite is an Element built from ordered constituent elements.
type Composite interface {
	Element
	Items() []Element
}

// Base carries the identity fields shared by every element type. Concrete
// types embed it and add their data payload plus a TypeName method.
type Base struct {
	group string
	label string
	id    TreeID
}

// MakeBase builds element identity fields.
func MakeBase(group, label string) Base {
	return Base{group: group, label: label}
}

// Group returns the semantic group.
func (b *Base) Group() string { return b.group }

// Label returns the user-facing label.
func (b *Base) Label() string { return b.label }

// ID returns the custom option tree id, zero for none.
func (b *Base) ID() TreeID { return b.id }

// SetID stamps the element with a custom option tree id.
func (b *Base) SetID(id TreeID) { b.id = id }

// relabeled returns a copy with non-empty fields replaced.
func (b Base) relabeled(group, label string) Base {
	if group != "" {
		b.group = group
	}
	if label != "" {
		b.label = label
	}
	return b
}

// Image is a two-dimensional regularly sampled array mapped onto an extent.
type Image struct {
	Base
	Data   [][]float64
	Bounds [4]float64 // left, bottom, right, top
}

// NewImage creates an Image over the unit extent centered on the origin.
// An empty group defaults to the type name.
func NewImage(data [][]float64, group, label string) *Image {
	if group == "" {
		group = "Image"
	}
	return &Image{
		Base:   MakeBase(group, label),
		Data:   data,
		Bounds: [4]float64{-0.5, -0.5, 0.5, 0.5},
	}
}

// TypeName returns "Image".
func (im *Image) TypeName() string { return "Image" }

// Relabel returns a copy with the group and label replaced.
func (im *Image) Relabel(group, label string) Element {
	c := *im
	c.Base = im.Base.relabeled(group, label)
	return &c
}

// Traverse calls fn on the image.
func (im *Image) Traverse(fn func(Element)) { fn(im) }

// Raster is a two-dimensional array addressed by integer coordinates.
type Raster struct {
	Base
	Data [][]float64
}

// NewRaster creates a Raster. An empty group defaults to the type name.
func NewRaster(data [][]float64, group, label string) *Raster {
	if group == "" {
		group = "Raster"
	}
	return &Raster{Base: MakeBase(group, label), Data: data}
}

// TypeName returns "Raster".
func (r *Raster) TypeName() string { return "Raster" }

// Relabel returns a copy with the group and label replaced.
func (r *Raster) Relabel(group, label string) Element {
	c := *r
	c.Base = r.Base.relabeled(group, label)
	return &c
}

// Traverse calls fn on the raster.
func (r *Raster) Traverse(fn func(Element)) { fn(r) }

// Point is a two-dimensional sample.
type Point struct {
	X, Y float64
}

// Curve is an ordered series of points drawn as a connected line.
type Curve struct {
	Base
	Points []Point
}

// NewCurve creates a Curve. An empty group defaults to the type name.
func NewCurve(points []Point, group, label string) *Curve {
	if group == "" {
		group = "Curve"
	}
	return &Curve{Base: MakeBase(group, label), Points: slices.Clone(points)}
}

// TypeName returns "Curve".
func (c *Curve) TypeName() string { return "Curve" }

// Relabel returns a copy with the group and label replaced.
func (c *Curve) Relabel(group, label string) Element {
	o := *c
	o.Base = c.Base.relabeled(group, label)
	return &o
}

// Traverse calls fn on the curve.
func (c *Curve) Traverse(fn func(Element)) { fn(c) }

// TableItem is one labeled value in an ItemTable.
type TableItem struct {
	Name  string
	Value any
}

// ItemTable is an ordered collection of labeled values.
type ItemTable struct {
	Base
	Items []TableItem
}

// NewItemTable creates an ItemTable. An empty group defaults to the type
// name.
func NewItemTable(items []TableItem, group, label string) *ItemTable {
	if group == "" {
		group = "ItemTable"
	}
	return &ItemTable{Base: MakeBase(group, label), Items: slices.Clone(items)}
}

// TypeName returns "ItemTable".
func (t *ItemTable) TypeName() string { return "ItemTable" }

// Relabel returns a copy with the group and label replaced.
func (t *ItemTable) Relabel(group, label string) Element {
	c := *t
	c.Base = t.Base.relabeled(group, label)
	return &c
}

// Traverse calls fn on the table.
func (t *ItemTable) Traverse(fn func(Element)) { fn(t) }

// RGB is an image assembled from separate red, green and blue channels,
// typically produced by collapsing an overlay of monochrome images.
type RGB struct {
	Base
	Red, Green, Blue *Image
}

// NewRGB creates an RGB from its channels. An empty group defaults to the
// type name.
func NewRGB(red, green, blue *Image, group, label string) *RGB {
	if group == "" {
		group = "RGB"
	}
	return &RGB{Base: MakeBase(group, label), Red: red, Green: green, Blue: blue}
}

// TypeName returns "RGB".
func (r *RGB) TypeName() string { return "RGB" }

// Relabel returns a copy with the group and label replaced.
func (r *RGB) Relabel(group, label string) Element {
	c := *r
	c.Base = r.Base.relabeled(group, label)
	return &c
}

// Traverse calls fn on the image.
func (r *RGB) Traverse(fn func(Element)) { fn(r) }
