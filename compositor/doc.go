// Package compositor applies registered operations to overlays whose
// contents match a declared pattern.
//
// # Patterns
//
// A pattern names the run of elements an operation consumes. Components are
// separated by "*" and each component is a dotted type.group.label triple
// with the group and label optional:
//
//	"Image.R * Image.G * Image.B"
//
// matches three consecutive Image elements whose groups are R, G and B.
// More qualified components match more strongly: a component scores one
// point for its type and one more for each matching qualifier.
//
// # Definitions
//
// A Compositor binds a pattern to an Operation and an output group, and is
// placed in a Registry (usually the package default):
//
//	compositor.Register(compositor.Must(
//	    "Image.R * Image.G * Image.B", toRGB, "RGB", compositor.ModeDisplay, nil))
//
// Collapsing an overlay finds the applicable definition with StrongestMatch,
// slices out the matched run, applies the operation and splices the result
// back in. The root viz package drives this through its Collapse functions.
//
// # Interfaces
//
// The matcher only needs Item (type name, group, label) and Sequence
// (an ordered run of items), so the package works against any overlay
// representation that can present itself through those two views.
package compositor
