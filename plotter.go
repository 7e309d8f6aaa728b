package viz

import "github.com/gogpu/viz/style"

// Plotter is the contract a plotting backend exposes for an element type.
// The Store derives option allow-lists from it when the type is registered:
// parameter names validate the "plot" group and style keywords validate the
// "style" group.
type Plotter interface {
	// ParamNames lists the plot-level parameters the plotter accepts.
	// The reserved name "name" is ignored.
	ParamNames() []string
	// StyleOpts lists the style keywords the backend forwards to its
	// drawing primitives.
	StyleOpts() []string
	// Draw renders the element with fully resolved keyword options.
	Draw(el Element, opts style.Keywords) error
}
