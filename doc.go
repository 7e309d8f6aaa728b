// Package viz customizes how visualization objects are displayed: it keeps
// keyword options separate from the objects they style and resolves the
// effective settings for any element at draw time.
//
// # Overview
//
// Elements carry only identity (type name, group, label) and data. Display
// settings live in option trees managed by a Store, which also links
// element types to their plotting backends. Keeping the two apart means the
// same object can render differently under different stores, and styling
// changes never touch data.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/viz"
//	    "github.com/gogpu/viz/style"
//	)
//
//	st := viz.Default()
//	st.RegisterPlotter(&viz.Curve{}, curvePlotter)
//
//	// Style every Curve, then one labeled family more specifically.
//	st.Options().Set("Curve", style.GroupOptions{
//	    "style": style.Must(style.Keywords{"color": style.NewDefaultCycle()}),
//	})
//	st.Options().Set("Curve.Fit", style.GroupOptions{
//	    "style": style.Must(style.Keywords{"width": 2.0}),
//	})
//
//	curve := viz.NewCurve(points, "Fit", "Linear")
//	opts, _ := st.LookupOptions(curve, "style")
//	kw := opts.Resolve(0)
//
// # Architecture
//
// The library is organized into:
//   - viz: elements, overlays, the Store and overlay collapsing
//   - style: Cycle, Palette, Options and OptionTree
//   - compositor: pattern-matched overlay operations
//   - rc: startup configuration files
//
// # Custom Option Trees
//
// Styling one object without affecting its type is done by attaching a
// custom tree: AttachTree registers the tree with the store and stamps the
// element with the issued id. Lookups for stamped elements resolve against
// their custom tree instead of the global one, and Dump/Load carry custom
// trees alongside the serialized objects.
//
// # Logging
//
// viz produces no log output by default. Call SetLogger to enable logging
// across viz and its sub-packages.
package viz
