// Package style implements customizable keyword options for visualization
// objects: cyclic value containers, validated option collections and the
// inheritance tree that resolves the effective options for any object.
//
// # Cycles and Palettes
//
// A Cycle wraps a finite value sequence that repeats when indexed past its
// end, which is how overlaid curves each get their own color from one
// declaration. A Palette is a Cycle sampled from a named colormap:
//
//	colors, _ := style.NewCycleKey("default_colors")
//	grays, _ := style.NewPalette("grayscale", style.WithSamples(4))
//
// # Options
//
// Options holds keyword settings, optionally validated against an
// allow-list. Cyclic values expand at construction into concrete keyword
// rows; Resolve(i) picks the row for the i-th overlaid item:
//
//	o, err := style.New(style.Keywords{"color": colors, "width": 2.0},
//	    style.Allowed("color", "width"))
//	kw := o.Resolve(3) // {"color": ..., "width": 2.0}
//
// # Option Trees
//
// OptionTree arranges Options by dotted paths such as "Image.Fruit.Macaw".
// Each node carries one Options per schema group ("plot", "style", "norm"
// in the root viz package), and resolution merges keywords from the root
// down so specific settings win over general ones:
//
//	tree, _ := style.NewOptionTree(style.GroupOptions{"style": nil})
//	tree.Set("Image", style.GroupOptions{"style": style.Must(style.Keywords{"cmap": "fire"})})
//	tree.Set("Image.Fruit", style.GroupOptions{"style": style.Must(style.Keywords{"alpha": 0.5})})
//	opts, _ := tree.Find("Image", "Fruit", "Macaw").Options("style")
//
// # Catalogs
//
// Named cycles and colormaps live in process-wide catalogs populated at
// startup and extended with RegisterCycle and RegisterColormap. Plotting
// backends register their own entries the same way user code does.
package style
