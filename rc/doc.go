// Package rc loads visualization defaults from TOML files.
//
// An rc file seeds the style catalogs and a store's global option tree
// before any plotting happens, playing the role of a user configuration
// file:
//
//	[cycles]
//	default_colors = ["#30a2da", "#fc4f30"]
//
//	[palettes.gray4]
//	colormap = "grayscale"
//	samples = 4
//
//	[[options]]
//	path = "Image"
//	group = "style"
//	[options.keywords]
//	cmap = "grayscale"
//
// Parse decodes, Apply installs. Cycles are registered under their names in
// the cycle catalog; palettes are sampled once and registered as value
// cycles holding the resulting colors; option entries are set on the
// store's global tree with the usual validation.
package rc
