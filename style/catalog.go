package style

import (
	"image/color"
	"sort"
	"sync"

	"github.com/aclements/go-gg/palette"
	"golang.org/x/image/colornames"

	"github.com/gogpu/viz/internal/vlog"
)

// Colormap maps a sample point, conventionally in [0, 1], to a color.
type Colormap func(x float64) RGBA

// catalog holds registered cycle value lists and colormaps.
var (
	catalogMu sync.RWMutex
	cycles    = make(map[string][]any)
	colormaps = make(map[string]Colormap)
)

func init() {
	colormaps["grayscale"] = func(x float64) RGBA {
		return RGBA{R: x, G: x, B: x, A: 1.0}
	}
	colormaps["fire"] = Continuous(palette.RGBGradient{Colors: []color.RGBA{
		{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		{R: 0xcc, G: 0x00, B: 0x00, A: 0xff},
		{R: 0xff, G: 0xcc, B: 0x00, A: 0xff},
		{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}})
	colormaps["hue"] = func(x float64) RGBA {
		return HSL(x*360, 1, 0.5)
	}
	cycles["default_colors"] = namedColors(
		"steelblue", "darkorange", "forestgreen", "crimson",
		"mediumpurple", "saddlebrown", "orchid", "gray",
		"olive", "darkturquoise",
	)
}

// namedColors resolves SVG 1.1 color names into hex strings.
func namedColors(names ...string) []any {
	values := make([]any, len(names))
	for i, name := range names {
		values[i] = FromColor(colornames.Map[name]).HexString()
	}
	return values
}

// Continuous adapts a go-gg continuous palette into a Colormap.
func Continuous(p palette.Continuous) Colormap {
	return func(x float64) RGBA {
		return FromColor(p.Map(x))
	}
}

// RegisterCycle registers a named value list for Cycle lookups.
// If a cycle with the same name is already registered, it will be replaced.
func RegisterCycle(name string, values ...any) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	if _, ok := cycles[name]; ok {
		vlog.Get().Debug("style: replacing cycle catalog entry", "name", name)
	}
	cycles[name] = append([]any(nil), values...)
}

// LookupCycle returns a copy of the named cycle values.
func LookupCycle(name string) ([]any, bool) {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	values, ok := cycles[name]
	if !ok {
		return nil, false
	}
	return append([]any(nil), values...), true
}

// CycleNames returns the registered cycle names in sorted order.
func CycleNames() []string {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	names := make([]string, 0, len(cycles))
	for name := range cycles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterColormap registers a named colormap for Palette lookups.
// If a colormap with the same name is already registered, it will be replaced.
func RegisterColormap(name string, cmap Colormap) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	if _, ok := colormaps[name]; ok {
		vlog.Get().Debug("style: replacing colormap catalog entry", "name", name)
	}
	colormaps[name] = cmap
}

// LookupColormap returns the named colormap.
func LookupColormap(name string) (Colormap, bool) {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	cmap, ok := colormaps[name]
	return cmap, ok
}

// ColormapNames returns the registered colormap names in sorted order.
func ColormapNames() []string {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	names := make([]string, 0, len(colormaps))
	for name := range colormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
