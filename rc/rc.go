package rc

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/viz"
	"github.com/gogpu/viz/style"
)

// File is a decoded rc file.
type File struct {
	Cycles   map[string][]any      `toml:"cycles"`
	Palettes map[string]PaletteDef `toml:"palettes"`
	Options  []OptionDef           `toml:"options"`
}

// PaletteDef declares a sampled palette. Apply registers the sampled colors
// as a value cycle under the palette's name. Zero samples and a missing
// range inherit the palette defaults.
type PaletteDef struct {
	Colormap string    `toml:"colormap"`
	Samples  int       `toml:"samples"`
	Range    []float64 `toml:"range"`
	Reverse  bool      `toml:"reverse"`
}

// OptionDef assigns keywords to a path and group in the global option tree.
// An empty group defaults to "style".
type OptionDef struct {
	Path     string         `toml:"path"`
	Group    string         `toml:"group"`
	Keywords map[string]any `toml:"keywords"`
}

// Parse decodes an rc file.
func Parse(r io.Reader) (*File, error) {
	var f File
	if err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("rc: %w", err)
	}
	return &f, nil
}

// Load reads and decodes the rc file at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Apply installs the file's settings: cycles and palettes are registered in
// the style catalogs and option entries are set on the store's global tree.
// Entries are applied in name order, option entries in file order; style
// package errors propagate wrapped and remain matchable.
func (f *File) Apply(st *viz.Store) error {
	for _, name := range sortedKeys(f.Cycles) {
		values := f.Cycles[name]
		if len(values) == 0 {
			return fmt.Errorf("rc: cycle %q: %w", name, style.ErrNoCycleValues)
		}
		style.RegisterCycle(name, values...)
	}
	for _, name := range sortedKeys(f.Palettes) {
		p, err := f.Palettes[name].build()
		if err != nil {
			return fmt.Errorf("rc: palette %q: %w", name, err)
		}
		style.RegisterCycle(name, p.Values()...)
	}
	for _, def := range f.Options {
		o, err := style.New(style.Keywords(def.Keywords))
		if err != nil {
			return fmt.Errorf("rc: options for %q: %w", def.Path, err)
		}
		group := def.Group
		if group == "" {
			group = "style"
		}
		if err := st.Options().Set(def.Path, style.GroupOptions{group: o}); err != nil {
			return fmt.Errorf("rc: options for %q: %w", def.Path, err)
		}
	}
	return nil
}

func (d PaletteDef) build() (*style.Palette, error) {
	opts := []style.PaletteOption{style.WithReverse(d.Reverse)}
	if d.Samples > 0 {
		opts = append(opts, style.WithSamples(d.Samples))
	}
	switch len(d.Range) {
	case 0:
	case 2:
		opts = append(opts, style.WithRange(d.Range[0], d.Range[1]))
	default:
		return nil, fmt.Errorf("range has %d elements, want 2", len(d.Range))
	}
	return style.NewPalette(d.Colormap, opts...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
