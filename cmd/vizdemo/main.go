// Command vizdemo demonstrates the viz options engine.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/viz"
	"github.com/gogpu/viz/compositor"
	"github.com/gogpu/viz/rc"
	"github.com/gogpu/viz/style"
)

func main() {
	var (
		rcPath  = flag.String("rc", "", "rc file with default cycles and options")
		curves  = flag.Int("curves", 5, "number of overlaid curves")
		verbose = flag.Bool("v", false, "log engine activity to stderr")
	)
	flag.Parse()

	if *verbose {
		viz.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	st := viz.NewStore()
	registerPlotters(st)

	if *rcPath != "" {
		f, err := rc.Load(*rcPath)
		if err != nil {
			log.Fatalf("Failed to load rc file: %v", err)
		}
		if err := f.Apply(st); err != nil {
			log.Fatalf("Failed to apply rc file: %v", err)
		}
	}

	if err := styleDefaults(st); err != nil {
		log.Fatalf("Failed to set defaults: %v", err)
	}

	showCycling(st, *curves)
	showCustomTree(st)
	showCollapse()
}

// plotter is a stand-in backend that prints instead of drawing.
type plotter struct {
	params []string
	styles []string
}

func (p plotter) ParamNames() []string { return p.params }

func (p plotter) StyleOpts() []string { return p.styles }

func (p plotter) Draw(el viz.Element, opts style.Keywords) error {
	fmt.Printf("  draw %s[%s] with %v\n", el.TypeName(), el.Group(), opts)
	return nil
}

func registerPlotters(st *viz.Store) {
	specs := []struct {
		sample viz.Element
		p      plotter
	}{
		{viz.NewImage(nil, "", ""), plotter{
			params: []string{"name", "colorbar"},
			styles: []string{"alpha", "cmap"},
		}},
		{viz.NewCurve(nil, "", ""), plotter{
			params: []string{"name", "show_grid"},
			styles: []string{"color", "width"},
		}},
		{viz.NewOverlay(), plotter{
			params: []string{"name", "shared_axes"},
		}},
	}
	for _, spec := range specs {
		if err := st.RegisterPlotter(spec.sample, spec.p); err != nil {
			log.Fatalf("Failed to register plotter: %v", err)
		}
	}
}

func styleDefaults(st *viz.Store) error {
	colors, err := style.NewCycleKey("default_colors")
	if err != nil {
		return err
	}
	if err := st.Options().Set("Curve", style.GroupOptions{
		"style": style.Must(style.Keywords{"color": colors, "width": 2}),
	}); err != nil {
		return err
	}
	return st.Options().Set("Image", style.GroupOptions{
		"style": style.Must(style.Keywords{"cmap": "fire"}),
	})
}

func showCycling(st *viz.Store, n int) {
	fmt.Printf("Cycling styles over %d overlaid curves:\n", n)
	o, err := st.LookupOptions(viz.NewCurve(nil, "", ""), "style")
	if err != nil {
		log.Fatalf("Failed to look up curve style: %v", err)
	}
	for i := range n {
		fmt.Printf("  curve %d: %v\n", i, o.Resolve(i))
	}
}

func showCustomTree(st *viz.Store) {
	im := viz.NewImage(nil, "Fruit", "Macaw")
	tree := st.NewTree()
	if err := tree.Set("Image", style.GroupOptions{
		"style": style.Must(style.Keywords{"cmap": "hue"}),
	}); err != nil {
		log.Fatalf("Failed to customize tree: %v", err)
	}
	st.AttachTree(im, tree)

	global, err := st.LookupOptions(viz.NewImage(nil, "", ""), "style")
	if err != nil {
		log.Fatalf("Failed to look up global style: %v", err)
	}
	custom, err := st.LookupOptions(im, "style")
	if err != nil {
		log.Fatalf("Failed to look up custom style: %v", err)
	}
	fmt.Println("Global vs per-object image style:")
	fmt.Printf("  global: %v\n", global)
	fmt.Printf("  custom: %v\n", custom)
}

func showCollapse() {
	reg := compositor.NewRegistry()
	reg.Register(compositor.Must("Image.R * Image.G * Image.B", rgbOp{}, "RGB", compositor.ModeData, nil))

	frames := viz.NewViewMap()
	for i := range 3 {
		frames.Set(fmt.Sprintf("t=%d", i), viz.NewOverlay(
			viz.NewImage(nil, "R", ""),
			viz.NewImage(nil, "G", ""),
			viz.NewImage(nil, "B", ""),
		))
	}

	out, err := viz.Collapse(reg, frames, nil, compositor.ModeData)
	if err != nil {
		log.Fatalf("Failed to collapse: %v", err)
	}
	fmt.Println("Collapsed R*G*B overlays:")
	for _, key := range out.Keys() {
		ov, _ := out.Get(key)
		fmt.Printf("  %s: %d item(s), first is %s[%s]\n",
			key, ov.Len(), ov.Item(0).TypeName(), ov.Item(0).Group())
	}
}

// rgbOp fuses three monochrome channel images into one RGB element.
type rgbOp struct{}

func (rgbOp) Name() string { return "rgb" }

func (rgbOp) Apply(v compositor.Item, _ compositor.Ranges, _ compositor.Params) (compositor.Item, error) {
	seq, ok := v.(compositor.Sequence)
	if !ok || seq.Len() != 3 {
		return nil, fmt.Errorf("rgb: want three channels, got %T", v)
	}
	r, _ := seq.At(0).(*viz.Image)
	g, _ := seq.At(1).(*viz.Image)
	b, _ := seq.At(2).(*viz.Image)
	return viz.NewRGB(r, g, b, "", ""), nil
}
