package viz

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/viz/style"
)

// stubPlotter is a minimal Plotter for tests.
type stubPlotter struct {
	params []string
	styles []string
}

func (p stubPlotter) ParamNames() []string { return p.params }

func (p stubPlotter) StyleOpts() []string { return p.styles }

func (p stubPlotter) Draw(el Element, opts style.Keywords) error { return nil }

func TestStore_RegisterPlotter(t *testing.T) {
	s := NewStore()
	err := s.RegisterPlotter(NewImage(nil, "", ""), stubPlotter{
		params: []string{"name", "colorbar", "aspect"},
		styles: []string{"cmap", "interpolation"},
	})
	if err != nil {
		t.Fatalf("RegisterPlotter: %v", err)
	}

	node, ok := s.Options().Child("Image")
	if !ok {
		t.Fatal("Image node missing from global tree")
	}

	plot, ok := node.Group("plot")
	if !ok {
		t.Fatal("plot group missing")
	}
	// The reserved "name" parameter never becomes an option.
	if diff := cmp.Diff([]string{"aspect", "colorbar"}, plot.AllowedKeywords()); diff != "" {
		t.Errorf("plot allow-list mismatch (-want +got):\n%s", diff)
	}

	styleOpts, ok := node.Group("style")
	if !ok {
		t.Fatal("style group missing")
	}
	if diff := cmp.Diff([]string{"cmap", "interpolation"}, styleOpts.AllowedKeywords()); diff != "" {
		t.Errorf("style allow-list mismatch (-want +got):\n%s", diff)
	}

	norm, ok := node.Group("norm")
	if !ok {
		t.Fatal("norm group missing")
	}
	kw, err := norm.Settings()
	if err != nil {
		t.Fatalf("norm settings: %v", err)
	}
	want := style.Keywords{"axiswise": false, "framewise": false}
	if diff := cmp.Diff(want, kw); diff != "" {
		t.Errorf("norm defaults mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"axiswise", "framewise"}, norm.AllowedKeywords()); diff != "" {
		t.Errorf("norm allow-list mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_RegisterPlotter_Composite(t *testing.T) {
	s := NewStore()
	err := s.RegisterPlotter(NewOverlay(), stubPlotter{params: []string{"name", "shared_axes"}})
	if err != nil {
		t.Fatalf("RegisterPlotter: %v", err)
	}

	node, ok := s.Options().Child("Overlay")
	if !ok {
		t.Fatal("Overlay node missing from global tree")
	}
	plot, _ := node.Group("plot")
	if diff := cmp.Diff([]string{"shared_axes"}, plot.AllowedKeywords()); diff != "" {
		t.Errorf("plot allow-list mismatch (-want +got):\n%s", diff)
	}

	// A composite with no style keywords inherits the root's empty style
	// and norm entries instead of getting its own.
	styleOpts, _ := node.Group("style")
	if len(styleOpts.AllowedKeywords()) != 0 {
		t.Errorf("style allow-list = %v, want none", styleOpts.AllowedKeywords())
	}
	norm, _ := node.Group("norm")
	if kw, err := norm.Settings(); err != nil || len(kw) != 0 {
		t.Errorf("norm settings = %v, %v, want empty", kw, err)
	}
}

func TestStore_RegisterPlotter_Validation(t *testing.T) {
	s := NewStore()
	if err := s.RegisterPlotter(NewImage(nil, "", ""), stubPlotter{styles: []string{"alpha", "cmap"}}); err != nil {
		t.Fatalf("RegisterPlotter: %v", err)
	}

	// Customizations after registration are validated against the
	// plotter's keywords.
	err := s.Options().Set("Image", style.GroupOptions{
		"style": style.Must(style.Keywords{"bogus": 1}),
	})
	var kerr *style.KeywordError
	if !errors.As(err, &kerr) {
		t.Fatalf("Set error = %v, want *style.KeywordError", err)
	}
	if kerr.Keyword != "bogus" {
		t.Errorf("Keyword = %q, want bogus", kerr.Keyword)
	}

	if err := s.Options().Set("Image", style.GroupOptions{
		"style": style.Must(style.Keywords{"cmap": "fire"}),
	}); err != nil {
		t.Errorf("valid Set failed: %v", err)
	}
}

func TestStore_LookupOptions(t *testing.T) {
	s := NewStore()
	if err := s.RegisterPlotter(NewImage(nil, "", ""), stubPlotter{styles: []string{"alpha", "cmap"}}); err != nil {
		t.Fatalf("RegisterPlotter: %v", err)
	}
	if err := s.Options().Set("Image", style.GroupOptions{
		"style": style.Must(style.Keywords{"cmap": "fire"}),
	}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	im := NewImage(nil, "", "")
	o, err := s.LookupOptions(im, "style")
	if err != nil {
		t.Fatalf("LookupOptions: %v", err)
	}
	kw, err := o.Settings()
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if kw["cmap"] != "fire" {
		t.Errorf("global cmap = %v, want fire", kw["cmap"])
	}

	// A stamped element resolves against its own tree, not the global one.
	custom := NewImage(nil, "", "")
	tree := s.NewTree()
	if err := tree.Set("Image", style.GroupOptions{
		"style": style.Must(style.Keywords{"cmap": "hue"}),
	}); err != nil {
		t.Fatalf("Set on custom tree: %v", err)
	}
	s.AttachTree(custom, tree)

	o, err = s.LookupOptions(custom, "style")
	if err != nil {
		t.Fatalf("LookupOptions(custom): %v", err)
	}
	kw, err = o.Settings()
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if kw["cmap"] != "hue" {
		t.Errorf("custom cmap = %v, want hue", kw["cmap"])
	}
}

func TestStore_LookupOptions_Unregistered(t *testing.T) {
	s := NewStore()
	im := NewImage(nil, "", "")
	im.SetID(99)

	_, err := s.LookupOptions(im, "style")
	var uerr *UnregisteredTreeError
	if !errors.As(err, &uerr) {
		t.Fatalf("error = %v, want *UnregisteredTreeError", err)
	}
	if uerr.ID != 99 {
		t.Errorf("ID = %d, want 99", uerr.ID)
	}
}

func TestStore_Lookup(t *testing.T) {
	s := NewStore()

	plain := NewOverlay(NewCurve(nil, "", ""))
	if _, err := s.Lookup(plain); !errors.Is(err, ErrNoCustomTree) {
		t.Errorf("Lookup(plain) error = %v, want ErrNoCustomTree", err)
	}

	im := NewImage(nil, "", "")
	tree := s.NewTree()
	s.AttachTree(im, tree)
	got, err := s.Lookup(NewOverlay(im, NewCurve(nil, "", "")))
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != tree {
		t.Error("Lookup returned a different tree")
	}

	other := NewImage(nil, "", "")
	s.AttachTree(other, s.NewTree())
	_, err = s.Lookup(NewOverlay(im, other))
	var aerr *AmbiguousTreesError
	if !errors.As(err, &aerr) {
		t.Fatalf("mixed Lookup error = %v, want *AmbiguousTreesError", err)
	}
	if diff := cmp.Diff([]TreeID{im.ID(), other.ID()}, aerr.IDs); diff != "" {
		t.Errorf("IDs mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_Lookup_Unregistered(t *testing.T) {
	s := NewStore()
	im := NewImage(nil, "", "")
	im.SetID(42)

	_, err := s.Lookup(im)
	var uerr *UnregisteredTreeError
	if !errors.As(err, &uerr) {
		t.Fatalf("error = %v, want *UnregisteredTreeError", err)
	}
}

func TestStore_CustomTrees(t *testing.T) {
	s := NewStore()
	a := s.AddCustomTree(s.NewTree())
	b := s.AddCustomTree(s.NewTree())
	if a != 1 || b != 2 {
		t.Errorf("issued ids = %d, %d, want 1, 2", a, b)
	}
	if s.CustomCount() != 2 {
		t.Errorf("CustomCount = %d, want 2", s.CustomCount())
	}
	if !s.RemoveCustomTree(a) {
		t.Error("RemoveCustomTree(a) = false, want true")
	}
	if s.RemoveCustomTree(a) {
		t.Error("second RemoveCustomTree(a) = true, want false")
	}
	if _, ok := s.CustomTree(b); !ok {
		t.Error("CustomTree(b) missing")
	}
}

func TestStore_Reset(t *testing.T) {
	s := NewStore()
	if err := s.RegisterPlotter(NewImage(nil, "", ""), stubPlotter{}); err != nil {
		t.Fatalf("RegisterPlotter: %v", err)
	}
	s.AddCustomTree(s.NewTree())

	s.Reset()
	if len(s.PlotterTypes()) != 0 {
		t.Errorf("PlotterTypes after Reset = %v, want none", s.PlotterTypes())
	}
	if s.CustomCount() != 0 {
		t.Errorf("CustomCount after Reset = %d, want 0", s.CustomCount())
	}
	if len(s.Options().Children()) != 0 {
		t.Error("global tree still has children after Reset")
	}
	if id := s.AddCustomTree(s.NewTree()); id != 1 {
		t.Errorf("first id after Reset = %d, want 1", id)
	}
}

func TestStore_PlotterTypes(t *testing.T) {
	s := NewStore()
	if err := s.RegisterPlotter(NewImage(nil, "", ""), stubPlotter{}); err != nil {
		t.Fatalf("RegisterPlotter: %v", err)
	}
	if err := s.RegisterPlotter(NewCurve(nil, "", ""), stubPlotter{}); err != nil {
		t.Fatalf("RegisterPlotter: %v", err)
	}
	if diff := cmp.Diff([]string{"Curve", "Image"}, s.PlotterTypes()); diff != "" {
		t.Errorf("PlotterTypes mismatch (-want +got):\n%s", diff)
	}
	if _, ok := s.Plotter("Image"); !ok {
		t.Error("Plotter(Image) missing")
	}
	if _, ok := s.Plotter("Raster"); ok {
		t.Error("Plotter(Raster) = ok, want missing")
	}
}
