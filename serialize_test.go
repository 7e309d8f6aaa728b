package viz

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/viz/style"
)

func TestStore_DumpLoadRoundTrip(t *testing.T) {
	src := NewStore()
	im := NewImage([][]float64{{0, 1}, {2, 3}}, "Fruit", "Macaw")
	tree := src.NewTree()
	if err := tree.Set("Image", style.GroupOptions{
		"style": style.Must(style.Keywords{"cmap": "fire", "alpha": 0.8}),
	}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	src.AttachTree(im, tree)

	data, err := src.Dumps(im)
	if err != nil {
		t.Fatalf("Dumps: %v", err)
	}

	dst := NewStore()
	// Occupy ids in the target store so the loaded tree must be remapped.
	dst.AddCustomTree(dst.NewTree())
	dst.AddCustomTree(dst.NewTree())

	obj, err := dst.Loads(data)
	if err != nil {
		t.Fatalf("Loads: %v", err)
	}
	got, ok := obj.(*Image)
	if !ok {
		t.Fatalf("loaded %T, want *Image", obj)
	}
	if got.Group() != "Fruit" || got.Label() != "Macaw" {
		t.Errorf("identity = (%q, %q), want (Fruit, Macaw)", got.Group(), got.Label())
	}
	if diff := cmp.Diff(im.Data, got.Data); diff != "" {
		t.Errorf("data mismatch (-want +got):\n%s", diff)
	}
	if got.ID() != 3 {
		t.Errorf("remapped id = %d, want 3", got.ID())
	}

	o, err := dst.LookupOptions(got, "style")
	if err != nil {
		t.Fatalf("LookupOptions: %v", err)
	}
	kw, err := o.Settings()
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	want := style.Keywords{"cmap": "fire", "alpha": 0.8}
	if diff := cmp.Diff(want, kw); diff != "" {
		t.Errorf("restored styling mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_DumpLoad_Overlay(t *testing.T) {
	src := NewStore()
	ov := NewOverlay(
		NewCurve([]Point{{0, 0}, {1, 1}}, "", "fit"),
		NewImage(nil, "", ""),
	)
	src.AttachTree(ov, src.NewTree())

	data, err := src.Dumps(ov)
	if err != nil {
		t.Fatalf("Dumps: %v", err)
	}

	dst := NewStore()
	obj, err := dst.Loads(data)
	if err != nil {
		t.Fatalf("Loads: %v", err)
	}
	got, ok := obj.(*Overlay)
	if !ok {
		t.Fatalf("loaded %T, want *Overlay", obj)
	}
	if got.Len() != 2 {
		t.Fatalf("Len = %d, want 2", got.Len())
	}
	curve, ok := got.Item(0).(*Curve)
	if !ok {
		t.Fatalf("item 0 is %T, want *Curve", got.Item(0))
	}
	if curve.Label() != "fit" || len(curve.Points) != 2 {
		t.Errorf("curve = (%q, %d points), want (fit, 2 points)", curve.Label(), len(curve.Points))
	}
	// The target store had no custom trees, so the id survives unchanged
	// and the issued ids continue past it.
	if got.ID() != 1 {
		t.Errorf("id = %d, want 1", got.ID())
	}
	if _, ok := dst.CustomTree(1); !ok {
		t.Error("custom tree 1 missing after load")
	}
	if id := dst.AddCustomTree(dst.NewTree()); id != 2 {
		t.Errorf("next issued id = %d, want 2", id)
	}
}

func TestStore_DumpLoad_ViewMap(t *testing.T) {
	src := NewStore()
	m := NewViewMap()
	m.Set("t=0", NewOverlay(NewImage(nil, "", "")))
	m.Set("t=1", NewOverlay())

	data, err := src.Dumps(m)
	if err != nil {
		t.Fatalf("Dumps: %v", err)
	}
	obj, err := NewStore().Loads(data)
	if err != nil {
		t.Fatalf("Loads: %v", err)
	}
	got, ok := obj.(*ViewMap)
	if !ok {
		t.Fatalf("loaded %T, want *ViewMap", obj)
	}
	if diff := cmp.Diff([]string{"t=0", "t=1"}, got.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	ov, ok := got.Get("t=0")
	if !ok || ov.Len() != 1 {
		t.Errorf("frame t=0 = %v, %v, want a one-item overlay", ov, ok)
	}
}
