package style

import (
	"slices"
	"testing"
)

func TestCatalog_Builtins(t *testing.T) {
	if _, ok := LookupColormap("grayscale"); !ok {
		t.Error("grayscale colormap missing from catalog")
	}
	if _, ok := LookupColormap("fire"); !ok {
		t.Error("fire colormap missing from catalog")
	}
	values, ok := LookupCycle("default_colors")
	if !ok {
		t.Fatal("default_colors cycle missing from catalog")
	}
	if len(values) == 0 {
		t.Error("default_colors cycle is empty")
	}
	for i, v := range values {
		s, ok := v.(string)
		if !ok || len(s) == 0 || s[0] != '#' {
			t.Errorf("default_colors[%d] = %v, want hex string", i, v)
		}
	}
}

func TestCatalog_RegisterCycle(t *testing.T) {
	RegisterCycle("test_markers", "o", "x", "+")
	values, ok := LookupCycle("test_markers")
	if !ok {
		t.Fatal("registered cycle not found")
	}
	if len(values) != 3 {
		t.Fatalf("len = %d, want 3", len(values))
	}

	// Lookup returns a copy; mutating it does not touch the catalog.
	values[0] = "mutated"
	fresh, _ := LookupCycle("test_markers")
	if fresh[0] != "o" {
		t.Errorf("catalog entry mutated through lookup copy: %v", fresh[0])
	}

	if !slices.Contains(CycleNames(), "test_markers") {
		t.Error("CycleNames() does not list registered cycle")
	}
}

func TestCatalog_RegisterColormap(t *testing.T) {
	RegisterColormap("test_red", func(x float64) RGBA {
		return RGBA{R: x, A: 1}
	})
	cmap, ok := LookupColormap("test_red")
	if !ok {
		t.Fatal("registered colormap not found")
	}
	if got := cmap(0.5); !closeRGBA(got, RGBA{R: 0.5, A: 1}) {
		t.Errorf("cmap(0.5) = %v, want {0.5 0 0 1}", got)
	}
	if !slices.Contains(ColormapNames(), "test_red") {
		t.Error("ColormapNames() does not list registered colormap")
	}
}

func TestContinuous_Adapter(t *testing.T) {
	cmap, ok := LookupColormap("fire")
	if !ok {
		t.Fatal("fire colormap missing")
	}
	start := cmap(0)
	end := cmap(1)
	if !closeRGBA(start, RGBA{0, 0, 0, 1}) {
		t.Errorf("fire(0) = %v, want black", start)
	}
	if !closeRGBA(end, RGBA{1, 1, 1, 1}) {
		t.Errorf("fire(1) = %v, want white", end)
	}
}
