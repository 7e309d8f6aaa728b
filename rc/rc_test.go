package rc

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/viz"
	"github.com/gogpu/viz/style"
)

const sampleFile = `
[cycles]
rc_colors = ["#30a2da", "#fc4f30"]

[palettes.rc_gray4]
colormap = "grayscale"
samples = 4

[[options]]
path = "Image"
group = "style"
[options.keywords]
cmap = "grayscale"
alpha = 0.5
`

func TestParseApply(t *testing.T) {
	f, err := Parse(strings.NewReader(sampleFile))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	st := viz.NewStore()
	if err := f.Apply(st); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	values, ok := style.LookupCycle("rc_colors")
	if !ok {
		t.Fatal("cycle rc_colors not registered")
	}
	if len(values) != 2 || values[0] != "#30a2da" {
		t.Errorf("rc_colors = %v, want the two file colors", values)
	}

	gray, ok := style.LookupCycle("rc_gray4")
	if !ok {
		t.Fatal("palette rc_gray4 not registered as a cycle")
	}
	if len(gray) != 4 {
		t.Errorf("rc_gray4 has %d values, want 4", len(gray))
	}

	o, err := st.LookupOptions(viz.NewImage(nil, "", ""), "style")
	if err != nil {
		t.Fatalf("LookupOptions: %v", err)
	}
	kw, err := o.Settings()
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if kw["cmap"] != "grayscale" || kw["alpha"] != 0.5 {
		t.Errorf("Image style = %v, want cmap=grayscale alpha=0.5", kw)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse(strings.NewReader("cycles = nonsense")); err == nil {
		t.Error("Parse accepted invalid TOML")
	}
}

func TestApply_UnknownColormap(t *testing.T) {
	f, err := Parse(strings.NewReader("[palettes.bad]\ncolormap = \"no_such_map\"\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	err = f.Apply(viz.NewStore())
	var uerr *style.UnknownKeyError
	if !errors.As(err, &uerr) {
		t.Fatalf("Apply error = %v, want *style.UnknownKeyError", err)
	}
	if uerr.Key != "no_such_map" {
		t.Errorf("Key = %q, want no_such_map", uerr.Key)
	}
}

func TestApply_UnknownGroup(t *testing.T) {
	f, err := Parse(strings.NewReader(`
[[options]]
path = "Image"
group = "bogus"
[options.keywords]
x = 1
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	err = f.Apply(viz.NewStore())
	var serr *style.SchemaError
	if !errors.As(err, &serr) {
		t.Fatalf("Apply error = %v, want *style.SchemaError", err)
	}
}

func TestApply_EmptyCycle(t *testing.T) {
	f := &File{Cycles: map[string][]any{"rc_empty": {}}}
	if err := f.Apply(viz.NewStore()); !errors.Is(err, style.ErrNoCycleValues) {
		t.Errorf("Apply error = %v, want ErrNoCycleValues", err)
	}
}

func TestPaletteDef_BadRange(t *testing.T) {
	f := &File{Palettes: map[string]PaletteDef{
		"bad": {Colormap: "grayscale", Range: []float64{0.5}},
	}}
	if err := f.Apply(viz.NewStore()); err == nil {
		t.Error("Apply accepted a one-element range")
	}
}
