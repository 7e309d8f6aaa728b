package ident

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{name: "empty", label: "", want: ""},
		{name: "already clean", label: "Image", want: "Image"},
		{name: "underscore kept", label: "_private", want: "_private"},
		{name: "space", label: "Macaw Image", want: "Macaw_Image"},
		{name: "punctuation run", label: "A -- B", want: "A_B"},
		{name: "accents stripped", label: "Déclassé", want: "Declasse"},
		{name: "leading digit", label: "2D View", want: "_2D_View"},
		{name: "trailing symbol", label: "Energy!", want: "Energy_"},
		{name: "mixed unicode", label: "λ curve", want: "λ_curve"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.label); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	labels := []string{"Macaw Image", "Déclassé", "2D View", "a.b.c"}
	for _, label := range labels {
		once := Sanitize(label)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize(%q): not idempotent, %q != %q", label, once, twice)
		}
	}
}

func TestValid(t *testing.T) {
	if !Valid("Custom_Image") {
		t.Error("Valid(Custom_Image) = false, want true")
	}
	if Valid("Custom Image") {
		t.Error("Valid(Custom Image) = true, want false")
	}
}
