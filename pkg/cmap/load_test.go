package cmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/swatchbook/pkg/errors"
)

const validFile = `
[[colormap]]
name    = "linear_custom_0_100_c50"
aliases = ["custom"]
colors  = ["#000000", "#ff2a00", "#ffffff"]

[[colormap]]
name     = "diverging_custom_40_95_c40"
category = "diverging"
colors   = ["#2151db", "#f0eff1", "#a50026"]
`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maps.toml")
	if err := os.WriteFile(path, []byte(validFile), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry()
	added, err := r.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if added != 2 {
		t.Errorf("added = %d, want 2", added)
	}

	cm, err := r.Get("custom")
	if err != nil {
		t.Fatalf("Get(custom): %v", err)
	}
	if cm.Category != CategoryLinear {
		t.Errorf("Category = %q, want linear default", cm.Category)
	}
	if !r.Has("custom_r") || !r.Has("linear_custom_0_100_c50_r") {
		t.Error("reversed variants were not registered")
	}

	div, err := r.Get("diverging_custom_40_95_c40")
	if err != nil {
		t.Fatalf("Get(diverging): %v", err)
	}
	if div.Category != CategoryDiverging {
		t.Errorf("Category = %q, want diverging", div.Category)
	}
}

func TestLoadFileMissing(t *testing.T) {
	r := NewRegistry()
	_, err := r.LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	r := NewRegistry()
	_, err := r.load([]byte("[[colormap]\nname = broken"))
	if !errors.Is(err, errors.ErrCodeInvalidColormap) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidColormap)
	}
}

func TestLoadInvalidDefinition(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			"bad hex",
			"[[colormap]]\nname = \"ok\"\ncolors = [\"#000000\", \"red\"]\n",
		},
		{
			"too few colors",
			"[[colormap]]\nname = \"ok\"\ncolors = [\"#000000\"]\n",
		},
		{
			"bad category",
			"[[colormap]]\nname = \"ok\"\ncategory = \"sparkly\"\ncolors = [\"#000000\", \"#ffffff\"]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			if _, err := r.load([]byte(tt.body)); err == nil {
				t.Error("load = nil error, want error")
			}
		})
	}
}

func TestLoadDuplicateAgainstExisting(t *testing.T) {
	r := NewRegistry()
	if err := r.Add(MustNew("linear_custom_0_100_c50", CategoryLinear, []string{"#000000", "#ffffff"})); err != nil {
		t.Fatal(err)
	}

	added, err := r.load([]byte(validFile))
	if err == nil {
		t.Fatal("load = nil error, want duplicate error")
	}
	if added != 0 {
		t.Errorf("added = %d, want 0", added)
	}
}
