package cmap

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/swatchbook/pkg/errors"
)

// colormapFile is the TOML schema for user-defined colormap files:
//
//	[[colormap]]
//	name     = "linear_example_0_100_c50"
//	category = "linear"            # optional, defaults to linear
//	aliases  = ["example"]         # optional
//	colors   = ["#000000", "#ff2a00", "#ffffff"]
type colormapFile struct {
	Colormaps []colormapDef `toml:"colormap"`
}

type colormapDef struct {
	Name     string   `toml:"name"`
	Category string   `toml:"category"`
	Aliases  []string `toml:"aliases"`
	Colors   []string `toml:"colors"`
}

// LoadFile reads user-defined colormaps from a TOML file and registers them,
// reversed variants included. It returns the number of colormaps added.
// Registration stops at the first invalid definition or name collision.
func (r *Registry) LoadFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return 0, errors.Wrap(errors.ErrCodeFileNotFound, err, "colormap file %s", path)
	}
	if err != nil {
		return 0, err
	}
	return r.load(data)
}

func (r *Registry) load(data []byte) (int, error) {
	var file colormapFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidColormap, err, "parse colormap file")
	}

	added := 0
	for _, def := range file.Colormaps {
		category := Category(def.Category)
		if def.Category == "" {
			category = CategoryLinear
		}
		cm, err := New(def.Name, category, def.Colors)
		if err != nil {
			return added, err
		}
		if err := r.Add(cm, def.Aliases...); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
