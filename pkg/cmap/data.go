package cmap

// Default is the built-in catalog of perceptually-uniform colormaps.
// Long names encode category and design parameters (hue path, lightness
// range, chroma); short aliases are the names most people reach for.
var Default = defaultRegistry()

// builtin pairs a colormap with its short aliases for registration.
type builtin struct {
	cm      *Colormap
	aliases []string
}

// builtins returns the built-in catalog in registration order. Control
// colors are 8-stop approximations of the published maps; sampling
// interpolates between them.
func builtins() []builtin {
	return []builtin{
		{MustNew("linear_kryw_0_100_c71", CategoryLinear, []string{
			"#000000", "#3e0000", "#850b00", "#bc3000", "#e65c00", "#fc8f07", "#fdc82d", "#ffffff",
		}), []string{"fire"}},
		{MustNew("linear_bmw_5_95_c89", CategoryLinear, []string{
			"#010314", "#141e9e", "#2a3bf0", "#7a4dfc", "#c053fb", "#ee61e6", "#fa9fdd", "#fee3e1",
		}), []string{"bmw"}},
		{MustNew("linear_bmy_10_95_c78", CategoryLinear, []string{
			"#00046c", "#3717a8", "#8710a3", "#c01b83", "#e94360", "#f97b48", "#fdb32c", "#fcf434",
		}), []string{"bmy"}},
		{MustNew("linear_bgy_10_95_c74", CategoryLinear, []string{
			"#00042c", "#001a85", "#0040a0", "#006c6c", "#0f9439", "#5ab317", "#a4cd0a", "#fcf434",
		}), []string{"bgy"}},
		{MustNew("linear_blue_5_95_c73", CategoryLinear, []string{
			"#00002e", "#0e0a7a", "#1c2bb0", "#1e4fd0", "#2173e0", "#3c97ea", "#6fb9f2", "#b4dcf7",
		}), []string{"kbc"}},
		{MustNew("linear_green_5_95_c69", CategoryLinear, []string{
			"#011506", "#093c09", "#1a600d", "#328310", "#54a112", "#7fbd17", "#b0d52a", "#e7e941",
		}), []string{"kgy"}},
		{MustNew("linear_grey_0_100_c0", CategoryLinear, []string{
			"#000000", "#242424", "#484848", "#6d6d6d", "#919191", "#b6b6b6", "#dadada", "#ffffff",
		}), []string{"gray", "grey"}},
		{MustNew("linear_grey_10_95_c0", CategoryLinear, []string{
			"#1b1b1b", "#393939", "#575757", "#757575", "#939393", "#b1b1b1", "#cfcfcf", "#eeeeee",
		}), []string{"dimgray", "dimgrey"}},
		{MustNew("diverging_bwr_40_95_c42", CategoryDiverging, []string{
			"#2151db", "#6f83e7", "#a9b4f1", "#f0eff1", "#f1b9a6", "#e87b5e", "#d43d2a", "#a50026",
		}), []string{"coolwarm"}},
		{MustNew("diverging_gwv_55_95_c39", CategoryDiverging, []string{
			"#1c8c40", "#6bab6f", "#a7caa7", "#f0eff1", "#d3b6e6", "#b57edc", "#9548ce", "#7d00c4",
		}), nil},
		{MustNew("rainbow_bgyr_35_85_c73", CategoryRainbow, []string{
			"#0034f5", "#0e70d3", "#159d76", "#45b419", "#96c20b", "#dfc503", "#f59506", "#ff2a00",
		}), []string{"rainbow"}},
		{MustNew("cyclic_mygbm_30_95_c78", CategoryCyclic, []string{
			"#ef55f2", "#fba42c", "#a8c23a", "#2e9d66", "#2a6dbc", "#6d4ae0", "#c44ee9", "#ef55f2",
		}), []string{"colorwheel"}},
		{MustNew("isoluminant_cgo_70_c39", CategoryIsoluminant, []string{
			"#37b7ec", "#53b8c8", "#72b8a4", "#8db583", "#aab069", "#c6a85e", "#e19d61", "#f8916e",
		}), []string{"isolum"}},
	}
}

func defaultRegistry() *Registry {
	r := NewRegistry()
	for _, b := range builtins() {
		if err := r.Add(b.cm, b.aliases...); err != nil {
			panic(err)
		}
	}
	return r
}
