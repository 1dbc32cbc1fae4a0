package site

import "sort"

// Preset bundles the placeholder tokens and naming used by a site layout.
type Preset struct {
	Name             string
	DataPlaceholder  string
	ScriptID         string
	MountPlaceholder string
	Label            string

	// Template, Prerender, Data and Output are the conventional paths used
	// when scaffolding a config.
	Template  string
	Prerender string
	Data      string
	Output    string
}

var presets = map[string]Preset{
	"property-site": {
		Name:             "property-site",
		DataPlaceholder:  "<!-- PROPERTIES_DATA_PLACEHOLDER -->",
		ScriptID:         "forge-properties-data",
		MountPlaceholder: DefaultMountPlaceholder,
		Label:            "properties",
		Template:         "examples/04-property-site/base_index.html",
		Prerender:        "examples/04-property-site/dist/App.forge.html",
		Data:             "examples/04-property-site/api/properties.json",
		Output:           "examples/04-property-site/index.html",
	},
	"ecommerce": {
		Name:            "ecommerce",
		DataPlaceholder: "<!-- PRODUCTS_DATA_PLACEHOLDER -->",
		ScriptID:        "shopforge-products-data",
		Label:           "products",
		Template:        "examples/05-ecommerce/base_index.html",
		Data:            "examples/05-ecommerce/api/products.json",
		Output:          "examples/05-ecommerce/index.html",
	},
}

// LookupPreset returns the preset registered under name.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames lists the registered presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Target returns a target using the preset's conventional paths.
func (p Preset) Target() Target {
	return Target{
		Name:      p.Name,
		Preset:    p.Name,
		Template:  p.Template,
		Prerender: p.Prerender,
		Data:      p.Data,
		Output:    p.Output,
	}
}

func (p Preset) apply(t Target) Target {
	if t.DataPlaceholder == "" {
		t.DataPlaceholder = p.DataPlaceholder
	}
	if t.ScriptID == "" {
		t.ScriptID = p.ScriptID
	}
	if t.MountPlaceholder == "" {
		t.MountPlaceholder = p.MountPlaceholder
	}
	if t.Label == "" {
		t.Label = p.Label
	}
	return t
}
