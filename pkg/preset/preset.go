// Package preset is a registry of material presets: how elevation maps to
// surface appearance (color bands, water level) for a rendering collaborator.
// Built-in presets cover the stock terrain profiles; additional packs can be
// fetched from a URL or local path and are schema-validated before they are
// registered.
package preset

import (
	"fmt"
	"sort"
)

// Band maps the elevation range (previous band, UpTo] to a surface material.
type Band struct {
	Name  string  `json:"name"`
	UpTo  float64 `json:"up_to"` // normalized elevation upper bound, [0,1]
	Color string  `json:"color"` // #rrggbb
}

// Preset is a named material profile.
type Preset struct {
	Name       string  `json:"name"`
	WaterLevel float64 `json:"water_level"`
	Bands      []Band  `json:"bands"`
}

// BandFor returns the band covering a normalized elevation: the first band
// whose UpTo is not below it, else the last band.
func (p *Preset) BandFor(elevation float64) Band {
	for _, b := range p.Bands {
		if elevation <= b.UpTo {
			return b
		}
	}
	return p.Bands[len(p.Bands)-1]
}

var registry = map[string]*Preset{}

// Register adds or replaces a preset under its name. Presets without a name
// or without bands are rejected here as a last line of defense; pack loading
// validates against the schema first.
func Register(p *Preset) error {
	if p.Name == "" {
		return fmt.Errorf("preset has no name")
	}
	if len(p.Bands) == 0 {
		return fmt.Errorf("preset %s has no bands", p.Name)
	}
	bands := make([]Band, len(p.Bands))
	copy(bands, p.Bands)
	sort.SliceStable(bands, func(i, j int) bool { return bands[i].UpTo < bands[j].UpTo })
	registry[p.Name] = &Preset{Name: p.Name, WaterLevel: p.WaterLevel, Bands: bands}
	return nil
}

// Load returns the named preset.
func Load(name string) (*Preset, error) {
	p, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset: %s", name)
	}
	return p, nil
}

// RegisteredNames returns every registered preset name, sorted.
func RegisteredNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
