package domain

import (
	"fmt"
	"slices"
)

// DevicePreset is a named, possibly partial, set of device dimensions
// loaded from a preset file.
type DevicePreset struct {
	// Name identifies the preset. May be empty.
	Name string

	// Description is free text shown to the user. May be empty.
	Description string

	// Values maps parameter names to lengths in meters.
	// Names absent from the map keep their current value.
	Values map[string]float64
}

// ApplyTo returns params with the preset values applied.
// Unknown names and non-positive results are rejected.
func (p *DevicePreset) ApplyTo(params DeviceParameters) (DeviceParameters, error) {
	if p == nil || len(p.Values) == 0 {
		return params, fmt.Errorf("%w: preset has no device values", ErrInvalidInput)
	}

	names := make([]string, 0, len(p.Values))
	for name := range p.Values {
		names = append(names, name)
	}
	slices.Sort(names)

	out := params
	for _, name := range names {
		var err error
		out, err = out.With(name, p.Values[name])
		if err != nil {
			return params, err
		}
	}
	if err := out.Validate(); err != nil {
		return params, err
	}
	return out, nil
}
