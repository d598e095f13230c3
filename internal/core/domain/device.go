package domain

import (
	"fmt"
	"math"
)

// DefaultMeshSize is the target mesh element size assigned to every point (1 nm).
// It does not scale with the device.
const DefaultMeshSize = 1e-9

// Device parameter names, as used in configuration and on the command line.
const (
	ParamFinWidth          = "fin_width"
	ParamFinHeight         = "fin_height"
	ParamGateLength        = "gate_length"
	ParamOxideThickness    = "oxide_thickness"
	ParamSourceDrainLength = "source_drain_length"
)

// DeviceParameters holds the dimensions of the simplified 2D FinFET, in meters.
type DeviceParameters struct {
	// FinWidth is the fin thickness. It does not enter the 2D cross-section
	// but is emitted into the geometry description for downstream tools.
	FinWidth float64

	// FinHeight is the height of the silicon fin. The gate is drawn with the same height.
	FinHeight float64

	// GateLength is the channel length under the gate.
	GateLength float64

	// OxideThickness is the gate oxide thickness.
	OxideThickness float64

	// SourceDrainLength is the length of each of the source and drain extensions.
	SourceDrainLength float64
}

// DefaultDeviceParameters returns a 20 nm gate device.
func DefaultDeviceParameters() DeviceParameters {
	return DeviceParameters{
		FinWidth:          10e-9,
		FinHeight:         30e-9,
		GateLength:        20e-9,
		OxideThickness:    1e-9,
		SourceDrainLength: 30e-9,
	}
}

// ChannelLength returns the channel length, which equals the gate length.
func (p DeviceParameters) ChannelLength() float64 {
	return p.GateLength
}

// TotalLength returns the x-span of the fin: source + channel + drain.
func (p DeviceParameters) TotalLength() float64 {
	return 2*p.SourceDrainLength + p.ChannelLength()
}

// Validate checks that every dimension is finite and strictly positive.
// With positive dimensions the gate is always shorter than the fin span.
func (p DeviceParameters) Validate() error {
	for _, f := range p.Fields() {
		if math.IsNaN(f.Value) || math.IsInf(f.Value, 0) || f.Value <= 0 {
			return fmt.Errorf("%w: %s must be a positive finite length, got %v", ErrInvalidInput, f.Name, f.Value)
		}
	}
	return nil
}

// ParameterField pairs a parameter name with its value.
type ParameterField struct {
	Name  string
	Value float64
}

// Fields returns the parameters in declaration order.
func (p DeviceParameters) Fields() []ParameterField {
	return []ParameterField{
		{ParamFinWidth, p.FinWidth},
		{ParamFinHeight, p.FinHeight},
		{ParamGateLength, p.GateLength},
		{ParamOxideThickness, p.OxideThickness},
		{ParamSourceDrainLength, p.SourceDrainLength},
	}
}

// With returns a copy of p with the named parameter set to value.
func (p DeviceParameters) With(name string, value float64) (DeviceParameters, error) {
	switch name {
	case ParamFinWidth:
		p.FinWidth = value
	case ParamFinHeight:
		p.FinHeight = value
	case ParamGateLength:
		p.GateLength = value
	case ParamOxideThickness:
		p.OxideThickness = value
	case ParamSourceDrainLength:
		p.SourceDrainLength = value
	default:
		return p, fmt.Errorf("%w: unknown device parameter %q", ErrInvalidInput, name)
	}
	return p, nil
}

// AllParameterNames returns the recognised device parameter names.
func AllParameterNames() []string {
	return []string{
		ParamFinWidth,
		ParamFinHeight,
		ParamGateLength,
		ParamOxideThickness,
		ParamSourceDrainLength,
	}
}
