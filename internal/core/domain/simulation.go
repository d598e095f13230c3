package domain

// Placeholder names recognised in simulator deck templates.
const (
	PlaceholderGateVoltage = "gate_voltage"
	PlaceholderMeshFile    = "mesh_file"
)

// SimulationRequest describes one device simulator run.
type SimulationRequest struct {
	// GateVoltage is substituted for the gate_voltage placeholder, in volts.
	GateVoltage float64

	// TemplatePath is the deck template to instantiate.
	TemplatePath string

	// DeckPath is where the instantiated deck is written.
	DeckPath string

	// MeshPath is substituted for the mesh_file placeholder.
	MeshPath string
}

// SimulationResult records where a successful run left its deck.
type SimulationResult struct {
	DeckPath    string
	GateVoltage float64
}
