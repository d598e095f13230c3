package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
	"github.com/custodia-labs/finfet-cli/internal/core/ports/driven"
	"github.com/custodia-labs/finfet-cli/internal/core/ports/driving"
	"github.com/custodia-labs/finfet-cli/internal/logger"
)

// Ensure SimulationService implements the interface.
var _ driving.SimulationService = (*SimulationService)(nil)

// SimulationService instantiates simulator decks and runs the external simulator.
type SimulationService struct {
	runner  driven.ToolRunner
	command string
}

// NewSimulationService creates a simulation service running command.
// An empty command defaults to gss.
func NewSimulationService(runner driven.ToolRunner, command string) *SimulationService {
	if command == "" {
		command = domain.DefaultSimulatorCommand
	}
	return &SimulationService{
		runner:  runner,
		command: command,
	}
}

// InstantiateDeck renders the template at req.TemplatePath and writes it to req.DeckPath.
func (s *SimulationService) InstantiateDeck(req domain.SimulationRequest) error {
	tmpl, err := os.ReadFile(req.TemplatePath)
	if err != nil {
		return fmt.Errorf("read deck template: %w", err)
	}

	deck, err := RenderTemplate(string(tmpl), map[string]string{
		domain.PlaceholderGateVoltage: strconv.FormatFloat(req.GateVoltage, 'g', -1, 64),
		domain.PlaceholderMeshFile:    req.MeshPath,
	})
	if err != nil {
		return fmt.Errorf("render deck template %s: %w", req.TemplatePath, err)
	}

	if dir := filepath.Dir(req.DeckPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create deck directory: %w", err)
		}
	}
	if err := os.WriteFile(req.DeckPath, []byte(deck), 0644); err != nil {
		return fmt.Errorf("write deck: %w", err)
	}
	return nil
}

// Run instantiates the deck and invokes the simulator on it.
func (s *SimulationService) Run(ctx context.Context, req domain.SimulationRequest) (*domain.SimulationResult, error) {
	logger.Section("Simulation")
	logger.Info("Running simulation for Vg = %v V", req.GateVoltage)

	if err := s.InstantiateDeck(req); err != nil {
		return nil, err
	}
	logger.Debug("Deck written to %s", req.DeckPath)

	inv := domain.ToolInvocation{
		Name: s.command,
		Args: []string{req.DeckPath},
	}
	if err := s.runner.Run(ctx, inv); err != nil {
		if errors.Is(err, domain.ErrToolNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrSimulationFailed, err)
	}

	logger.Info("Simulation finished")
	return &domain.SimulationResult{
		DeckPath:    req.DeckPath,
		GateVoltage: req.GateVoltage,
	}, nil
}
