package services

import (
	"context"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
	"github.com/custodia-labs/finfet-cli/internal/core/ports/driven"
	"github.com/custodia-labs/finfet-cli/internal/core/ports/driving"
	"github.com/custodia-labs/finfet-cli/internal/logger"
)

// Ensure PlotService implements the interface.
var _ driving.PlotService = (*PlotService)(nil)

// PlotService renders potential maps through a ContourPlotter.
type PlotService struct {
	plotter driven.ContourPlotter
	source  driven.FieldSource
	levels  int
}

// NewPlotService creates a plot service.
// source may be nil, in which case PlotFromSource is unavailable.
func NewPlotService(plotter driven.ContourPlotter, source driven.FieldSource, levels int) *PlotService {
	return &PlotService{
		plotter: plotter,
		source:  source,
		levels:  levels,
	}
}

// PlotPotential renders field at path. The gate voltage only labels the plot.
func (s *PlotService) PlotPotential(_ context.Context, field *domain.ScalarField, gateVoltage float64, path string) error {
	logger.Section("Plot")

	if err := field.Validate(); err != nil {
		return err
	}

	opts := domain.PotentialPlotOptions(gateVoltage, s.levels)
	logger.Debug("Plotting %d samples with %d levels", field.Len(), opts.Levels)

	if err := s.plotter.Plot(field, opts, path); err != nil {
		return err
	}

	logger.Info("Saved potential plot to %s", path)
	return nil
}

// PlotFromSource loads the field from the configured source and renders it.
func (s *PlotService) PlotFromSource(ctx context.Context, gateVoltage float64, path string) error {
	if s.source == nil {
		return domain.ErrNotImplemented
	}

	field, err := s.source.Load()
	if err != nil {
		return err
	}
	return s.PlotPotential(ctx, field, gateVoltage, path)
}
