package services

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
	"github.com/custodia-labs/finfet-cli/internal/core/ports/driven"
)

// mockToolRunner records invocations and returns a scripted result per tool name.
type mockToolRunner struct {
	mu    sync.Mutex
	calls []domain.ToolInvocation
	errs  map[string]error
}

var _ driven.ToolRunner = (*mockToolRunner)(nil)

func newMockToolRunner() *mockToolRunner {
	return &mockToolRunner{errs: make(map[string]error)}
}

func (m *mockToolRunner) Run(_ context.Context, inv domain.ToolInvocation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, inv)
	return m.errs[inv.Name]
}

// failWith makes the named tool exit with code.
func (m *mockToolRunner) failWith(name string, code int) {
	m.errs[name] = &domain.ToolError{Tool: name, ExitCode: code, Err: errors.New("exit status")}
}

// missing makes the named tool unavailable.
func (m *mockToolRunner) missing(name string) {
	m.errs[name] = &domain.ToolError{Tool: name, ExitCode: -1, NotFound: true, Err: errors.New("executable file not found in $PATH")}
}

// mockGeometryWriter records written descriptions.
type mockGeometryWriter struct {
	written map[string]*domain.GeometryDescription
	err     error
}

var _ driven.GeometryWriter = (*mockGeometryWriter)(nil)

func newMockGeometryWriter() *mockGeometryWriter {
	return &mockGeometryWriter{written: make(map[string]*domain.GeometryDescription)}
}

func (m *mockGeometryWriter) Render(_ io.Writer, _ *domain.GeometryDescription) error {
	return m.err
}

func (m *mockGeometryWriter) WriteFile(path string, desc *domain.GeometryDescription) error {
	if m.err != nil {
		return m.err
	}
	m.written[path] = desc
	return nil
}

// mockContourPlotter records plot requests.
type mockContourPlotter struct {
	field *domain.ScalarField
	opts  domain.PlotOptions
	path  string
	calls int
	err   error
}

var _ driven.ContourPlotter = (*mockContourPlotter)(nil)

func (m *mockContourPlotter) Plot(field *domain.ScalarField, opts domain.PlotOptions, path string) error {
	m.calls++
	m.field, m.opts, m.path = field, opts, path
	return m.err
}

// mockFieldSource returns a fixed field.
type mockFieldSource struct {
	field *domain.ScalarField
	err   error
}

var _ driven.FieldSource = (*mockFieldSource)(nil)

func (m *mockFieldSource) Load() (*domain.ScalarField, error) {
	return m.field, m.err
}

func testField() *domain.ScalarField {
	return &domain.ScalarField{
		X:      []float64{0, 1, 0, 1},
		Y:      []float64{0, 0, 1, 1},
		Values: []float64{0, 0.5, 0.25, 1},
	}
}

// mockPresetLoader returns a fixed preset or error.
type mockPresetLoader struct {
	preset *domain.DevicePreset
	err    error
	path   string
}

func (m *mockPresetLoader) Load(path string) (*domain.DevicePreset, error) {
	m.path = path
	return m.preset, m.err
}
