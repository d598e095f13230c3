package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
	"github.com/custodia-labs/finfet-cli/internal/core/ports/driven"
)

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

// timeLayout is fixed width so started_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const runColumns = `id, kind, status, started_at, ended_at,
	fin_width, fin_height, gate_length, oxide_thickness, source_drain_length,
	artifacts, error`

// Save stores or updates a run.
func (s *runStore) Save(ctx context.Context, run *domain.Run) error {
	if run == nil || run.ID == "" {
		return domain.ErrInvalidInput
	}

	artifacts := run.Artifacts
	if artifacts == nil {
		artifacts = map[string]string{}
	}
	artifactsJSON, err := json.Marshal(artifacts)
	if err != nil {
		return fmt.Errorf("marshalling artifacts: %w", err)
	}

	p := run.Parameters
	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO runs (`+runColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			kind = excluded.kind,
			status = excluded.status,
			started_at = excluded.started_at,
			ended_at = excluded.ended_at,
			fin_width = excluded.fin_width,
			fin_height = excluded.fin_height,
			gate_length = excluded.gate_length,
			oxide_thickness = excluded.oxide_thickness,
			source_drain_length = excluded.source_drain_length,
			artifacts = excluded.artifacts,
			error = excluded.error
	`, run.ID, run.Kind.String(), string(run.Status),
		run.StartedAt.UTC().Format(timeLayout), formatNullableTime(run.EndedAt),
		p.FinWidth, p.FinHeight, p.GateLength, p.OxideThickness, p.SourceDrainLength,
		string(artifactsJSON), nullString(run.Error))

	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// Get retrieves a run by ID.
func (s *runStore) Get(ctx context.Context, id string) (*domain.Run, error) {
	row := s.store.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// List returns recent runs, most recent first.
func (s *runStore) List(ctx context.Context, limit int) ([]domain.Run, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+runColumns+`
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.Run //nolint:prealloc // size unknown from query
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	return runs, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*domain.Run, error) {
	var (
		run           domain.Run
		kind, status  string
		startedAt     string
		endedAt       sql.NullString
		artifactsJSON string
		errMsg        sql.NullString
	)

	err := sc.Scan(&run.ID, &kind, &status, &startedAt, &endedAt,
		&run.Parameters.FinWidth, &run.Parameters.FinHeight, &run.Parameters.GateLength,
		&run.Parameters.OxideThickness, &run.Parameters.SourceDrainLength,
		&artifactsJSON, &errMsg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	run.Kind = domain.RunKind(kind)
	run.Status = domain.RunStatus(status)
	run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	run.EndedAt = parseNullableTime(endedAt)
	run.Error = errMsg.String

	if err := json.Unmarshal([]byte(artifactsJSON), &run.Artifacts); err != nil {
		return nil, fmt.Errorf("unmarshalling artifacts: %w", err)
	}
	if run.Artifacts == nil {
		run.Artifacts = map[string]string{}
	}

	return &run, nil
}

// formatNullableTime formats a time with timeLayout, or nil for zero time.
func formatNullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(timeLayout)
}

// parseNullableTime parses a nullable RFC3339 string to time.Time.
// Returns zero time if the string is empty or invalid.
func parseNullableTime(s sql.NullString) time.Time {
	if !s.Valid || s.String == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s.String)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nullString returns nil for empty strings, otherwise the string.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
