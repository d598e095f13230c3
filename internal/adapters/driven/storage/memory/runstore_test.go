package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/finfet-cli/internal/core/domain"
)

func TestRunStore_SaveAndGet(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()

	run := &domain.Run{
		ID:        "run-1",
		Kind:      domain.RunKindBuild,
		Status:    domain.RunStatusSucceeded,
		StartedAt: time.Now(),
		Artifacts: map[string]string{domain.ArtifactGeometry: "output/finfet.geo"},
	}
	require.NoError(t, store.Save(ctx, run))

	// Mutating the caller's map must not affect the stored copy
	run.Artifacts[domain.ArtifactMesh] = "changed"

	got, err := store.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, domain.RunKindBuild, got.Kind)
	assert.Len(t, got.Artifacts, 1)
}

func TestRunStore_Get_NotFound(t *testing.T) {
	store := NewRunStore()

	_, err := store.Get(context.Background(), "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRunStore_Save_Invalid(t *testing.T) {
	store := NewRunStore()

	assert.ErrorIs(t, store.Save(context.Background(), nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.Save(context.Background(), &domain.Run{}), domain.ErrInvalidInput)
}

func TestRunStore_List_NewestFirstWithLimit(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Save(ctx, &domain.Run{ID: id, StartedAt: base.Add(time.Duration(i) * time.Minute)}))
	}

	runs, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "c", runs[0].ID)
	assert.Equal(t, "a", runs[2].ID)

	runs, err = store.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "b", runs[1].ID)
}
