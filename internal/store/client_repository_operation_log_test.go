package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/notesync/models"
)

func TestLocalOperationLogRepository_StartCompleteList(t *testing.T) {
	ctx := context.Background()
	repo := newTestStorages(t).OperationLogRepository

	id1, err := repo.Start(ctx, models.OperationRecord{
		Kind:           models.OperationKindPush,
		EntityIDs:      []string{"n1", "t1"},
		IdempotencyKey: "client-1-1-a",
		StartedAt:      testNow,
	})
	require.NoError(t, err)

	id2, err := repo.Start(ctx, models.OperationRecord{
		Kind:           models.OperationKindPush,
		IdempotencyKey: "client-1-2-b",
		StartedAt:      testNow.Add(time.Second),
	})
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	incomplete, err := repo.ListIncomplete(ctx)
	require.NoError(t, err)
	require.Len(t, incomplete, 2)
	assert.Equal(t, id1, incomplete[0].ID)
	assert.Equal(t, []string{"n1", "t1"}, incomplete[0].EntityIDs)
	assert.Equal(t, "client-1-1-a", incomplete[0].IdempotencyKey)
	assert.True(t, testNow.Equal(incomplete[0].StartedAt))
	assert.False(t, incomplete[0].Completed())
	assert.Empty(t, incomplete[1].EntityIDs)

	require.NoError(t, repo.Complete(ctx, id1, testNow.Add(2*time.Second)))
	// completing twice reports a missing open record
	assert.ErrorIs(t, repo.Complete(ctx, id1, testNow), ErrOperationNotFound)

	incomplete, err = repo.ListIncomplete(ctx)
	require.NoError(t, err)
	require.Len(t, incomplete, 1)
	assert.Equal(t, id2, incomplete[0].ID)
}

func TestLocalOperationLogRepository_Prune(t *testing.T) {
	ctx := context.Background()
	repo := newTestStorages(t).OperationLogRepository

	var ids []int64
	for i := 0; i < 5; i++ {
		id, err := repo.Start(ctx, models.OperationRecord{
			Kind:           models.OperationKindPush,
			IdempotencyKey: "k",
			StartedAt:      testNow,
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	// the last record stays in flight
	for _, id := range ids[:4] {
		require.NoError(t, repo.Complete(ctx, id, testNow))
	}

	removed, err := repo.Prune(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	// the two newest completed records survive
	assert.NoError(t, func() error { _, err := repo.Prune(ctx, 2); return err }())
	assert.ErrorIs(t, repo.Complete(ctx, ids[2], testNow), ErrOperationNotFound)

	incomplete, err := repo.ListIncomplete(ctx)
	require.NoError(t, err)
	require.Len(t, incomplete, 1)
	assert.Equal(t, ids[4], incomplete[0].ID)

	removed, err = repo.Prune(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}
