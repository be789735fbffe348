package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/models"
)

func TestLocalSyncMetaRepository_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestStorages(t).SyncMetaRepository

	_, found, err := repo.Get(ctx, models.MetaLastSyncToken)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Set(ctx, models.MetaLastSyncToken, "0001"))
	require.NoError(t, repo.Set(ctx, models.MetaLastSyncToken, "0002"))
	require.NoError(t, repo.Set(ctx, models.MetaAccessToken, "access"))

	v, found, err := repo.Get(ctx, models.MetaLastSyncToken)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "0002", v)

	require.NoError(t, repo.Delete(ctx, models.MetaLastSyncToken, models.MetaAccessToken))

	_, found, err = repo.Get(ctx, models.MetaLastSyncToken)
	require.NoError(t, err)
	assert.False(t, found)
	_, found, err = repo.Get(ctx, models.MetaAccessToken)
	require.NoError(t, err)
	assert.False(t, found)
}

// TestLocalSyncMetaRepository_EmptyValueIsFound пустое значение отличается
// от отсутствующего ключа.
func TestLocalSyncMetaRepository_EmptyValueIsFound(t *testing.T) {
	ctx := context.Background()
	repo := newTestStorages(t).SyncMetaRepository

	require.NoError(t, repo.Set(ctx, "k", ""))
	v, found, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "", v)
}

func TestLocalSyncMetaRepository_QueryError(t *testing.T) {
	db, mock, _ := newMockDB(t)
	repo := NewLocalSyncMetaRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT value FROM sync_meta").WithArgs("k").WillReturnError(assert.AnError)

	_, found, err := repo.Get(context.Background(), "k")
	assert.False(t, found)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
