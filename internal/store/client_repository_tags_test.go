package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/notesync/models"
)

func TestLocalTagRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newTestStorages(t).TagRepository

	_, err := repo.GetTag(ctx, "work")
	assert.ErrorIs(t, err, ErrTagNotFound)

	require.NoError(t, repo.SaveTag(ctx, models.Tag{Name: "work", UsageCount: 1, LastUsedAt: testNow}))
	require.NoError(t, repo.SaveTag(ctx, models.Tag{Name: "home", UsageCount: 3, LastUsedAt: testNow}))
	require.NoError(t, repo.SaveTag(ctx, models.Tag{Name: "work", UsageCount: 2, LastUsedAt: testNow}))

	tag, err := repo.GetTag(ctx, "work")
	require.NoError(t, err)
	assert.Equal(t, 2, tag.UsageCount)
	assert.True(t, testNow.Equal(tag.LastUsedAt))

	tags, err := repo.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "home", tags[0].Name)
	assert.Equal(t, "work", tags[1].Name)

	require.NoError(t, repo.DeleteTag(ctx, "work"))
	_, err = repo.GetTag(ctx, "work")
	assert.ErrorIs(t, err, ErrTagNotFound)
}
