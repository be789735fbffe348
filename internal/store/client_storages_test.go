package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/notesync/internal/config"
	"github.com/MKhiriev/notesync/internal/logger"
)

// newTestStorages открывает настоящую sqlite-базу во временной директории
// и прогоняет миграции.
func newTestStorages(t *testing.T) *ClientStorages {
	t.Helper()

	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "notes.db")}}
	s, err := NewClientStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

// newMockDB returns a DB backed by sqlmock for exercising error paths.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{DB: conn, errorClassificator: NewSQLiteErrorClassifier(), logger: logger.Nop()}, mock, conn
}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC)

func TestNewClientStorages_CreatesFileInNestedDir(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "nested", "dir", "notes.db")

	s, err := NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	assert.NotNil(t, s.NoteRepository)
	assert.NotNil(t, s.TaskRepository)
	assert.NotNil(t, s.TagRepository)
	assert.NotNil(t, s.SyncMetaRepository)
	assert.NotNil(t, s.OperationLogRepository)
	assert.FileExists(t, dsn)
}

func TestClientStorages_CloseIsNilSafe(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
}

// TestClientStorages_ReopenKeepsData проверяет, что данные переживают
// закрытие и повторное открытие базы.
func TestClientStorages_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "notes.db")}}

	s, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.SyncMetaRepository.Set(ctx, "clientId", "client-1"))
	require.NoError(t, s.Close())

	s, err = NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	v, found, err := s.SyncMetaRepository.Get(ctx, "clientId")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "client-1", v)
}
