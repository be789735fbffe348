package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/notesync/internal/config"
	"github.com/MKhiriev/notesync/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// NoteRepository holds notes, including unacknowledged tombstones.
	NoteRepository LocalNoteRepository
	// TaskRepository holds tasks extracted from note checklists.
	TaskRepository LocalTaskRepository
	// TagRepository holds the derived tag usage aggregate.
	TagRepository LocalTagRepository
	// SyncMetaRepository holds the sync cursor, client id, endpoint and tokens.
	SyncMetaRepository LocalSyncMetaRepository
	// OperationLogRepository holds in-flight push operations.
	OperationLogRepository LocalOperationLogRepository

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories sharing that connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		NoteRepository:         NewLocalNoteRepository(db, logger),
		TaskRepository:         NewLocalTaskRepository(db, logger),
		TagRepository:          NewLocalTagRepository(db, logger),
		SyncMetaRepository:     NewLocalSyncMetaRepository(db, logger),
		OperationLogRepository: NewLocalOperationLogRepository(db, logger),
		db:                     db,
	}
}

// Close releases the underlying database connection. Repositories must not
// be used afterwards.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
