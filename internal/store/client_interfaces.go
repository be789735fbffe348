package store

import (
	"context"
	"time"

	"github.com/MKhiriev/notesync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalNoteRepository is the low-level notes table of the local store.
// Read methods return tombstoned notes unless stated otherwise.
type LocalNoteRepository interface {
	// SaveNote inserts or replaces the given notes as-is. Sync fields are
	// written exactly as provided; stamping them is the caller's job.
	SaveNote(ctx context.Context, notes ...models.Note) error
	GetNote(ctx context.Context, id string) (models.Note, error)
	GetNotes(ctx context.Context, ids ...string) ([]models.Note, error)
	// DeleteNote physically removes rows. Use it only for acknowledged
	// tombstones; a soft delete is a SaveNote with DeletedAt set.
	DeleteNote(ctx context.Context, ids ...string) error
	// ListNotes returns live notes, most recently opened first.
	ListNotes(ctx context.Context) ([]models.Note, error)
	ListNotesBySyncStatus(ctx context.Context, status models.SyncStatus) ([]models.Note, error)
	SetNotesSyncStatus(ctx context.Context, status models.SyncStatus, ids ...string) error
	// MarkNoteSynced flips the note to synced only if its LocalUpdatedAt is
	// still localUpdatedAt. Reports whether the row was updated.
	MarkNoteSynced(ctx context.Context, id string, localUpdatedAt time.Time) (bool, error)
	ListDeletedNotes(ctx context.Context, status models.SyncStatus) ([]models.Note, error)
}

// LocalTaskRepository is the low-level tasks table of the local store.
type LocalTaskRepository interface {
	SaveTask(ctx context.Context, tasks ...models.Task) error
	GetTask(ctx context.Context, id string) (models.Task, error)
	DeleteTask(ctx context.Context, ids ...string) error
	// ListTasks returns live tasks.
	ListTasks(ctx context.Context) ([]models.Task, error)
	// ListTasksByNote returns the live tasks extracted from a note.
	ListTasksByNote(ctx context.Context, noteID string) ([]models.Task, error)
	ListTasksBySyncStatus(ctx context.Context, status models.SyncStatus) ([]models.Task, error)
	SetTasksSyncStatus(ctx context.Context, status models.SyncStatus, ids ...string) error
	MarkTaskSynced(ctx context.Context, id string, localUpdatedAt time.Time) (bool, error)
	ListDeletedTasks(ctx context.Context, status models.SyncStatus) ([]models.Task, error)
}

// LocalTagRepository stores the derived tag usage aggregate.
type LocalTagRepository interface {
	GetTag(ctx context.Context, name string) (models.Tag, error)
	SaveTag(ctx context.Context, tag models.Tag) error
	DeleteTag(ctx context.Context, name string) error
	ListTags(ctx context.Context) ([]models.Tag, error)
}

// LocalSyncMetaRepository is a small key/value table for sync bookkeeping.
type LocalSyncMetaRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// LocalOperationLogRepository persists in-flight push operations.
type LocalOperationLogRepository interface {
	Start(ctx context.Context, record models.OperationRecord) (int64, error)
	Complete(ctx context.Context, id int64, at time.Time) error
	ListIncomplete(ctx context.Context) ([]models.OperationRecord, error)
	// Prune removes completed records, keeping the newest keep of them.
	Prune(ctx context.Context, keep int) (int64, error)
}
