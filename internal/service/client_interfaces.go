package service

import (
	"context"
	"time"

	"github.com/MKhiriev/notesync/internal/adapter"
	"github.com/MKhiriev/notesync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock -exclude_interfaces=ClientNoteService,ClientTaskService

// ClientNoteService is the local mutation API for notes. Every method that
// changes synchronized fields stamps the note (and any task it touches) as
// pending, so the next sync pushes it.
type ClientNoteService interface {
	// CreateNote stores a new note built from blocks. Title, plain text and
	// tags are derived from the content and a task is created for every
	// checklist node.
	CreateNote(ctx context.Context, blocks []models.Block) (models.Note, error)

	// UpdateNoteContent replaces the content of a live note, recomputes the
	// derived fields and reconciles the note's tasks by block id: existing
	// tasks are updated in place, new checklist nodes get new tasks, tasks
	// whose node disappeared are tombstoned.
	UpdateNoteContent(ctx context.Context, id string, blocks []models.Block) (models.Note, error)

	SetPinned(ctx context.Context, id string, pinned bool) (models.Note, error)

	// MarkOpened records that the note was opened. lastOpenedAt is local
	// only, so this does not make the note pending.
	MarkOpened(ctx context.Context, id string) error

	// DeleteNote tombstones the note and its tasks.
	DeleteNote(ctx context.Context, id string) error

	GetNote(ctx context.Context, id string) (models.Note, error)
	ListNotes(ctx context.Context) ([]models.Note, error)

	// PurgeDeleted physically removes tombstones the server acknowledged
	// (synced ones) and returns how many rows were removed.
	PurgeDeleted(ctx context.Context) (int, error)
}

// ClientTaskService is the local mutation API for tasks.
type ClientTaskService interface {
	// ToggleTask flips the completion flag and patches the checklist node
	// inside the owning note. Both records become pending.
	ToggleTask(ctx context.Context, id string) (models.Task, error)

	// ListTasks returns live tasks; with a non-empty noteID only those
	// extracted from that note.
	ListTasks(ctx context.Context, noteID string) ([]models.Task, error)

	DeleteTask(ctx context.Context, id string) error
}

// ClientOperationLog is the crash-recovery ledger around pushes.
type ClientOperationLog interface {
	// Start records an in-flight batch before it is sent.
	Start(ctx context.Context, kind string, entityIDs []string, idempotencyKey string) (int64, error)

	// Complete closes the most recently started record.
	Complete(ctx context.Context) error

	// Recover closes records left open by a previous process and returns
	// them for auditing. It never replays anything: pending entities are
	// simply pushed again by the next sync.
	Recover(ctx context.Context) ([]models.OperationRecord, error)
}

// ClientSyncEngine synchronizes the local store with the sync service.
type ClientSyncEngine interface {
	// Init binds the transport for endpoint. It does not sync.
	Init(endpoint string, tokens adapter.TokenProvider) error

	// Reset drops the transport and cancels pending retries. Later syncs
	// fail with ErrEngineNotInitialized until Init is called again.
	Reset()

	// Start triggers SyncNow every interval until Stop or ctx is done.
	// A non-positive interval disables the periodic trigger.
	Start(ctx context.Context, interval time.Duration)
	Stop()

	// SyncNow pushes pending local changes, then pulls and applies remote
	// ones. A call made while a sync is running returns an empty result.
	SyncNow(ctx context.Context) (models.SyncResult, error)

	Status() models.EngineStatus

	// ClientID returns the stable id of this device, creating it on first
	// use.
	ClientID(ctx context.Context) (string, error)

	// Subscribe returns a channel of engine events in publish order and a
	// function that ends the subscription. Events that do not fit into the
	// buffer are dropped for that subscriber.
	Subscribe(buffer int) (<-chan models.SyncEvent, func())

	OnStatusChange(fn func(models.EngineStatus)) func()
	OnAuthError(fn func(error)) func()
	OnSyncComplete(fn func(models.SyncResult)) func()

	// Shutdown stops the periodic trigger and pending retries and closes
	// every subscription.
	Shutdown()
}

// ClientAuthService owns the sync credentials and the enable state.
type ClientAuthService interface {
	adapter.TokenProvider

	// Enable stores endpoint and tokens and initializes the engine.
	Enable(ctx context.Context, endpoint string, tokens models.TokenPair) error

	// Restore re-enables sync from stored settings. Reports whether sync
	// is enabled.
	Restore(ctx context.Context) (bool, error)

	// Refresh rotates the token pair. Concurrent callers share one request.
	Refresh(ctx context.Context) (models.TokenPair, error)

	// Disable stops sync and forgets tokens, endpoint and the sync cursor.
	Disable(ctx context.Context) error

	Enabled() bool

	// TokenExpiresSoon reports whether the access token expires within
	// window. Tokens without a readable exp claim never expire.
	TokenExpiresSoon(window time.Duration) bool
}
