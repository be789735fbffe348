package service

import "errors"

var (
	// ErrEngineNotInitialized is returned by SyncNow before Init bound a
	// transport, or after sync was disabled.
	ErrEngineNotInitialized = errors.New("sync engine not initialized")

	// ErrSyncDisabled is returned by auth operations that need an enabled
	// sync endpoint.
	ErrSyncDisabled = errors.New("sync is disabled")
	// ErrNoRefreshToken is returned by Refresh when no refresh token is stored.
	ErrNoRefreshToken = errors.New("no refresh token")
	// ErrEmptyEndpoint is returned by Enable for an empty endpoint.
	ErrEmptyEndpoint = errors.New("empty sync endpoint")

	// ErrNoteDeleted is returned when editing a tombstoned note.
	ErrNoteDeleted = errors.New("note is deleted")
	// ErrTaskDeleted is returned when editing a tombstoned task.
	ErrTaskDeleted = errors.New("task is deleted")

	// ErrNoOpenOperation is returned by Complete when no operation was started.
	ErrNoOpenOperation = errors.New("no open operation")
)
