// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncEventKind names the kind of a [SyncEvent].
type SyncEventKind string

const (
	// SyncEventStatusChanged is published on every engine status transition.
	SyncEventStatusChanged SyncEventKind = "status_changed"
	// SyncEventAuthError is published once per sync that failed because the
	// service rejected the credentials.
	SyncEventAuthError SyncEventKind = "auth_error"
	// SyncEventSyncCompleted is published after every successful sync.
	SyncEventSyncCompleted SyncEventKind = "sync_completed"
)

// SyncEvent is a notification emitted by the sync engine. Only the fields
// relevant to Kind are set.
type SyncEvent struct {
	Kind   SyncEventKind
	Status EngineStatus
	Result SyncResult
	Err    error
}
