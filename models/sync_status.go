// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncStatus describes how a locally stored record relates to the remote
// authority.
type SyncStatus string

const (
	// SyncStatusSynced marks a record that matches the last state acknowledged
	// by (or received from) the server.
	SyncStatusSynced SyncStatus = "synced"

	// SyncStatusPending marks a record with local changes that were not pushed
	// yet. Pending records are authoritative locally and are never overwritten
	// by incoming remote changes.
	SyncStatusPending SyncStatus = "pending"

	// SyncStatusConflict marks a record the server refused to apply because of
	// version divergence. It stays in this state until resolved by the user.
	SyncStatusConflict SyncStatus = "conflict"
)

// Valid reports whether s is one of the known statuses.
func (s SyncStatus) Valid() bool {
	switch s {
	case SyncStatusSynced, SyncStatusPending, SyncStatusConflict:
		return true
	}
	return false
}

func (s SyncStatus) String() string {
	return string(s)
}
