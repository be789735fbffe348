// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// EntityType names the kind of entity carried by an [EntityChange].
type EntityType string

const (
	EntityTypeNote EntityType = "note"
	EntityTypeTask EntityType = "task"
)

// Operation names the kind of mutation carried by an [EntityChange].
type Operation string

const (
	OperationUpsert Operation = "upsert"
	OperationDelete Operation = "delete"
)

// SyncMeta keys.
const (
	MetaLastSyncToken = "lastSyncToken"
	MetaClientID      = "clientId"
	MetaAccessToken   = "accessToken"
	MetaRefreshToken  = "refreshToken"
	MetaSyncEndpoint  = "syncEndpoint"
)

// EntityChange is a single change exchanged with the remote service.
//
// An upsert carries the full entity in Data (a [NotePayload] or a
// [TaskPayload]); a delete carries ID and DeletedAt only.
type EntityChange struct {
	Type      EntityType      `json:"type"`
	Operation Operation       `json:"operation"`
	ID        string          `json:"id,omitempty"`
	DeletedAt *time.Time      `json:"deletedAt,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// EntityID returns the id of the changed entity regardless of the operation.
// For upserts whose top-level ID is empty it is read from Data.
func (c EntityChange) EntityID() string {
	if c.ID != "" || len(c.Data) == 0 {
		return c.ID
	}
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(c.Data, &probe); err != nil {
		return ""
	}
	return probe.ID
}

// ConflictInfo describes an upsert the server rejected due to version
// divergence.
type ConflictInfo struct {
	ID     string     `json:"id"`
	Type   EntityType `json:"type,omitempty"`
	Reason string     `json:"reason,omitempty"`
}

// PushRequest is a batch of local changes. Repeating a request with the same
// IdempotencyKey is a no-op on the server that returns the original result.
type PushRequest struct {
	Changes        []EntityChange `json:"changes"`
	ClientID       string         `json:"clientId"`
	IdempotencyKey string         `json:"idempotencyKey"`
}

// PushResponse is the server verdict for a [PushRequest].
type PushResponse struct {
	Applied   []string       `json:"applied"`
	Conflicts []ConflictInfo `json:"conflicts"`
	SyncToken string         `json:"syncToken"`
}

// PullRequest asks for every change after Since that did not originate from
// ClientID. An empty Since requests the full history.
type PullRequest struct {
	Since    string `json:"since,omitempty"`
	ClientID string `json:"clientId"`
}

// PullChanges groups pulled changes per entity type.
type PullChanges struct {
	Notes []EntityChange `json:"notes"`
	Tasks []EntityChange `json:"tasks"`
}

// PullResponse is the answer to a [PullRequest].
type PullResponse struct {
	Changes   PullChanges `json:"changes"`
	SyncToken string      `json:"syncToken"`
}

// SyncResult summarizes one sync cycle.
type SyncResult struct {
	Pushed    int            `json:"pushed"`
	Pulled    int            `json:"pulled"`
	Conflicts []ConflictInfo `json:"conflicts"`
}
