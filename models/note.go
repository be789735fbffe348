// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Note is a locally stored note together with its synchronization fields.
type Note struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Content []Block `json:"content"`
	// PlainText is a derived cache of Content used for search; it is never
	// synchronized and is rebuilt locally.
	PlainText    string     `json:"plainText"`
	Tags         []string   `json:"tags"`
	Pinned       bool       `json:"pinned"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	LastOpenedAt time.Time  `json:"lastOpenedAt"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty"`

	SyncStatus     SyncStatus `json:"_syncStatus"`
	LocalUpdatedAt time.Time  `json:"_localUpdatedAt"`
}

// IsDeleted reports whether the note carries a tombstone.
func (n Note) IsDeleted() bool {
	return n.DeletedAt != nil
}

// NotePayload is the wire representation of a note inside an upsert change.
type NotePayload struct {
	ID        string     `json:"id"`
	Title     *string    `json:"title"`
	Content   []Block    `json:"content"`
	Tags      []string   `json:"tags"`
	Pinned    *bool      `json:"pinned,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
