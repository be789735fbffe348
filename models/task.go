// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AppType identifies which surface a task originates from.
type AppType string

const (
	// AppTypeNotes marks tasks that mirror a checklist node inside a note.
	// Only such tasks are synchronized by this client.
	AppTypeNotes AppType = "notes"
	// AppTypeTasks marks tasks created in the standalone tasks surface.
	AppTypeTasks AppType = "tasks"
)

// Task is a denormalized copy of a checklist node embedded in a note's
// content tree.
type Task struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	// DisplayTitle is Title with due-date syntax stripped.
	DisplayTitle string     `json:"displayTitle"`
	Completed    bool       `json:"completed"`
	NoteID       string     `json:"noteId"`
	BlockID      string     `json:"blockId"`
	Tags         []string   `json:"tags"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty"`
	AppType      AppType    `json:"appType"`

	SyncStatus     SyncStatus `json:"_syncStatus"`
	LocalUpdatedAt time.Time  `json:"_localUpdatedAt"`
}

// IsDeleted reports whether the task carries a tombstone.
func (t Task) IsDeleted() bool {
	return t.DeletedAt != nil
}

// Syncable reports whether the task is synchronized by this client.
func (t Task) Syncable() bool {
	return t.NoteID != "" && (t.AppType == "" || t.AppType == AppTypeNotes)
}

// TaskPayload is the wire representation of a task inside an upsert change.
// Pointer fields distinguish "absent" from zero values in remote payloads.
type TaskPayload struct {
	ID           string     `json:"id"`
	Title        *string    `json:"title"`
	DisplayTitle *string    `json:"displayTitle"`
	Tags         []string   `json:"tags"`
	DueDate      *time.Time `json:"dueDate"`
	Completed    *bool      `json:"completed"`
	CompletedAt  *time.Time `json:"completedAt"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	NoteID       string     `json:"noteId,omitempty"`
	BlockID      string     `json:"blockId,omitempty"`
	AppType      AppType    `json:"appType,omitempty"`
}
