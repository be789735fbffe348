package service

import (
	"time"

	"github.com/MKhiriev/notesync/models"
)

// markNoteDirty stamps a local edit. Every local note mutation goes
// through it.
func markNoteDirty(note *models.Note, now time.Time) {
	note.UpdatedAt = now
	note.SyncStatus = models.SyncStatusPending
	note.LocalUpdatedAt = now
}

// markTaskDirty stamps a local edit. Every local task mutation goes
// through it.
func markTaskDirty(task *models.Task, now time.Time) {
	task.UpdatedAt = now
	task.SyncStatus = models.SyncStatusPending
	task.LocalUpdatedAt = now
}

// markNoteSynced stamps a write that originates from the server, so it is
// not pushed back.
func markNoteSynced(note *models.Note, remoteUpdatedAt time.Time) {
	note.UpdatedAt = remoteUpdatedAt
	note.SyncStatus = models.SyncStatusSynced
	note.LocalUpdatedAt = remoteUpdatedAt
}

func markTaskSynced(task *models.Task, remoteUpdatedAt time.Time) {
	task.UpdatedAt = remoteUpdatedAt
	task.SyncStatus = models.SyncStatusSynced
	task.LocalUpdatedAt = remoteUpdatedAt
}

func utcNow() time.Time {
	return time.Now().UTC()
}
