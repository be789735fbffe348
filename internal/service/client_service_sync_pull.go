package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/notesync/internal/adapter"
	"github.com/MKhiriev/notesync/internal/content"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/store"
	"github.com/MKhiriev/notesync/models"
)

// pull fetches changes made elsewhere since the stored cursor and applies
// them. Pending local records always win over incoming upserts.
func (e *clientSyncEngine) pull(ctx context.Context, api adapter.SyncAPIClient, clientID string) (int, error) {
	since, _, err := e.meta.Get(ctx, models.MetaLastSyncToken)
	if err != nil {
		return 0, fmt.Errorf("read sync token: %w", err)
	}

	resp, err := api.Pull(ctx, models.PullRequest{Since: since, ClientID: clientID})
	if err != nil {
		return 0, err
	}

	pulled := 0
	for _, change := range resp.Changes.Notes {
		applied, err := e.applyNoteChange(ctx, change)
		if err != nil {
			return pulled, err
		}
		if applied {
			pulled++
		}
	}
	for _, change := range resp.Changes.Tasks {
		applied, err := e.applyTaskChange(ctx, change)
		if err != nil {
			return pulled, err
		}
		if applied {
			pulled++
		}
	}

	if err = e.saveCursor(ctx, resp.SyncToken); err != nil {
		return pulled, err
	}
	return pulled, nil
}

func (e *clientSyncEngine) applyNoteChange(ctx context.Context, change models.EntityChange) (bool, error) {
	log := logger.FromContext(ctx)

	switch change.Operation {
	case models.OperationDelete:
		existing, err := e.notes.GetNote(ctx, change.ID)
		if errors.Is(err, store.ErrNoteNotFound) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("get note %s: %w", change.ID, err)
		}

		wasLive := !existing.IsDeleted()
		deletedAt := e.remoteTime(change.DeletedAt)
		existing.DeletedAt = &deletedAt
		existing.SyncStatus = models.SyncStatusSynced
		if err = e.notes.SaveNote(ctx, existing); err != nil {
			return false, fmt.Errorf("tombstone note %s: %w", change.ID, err)
		}
		if wasLive {
			if err = e.tags.apply(ctx, existing.Tags, nil, e.clock()); err != nil {
				return false, err
			}
		}
		return true, nil

	case models.OperationUpsert:
		var payload models.NotePayload
		if err := json.Unmarshal(change.Data, &payload); err != nil || payload.ID == "" {
			log.Warn().Err(err).Str("func", "clientSyncEngine.applyNoteChange").Msg("skipping undecodable note change")
			return false, nil
		}

		existing, err := e.notes.GetNote(ctx, payload.ID)
		found := err == nil
		if err != nil && !errors.Is(err, store.ErrNoteNotFound) {
			return false, fmt.Errorf("get note %s: %w", payload.ID, err)
		}
		if found && existing.SyncStatus == models.SyncStatusPending {
			log.Debug().Str("func", "clientSyncEngine.applyNoteChange").
				Str("note_id", payload.ID).
				Msg("local note pending, remote change skipped")
			return false, nil
		}

		note := remoteNote(existing, found, payload, e.clock())
		if err = e.notes.SaveNote(ctx, note); err != nil {
			return false, fmt.Errorf("save remote note %s: %w", note.ID, err)
		}

		var oldTags, newTags []string
		if found && !existing.IsDeleted() {
			oldTags = existing.Tags
		}
		if !note.IsDeleted() {
			newTags = note.Tags
		}
		if err = e.tags.apply(ctx, oldTags, newTags, e.clock()); err != nil {
			return false, err
		}
		return true, nil
	}

	log.Warn().Str("func", "clientSyncEngine.applyNoteChange").Str("operation", string(change.Operation)).Msg("unknown operation")
	return false, nil
}

func (e *clientSyncEngine) applyTaskChange(ctx context.Context, change models.EntityChange) (bool, error) {
	log := logger.FromContext(ctx)

	switch change.Operation {
	case models.OperationDelete:
		existing, err := e.tasks.GetTask(ctx, change.ID)
		if errors.Is(err, store.ErrTaskNotFound) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("get task %s: %w", change.ID, err)
		}

		wasLive := !existing.IsDeleted()
		deletedAt := e.remoteTime(change.DeletedAt)
		existing.DeletedAt = &deletedAt
		existing.SyncStatus = models.SyncStatusSynced
		if err = e.tasks.SaveTask(ctx, existing); err != nil {
			return false, fmt.Errorf("tombstone task %s: %w", change.ID, err)
		}
		if wasLive {
			if err = e.tags.apply(ctx, existing.Tags, nil, e.clock()); err != nil {
				return false, err
			}
		}
		return true, nil

	case models.OperationUpsert:
		var payload models.TaskPayload
		if err := json.Unmarshal(change.Data, &payload); err != nil || payload.ID == "" {
			log.Warn().Err(err).Str("func", "clientSyncEngine.applyTaskChange").Msg("skipping undecodable task change")
			return false, nil
		}
		// tasks without a note belong to the standalone tasks surface
		if payload.NoteID == "" {
			return false, nil
		}

		existing, err := e.tasks.GetTask(ctx, payload.ID)
		if errors.Is(err, store.ErrTaskNotFound) {
			// checklist tasks are only created from local note content
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("get task %s: %w", payload.ID, err)
		}
		if existing.SyncStatus == models.SyncStatusPending {
			log.Debug().Str("func", "clientSyncEngine.applyTaskChange").
				Str("task_id", payload.ID).
				Msg("local task pending, remote change skipped")
			return false, nil
		}

		return true, e.applyRemoteTask(ctx, existing, payload)
	}

	log.Warn().Str("func", "clientSyncEngine.applyTaskChange").Str("operation", string(change.Operation)).Msg("unknown operation")
	return false, nil
}

func (e *clientSyncEngine) applyRemoteTask(ctx context.Context, task models.Task, p models.TaskPayload) error {
	updatedAt := e.remoteTime(&p.UpdatedAt)
	titleChanged := p.Title != nil && *p.Title != task.Title
	completedChanged := p.Completed != nil && *p.Completed != task.Completed
	oldTags := task.Tags

	if p.Title != nil {
		task.Title = *p.Title
	}
	switch {
	case p.DisplayTitle != nil:
		task.DisplayTitle = *p.DisplayTitle
	case titleChanged:
		task.DisplayTitle, task.DueDate = content.ParseDueDate(task.Title, updatedAt)
	}
	if p.Completed != nil {
		task.Completed = *p.Completed
	}
	if p.Tags != nil {
		task.Tags = p.Tags
	}
	if p.DueDate != nil {
		due := p.DueDate.UTC()
		task.DueDate = &due
	}
	markTaskSynced(&task, updatedAt)

	if err := e.tasks.SaveTask(ctx, task); err != nil {
		return fmt.Errorf("save remote task %s: %w", task.ID, err)
	}
	if !task.IsDeleted() {
		if err := e.tags.apply(ctx, oldTags, task.Tags, e.clock()); err != nil {
			return err
		}
	}

	if (titleChanged || completedChanged) && task.NoteID != "" && task.BlockID != "" {
		return e.patchNoteChecklist(ctx, task, content.TaskPatch{Completed: p.Completed, Title: p.Title}, updatedAt)
	}
	return nil
}

// patchNoteChecklist mirrors a remote task edit into the checklist node of
// the owning note. The note is written synced unless it holds unpushed local
// edits, in which case it stays pending and carries the patch along.
func (e *clientSyncEngine) patchNoteChecklist(ctx context.Context, task models.Task, patch content.TaskPatch, updatedAt time.Time) error {
	log := logger.FromContext(ctx)

	note, err := e.notes.GetNote(ctx, task.NoteID)
	if errors.Is(err, store.ErrNoteNotFound) {
		log.Debug().Str("func", "clientSyncEngine.patchNoteChecklist").Str("note_id", task.NoteID).Msg("owning note not found")
		return nil
	}
	if err != nil {
		return fmt.Errorf("get note %s: %w", task.NoteID, err)
	}

	patched, found := content.PatchTask(note.Content, task.BlockID, patch)
	if !found {
		log.Debug().Str("func", "clientSyncEngine.patchNoteChecklist").
			Str("note_id", task.NoteID).
			Str("block_id", task.BlockID).
			Msg("checklist node not found")
		return nil
	}

	oldTags := note.Tags
	note.Content = patched
	note.PlainText = content.PlainText(patched)
	note.Tags = content.ExtractTags(note.PlainText)
	if note.SyncStatus != models.SyncStatusPending {
		markNoteSynced(&note, updatedAt)
	}

	if err = e.notes.SaveNote(ctx, note); err != nil {
		return fmt.Errorf("save patched note %s: %w", note.ID, err)
	}
	if !note.IsDeleted() {
		return e.tags.apply(ctx, oldTags, note.Tags, e.clock())
	}
	return nil
}

// remoteTime returns t in UTC, or now when the server sent none.
func (e *clientSyncEngine) remoteTime(t *time.Time) time.Time {
	if t == nil || t.IsZero() {
		return e.clock()
	}
	return t.UTC()
}

// remoteNote builds the local copy of a remote note upsert. Absent payload
// fields keep the existing local values; a new note gets defaults.
func remoteNote(existing models.Note, found bool, p models.NotePayload, now time.Time) models.Note {
	updatedAt := now
	if !p.UpdatedAt.IsZero() {
		updatedAt = p.UpdatedAt.UTC()
	}

	note := existing
	if !found {
		note = models.Note{
			ID:           p.ID,
			Title:        content.UntitledNote,
			Content:      []models.Block{},
			Tags:         []string{},
			CreatedAt:    now,
			LastOpenedAt: now,
		}
		if p.CreatedAt != nil && !p.CreatedAt.IsZero() {
			note.CreatedAt = p.CreatedAt.UTC()
		}
	}

	if p.Title != nil && *p.Title != "" {
		note.Title = *p.Title
	}
	if p.Content != nil {
		note.Content = p.Content
		note.PlainText = content.PlainText(p.Content)
	}
	if p.Tags != nil {
		note.Tags = p.Tags
	}
	if p.Pinned != nil {
		note.Pinned = *p.Pinned
	}
	markNoteSynced(&note, updatedAt)

	return note
}
