package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/notesync/internal/adapter"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/models"
)

// push sends every pending note and task in one batch and records the
// server verdict locally.
func (e *clientSyncEngine) push(ctx context.Context, api adapter.SyncAPIClient, clientID string) (int, []models.ConflictInfo, error) {
	log := logger.FromContext(ctx)

	notes, err := e.notes.ListNotesBySyncStatus(ctx, models.SyncStatusPending)
	if err != nil {
		return 0, nil, fmt.Errorf("list pending notes: %w", err)
	}
	allTasks, err := e.tasks.ListTasksBySyncStatus(ctx, models.SyncStatusPending)
	if err != nil {
		return 0, nil, fmt.Errorf("list pending tasks: %w", err)
	}

	tasks := allTasks[:0:0]
	for _, t := range allTasks {
		if t.Syncable() {
			tasks = append(tasks, t)
		}
	}

	if len(notes) == 0 && len(tasks) == 0 {
		return 0, []models.ConflictInfo{}, nil
	}

	changes := make([]models.EntityChange, 0, len(notes)+len(tasks))
	entityIDs := make([]string, 0, len(notes)+len(tasks))
	notesByID := make(map[string]models.Note, len(notes))
	tasksByID := make(map[string]models.Task, len(tasks))

	for _, n := range notes {
		change, err := noteChange(n)
		if err != nil {
			return 0, nil, err
		}
		changes = append(changes, change)
		entityIDs = append(entityIDs, n.ID)
		notesByID[n.ID] = n
	}
	for _, t := range tasks {
		change, err := taskChange(t)
		if err != nil {
			return 0, nil, err
		}
		changes = append(changes, change)
		entityIDs = append(entityIDs, t.ID)
		tasksByID[t.ID] = t
	}

	key := e.idempotencyKey(clientID)
	if _, err = e.opLog.Start(ctx, models.OperationKindPush, entityIDs, key); err != nil {
		return 0, nil, err
	}

	resp, err := api.Push(ctx, models.PushRequest{
		Changes:        changes,
		ClientID:       clientID,
		IdempotencyKey: key,
	})
	if err != nil {
		return 0, nil, err
	}

	for _, id := range resp.Applied {
		var updated bool
		if n, ok := notesByID[id]; ok {
			updated, err = e.notes.MarkNoteSynced(ctx, id, n.LocalUpdatedAt)
		} else if t, ok := tasksByID[id]; ok {
			updated, err = e.tasks.MarkTaskSynced(ctx, id, t.LocalUpdatedAt)
		} else {
			log.Warn().Str("func", "clientSyncEngine.push").Str("entity_id", id).Msg("server applied an id that was not in the batch")
			continue
		}
		if err != nil {
			return 0, nil, fmt.Errorf("mark %s synced: %w", id, err)
		}
		if !updated {
			log.Debug().Str("func", "clientSyncEngine.push").
				Str("entity_id", id).
				Msg("entity edited while pushing, stays pending")
		}
	}

	conflicts := resp.Conflicts
	if conflicts == nil {
		conflicts = []models.ConflictInfo{}
	}
	for _, c := range conflicts {
		_, isTask := tasksByID[c.ID]
		if c.Type == models.EntityTypeTask || (c.Type == "" && isTask) {
			err = e.tasks.SetTasksSyncStatus(ctx, models.SyncStatusConflict, c.ID)
		} else {
			err = e.notes.SetNotesSyncStatus(ctx, models.SyncStatusConflict, c.ID)
		}
		if err != nil {
			return 0, nil, fmt.Errorf("mark %s conflicted: %w", c.ID, err)
		}
		log.Warn().Str("func", "clientSyncEngine.push").
			Str("entity_id", c.ID).
			Str("reason", c.Reason).
			Msg("server rejected change")
	}

	if err = e.saveCursor(ctx, resp.SyncToken); err != nil {
		return 0, nil, err
	}

	if err = e.opLog.Complete(ctx); err != nil {
		log.Warn().Err(err).Str("func", "clientSyncEngine.push").Msg("operation left open")
	}

	return len(resp.Applied), conflicts, nil
}

func (e *clientSyncEngine) idempotencyKey(clientID string) string {
	return fmt.Sprintf("%s-%d-%s", clientID, e.clock().UnixMilli(), uuid.NewString())
}

// saveCursor stores token as the new sync cursor. Empty tokens are ignored.
func (e *clientSyncEngine) saveCursor(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := e.meta.Set(ctx, models.MetaLastSyncToken, token); err != nil {
		return fmt.Errorf("store sync token: %w", err)
	}
	return nil
}

func noteChange(n models.Note) (models.EntityChange, error) {
	if n.IsDeleted() {
		return models.EntityChange{
			Type:      models.EntityTypeNote,
			Operation: models.OperationDelete,
			ID:        n.ID,
			DeletedAt: n.DeletedAt,
		}, nil
	}

	var title *string
	if n.Title != "" {
		title = &n.Title
	}
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	createdAt := n.CreatedAt
	pinned := n.Pinned

	data, err := json.Marshal(models.NotePayload{
		ID:        n.ID,
		Title:     title,
		Content:   n.Content,
		Tags:      tags,
		Pinned:    &pinned,
		CreatedAt: &createdAt,
		UpdatedAt: n.LocalUpdatedAt,
	})
	if err != nil {
		return models.EntityChange{}, fmt.Errorf("encode note %s: %w", n.ID, err)
	}

	return models.EntityChange{
		Type:      models.EntityTypeNote,
		Operation: models.OperationUpsert,
		Data:      data,
	}, nil
}

func taskChange(t models.Task) (models.EntityChange, error) {
	if t.IsDeleted() {
		return models.EntityChange{
			Type:      models.EntityTypeTask,
			Operation: models.OperationDelete,
			ID:        t.ID,
			DeletedAt: t.DeletedAt,
		}, nil
	}

	var title, displayTitle *string
	if t.Title != "" {
		title = &t.Title
	}
	switch {
	case t.DisplayTitle != "":
		displayTitle = &t.DisplayTitle
	case t.Title != "":
		displayTitle = &t.Title
	}
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	completed := t.Completed
	createdAt := t.CreatedAt

	data, err := json.Marshal(models.TaskPayload{
		ID:           t.ID,
		Title:        title,
		DisplayTitle: displayTitle,
		Tags:         tags,
		DueDate:      t.DueDate,
		Completed:    &completed,
		CreatedAt:    &createdAt,
		UpdatedAt:    t.LocalUpdatedAt,
		NoteID:       t.NoteID,
		BlockID:      t.BlockID,
		AppType:      models.AppTypeNotes,
	})
	if err != nil {
		return models.EntityChange{}, fmt.Errorf("encode task %s: %w", t.ID, err)
	}

	return models.EntityChange{
		Type:      models.EntityTypeTask,
		Operation: models.OperationUpsert,
		Data:      data,
	}, nil
}
