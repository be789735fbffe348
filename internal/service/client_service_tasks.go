package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/notesync/internal/content"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/store"
	"github.com/MKhiriev/notesync/models"
)

type clientTaskService struct {
	notes store.LocalNoteRepository
	tasks store.LocalTaskRepository
	tags  *tagAggregate

	clock func() time.Time
}

func NewClientTaskService(storages *store.ClientStorages) ClientTaskService {
	return &clientTaskService{
		notes: storages.NoteRepository,
		tasks: storages.TaskRepository,
		tags:  newTagAggregate(storages.TagRepository),
		clock: utcNow,
	}
}

func (s *clientTaskService) ToggleTask(ctx context.Context, id string) (models.Task, error) {
	log := logger.FromContext(ctx)

	task, err := s.tasks.GetTask(ctx, id)
	if err != nil {
		return models.Task{}, fmt.Errorf("get task %s: %w", id, err)
	}
	if task.IsDeleted() {
		return models.Task{}, fmt.Errorf("task %s: %w", id, ErrTaskDeleted)
	}

	now := s.clock()
	task.Completed = !task.Completed
	markTaskDirty(&task, now)
	if err = s.tasks.SaveTask(ctx, task); err != nil {
		log.Err(err).Str("func", "clientTaskService.ToggleTask").Str("task_id", id).Msg("failed to save task")
		return models.Task{}, fmt.Errorf("save task: %w", err)
	}

	if task.NoteID == "" || task.BlockID == "" {
		return task, nil
	}

	note, err := s.notes.GetNote(ctx, task.NoteID)
	if errors.Is(err, store.ErrNoteNotFound) {
		log.Warn().Str("func", "clientTaskService.ToggleTask").
			Str("task_id", id).
			Str("note_id", task.NoteID).
			Msg("owning note not found, checklist not patched")
		return task, nil
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("get note %s: %w", task.NoteID, err)
	}

	completed := task.Completed
	patched, found := content.PatchTask(note.Content, task.BlockID, content.TaskPatch{Completed: &completed})
	if !found {
		log.Warn().Str("func", "clientTaskService.ToggleTask").
			Str("task_id", id).
			Str("block_id", task.BlockID).
			Msg("checklist node not found in note")
		return task, nil
	}

	note.Content = patched
	markNoteDirty(&note, now)
	if err = s.notes.SaveNote(ctx, note); err != nil {
		return models.Task{}, fmt.Errorf("save note %s: %w", note.ID, err)
	}

	return task, nil
}

func (s *clientTaskService) ListTasks(ctx context.Context, noteID string) ([]models.Task, error) {
	if noteID == "" {
		return s.tasks.ListTasks(ctx)
	}
	return s.tasks.ListTasksByNote(ctx, noteID)
}

// DeleteTask tombstones the task and removes its checklist node from the
// owning note, so the next content edit does not bring it back.
func (s *clientTaskService) DeleteTask(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	task, err := s.tasks.GetTask(ctx, id)
	if err != nil {
		return fmt.Errorf("get task %s: %w", id, err)
	}
	if task.IsDeleted() {
		return nil
	}

	now := s.clock()
	task.DeletedAt = &now
	markTaskDirty(&task, now)
	if err = s.tasks.SaveTask(ctx, task); err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	if err = s.tags.apply(ctx, task.Tags, nil, now); err != nil {
		return err
	}

	if task.NoteID == "" || task.BlockID == "" {
		return nil
	}

	note, err := s.notes.GetNote(ctx, task.NoteID)
	if errors.Is(err, store.ErrNoteNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get note %s: %w", task.NoteID, err)
	}
	if note.IsDeleted() {
		return nil
	}

	blocks, found := content.RemoveTask(note.Content, task.BlockID)
	if !found {
		log.Warn().Str("func", "clientTaskService.DeleteTask").
			Str("task_id", id).
			Str("block_id", task.BlockID).
			Msg("checklist node not found in note")
		return nil
	}

	oldTags := note.Tags
	deriveNoteFields(&note, blocks)
	markNoteDirty(&note, now)
	if err = s.notes.SaveNote(ctx, note); err != nil {
		log.Err(err).Str("func", "clientTaskService.DeleteTask").Str("note_id", note.ID).Msg("failed to save note")
		return fmt.Errorf("save note %s: %w", note.ID, err)
	}
	return s.tags.apply(ctx, oldTags, note.Tags, now)
}
