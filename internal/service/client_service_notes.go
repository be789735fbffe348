// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/notesync/internal/content"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/store"
	"github.com/MKhiriev/notesync/internal/utils"
	"github.com/MKhiriev/notesync/models"
)

// idGenerator produces new entity ids.
type idGenerator interface {
	Generate() string
}

type clientNoteService struct {
	notes store.LocalNoteRepository
	tasks store.LocalTaskRepository
	tags  *tagAggregate

	ids   idGenerator
	clock func() time.Time
}

func NewClientNoteService(storages *store.ClientStorages) ClientNoteService {
	return &clientNoteService{
		notes: storages.NoteRepository,
		tasks: storages.TaskRepository,
		tags:  newTagAggregate(storages.TagRepository),
		ids:   utils.NewIDGenerator(),
		clock: utcNow,
	}
}

func (s *clientNoteService) CreateNote(ctx context.Context, blocks []models.Block) (models.Note, error) {
	log := logger.FromContext(ctx)
	now := s.clock()

	note := models.Note{
		ID:           s.ids.Generate(),
		CreatedAt:    now,
		LastOpenedAt: now,
	}
	deriveNoteFields(&note, blocks)
	markNoteDirty(&note, now)

	if err := s.notes.SaveNote(ctx, note); err != nil {
		log.Err(err).Str("func", "clientNoteService.CreateNote").Msg("failed to save note")
		return models.Note{}, fmt.Errorf("save note: %w", err)
	}
	if err := s.tags.apply(ctx, nil, note.Tags, now); err != nil {
		return models.Note{}, err
	}
	if err := s.reconcileTasks(ctx, note, now); err != nil {
		return models.Note{}, err
	}

	log.Debug().Str("func", "clientNoteService.CreateNote").Str("note_id", note.ID).Msg("note created")
	return note, nil
}

func (s *clientNoteService) UpdateNoteContent(ctx context.Context, id string, blocks []models.Block) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := s.liveNote(ctx, id)
	if err != nil {
		return models.Note{}, err
	}

	now := s.clock()
	oldTags := note.Tags
	deriveNoteFields(&note, blocks)
	markNoteDirty(&note, now)

	if err = s.notes.SaveNote(ctx, note); err != nil {
		log.Err(err).Str("func", "clientNoteService.UpdateNoteContent").Str("note_id", id).Msg("failed to save note")
		return models.Note{}, fmt.Errorf("save note: %w", err)
	}
	if err = s.tags.apply(ctx, oldTags, note.Tags, now); err != nil {
		return models.Note{}, err
	}
	if err = s.reconcileTasks(ctx, note, now); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (s *clientNoteService) SetPinned(ctx context.Context, id string, pinned bool) (models.Note, error) {
	note, err := s.liveNote(ctx, id)
	if err != nil {
		return models.Note{}, err
	}
	if note.Pinned == pinned {
		return note, nil
	}

	note.Pinned = pinned
	markNoteDirty(&note, s.clock())
	if err = s.notes.SaveNote(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("save note: %w", err)
	}
	return note, nil
}

func (s *clientNoteService) MarkOpened(ctx context.Context, id string) error {
	note, err := s.liveNote(ctx, id)
	if err != nil {
		return err
	}

	note.LastOpenedAt = s.clock()
	if err = s.notes.SaveNote(ctx, note); err != nil {
		return fmt.Errorf("save note: %w", err)
	}
	return nil
}

func (s *clientNoteService) DeleteNote(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	note, err := s.notes.GetNote(ctx, id)
	if err != nil {
		return fmt.Errorf("get note %s: %w", id, err)
	}
	if note.IsDeleted() {
		return nil
	}

	now := s.clock()
	note.DeletedAt = &now
	markNoteDirty(&note, now)
	if err = s.notes.SaveNote(ctx, note); err != nil {
		log.Err(err).Str("func", "clientNoteService.DeleteNote").Str("note_id", id).Msg("failed to tombstone note")
		return fmt.Errorf("save note: %w", err)
	}
	if err = s.tags.apply(ctx, note.Tags, nil, now); err != nil {
		return err
	}

	tasks, err := s.tasks.ListTasksByNote(ctx, id)
	if err != nil {
		return fmt.Errorf("list tasks of note %s: %w", id, err)
	}
	for _, task := range tasks {
		if err = s.tombstoneTask(ctx, task, now); err != nil {
			return err
		}
	}

	log.Debug().Str("func", "clientNoteService.DeleteNote").
		Str("note_id", id).
		Int("tasks", len(tasks)).
		Msg("note deleted")
	return nil
}

func (s *clientNoteService) GetNote(ctx context.Context, id string) (models.Note, error) {
	return s.notes.GetNote(ctx, id)
}

func (s *clientNoteService) ListNotes(ctx context.Context) ([]models.Note, error) {
	return s.notes.ListNotes(ctx)
}

func (s *clientNoteService) PurgeDeleted(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	notes, err := s.notes.ListDeletedNotes(ctx, models.SyncStatusSynced)
	if err != nil {
		return 0, fmt.Errorf("list deleted notes: %w", err)
	}
	tasks, err := s.tasks.ListDeletedTasks(ctx, models.SyncStatusSynced)
	if err != nil {
		return 0, fmt.Errorf("list deleted tasks: %w", err)
	}

	noteIDs := make([]string, 0, len(notes))
	for _, n := range notes {
		noteIDs = append(noteIDs, n.ID)
	}
	taskIDs := make([]string, 0, len(tasks))
	for _, t := range tasks {
		taskIDs = append(taskIDs, t.ID)
	}

	if err = s.tasks.DeleteTask(ctx, taskIDs...); err != nil {
		return 0, fmt.Errorf("purge tasks: %w", err)
	}
	if err = s.notes.DeleteNote(ctx, noteIDs...); err != nil {
		return 0, fmt.Errorf("purge notes: %w", err)
	}

	purged := len(noteIDs) + len(taskIDs)
	if purged > 0 {
		log.Info().Str("func", "clientNoteService.PurgeDeleted").
			Int("notes", len(noteIDs)).
			Int("tasks", len(taskIDs)).
			Msg("acknowledged tombstones purged")
	}
	return purged, nil
}

func (s *clientNoteService) liveNote(ctx context.Context, id string) (models.Note, error) {
	note, err := s.notes.GetNote(ctx, id)
	if err != nil {
		return models.Note{}, fmt.Errorf("get note %s: %w", id, err)
	}
	if note.IsDeleted() {
		return models.Note{}, fmt.Errorf("note %s: %w", id, ErrNoteDeleted)
	}
	return note, nil
}

// reconcileTasks brings the note's tasks in line with its checklist nodes.
func (s *clientNoteService) reconcileTasks(ctx context.Context, note models.Note, now time.Time) error {
	existing, err := s.tasks.ListTasksByNote(ctx, note.ID)
	if err != nil {
		return fmt.Errorf("list tasks of note %s: %w", note.ID, err)
	}

	byBlock := make(map[string]models.Task, len(existing))
	for _, t := range existing {
		byBlock[t.BlockID] = t
	}

	for _, extracted := range content.ExtractTasks(note.Content) {
		displayTitle, due := content.ParseDueDate(extracted.Title, now)

		task, ok := byBlock[extracted.BlockID]
		if ok {
			delete(byBlock, extracted.BlockID)
			if task.Title == extracted.Title &&
				task.Completed == extracted.Completed &&
				slices.Equal(task.Tags, extracted.Tags) {
				continue
			}
		} else {
			task = models.Task{
				ID:        s.ids.Generate(),
				NoteID:    note.ID,
				BlockID:   extracted.BlockID,
				CreatedAt: now,
				AppType:   models.AppTypeNotes,
			}
		}

		oldTags := task.Tags
		task.Title = extracted.Title
		task.DisplayTitle = displayTitle
		task.DueDate = due
		task.Completed = extracted.Completed
		task.Tags = extracted.Tags
		markTaskDirty(&task, now)

		if err = s.tasks.SaveTask(ctx, task); err != nil {
			return fmt.Errorf("save task %s: %w", task.ID, err)
		}
		if err = s.tags.apply(ctx, oldTags, task.Tags, now); err != nil {
			return err
		}
	}

	for _, orphan := range byBlock {
		if err = s.tombstoneTask(ctx, orphan, now); err != nil {
			return err
		}
	}
	return nil
}

func (s *clientNoteService) tombstoneTask(ctx context.Context, task models.Task, now time.Time) error {
	task.DeletedAt = &now
	markTaskDirty(&task, now)
	if err := s.tasks.SaveTask(ctx, task); err != nil {
		return fmt.Errorf("tombstone task %s: %w", task.ID, err)
	}
	return s.tags.apply(ctx, task.Tags, nil, now)
}

// deriveNoteFields sets content and everything computed from it.
func deriveNoteFields(note *models.Note, blocks []models.Block) {
	if blocks == nil {
		blocks = []models.Block{}
	}
	note.Content = blocks
	note.Title = content.ExtractTitle(blocks)
	note.PlainText = content.PlainText(blocks)
	note.Tags = content.ExtractTags(note.PlainText)
}
