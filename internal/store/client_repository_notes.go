package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/models"
)

type localNoteRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalNoteRepository(db *DB, logger *logger.Logger) LocalNoteRepository {
	return &localNoteRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localNoteRepository) SaveNote(ctx context.Context, notes ...models.Note) error {
	log := logger.FromContext(ctx)

	for _, note := range notes {
		args, err := noteArgs(note)
		if err != nil {
			log.Err(err).
				Str("func", "localNoteRepository.SaveNote").
				Str("note_id", note.ID).
				Msg("failed to encode note columns")
			return err
		}

		if _, err = l.execRetrying(ctx, saveNote, args...); err != nil {
			log.Err(err).
				Str("func", "localNoteRepository.SaveNote").
				Str("note_id", note.ID).
				Msg("failed to execute upsert for note")
			return fmt.Errorf("%w: save note (id=%s): %w", ErrExecutingStatement, note.ID, err)
		}
	}

	return nil
}

func (l *localNoteRepository) GetNote(ctx context.Context, id string) (models.Note, error) {
	notes, err := l.GetNotes(ctx, id)
	if err != nil {
		return models.Note{}, err
	}
	if len(notes) == 0 {
		return models.Note{}, ErrNoteNotFound
	}
	return notes[0], nil
}

func (l *localNoteRepository) GetNotes(ctx context.Context, ids ...string) ([]models.Note, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return l.selectNotes(ctx, "localNoteRepository.GetNotes", sq.Eq{"id": ids})
}

func (l *localNoteRepository) DeleteNote(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteByIDs("notes", ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.execRetrying(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localNoteRepository.DeleteNote").
			Strs("note_ids", ids).
			Msg("failed to delete notes")
		return fmt.Errorf("%w: delete notes: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localNoteRepository) ListNotes(ctx context.Context) ([]models.Note, error) {
	return l.selectNotes(ctx, "localNoteRepository.ListNotes",
		sq.Eq{"deleted_at": nil}, "last_opened_at DESC", "id ASC")
}

func (l *localNoteRepository) ListNotesBySyncStatus(ctx context.Context, status models.SyncStatus) ([]models.Note, error) {
	return l.selectNotes(ctx, "localNoteRepository.ListNotesBySyncStatus",
		sq.Eq{"sync_status": string(status)}, "local_updated_at ASC", "id ASC")
}

func (l *localNoteRepository) ListDeletedNotes(ctx context.Context, status models.SyncStatus) ([]models.Note, error) {
	return l.selectNotes(ctx, "localNoteRepository.ListDeletedNotes",
		sq.And{sq.NotEq{"deleted_at": nil}, sq.Eq{"sync_status": string(status)}}, "id ASC")
}

func (l *localNoteRepository) SetNotesSyncStatus(ctx context.Context, status models.SyncStatus, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildSetSyncStatus("notes", string(status), ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.execRetrying(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localNoteRepository.SetNotesSyncStatus").
			Str("status", string(status)).
			Strs("note_ids", ids).
			Msg("failed to update notes sync status")
		return fmt.Errorf("%w: set notes sync status: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localNoteRepository) MarkNoteSynced(ctx context.Context, id string, localUpdatedAt time.Time) (bool, error) {
	log := logger.FromContext(ctx)

	res, err := l.execRetrying(ctx, markNoteSyncedIfUnchanged, id, dbTime(localUpdatedAt))
	if err != nil {
		log.Err(err).
			Str("func", "localNoteRepository.MarkNoteSynced").
			Str("note_id", id).
			Msg("failed to mark note synced")
		return false, fmt.Errorf("%w: mark note synced: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: mark note synced: %w", ErrExecutingStatement, err)
	}
	return affected > 0, nil
}

func (l *localNoteRepository) selectNotes(ctx context.Context, funcName string, where sq.Sqlizer, orderBy ...string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNotes(where, orderBy...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating note rows")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return notes, nil
}
