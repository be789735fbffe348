package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/notesync/models"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// dbTime normalises timestamps to UTC so stored values compare and order
// consistently as text.
func dbTime(t time.Time) time.Time {
	return t.UTC()
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil || t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time.UTC()
	return &t
}

func encodeJSONColumn(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return string(b), nil
}

func decodeJSONColumn(raw string, v any) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return nil
}

func noteArgs(note models.Note) ([]any, error) {
	content := note.Content
	if content == nil {
		content = []models.Block{}
	}
	contentJSON, err := encodeJSONColumn(content)
	if err != nil {
		return nil, err
	}

	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := encodeJSONColumn(tags)
	if err != nil {
		return nil, err
	}

	return []any{
		note.ID,
		note.Title,
		contentJSON,
		note.PlainText,
		tagsJSON,
		note.Pinned,
		dbTime(note.CreatedAt),
		dbTime(note.UpdatedAt),
		dbTime(note.LastOpenedAt),
		nullTime(note.DeletedAt),
		string(note.SyncStatus),
		dbTime(note.LocalUpdatedAt),
	}, nil
}

func scanNote(row rowScanner) (models.Note, error) {
	var (
		note        models.Note
		contentJSON string
		tagsJSON    string
		deletedAt   sql.NullTime
		syncStatus  string
	)

	if err := row.Scan(
		&note.ID,
		&note.Title,
		&contentJSON,
		&note.PlainText,
		&tagsJSON,
		&note.Pinned,
		&note.CreatedAt,
		&note.UpdatedAt,
		&note.LastOpenedAt,
		&deletedAt,
		&syncStatus,
		&note.LocalUpdatedAt,
	); err != nil {
		return models.Note{}, err
	}

	if err := decodeJSONColumn(contentJSON, &note.Content); err != nil {
		return models.Note{}, err
	}
	if err := decodeJSONColumn(tagsJSON, &note.Tags); err != nil {
		return models.Note{}, err
	}
	note.DeletedAt = timePtr(deletedAt)
	note.SyncStatus = models.SyncStatus(syncStatus)
	note.CreatedAt = note.CreatedAt.UTC()
	note.UpdatedAt = note.UpdatedAt.UTC()
	note.LastOpenedAt = note.LastOpenedAt.UTC()
	note.LocalUpdatedAt = note.LocalUpdatedAt.UTC()

	return note, nil
}

func taskArgs(task models.Task) ([]any, error) {
	tags := task.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := encodeJSONColumn(tags)
	if err != nil {
		return nil, err
	}

	appType := task.AppType
	if appType == "" {
		appType = models.AppTypeNotes
	}

	return []any{
		task.ID,
		task.Title,
		task.DisplayTitle,
		task.Completed,
		task.NoteID,
		task.BlockID,
		tagsJSON,
		nullTime(task.DueDate),
		dbTime(task.CreatedAt),
		dbTime(task.UpdatedAt),
		nullTime(task.DeletedAt),
		string(appType),
		string(task.SyncStatus),
		dbTime(task.LocalUpdatedAt),
	}, nil
}

func scanTask(row rowScanner) (models.Task, error) {
	var (
		task       models.Task
		tagsJSON   string
		dueDate    sql.NullTime
		deletedAt  sql.NullTime
		appType    string
		syncStatus string
	)

	if err := row.Scan(
		&task.ID,
		&task.Title,
		&task.DisplayTitle,
		&task.Completed,
		&task.NoteID,
		&task.BlockID,
		&tagsJSON,
		&dueDate,
		&task.CreatedAt,
		&task.UpdatedAt,
		&deletedAt,
		&appType,
		&syncStatus,
		&task.LocalUpdatedAt,
	); err != nil {
		return models.Task{}, err
	}

	if err := decodeJSONColumn(tagsJSON, &task.Tags); err != nil {
		return models.Task{}, err
	}
	task.DueDate = timePtr(dueDate)
	task.DeletedAt = timePtr(deletedAt)
	task.AppType = models.AppType(appType)
	task.SyncStatus = models.SyncStatus(syncStatus)
	task.CreatedAt = task.CreatedAt.UTC()
	task.UpdatedAt = task.UpdatedAt.UTC()
	task.LocalUpdatedAt = task.LocalUpdatedAt.UTC()

	return task, nil
}
