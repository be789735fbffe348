package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/models"
)

type localTaskRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalTaskRepository(db *DB, logger *logger.Logger) LocalTaskRepository {
	return &localTaskRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localTaskRepository) SaveTask(ctx context.Context, tasks ...models.Task) error {
	log := logger.FromContext(ctx)

	for _, task := range tasks {
		args, err := taskArgs(task)
		if err != nil {
			log.Err(err).
				Str("func", "localTaskRepository.SaveTask").
				Str("task_id", task.ID).
				Msg("failed to encode task columns")
			return err
		}

		if _, err = l.execRetrying(ctx, saveTask, args...); err != nil {
			log.Err(err).
				Str("func", "localTaskRepository.SaveTask").
				Str("task_id", task.ID).
				Str("note_id", task.NoteID).
				Msg("failed to execute upsert for task")
			return fmt.Errorf("%w: save task (id=%s): %w", ErrExecutingStatement, task.ID, err)
		}
	}

	return nil
}

func (l *localTaskRepository) GetTask(ctx context.Context, id string) (models.Task, error) {
	tasks, err := l.selectTasks(ctx, "localTaskRepository.GetTask", sq.Eq{"id": id})
	if err != nil {
		return models.Task{}, err
	}
	if len(tasks) == 0 {
		return models.Task{}, ErrTaskNotFound
	}
	return tasks[0], nil
}

func (l *localTaskRepository) DeleteTask(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteByIDs("tasks", ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.execRetrying(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localTaskRepository.DeleteTask").
			Strs("task_ids", ids).
			Msg("failed to delete tasks")
		return fmt.Errorf("%w: delete tasks: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localTaskRepository) ListTasks(ctx context.Context) ([]models.Task, error) {
	return l.selectTasks(ctx, "localTaskRepository.ListTasks",
		sq.Eq{"deleted_at": nil}, "created_at ASC", "id ASC")
}

func (l *localTaskRepository) ListTasksByNote(ctx context.Context, noteID string) ([]models.Task, error) {
	return l.selectTasks(ctx, "localTaskRepository.ListTasksByNote",
		sq.Eq{"note_id": noteID, "deleted_at": nil}, "created_at ASC", "id ASC")
}

func (l *localTaskRepository) ListTasksBySyncStatus(ctx context.Context, status models.SyncStatus) ([]models.Task, error) {
	return l.selectTasks(ctx, "localTaskRepository.ListTasksBySyncStatus",
		sq.Eq{"sync_status": string(status)}, "local_updated_at ASC", "id ASC")
}

func (l *localTaskRepository) ListDeletedTasks(ctx context.Context, status models.SyncStatus) ([]models.Task, error) {
	return l.selectTasks(ctx, "localTaskRepository.ListDeletedTasks",
		sq.And{sq.NotEq{"deleted_at": nil}, sq.Eq{"sync_status": string(status)}}, "id ASC")
}

func (l *localTaskRepository) SetTasksSyncStatus(ctx context.Context, status models.SyncStatus, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildSetSyncStatus("tasks", string(status), ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.execRetrying(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localTaskRepository.SetTasksSyncStatus").
			Str("status", string(status)).
			Strs("task_ids", ids).
			Msg("failed to update tasks sync status")
		return fmt.Errorf("%w: set tasks sync status: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localTaskRepository) MarkTaskSynced(ctx context.Context, id string, localUpdatedAt time.Time) (bool, error) {
	log := logger.FromContext(ctx)

	res, err := l.execRetrying(ctx, markTaskSyncedIfUnchanged, id, dbTime(localUpdatedAt))
	if err != nil {
		log.Err(err).
			Str("func", "localTaskRepository.MarkTaskSynced").
			Str("task_id", id).
			Msg("failed to mark task synced")
		return false, fmt.Errorf("%w: mark task synced: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: mark task synced: %w", ErrExecutingStatement, err)
	}
	return affected > 0, nil
}

func (l *localTaskRepository) selectTasks(ctx context.Context, funcName string, where sq.Sqlizer, orderBy ...string) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTasks(where, orderBy...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating task rows")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return tasks, nil
}
