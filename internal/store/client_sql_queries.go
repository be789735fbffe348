// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

var noteColumns = []string{
	"id",
	"title",
	"content",
	"plain_text",
	"tags",
	"pinned",
	"created_at",
	"updated_at",
	"last_opened_at",
	"deleted_at",
	"sync_status",
	"local_updated_at",
}

var taskColumns = []string{
	"id",
	"title",
	"display_title",
	"completed",
	"note_id",
	"block_id",
	"tags",
	"due_date",
	"created_at",
	"updated_at",
	"deleted_at",
	"app_type",
	"sync_status",
	"local_updated_at",
}

const (
	saveNote = `
		INSERT INTO notes (
			id,
			title,
			content,
			plain_text,
			tags,
			pinned,
			created_at,
			updated_at,
			last_opened_at,
			deleted_at,
			sync_status,
			local_updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			plain_text = excluded.plain_text,
			tags = excluded.tags,
			pinned = excluded.pinned,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			last_opened_at = excluded.last_opened_at,
			deleted_at = excluded.deleted_at,
			sync_status = excluded.sync_status,
			local_updated_at = excluded.local_updated_at;`

	markNoteSyncedIfUnchanged = `
		UPDATE notes
		SET sync_status = 'synced'
		WHERE id = ? AND local_updated_at = ?;`

	saveTask = `
		INSERT INTO tasks (
			id,
			title,
			display_title,
			completed,
			note_id,
			block_id,
			tags,
			due_date,
			created_at,
			updated_at,
			deleted_at,
			app_type,
			sync_status,
			local_updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			display_title = excluded.display_title,
			completed = excluded.completed,
			note_id = excluded.note_id,
			block_id = excluded.block_id,
			tags = excluded.tags,
			due_date = excluded.due_date,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			deleted_at = excluded.deleted_at,
			app_type = excluded.app_type,
			sync_status = excluded.sync_status,
			local_updated_at = excluded.local_updated_at;`

	markTaskSyncedIfUnchanged = `
		UPDATE tasks
		SET sync_status = 'synced'
		WHERE id = ? AND local_updated_at = ?;`

	getTag = `
		SELECT name, usage_count, last_used_at
		FROM tags
		WHERE name = ?;`

	saveTag = `
		INSERT INTO tags (name, usage_count, last_used_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			usage_count = excluded.usage_count,
			last_used_at = excluded.last_used_at;`

	deleteTag = `DELETE FROM tags WHERE name = ?;`

	listTags = `
		SELECT name, usage_count, last_used_at
		FROM tags
		ORDER BY usage_count DESC, name ASC;`

	getSyncMeta = `SELECT value FROM sync_meta WHERE key = ?;`

	setSyncMeta = `
		INSERT INTO sync_meta (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;`

	startOperation = `
		INSERT INTO operation_log (kind, entity_ids, idempotency_key, started_at)
		VALUES (?, ?, ?, ?);`

	completeOperation = `
		UPDATE operation_log
		SET completed_at = ?
		WHERE id = ? AND completed_at IS NULL;`

	listIncompleteOperations = `
		SELECT id, kind, entity_ids, idempotency_key, started_at, completed_at
		FROM operation_log
		WHERE completed_at IS NULL
		ORDER BY id ASC;`

	pruneOperations = `
		DELETE FROM operation_log
		WHERE completed_at IS NOT NULL
		AND id NOT IN (
			SELECT id FROM operation_log
			WHERE completed_at IS NOT NULL
			ORDER BY id DESC
			LIMIT ?
		);`
)

// buildSelectNotes builds a SELECT over notes filtered by where (nil means
// all rows).
func buildSelectNotes(where sq.Sqlizer, orderBy ...string) (string, []any, error) {
	qb := sq.Select(noteColumns...).From("notes").PlaceholderFormat(sq.Question)
	if where != nil {
		qb = qb.Where(where)
	}
	if len(orderBy) > 0 {
		qb = qb.OrderBy(orderBy...)
	}
	return qb.ToSql()
}

// buildSelectTasks builds a SELECT over tasks filtered by where.
func buildSelectTasks(where sq.Sqlizer, orderBy ...string) (string, []any, error) {
	qb := sq.Select(taskColumns...).From("tasks").PlaceholderFormat(sq.Question)
	if where != nil {
		qb = qb.Where(where)
	}
	if len(orderBy) > 0 {
		qb = qb.OrderBy(orderBy...)
	}
	return qb.ToSql()
}

// buildSetSyncStatus builds an UPDATE of sync_status for the given ids.
func buildSetSyncStatus(table, status string, ids []string) (string, []any, error) {
	return sq.Update(table).
		Set("sync_status", status).
		Where(sq.Eq{"id": ids}).
		PlaceholderFormat(sq.Question).
		ToSql()
}

// buildDeleteByIDs builds a physical DELETE for the given ids.
func buildDeleteByIDs(table string, ids []string) (string, []any, error) {
	return sq.Delete(table).
		Where(sq.Eq{"id": ids}).
		PlaceholderFormat(sq.Question).
		ToSql()
}

// buildDeleteSyncMeta builds a DELETE of the given meta keys.
func buildDeleteSyncMeta(keys []string) (string, []any, error) {
	return sq.Delete("sync_meta").
		Where(sq.Eq{"key": keys}).
		PlaceholderFormat(sq.Question).
		ToSql()
}
