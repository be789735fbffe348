package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/models"
)

type localTagRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalTagRepository(db *DB, logger *logger.Logger) LocalTagRepository {
	return &localTagRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localTagRepository) GetTag(ctx context.Context, name string) (models.Tag, error) {
	log := logger.FromContext(ctx)

	var tag models.Tag
	err := l.DB.QueryRowContext(ctx, getTag, name).Scan(&tag.Name, &tag.UsageCount, &tag.LastUsedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tag{}, ErrTagNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localTagRepository.GetTag").
			Str("tag", name).
			Msg("failed to query tag")
		return models.Tag{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	tag.LastUsedAt = tag.LastUsedAt.UTC()
	return tag, nil
}

func (l *localTagRepository) SaveTag(ctx context.Context, tag models.Tag) error {
	log := logger.FromContext(ctx)

	if _, err := l.execRetrying(ctx, saveTag, tag.Name, tag.UsageCount, dbTime(tag.LastUsedAt)); err != nil {
		log.Err(err).
			Str("func", "localTagRepository.SaveTag").
			Str("tag", tag.Name).
			Msg("failed to upsert tag")
		return fmt.Errorf("%w: save tag: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (l *localTagRepository) DeleteTag(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	if _, err := l.execRetrying(ctx, deleteTag, name); err != nil {
		log.Err(err).
			Str("func", "localTagRepository.DeleteTag").
			Str("tag", name).
			Msg("failed to delete tag")
		return fmt.Errorf("%w: delete tag: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (l *localTagRepository) ListTags(ctx context.Context) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, listTags)
	if err != nil {
		log.Err(err).Str("func", "localTagRepository.ListTags").Msg("failed to query tags")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make([]models.Tag, 0)
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.Name, &tag.UsageCount, &tag.LastUsedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tag.LastUsedAt = tag.LastUsedAt.UTC()
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return tags, nil
}
