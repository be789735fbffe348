package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/notesync/internal/logger"
)

type localSyncMetaRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSyncMetaRepository(db *DB, logger *logger.Logger) LocalSyncMetaRepository {
	return &localSyncMetaRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSyncMetaRepository) Get(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	var value string
	err := l.DB.QueryRowContext(ctx, getSyncMeta, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "localSyncMetaRepository.Get").
			Str("key", key).
			Msg("failed to read sync meta")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (l *localSyncMetaRepository) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	if _, err := l.execRetrying(ctx, setSyncMeta, key, value); err != nil {
		log.Err(err).
			Str("func", "localSyncMetaRepository.Set").
			Str("key", key).
			Msg("failed to write sync meta")
		return fmt.Errorf("%w: set sync meta: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (l *localSyncMetaRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSyncMeta(keys)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.execRetrying(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localSyncMetaRepository.Delete").
			Strs("keys", keys).
			Msg("failed to delete sync meta")
		return fmt.Errorf("%w: delete sync meta: %w", ErrExecutingStatement, err)
	}
	return nil
}
