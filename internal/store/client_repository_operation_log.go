package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/models"
)

type localOperationLogRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalOperationLogRepository(db *DB, logger *logger.Logger) LocalOperationLogRepository {
	return &localOperationLogRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localOperationLogRepository) Start(ctx context.Context, record models.OperationRecord) (int64, error) {
	log := logger.FromContext(ctx)

	ids := record.EntityIDs
	if ids == nil {
		ids = []string{}
	}
	idsJSON, err := encodeJSONColumn(ids)
	if err != nil {
		return 0, err
	}

	res, err := l.execRetrying(ctx, startOperation, record.Kind, idsJSON, record.IdempotencyKey, dbTime(record.StartedAt))
	if err != nil {
		log.Err(err).
			Str("func", "localOperationLogRepository.Start").
			Str("idempotency_key", record.IdempotencyKey).
			Msg("failed to write operation record")
		return 0, fmt.Errorf("%w: start operation: %w", ErrExecutingStatement, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: start operation: %w", ErrExecutingStatement, err)
	}
	return id, nil
}

func (l *localOperationLogRepository) Complete(ctx context.Context, id int64, at time.Time) error {
	log := logger.FromContext(ctx)

	res, err := l.execRetrying(ctx, completeOperation, dbTime(at), id)
	if err != nil {
		log.Err(err).
			Str("func", "localOperationLogRepository.Complete").
			Int64("operation_id", id).
			Msg("failed to complete operation record")
		return fmt.Errorf("%w: complete operation: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: complete operation: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrOperationNotFound
	}
	return nil
}

func (l *localOperationLogRepository) ListIncomplete(ctx context.Context) ([]models.OperationRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, listIncompleteOperations)
	if err != nil {
		log.Err(err).Str("func", "localOperationLogRepository.ListIncomplete").Msg("failed to query operation log")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.OperationRecord, 0)
	for rows.Next() {
		var (
			record      models.OperationRecord
			idsJSON     string
			completedAt sql.NullTime
		)
		if err := rows.Scan(&record.ID, &record.Kind, &idsJSON, &record.IdempotencyKey, &record.StartedAt, &completedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if err := decodeJSONColumn(idsJSON, &record.EntityIDs); err != nil {
			return nil, err
		}
		record.StartedAt = record.StartedAt.UTC()
		record.CompletedAt = timePtr(completedAt)
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return records, nil
}

func (l *localOperationLogRepository) Prune(ctx context.Context, keep int) (int64, error) {
	log := logger.FromContext(ctx)

	if keep < 0 {
		keep = 0
	}

	res, err := l.execRetrying(ctx, pruneOperations, keep)
	if err != nil {
		log.Err(err).
			Str("func", "localOperationLogRepository.Prune").
			Int("keep", keep).
			Msg("failed to prune operation log")
		return 0, fmt.Errorf("%w: prune operations: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}
