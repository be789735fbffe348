package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/store"
	"github.com/MKhiriev/notesync/models"
)

// completedOperationsKept is how many closed records stay in the ledger.
const completedOperationsKept = 50

type clientOperationLog struct {
	repo  store.LocalOperationLogRepository
	keep  int
	clock func() time.Time

	mu      sync.Mutex
	current int64
}

func NewClientOperationLog(repo store.LocalOperationLogRepository) ClientOperationLog {
	return &clientOperationLog{
		repo:  repo,
		keep:  completedOperationsKept,
		clock: utcNow,
	}
}

// Start implements ClientOperationLog. A record still open from an earlier
// failed push of this process is closed first; its entities are pending and
// belong to the new batch as well.
func (o *clientOperationLog) Start(ctx context.Context, kind string, entityIDs []string, idempotencyKey string) (int64, error) {
	log := logger.FromContext(ctx)

	o.mu.Lock()
	defer o.mu.Unlock()

	now := o.clock()
	if o.current != 0 {
		if err := o.repo.Complete(ctx, o.current, now); err != nil {
			log.Warn().Err(err).
				Str("func", "clientOperationLog.Start").
				Int64("operation_id", o.current).
				Msg("failed to close superseded operation")
		}
		o.current = 0
	}

	id, err := o.repo.Start(ctx, models.OperationRecord{
		Kind:           kind,
		EntityIDs:      entityIDs,
		IdempotencyKey: idempotencyKey,
		StartedAt:      now,
	})
	if err != nil {
		log.Err(err).Str("func", "clientOperationLog.Start").Str("kind", kind).Msg("failed to record operation start")
		return 0, fmt.Errorf("start operation: %w", err)
	}

	o.current = id
	return id, nil
}

func (o *clientOperationLog) Complete(ctx context.Context) error {
	log := logger.FromContext(ctx)

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current == 0 {
		return ErrNoOpenOperation
	}
	if err := o.repo.Complete(ctx, o.current, o.clock()); err != nil {
		log.Err(err).Str("func", "clientOperationLog.Complete").Int64("operation_id", o.current).Msg("failed to complete operation")
		return fmt.Errorf("complete operation %d: %w", o.current, err)
	}
	o.current = 0

	if _, err := o.repo.Prune(ctx, o.keep); err != nil {
		log.Warn().Err(err).Str("func", "clientOperationLog.Complete").Msg("failed to prune operation log")
	}
	return nil
}

func (o *clientOperationLog) Recover(ctx context.Context) ([]models.OperationRecord, error) {
	log := logger.FromContext(ctx)

	o.mu.Lock()
	defer o.mu.Unlock()

	open, err := o.repo.ListIncomplete(ctx)
	if err != nil {
		return nil, fmt.Errorf("list incomplete operations: %w", err)
	}

	now := o.clock()
	for _, rec := range open {
		log.Warn().
			Str("func", "clientOperationLog.Recover").
			Int64("operation_id", rec.ID).
			Str("kind", rec.Kind).
			Str("idempotency_key", rec.IdempotencyKey).
			Strs("entity_ids", rec.EntityIDs).
			Time("started_at", rec.StartedAt).
			Msg("operation interrupted by previous run, superseded by next sync")

		if err = o.repo.Complete(ctx, rec.ID, now); err != nil {
			return nil, fmt.Errorf("close interrupted operation %d: %w", rec.ID, err)
		}
		if rec.ID == o.current {
			o.current = 0
		}
	}

	return open, nil
}
