// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/notesync/internal/adapter"
	"github.com/MKhiriev/notesync/internal/config"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/store"
	"github.com/MKhiriev/notesync/internal/utils"
	"github.com/MKhiriev/notesync/internal/workers"
	"github.com/MKhiriev/notesync/models"
)

const clientIDPrefix = "client-"

type clientSyncEngine struct {
	notes   store.LocalNoteRepository
	tasks   store.LocalTaskRepository
	meta    store.LocalSyncMetaRepository
	tags    *tagAggregate
	opLog   ClientOperationLog
	factory adapter.SyncAPIClientFactory
	retries *workers.RetryQueue
	events  *eventBus
	logger  *logger.Logger
	clock   func() time.Time

	mu      sync.Mutex
	api     adapter.SyncAPIClient
	status  models.EngineStatus
	syncing bool
	job     *clientSyncJob

	idMu         sync.Mutex
	clientID     string
	configuredID string
}

// NewClientSyncEngine creates an idle engine. Init must be called before the
// first sync.
func NewClientSyncEngine(
	storages *store.ClientStorages,
	factory adapter.SyncAPIClientFactory,
	opLog ClientOperationLog,
	cfg config.ClientConfig,
	logger *logger.Logger,
) ClientSyncEngine {
	return newClientSyncEngine(storages, factory, opLog, cfg, logger)
}

func newClientSyncEngine(
	storages *store.ClientStorages,
	factory adapter.SyncAPIClientFactory,
	opLog ClientOperationLog,
	cfg config.ClientConfig,
	logger *logger.Logger,
) *clientSyncEngine {
	e := &clientSyncEngine{
		notes:        storages.NoteRepository,
		tasks:        storages.TaskRepository,
		meta:         storages.SyncMetaRepository,
		tags:         newTagAggregate(storages.TagRepository),
		opLog:        opLog,
		factory:      factory,
		events:       newEventBus(),
		logger:       logger,
		clock:        utcNow,
		status:       models.EngineStatusIdle,
		configuredID: cfg.App.ClientID,
	}
	e.retries = workers.NewRetryQueue(e.retrySync, cfg.Workers.RetryBase, cfg.Workers.RetryMaxExponent)

	return e
}

func (e *clientSyncEngine) Init(endpoint string, tokens adapter.TokenProvider) error {
	api, err := e.factory(endpoint, tokens)
	if err != nil {
		e.logger.Err(err).Str("func", "clientSyncEngine.Init").Str("endpoint", endpoint).Msg("failed to create sync client")
		return fmt.Errorf("init sync client: %w", err)
	}

	e.mu.Lock()
	e.api = api
	e.mu.Unlock()

	e.logger.Info().Str("func", "clientSyncEngine.Init").Str("endpoint", endpoint).Msg("sync engine initialized")
	return nil
}

func (e *clientSyncEngine) Reset() {
	e.Stop()
	e.retries.RecordSuccess()

	e.mu.Lock()
	e.api = nil
	e.mu.Unlock()

	e.setStatus(models.EngineStatusIdle)
}

func (e *clientSyncEngine) Start(ctx context.Context, interval time.Duration) {
	e.Stop()
	if interval <= 0 {
		return
	}

	job := NewClientSyncJob(e, interval)
	e.mu.Lock()
	e.job = job
	e.mu.Unlock()

	job.Run(ctx)
}

func (e *clientSyncEngine) Stop() {
	e.mu.Lock()
	job := e.job
	e.job = nil
	e.mu.Unlock()

	if job != nil {
		job.Stop()
	}
}

func (e *clientSyncEngine) SyncNow(ctx context.Context) (models.SyncResult, error) {
	log := logger.FromContext(ctx)

	e.mu.Lock()
	api := e.api
	if api == nil {
		e.mu.Unlock()
		return models.SyncResult{}, ErrEngineNotInitialized
	}
	if e.syncing {
		e.mu.Unlock()
		log.Debug().Str("func", "clientSyncEngine.SyncNow").Msg("sync already running")
		return emptySyncResult(), nil
	}
	e.syncing = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.syncing = false
		e.mu.Unlock()
	}()

	e.setStatus(models.EngineStatusSyncing)

	result, err := e.sync(ctx, api)
	if err != nil {
		e.fail(ctx, err)
		return models.SyncResult{}, err
	}

	e.retries.RecordSuccess()
	e.setStatus(models.EngineStatusIdle)
	e.events.publish(models.SyncEvent{Kind: models.SyncEventSyncCompleted, Result: result})

	log.Info().Str("func", "clientSyncEngine.SyncNow").
		Int("pushed", result.Pushed).
		Int("pulled", result.Pulled).
		Int("conflicts", len(result.Conflicts)).
		Msg("sync complete")
	return result, nil
}

func (e *clientSyncEngine) sync(ctx context.Context, api adapter.SyncAPIClient) (models.SyncResult, error) {
	clientID, err := e.ClientID(ctx)
	if err != nil {
		return models.SyncResult{}, err
	}

	pushed, conflicts, err := e.push(ctx, api, clientID)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("push: %w", err)
	}

	pulled, err := e.pull(ctx, api, clientID)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("pull: %w", err)
	}

	return models.SyncResult{Pushed: pushed, Pulled: pulled, Conflicts: conflicts}, nil
}

// fail moves the engine into the failure state matching err. Auth failures
// are handed to the host and never retried here.
func (e *clientSyncEngine) fail(ctx context.Context, err error) {
	log := logger.FromContext(ctx)
	class := classifySyncError(err)

	e.setStatus(class.status())

	var delay time.Duration
	if class.retryable() {
		delay = e.retries.RecordFailure()
	} else {
		e.events.publish(models.SyncEvent{Kind: models.SyncEventAuthError, Err: err})
	}

	log.Err(err).Str("func", "clientSyncEngine.SyncNow").
		Str("class", class.String()).
		Dur("retry_in", delay).
		Msg("sync failed")
}

func (e *clientSyncEngine) retrySync(ctx context.Context) {
	if _, err := e.SyncNow(ctx); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "clientSyncEngine.retrySync").Msg("retry failed")
	}
}

func (e *clientSyncEngine) Status() models.EngineStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

func (e *clientSyncEngine) setStatus(status models.EngineStatus) {
	e.mu.Lock()
	changed := e.status != status
	e.status = status
	e.mu.Unlock()

	if changed {
		e.events.publish(models.SyncEvent{Kind: models.SyncEventStatusChanged, Status: status})
	}
}

func (e *clientSyncEngine) ClientID(ctx context.Context) (string, error) {
	e.idMu.Lock()
	defer e.idMu.Unlock()

	if e.clientID != "" {
		return e.clientID, nil
	}

	if e.configuredID != "" {
		e.clientID = e.configuredID
		return e.clientID, nil
	}

	id, found, err := e.meta.Get(ctx, models.MetaClientID)
	if err != nil {
		return "", fmt.Errorf("read client id: %w", err)
	}
	if !found || id == "" {
		id = utils.NewIDGenerator().Prefixed(clientIDPrefix)
		if err = e.meta.Set(ctx, models.MetaClientID, id); err != nil {
			return "", fmt.Errorf("store client id: %w", err)
		}
		e.logger.Info().Str("func", "clientSyncEngine.ClientID").Str("client_id", id).Msg("new client id generated")
	}

	e.clientID = id
	return id, nil
}

func (e *clientSyncEngine) Subscribe(buffer int) (<-chan models.SyncEvent, func()) {
	return e.events.subscribe(buffer)
}

func (e *clientSyncEngine) OnStatusChange(fn func(models.EngineStatus)) func() {
	return e.events.listen(models.SyncEventStatusChanged, func(ev models.SyncEvent) { fn(ev.Status) })
}

func (e *clientSyncEngine) OnAuthError(fn func(error)) func() {
	return e.events.listen(models.SyncEventAuthError, func(ev models.SyncEvent) { fn(ev.Err) })
}

func (e *clientSyncEngine) OnSyncComplete(fn func(models.SyncResult)) func() {
	return e.events.listen(models.SyncEventSyncCompleted, func(ev models.SyncEvent) { fn(ev.Result) })
}

func (e *clientSyncEngine) Shutdown() {
	e.Stop()
	e.retries.Stop()
	e.events.close()
}

func emptySyncResult() models.SyncResult {
	return models.SyncResult{Conflicts: []models.ConflictInfo{}}
}
