package service

import (
	"github.com/MKhiriev/notesync/internal/adapter"
	"github.com/MKhiriev/notesync/internal/config"
	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/store"
	"github.com/MKhiriev/notesync/internal/workers"
)

// ClientServices is the set of services the client runtime works with.
// It is built once at startup and passed to whatever needs it.
type ClientServices struct {
	NoteService  ClientNoteService
	TaskService  ClientTaskService
	OperationLog ClientOperationLog
	SyncEngine   ClientSyncEngine
	AuthService  ClientAuthService

	// Workers holds the background workers owned by the services; the host
	// runs them for the lifetime of the process.
	Workers *workers.Workers
}

func NewClientServices(
	storages *store.ClientStorages,
	factory adapter.SyncAPIClientFactory,
	cfg config.ClientConfig,
	logger *logger.Logger,
) *ClientServices {
	opLog := NewClientOperationLog(storages.OperationLogRepository)
	engine := newClientSyncEngine(storages, factory, opLog, cfg, logger)

	return &ClientServices{
		NoteService:  NewClientNoteService(storages),
		TaskService:  NewClientTaskService(storages),
		OperationLog: opLog,
		SyncEngine:   engine,
		AuthService:  NewClientAuthService(storages, engine, factory, logger),
		Workers:      workers.NewWorkers(engine.retries),
	}
}

// Shutdown stops background work. The store is closed by its owner.
func (s *ClientServices) Shutdown() {
	s.SyncEngine.Shutdown()
	s.Workers.Stop()
}
