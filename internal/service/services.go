package service

import (
	"github.com/pkostin/fieldsync/internal/adapter"
	"github.com/pkostin/fieldsync/internal/config"
	"github.com/pkostin/fieldsync/internal/logger"
	"github.com/pkostin/fieldsync/internal/netmon"
	"github.com/pkostin/fieldsync/internal/store"
)

type Services struct {
	BatchService BatchService
	SyncEngine   SyncEngine
	SyncJob      SyncJob
}

func NewServices(localStore store.LocalStore, blobs store.BlobStore, storageAdapter adapter.StorageAdapter, crmAdapter adapter.CRMAdapter, monitor netmon.Monitor, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	engine := NewSyncEngine(localStore, blobs, storageAdapter, crmAdapter, cfg.Workers, log)
	job := NewSyncJob(engine, monitor, cfg.Workers.PollInterval, log)

	return &Services{
		BatchService: NewBatchService(localStore, blobs, cfg.App.OwnerUserID, job, log),
		SyncEngine:   engine,
		SyncJob:      job,
	}
}
