package normalizing

import (
	"context"

	"github.com/vfg2006/store-monitor-api/internal/domain"
)

// DataSource fornece as três tabelas de entrada do pipeline. Implementado
// pelos arquivos CSV do dataset e pelas tabelas equivalentes no PostgreSQL.
type DataSource interface {
	PollRecords(ctx context.Context) ([]domain.PollRecord, error)
	BusinessHours(ctx context.Context) ([]domain.BusinessHourEntry, error)
	StoreTimezones(ctx context.Context) ([]domain.StoreTimezone, error)
}

// CheckpointWriter persiste o artefato de checkpoint de forma atômica
type CheckpointWriter interface {
	WriteCheckpoint(ctx context.Context, records []domain.CheckpointRecord) error
}

// CheckpointRebuilder reconstrói o checkpoint a partir do dataset bruto
type CheckpointRebuilder interface {
	RebuildCheckpoint(ctx context.Context) error
}
