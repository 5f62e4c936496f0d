package reporting

import (
	"context"

	"github.com/vfg2006/store-monitor-api/internal/domain"
)

// CheckpointSource lê o checkpoint por inteiro. O artefato é imutável
// durante uma geração de relatório: o rebuild externo o substitui por
// completo, nunca o altera no lugar.
type CheckpointSource interface {
	ReadCheckpoint(ctx context.Context) ([]domain.CheckpointRecord, error)
}

// ReportSink persiste o relatório final de uma requisição
type ReportSink interface {
	SaveReport(ctx context.Context, requestID string, reports []domain.StoreReport) error
}

// JobTracker marca o job da requisição como concluído
type JobTracker interface {
	MarkDone(ctx context.Context, requestID string) error
}

// ReportGenerator calcula e persiste o relatório de uma requisição
type ReportGenerator interface {
	GenerateReport(ctx context.Context, requestID string) error
}
