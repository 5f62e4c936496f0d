package jobtracking

import (
	"context"

	"github.com/vfg2006/store-monitor-api/internal/domain"
)

// Store acompanha o estado dos jobs de relatório chaveados pelo request_id
// opaco. Transições: Create registra pending, MarkDone conclui. Disciplina
// de escritor único por chave: as implementações serializam as escritas em
// vez de reescrever o estado sem sincronização.
type Store interface {
	Create(ctx context.Context, requestID string) error
	MarkDone(ctx context.Context, requestID string) error
	Get(ctx context.Context, requestID string) (*domain.ReportJob, error)
}
