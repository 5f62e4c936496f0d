package reporting

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-monitor-api/internal/domain"
)

// Service calcula o relatório de uptime/downtime de uma requisição a partir
// do checkpoint corrente. As três janelas são tarefas independentes
// executadas em paralelo sob um limite de concorrência e unidas por uma
// barreira antes da montagem final (fork/join, não pipeline).
type Service struct {
	source            CheckpointSource
	sink              ReportSink
	jobs              JobTracker
	maxConcurrentJobs int
}

func NewService(
	source CheckpointSource,
	sink ReportSink,
	jobs JobTracker,
	maxConcurrentJobs int,
) *Service {
	if maxConcurrentJobs <= 0 {
		maxConcurrentJobs = len(domain.Windows)
	}

	return &Service{
		source:            source,
		sink:              sink,
		jobs:              jobs,
		maxConcurrentJobs: maxConcurrentJobs,
	}
}

// GenerateReport lê o checkpoint uma única vez, calcula as três janelas e
// persiste o relatório. Ou o relatório sai completo ou não sai: qualquer
// falha aborta a requisição sem artefato parcial.
func (s *Service) GenerateReport(ctx context.Context, requestID string) error {
	startTime := time.Now()
	logrus.WithField("request_id", requestID).Info("Iniciando geração de relatório")

	records, err := s.source.ReadCheckpoint(ctx)
	if err != nil {
		return errors.Wrap(err, "erro ao ler o checkpoint")
	}

	byStore := groupByStore(records)

	// Fork/join: uma tarefa por janela, sem estado mutável compartilhado
	// além do mapa de resultados protegido pelo mutex
	semaphore := make(chan struct{}, s.maxConcurrentJobs)
	var wg sync.WaitGroup
	var mu sync.Mutex
	results := make(map[domain.Window]domain.WindowResult, len(domain.Windows))

	for _, window := range domain.Windows {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(window domain.Window) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			result := computeWindow(window.Length(), byStore)

			mu.Lock()
			results[window] = result
			mu.Unlock()
		}(window)
	}

	wg.Wait()

	reports := assemble(results)

	if err := s.sink.SaveReport(ctx, requestID, reports); err != nil {
		return errors.Wrap(err, "erro ao persistir o relatório")
	}

	if err := s.jobs.MarkDone(ctx, requestID); err != nil {
		return errors.Wrap(err, "erro ao concluir o job do relatório")
	}

	logrus.WithFields(logrus.Fields{
		"request_id": requestID,
		"stores":     len(reports),
		"duration":   time.Since(startTime).String(),
	}).Info("Relatório gerado com sucesso")

	return nil
}

var _ ReportGenerator = (*Service)(nil)
