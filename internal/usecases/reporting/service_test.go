package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/store-monitor-api/internal/domain"
)

type fakeCheckpointSource struct {
	records []domain.CheckpointRecord
	err     error
}

func (f *fakeCheckpointSource) ReadCheckpoint(ctx context.Context) ([]domain.CheckpointRecord, error) {
	return f.records, f.err
}

type fakeReportSink struct {
	requestID string
	saved     []domain.StoreReport
	err       error
}

func (f *fakeReportSink) SaveReport(ctx context.Context, requestID string, reports []domain.StoreReport) error {
	if f.err != nil {
		return f.err
	}
	f.requestID = requestID
	f.saved = reports
	return nil
}

type fakeJobTracker struct {
	done []string
}

func (f *fakeJobTracker) MarkDone(ctx context.Context, requestID string) error {
	f.done = append(f.done, requestID)
	return nil
}

func TestService_GenerateReport(t *testing.T) {
	// 2023-01-23 é segunda-feira (dia 0). Loja com agenda de segunda
	// 09:00-17:00 UTC e três polls dentro do expediente.
	monday := func(hour, minute int) time.Time {
		return time.Date(2023, 1, 23, hour, minute, 0, 0, time.UTC)
	}
	maxDate := monday(16, 59)

	record := func(ts time.Time, status domain.Status) domain.CheckpointRecord {
		return domain.CheckpointRecord{
			StoreID:      "store-1",
			TimestampUTC: ts,
			Status:       status,
			MaxDate:      maxDate,
			Day:          0,
			Weekday:      0,
		}
	}

	source := &fakeCheckpointSource{records: []domain.CheckpointRecord{
		record(monday(9, 0), domain.StatusActive),
		record(monday(12, 0), domain.StatusInactive),
		record(monday(16, 59), domain.StatusActive),
	}}
	sink := &fakeReportSink{}
	jobs := &fakeJobTracker{}

	service := NewService(source, sink, jobs, 3)

	err := service.GenerateReport(context.Background(), "req-123")
	assert.NoError(t, err)

	assert.Equal(t, "req-123", sink.requestID)
	assert.Equal(t, []string{"req-123"}, jobs.done)
	assert.Len(t, sink.saved, 1)

	report := sink.saved[0]
	assert.Equal(t, "store-1", report.StoreID)

	// Última hora (15:59, 16:59]: 16:00-16:58 ainda carregam o status
	// inativo do poll de 12:00; só 16:59 é ativo. A soma fecha a janela.
	assert.Equal(t, domain.MinuteCount{Active: 1, Inactive: 59}, report.Hour)

	// Último dia: todo o expediente observado cai na janela.
	// 09:00-11:59 ativo (180), 12:00-16:58 inativo (299), 16:59 ativo (1).
	assert.Equal(t, domain.MinuteCount{Active: 181, Inactive: 299}, report.Day)

	// Última semana: mesmas observações, janela maior não muda a contagem
	assert.Equal(t, domain.MinuteCount{Active: 181, Inactive: 299}, report.Week)
}

func TestService_GenerateReport_EmptyCheckpoint(t *testing.T) {
	source := &fakeCheckpointSource{}
	sink := &fakeReportSink{}
	jobs := &fakeJobTracker{}

	service := NewService(source, sink, jobs, 3)

	err := service.GenerateReport(context.Background(), "req-123")
	assert.NoError(t, err)

	// Relatório vazio ainda é um relatório completo: o job conclui
	assert.Empty(t, sink.saved)
	assert.Equal(t, []string{"req-123"}, jobs.done)
}

func TestService_GenerateReport_SinkErrorLeavesJobPending(t *testing.T) {
	source := &fakeCheckpointSource{records: []domain.CheckpointRecord{}}
	sink := &fakeReportSink{err: assert.AnError}
	jobs := &fakeJobTracker{}

	service := NewService(source, sink, jobs, 3)

	err := service.GenerateReport(context.Background(), "req-123")
	assert.Error(t, err)

	// Sem artefato persistido o job não pode ser concluído
	assert.Empty(t, jobs.done)
}

func TestService_GenerateReport_SourceError(t *testing.T) {
	source := &fakeCheckpointSource{err: assert.AnError}
	service := NewService(source, &fakeReportSink{}, &fakeJobTracker{}, 3)

	err := service.GenerateReport(context.Background(), "req-123")
	assert.Error(t, err)
}
