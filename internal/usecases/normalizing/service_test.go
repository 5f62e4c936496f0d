package normalizing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/store-monitor-api/internal/domain"
	"github.com/vfg2006/store-monitor-api/internal/usecases/normalizing/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_RebuildCheckpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// 2023-01-25 é quarta-feira (dia 2); 2023-01-24 é terça (dia 1)
	wednesday := func(hour, minute int) time.Time {
		return time.Date(2023, 1, 25, hour, minute, 0, 0, time.UTC)
	}
	tuesday := time.Date(2023, 1, 24, 10, 0, 0, 0, time.UTC)

	mockSource := mocks.NewMockDataSource(ctrl)
	mockSink := mocks.NewMockCheckpointWriter(ctrl)

	mockSource.EXPECT().PollRecords(gomock.Any()).Return([]domain.PollRecord{
		// store-1: agenda de quarta 09:00-17:00 em UTC
		{StoreID: "store-1", TimestampUTC: wednesday(16, 0), Status: domain.StatusInactive},
		{StoreID: "store-1", TimestampUTC: wednesday(10, 0), Status: domain.StatusActive},
		// Terça não consta da agenda da loja: descartado pelo filtro
		{StoreID: "store-1", TimestampUTC: tuesday, Status: domain.StatusActive},
		// Poll sem status é descartado antes do filtro
		{StoreID: "store-1", TimestampUTC: wednesday(11, 0), Status: ""},
		// Poll sem timestamp é descartado antes do filtro
		{StoreID: "store-1", Status: domain.StatusActive},
		// store-2 não tem agenda nem fuso: aberta continuamente, offset padrão
		{StoreID: "store-2", TimestampUTC: wednesday(12, 0), Status: domain.StatusActive},
	}, nil)

	mockSource.EXPECT().BusinessHours(gomock.Any()).Return([]domain.BusinessHourEntry{
		{StoreID: "store-1", Day: 2, StartTimeLocal: "09:00:00", EndTimeLocal: "17:00:00"},
	}, nil)

	mockSource.EXPECT().StoreTimezones(gomock.Any()).Return([]domain.StoreTimezone{
		{StoreID: "store-1", TimezoneName: "UTC"},
	}, nil)

	var written []domain.CheckpointRecord
	mockSink.EXPECT().
		WriteCheckpoint(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []domain.CheckpointRecord) error {
			written = records
			return nil
		})

	service := NewService(mockSource, mockSink)

	err := service.RebuildCheckpoint(context.Background())
	assert.NoError(t, err)

	expected := []domain.CheckpointRecord{
		// max_date de cada loja é o maior timestamp do próprio grupo
		{StoreID: "store-1", TimestampUTC: wednesday(10, 0), Status: domain.StatusActive, MaxDate: wednesday(16, 0), Day: 2, Weekday: 2},
		{StoreID: "store-1", TimestampUTC: wednesday(16, 0), Status: domain.StatusInactive, MaxDate: wednesday(16, 0), Day: 2, Weekday: 2},
		{StoreID: "store-2", TimestampUTC: wednesday(12, 0), Status: domain.StatusActive, MaxDate: wednesday(12, 0), Day: 2, Weekday: 2},
	}
	assert.Equal(t, expected, written)
}

func TestService_RebuildCheckpoint_SourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockDataSource(ctrl)
	mockSink := mocks.NewMockCheckpointWriter(ctrl)

	mockSource.EXPECT().PollRecords(gomock.Any()).Return(nil, assert.AnError)

	service := NewService(mockSource, mockSink)

	err := service.RebuildCheckpoint(context.Background())
	assert.Error(t, err)
}

func TestService_RebuildCheckpoint_UnresolvableTimezoneAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockDataSource(ctrl)
	mockSink := mocks.NewMockCheckpointWriter(ctrl)

	mockSource.EXPECT().PollRecords(gomock.Any()).Return([]domain.PollRecord{
		{StoreID: "store-1", TimestampUTC: time.Date(2023, 1, 25, 10, 0, 0, 0, time.UTC), Status: domain.StatusActive},
	}, nil)
	mockSource.EXPECT().BusinessHours(gomock.Any()).Return([]domain.BusinessHourEntry{}, nil)
	mockSource.EXPECT().StoreTimezones(gomock.Any()).Return([]domain.StoreTimezone{
		{StoreID: "store-1", TimezoneName: "Not/AZone"},
	}, nil)

	service := NewService(mockSource, mockSink)

	// Nenhuma escrita deve acontecer: o checkpoint anterior permanece intacto
	err := service.RebuildCheckpoint(context.Background())
	assert.Error(t, err)
}

func TestNormalize_DefaultOffset(t *testing.T) {
	// Loja sem fuso cadastrado recebe o offset padrão de -6h: a agenda local
	// 09:00-17:00 vira 15:00-23:00 em UTC
	poll := domain.PollRecord{
		StoreID:      "store-1",
		TimestampUTC: time.Date(2023, 1, 25, 16, 0, 0, 0, time.UTC),
		Status:       domain.StatusActive,
	}
	hours := []domain.BusinessHourEntry{
		{StoreID: "store-1", Day: 2, StartTimeLocal: "09:00:00", EndTimeLocal: "17:00:00"},
	}

	normalized := normalize([]domain.PollRecord{poll}, hours, map[string]time.Duration{})

	assert.Len(t, normalized, 1)
	assert.Equal(t, time.Date(2023, 1, 25, 15, 0, 0, 0, time.UTC), normalized[0].StartUTC)
	assert.Equal(t, time.Date(2023, 1, 25, 23, 0, 0, 0, time.UTC), normalized[0].EndUTC)
}

func TestNormalize_DefaultScheduleTimes(t *testing.T) {
	// Entrada de agenda sem horários recebe o dia inteiro como padrão
	poll := domain.PollRecord{
		StoreID:      "store-1",
		TimestampUTC: time.Date(2023, 1, 25, 16, 0, 0, 0, time.UTC),
		Status:       domain.StatusActive,
	}
	hours := []domain.BusinessHourEntry{
		{StoreID: "store-1", Day: 2},
	}
	offsets := map[string]time.Duration{"store-1": 0}

	normalized := normalize([]domain.PollRecord{poll}, hours, offsets)

	assert.Len(t, normalized, 1)
	assert.Equal(t, domain.FullDaySpan, normalized[0].EndUTC.Sub(normalized[0].StartUTC))
}

func TestBuildCheckpoint_Deterministic(t *testing.T) {
	base := time.Date(2023, 1, 25, 0, 0, 0, 0, time.UTC)

	record := func(storeID string, hour int) domain.NormalizedRecord {
		ts := base.Add(time.Duration(hour) * time.Hour)
		return domain.NormalizedRecord{
			StoreID:      storeID,
			Status:       domain.StatusActive,
			TimestampUTC: ts,
			Day:          2,
			StartUTC:     base,
			EndUTC:       base.Add(domain.FullDaySpan),
		}
	}

	forward := []domain.NormalizedRecord{
		record("store-1", 10), record("store-1", 12),
		record("store-2", 11), record("store-2", 9),
	}
	reversed := []domain.NormalizedRecord{
		record("store-2", 9), record("store-2", 11),
		record("store-1", 12), record("store-1", 10),
	}

	// A ordem de chegada dos registros não pode vazar para o artefato
	assert.Equal(t, buildCheckpoint(forward), buildCheckpoint(reversed))
}
