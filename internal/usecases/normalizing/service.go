package normalizing

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-monitor-api/internal/domain"
	"github.com/vfg2006/store-monitor-api/pkg/utils"
)

// Service executa o estágio caro do pipeline: normaliza o histórico inteiro
// de polls contra agendas e fusos e persiste o checkpoint filtrado por
// horário comercial. A execução é idempotente: entradas iguais produzem um
// checkpoint byte a byte idêntico.
type Service struct {
	source DataSource
	sink   CheckpointWriter
}

func NewService(source DataSource, sink CheckpointWriter) *Service {
	return &Service{
		source: source,
		sink:   sink,
	}
}

// RebuildCheckpoint reprocessa o dataset bruto por inteiro e sobrescreve o
// checkpoint de forma atômica
func (s *Service) RebuildCheckpoint(ctx context.Context) error {
	startTime := time.Now()
	logrus.Info("Iniciando reconstrução do checkpoint")

	polls, err := s.source.PollRecords(ctx)
	if err != nil {
		return errors.Wrap(err, "erro ao carregar os polls")
	}

	hours, err := s.source.BusinessHours(ctx)
	if err != nil {
		return errors.Wrap(err, "erro ao carregar o horário comercial")
	}

	zones, err := s.source.StoreTimezones(ctx)
	if err != nil {
		return errors.Wrap(err, "erro ao carregar os fusos horários")
	}

	offsets, err := ResolveOffsets(zones)
	if err != nil {
		return err
	}

	normalized := normalize(polls, hours, offsets)
	checkpoint := buildCheckpoint(normalized)

	if err := s.sink.WriteCheckpoint(ctx, checkpoint); err != nil {
		return errors.Wrap(err, "erro ao persistir o checkpoint")
	}

	logrus.WithFields(logrus.Fields{
		"polls":      len(polls),
		"checkpoint": len(checkpoint),
		"duration":   time.Since(startTime).String(),
	}).Info("Checkpoint reconstruído com sucesso")

	return nil
}

// normalize faz o left join de polls com agendas e offsets, chaveado por
// store_id, com a política de preenchimento padrão para lojas sem
// correspondência. Cada poll gera um registro por entrada de agenda da loja.
func normalize(
	polls []domain.PollRecord,
	hours []domain.BusinessHourEntry,
	offsets map[string]time.Duration,
) []domain.NormalizedRecord {
	hoursByStore := make(map[string][]domain.BusinessHourEntry, len(hours))
	for _, entry := range hours {
		hoursByStore[entry.StoreID] = append(hoursByStore[entry.StoreID], entry)
	}

	normalized := make([]domain.NormalizedRecord, 0, len(polls))

	for _, poll := range polls {
		// Registros sem status ou sem timestamp são descartados antes do filtro
		if poll.Status == "" || poll.TimestampUTC.IsZero() {
			continue
		}

		offset, ok := offsets[poll.StoreID]
		if !ok {
			offset = domain.DefaultUTCOffset
		}

		entries, ok := hoursByStore[poll.StoreID]
		if !ok {
			// Loja ausente da tabela de horários é tratada como aberta
			// continuamente: uma entrada de dia inteiro para cada dia da semana
			entries = openAllWeek(poll.StoreID)
		}

		for _, entry := range entries {
			rec, err := normalizeOne(poll, entry, offset)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"store_id": poll.StoreID,
					"day":      entry.Day,
					"error":    err.Error(),
				}).Warn("Entrada de horário comercial inválida. Pulando.")
				continue
			}
			normalized = append(normalized, rec)
		}
	}

	return normalized
}

// normalizeOne re-data os horários locais da agenda para a data de calendário
// do poll e subtrai o offset para obter instantes ancorados em UTC
func normalizeOne(
	poll domain.PollRecord,
	entry domain.BusinessHourEntry,
	offset time.Duration,
) (domain.NormalizedRecord, error) {
	startTime := entry.StartTimeLocal
	if startTime == "" {
		startTime = domain.DefaultStartTimeLocal
	}

	endTime := entry.EndTimeLocal
	if endTime == "" {
		endTime = domain.DefaultEndTimeLocal
	}

	sh, sm, ss, err := utils.ParseLocalTime(startTime)
	if err != nil {
		return domain.NormalizedRecord{}, err
	}

	eh, em, es, err := utils.ParseLocalTime(endTime)
	if err != nil {
		return domain.NormalizedRecord{}, err
	}

	return domain.NormalizedRecord{
		StoreID:      poll.StoreID,
		Status:       poll.Status,
		TimestampUTC: poll.TimestampUTC,
		Day:          entry.Day,
		StartUTC:     utils.RedateLocalTime(poll.TimestampUTC, sh, sm, ss).Add(-offset),
		EndUTC:       utils.RedateLocalTime(poll.TimestampUTC, eh, em, es).Add(-offset),
	}, nil
}

// openAllWeek sintetiza a agenda padrão de uma loja sem entradas: dia
// inteiro, todos os dias da semana
func openAllWeek(storeID string) []domain.BusinessHourEntry {
	entries := make([]domain.BusinessHourEntry, 0, 7)
	for day := 0; day <= 6; day++ {
		entries = append(entries, domain.BusinessHourEntry{
			StoreID:        storeID,
			Day:            day,
			StartTimeLocal: domain.DefaultStartTimeLocal,
			EndTimeLocal:   domain.DefaultEndTimeLocal,
		})
	}
	return entries
}

// buildCheckpoint filtra os registros pelo horário comercial, agrupa por
// loja, difunde o maior timestamp de cada grupo como max_date e anexa o dia
// da semana do próprio timestamp. A saída é ordenada por (store_id,
// timestamp) para que reexecuções sejam determinísticas.
func buildCheckpoint(normalized []domain.NormalizedRecord) []domain.CheckpointRecord {
	groups := make(map[string][]domain.NormalizedRecord)
	for _, rec := range normalized {
		if withinBusinessHours(rec) {
			groups[rec.StoreID] = append(groups[rec.StoreID], rec)
		}
	}

	storeIDs := make([]string, 0, len(groups))
	for storeID := range groups {
		storeIDs = append(storeIDs, storeID)
	}
	sort.Strings(storeIDs)

	checkpoint := make([]domain.CheckpointRecord, 0, len(normalized))

	for _, storeID := range storeIDs {
		records := groups[storeID]

		sort.SliceStable(records, func(i, j int) bool {
			return records[i].TimestampUTC.Before(records[j].TimestampUTC)
		})

		maxDate := records[len(records)-1].TimestampUTC

		for _, rec := range records {
			checkpoint = append(checkpoint, domain.CheckpointRecord{
				StoreID:      rec.StoreID,
				TimestampUTC: rec.TimestampUTC,
				Status:       rec.Status,
				MaxDate:      maxDate,
				Day:          rec.Day,
				Weekday:      domain.Weekday(rec.TimestampUTC),
			})
		}
	}

	return checkpoint
}

var _ CheckpointRebuilder = (*Service)(nil)
