package reporting

import (
	"sort"
	"time"

	"github.com/vfg2006/store-monitor-api/internal/domain"
)

// groupByStore particiona o checkpoint por loja e ordena cada grupo por
// timestamp ascendente, pré-requisito do upsampling
func groupByStore(records []domain.CheckpointRecord) map[string][]domain.CheckpointRecord {
	byStore := make(map[string][]domain.CheckpointRecord)
	for _, rec := range records {
		byStore[rec.StoreID] = append(byStore[rec.StoreID], rec)
	}

	for _, group := range byStore {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].TimestampUTC.Before(group[j].TimestampUTC)
		})
	}

	return byStore
}

// computeWindow calcula minutos ativos/inativos de cada loja para uma janela.
// Tarefa pura sobre o checkpoint imutável: instâncias para janelas distintas
// rodam em paralelo sem sincronização entre si.
func computeWindow(length time.Duration, byStore map[string][]domain.CheckpointRecord) domain.WindowResult {
	result := make(domain.WindowResult, len(byStore))
	for storeID, records := range byStore {
		result[storeID] = countWindowMinutes(length, records)
	}
	return result
}

// countWindowMinutes upsampleia as observações esparsas de uma loja para uma
// grade de 1 minuto, carregando adiante o último status conhecido, e conta
// os minutos que sobrevivem ao refiltro de janela e de horário comercial.
//
// O upsampling pode introduzir minutos fora da janela ou que viram para um
// dia da semana diferente do dia da agenda carregada; ambos são excluídos de
// novo aqui. Limites semiabertos: um poll exatamente em till_date fica de
// fora, um poll exatamente em max_date conta.
func countWindowMinutes(length time.Duration, records []domain.CheckpointRecord) domain.MinuteCount {
	// O upsampling exige pelo menos dois pontos; com menos, o resultado
	// degenerado [0, 0] é resolvido pela política de interpolação
	if len(records) < 2 {
		return domain.MinuteCount{}
	}

	maxDate := records[0].MaxDate
	tillDate := maxDate.Add(-length)
	last := records[len(records)-1].TimestampUTC

	var count domain.MinuteCount
	idx := 0

	for t := records[0].TimestampUTC; !t.After(last); t = t.Add(time.Minute) {
		for idx+1 < len(records) && !records[idx+1].TimestampUTC.After(t) {
			idx++
		}
		carried := records[idx]

		if !t.After(tillDate) || t.After(maxDate) {
			continue
		}
		if domain.Weekday(t) != carried.Day {
			continue
		}

		switch carried.Status {
		case domain.StatusActive:
			count.Active++
		case domain.StatusInactive:
			count.Inactive++
		}
	}

	return count
}
