package reporting

import (
	"sort"

	"github.com/vfg2006/store-monitor-api/internal/domain"
)

// assemble junta os resultados das três janelas por store_id e aplica a
// política de interpolação de dados esparsos em cada célula
func assemble(results map[domain.Window]domain.WindowResult) []domain.StoreReport {
	seen := make(map[string]struct{})
	storeIDs := make([]string, 0)

	for _, result := range results {
		for storeID := range result {
			if _, ok := seen[storeID]; !ok {
				seen[storeID] = struct{}{}
				storeIDs = append(storeIDs, storeID)
			}
		}
	}
	sort.Strings(storeIDs)

	reports := make([]domain.StoreReport, 0, len(storeIDs))
	for _, storeID := range storeIDs {
		reports = append(reports, domain.StoreReport{
			StoreID: storeID,
			Hour:    Interpolate(results[domain.WindowHour][storeID], domain.WindowHour.Minutes()),
			Day:     Interpolate(results[domain.WindowDay][storeID], domain.WindowDay.Minutes()),
			Week:    Interpolate(results[domain.WindowWeek][storeID], domain.WindowWeek.Minutes()),
		})
	}

	return reports
}

// Interpolate aplica a política de dados esparsos a uma janela de
// windowMinutes minutos. A ausência de evidência de polling implica loja
// inativa, nunca o contrário:
//
//   - nenhum minuto contado: assume inatividade total;
//   - só minutos ativos, menos que a janela: o restante é inativo;
//   - caso contrário as contagens valem como calculadas.
func Interpolate(count domain.MinuteCount, windowMinutes int) domain.MinuteCount {
	if count.Active == 0 && count.Inactive == 0 {
		return domain.MinuteCount{Active: 0, Inactive: windowMinutes}
	}

	if count.Active > 0 && count.Active < windowMinutes && count.Inactive == 0 {
		return domain.MinuteCount{Active: count.Active, Inactive: windowMinutes - count.Active}
	}

	return count
}
