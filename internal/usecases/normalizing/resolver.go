package normalizing

import (
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/store-monitor-api/internal/domain"
)

// Os offsets são avaliados em uma única data de referência fixa e
// reutilizados para todo o horizonte do relatório. Aproximação documentada:
// lojas cujo offset mudaria por horário de verão dentro da semana do
// relatório recebem o offset da data de referência mesmo assim.
var referenceDate = time.Date(2023, time.January, 21, 0, 0, 0, 0, time.UTC)

// ResolveOffsets converte o nome textual do fuso de cada loja no offset UTC
// vigente na data de referência. Um nome irresolúvel é erro fatal de
// configuração: a execução aborta em vez de datar errado a agenda de uma loja.
func ResolveOffsets(zones []domain.StoreTimezone) (map[string]time.Duration, error) {
	offsets := make(map[string]time.Duration, len(zones))

	for _, zone := range zones {
		loc, err := time.LoadLocation(zone.TimezoneName)
		if err != nil {
			return nil, errors.Wrapf(err, "fuso horário irresolúvel %q para a loja %s", zone.TimezoneName, zone.StoreID)
		}

		local := time.Date(
			referenceDate.Year(), referenceDate.Month(), referenceDate.Day(),
			0, 0, 0, 0, loc,
		)
		_, offsetSeconds := local.Zone()
		offsets[zone.StoreID] = time.Duration(offsetSeconds) * time.Second
	}

	return offsets, nil
}
