package normalizing

import (
	"github.com/vfg2006/store-monitor-api/internal/domain"
)

// withinBusinessHours classifica um registro normalizado como dentro do
// horário comercial. Duas regras mutuamente exclusivas, escolhidas pela
// duração do intervalo:
//
//   - agenda 24/7 (exatamente 23:59:59): o registro qualifica se o timestamp
//     cai em [start, end] ou no intervalo invertido [end, start]. O ramo
//     invertido tolera limites calculados através da virada do dia e é
//     preservado literalmente.
//   - agenda parcial: start <= ts <= end.
//
// Em ambas o dia da agenda precisa coincidir com o dia da semana do poll.
func withinBusinessHours(rec domain.NormalizedRecord) bool {
	if rec.Day != domain.Weekday(rec.TimestampUTC) {
		return false
	}

	ts := rec.TimestampUTC
	inDirect := !ts.Before(rec.StartUTC) && !ts.After(rec.EndUTC)

	if rec.EndUTC.Sub(rec.StartUTC) == domain.FullDaySpan {
		inInverted := !rec.StartUTC.Before(ts) && !rec.EndUTC.After(ts)
		return inDirect || inInverted
	}

	return inDirect
}
