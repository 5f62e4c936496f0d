package normalizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/store-monitor-api/internal/domain"
)

func TestWithinBusinessHours(t *testing.T) {
	// 2023-01-25 é uma quarta-feira (dia 2 na convenção segunda=0)
	day := func(hour, minute, second int) time.Time {
		return time.Date(2023, 1, 25, hour, minute, second, 0, time.UTC)
	}

	tests := []struct {
		name     string
		record   domain.NormalizedRecord
		expected bool
	}{
		{
			name: "Agenda 24/7 aceita qualquer horário do dia certo",
			record: domain.NormalizedRecord{
				TimestampUTC: day(10, 4, 35),
				Day:          2,
				StartUTC:     day(0, 0, 0),
				EndUTC:       day(23, 59, 59),
			},
			expected: true,
		},
		{
			name: "Agenda 24/7 rejeita dia da semana divergente",
			record: domain.NormalizedRecord{
				TimestampUTC: day(10, 4, 35),
				Day:          5,
				StartUTC:     day(0, 0, 0),
				EndUTC:       day(23, 59, 59),
			},
			expected: false,
		},
		{
			name: "Agenda parcial aceita timestamp dentro do intervalo",
			record: domain.NormalizedRecord{
				TimestampUTC: day(12, 30, 0),
				Day:          2,
				StartUTC:     day(9, 0, 0),
				EndUTC:       day(17, 0, 0),
			},
			expected: true,
		},
		{
			name: "Agenda parcial aceita o limite inicial exato",
			record: domain.NormalizedRecord{
				TimestampUTC: day(9, 0, 0),
				Day:          2,
				StartUTC:     day(9, 0, 0),
				EndUTC:       day(17, 0, 0),
			},
			expected: true,
		},
		{
			name: "Agenda parcial aceita o limite final exato",
			record: domain.NormalizedRecord{
				TimestampUTC: day(17, 0, 0),
				Day:          2,
				StartUTC:     day(9, 0, 0),
				EndUTC:       day(17, 0, 0),
			},
			expected: true,
		},
		{
			name: "Agenda parcial rejeita timestamp antes da abertura",
			record: domain.NormalizedRecord{
				TimestampUTC: day(8, 59, 59),
				Day:          2,
				StartUTC:     day(9, 0, 0),
				EndUTC:       day(17, 0, 0),
			},
			expected: false,
		},
		{
			name: "Agenda parcial rejeita timestamp depois do fechamento",
			record: domain.NormalizedRecord{
				TimestampUTC: day(17, 0, 1),
				Day:          2,
				StartUTC:     day(9, 0, 0),
				EndUTC:       day(17, 0, 0),
			},
			expected: false,
		},
		{
			name: "Agenda parcial rejeita dia da semana divergente",
			record: domain.NormalizedRecord{
				TimestampUTC: day(12, 30, 0),
				Day:          0,
				StartUTC:     day(9, 0, 0),
				EndUTC:       day(17, 0, 0),
			},
			expected: false,
		},
		{
			name: "Agenda 24/7 deslocada por offset aceita timestamp dentro do intervalo direto",
			record: domain.NormalizedRecord{
				// Limites 24/7 de uma loja UTC-6: 06:00 de hoje a 05:59:59 de amanhã
				TimestampUTC: day(10, 4, 35),
				Day:          2,
				StartUTC:     day(6, 0, 0),
				EndUTC:       day(6, 0, 0).Add(domain.FullDaySpan),
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, withinBusinessHours(tt.record))
		})
	}
}
