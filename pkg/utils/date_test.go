package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePollTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		hasError bool
	}{
		{
			name:     "Timestamp completo com sufixo UTC",
			input:    "2023-01-25 10:04:35.123456 UTC",
			expected: time.Date(2023, 1, 25, 10, 4, 35, 123456000, time.UTC),
		},
		{
			name:     "Timestamp sem fração de segundos",
			input:    "2023-01-25 10:04:35 UTC",
			expected: time.Date(2023, 1, 25, 10, 4, 35, 0, time.UTC),
		},
		{
			name:     "Timestamp sem sufixo UTC",
			input:    "2023-01-25 10:04:35.000001",
			expected: time.Date(2023, 1, 25, 10, 4, 35, 1000, time.UTC),
		},
		{
			name:     "Valor vazio vira timestamp zero",
			input:    "",
			expected: time.Time{},
		},
		{
			name:     "Valor inválido deve retornar erro",
			input:    "25/01/2023 10:04",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := ParsePollTimestamp(tt.input)

			if tt.hasError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.True(t, tt.expected.Equal(ts))
		})
	}
}

func TestFormatPollTimestamp(t *testing.T) {
	// O formato de escrita precisa sobreviver a um ciclo de leitura sem perda,
	// senão reexecuções do rebuild deixariam de ser byte a byte idênticas
	original := "2023-01-25 10:04:35.123456 UTC"

	ts, err := ParsePollTimestamp(original)
	assert.NoError(t, err)
	assert.Equal(t, original, FormatPollTimestamp(ts))
}

func TestParseLocalTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		hour     int
		minute   int
		second   int
		hasError bool
	}{
		{
			name:  "Horário comercial típico",
			input: "09:30:15",
			hour:  9, minute: 30, second: 15,
		},
		{
			name:  "Meia-noite",
			input: "00:00:00",
		},
		{
			name:  "Último segundo do dia",
			input: "23:59:59",
			hour:  23, minute: 59, second: 59,
		},
		{
			name:     "Horário sem segundos deve retornar erro",
			input:    "09:30",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, second, err := ParseLocalTime(tt.input)

			if tt.hasError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.hour, hour)
			assert.Equal(t, tt.minute, minute)
			assert.Equal(t, tt.second, second)
		})
	}
}

func TestRedateLocalTime(t *testing.T) {
	reference := time.Date(2023, 1, 25, 10, 4, 35, 123456000, time.UTC)

	result := RedateLocalTime(reference, 9, 0, 0)

	assert.Equal(t, time.Date(2023, 1, 25, 9, 0, 0, 0, time.UTC), result)
}
