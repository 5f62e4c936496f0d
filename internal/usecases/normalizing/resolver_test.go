package normalizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/store-monitor-api/internal/domain"
)

func TestResolveOffsets(t *testing.T) {
	tests := []struct {
		name     string
		zones    []domain.StoreTimezone
		expected map[string]time.Duration
		hasError bool
	}{
		{
			name: "Fusos conhecidos resolvem para o offset da data de referência",
			zones: []domain.StoreTimezone{
				{StoreID: "store-1", TimezoneName: "America/Chicago"},
				{StoreID: "store-2", TimezoneName: "America/Sao_Paulo"},
				{StoreID: "store-3", TimezoneName: "UTC"},
			},
			expected: map[string]time.Duration{
				"store-1": -6 * time.Hour, // CST em janeiro
				"store-2": -3 * time.Hour,
				"store-3": 0,
			},
		},
		{
			name:     "Lista vazia produz mapa vazio",
			zones:    []domain.StoreTimezone{},
			expected: map[string]time.Duration{},
		},
		{
			name: "Fuso irresolúvel deve abortar a resolução inteira",
			zones: []domain.StoreTimezone{
				{StoreID: "store-1", TimezoneName: "America/Chicago"},
				{StoreID: "store-2", TimezoneName: "America/Nowhere"},
			},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offsets, err := ResolveOffsets(tt.zones)

			if tt.hasError {
				assert.Error(t, err)
				assert.Nil(t, offsets)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, offsets)
		})
	}
}
