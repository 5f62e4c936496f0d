package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-monitor-api/internal/domain"
)

func sampleCheckpoint() []domain.CheckpointRecord {
	maxDate := time.Date(2023, 1, 25, 16, 59, 0, 0, time.UTC)

	return []domain.CheckpointRecord{
		{
			StoreID:      "store-1",
			TimestampUTC: time.Date(2023, 1, 25, 10, 4, 35, 123456000, time.UTC),
			Status:       domain.StatusActive,
			MaxDate:      maxDate,
			Day:          2,
			Weekday:      2,
		},
		{
			StoreID:      "store-1",
			TimestampUTC: maxDate,
			Status:       domain.StatusInactive,
			MaxDate:      maxDate,
			Day:          2,
			Weekday:      2,
		},
	}
}

func TestCheckpointFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "middle.csv")
	file := NewCheckpointFile(path)
	ctx := context.Background()

	records := sampleCheckpoint()

	require.NoError(t, file.WriteCheckpoint(ctx, records))

	read, err := file.ReadCheckpoint(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, read)
}

func TestCheckpointFile_WriteIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "middle.csv")
	file := NewCheckpointFile(path)
	ctx := context.Background()

	records := sampleCheckpoint()

	require.NoError(t, file.WriteCheckpoint(ctx, records))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, file.WriteCheckpoint(ctx, records))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	// Reexecuções sobre a mesma entrada produzem o artefato byte a byte
	assert.Equal(t, first, second)
}

func TestCheckpointFile_WriteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc", "middle.csv")
	file := NewCheckpointFile(path)

	require.NoError(t, file.WriteCheckpoint(context.Background(), sampleCheckpoint()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestCheckpointFile_ReadMissingFile(t *testing.T) {
	file := NewCheckpointFile(filepath.Join(t.TempDir(), "inexistente.csv"))

	_, err := file.ReadCheckpoint(context.Background())
	assert.Error(t, err)
}
