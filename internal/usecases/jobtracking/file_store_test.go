package jobtracking

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-monitor-api/internal/domain"
)

func TestFileStore_CreateAndGet(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "request_ids.json"))
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, "req-1"))

	job, err := store.Get(ctx, "req-1")
	require.NoError(t, err)
	require.NotNil(t, job)

	assert.Equal(t, "req-1", job.RequestID)
	assert.Equal(t, domain.JobPending, job.State)
	assert.False(t, job.CreatedAt.IsZero())
	assert.Nil(t, job.CompletedAt)
}

func TestFileStore_MarkDone(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "request_ids.json"))
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, "req-1"))
	require.NoError(t, store.MarkDone(ctx, "req-1"))

	job, err := store.Get(ctx, "req-1")
	require.NoError(t, err)
	require.NotNil(t, job)

	assert.Equal(t, domain.JobDone, job.State)
	assert.NotNil(t, job.CompletedAt)
}

func TestFileStore_MarkDoneUnknownJob(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "request_ids.json"))

	err := store.MarkDone(context.Background(), "req-inexistente")
	assert.Error(t, err)
}

func TestFileStore_GetUnknownJob(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "request_ids.json"))

	job, err := store.Get(context.Background(), "req-inexistente")
	assert.NoError(t, err)
	assert.Nil(t, job)
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request_ids.json")
	ctx := context.Background()

	first := NewFileStore(path)
	require.NoError(t, first.Create(ctx, "req-1"))
	require.NoError(t, first.MarkDone(ctx, "req-1"))

	// Uma nova instância, como após um restart do processo, enxerga o estado
	second := NewFileStore(path)
	job, err := second.Get(ctx, "req-1")
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, domain.JobDone, job.State)
}

func TestFileStore_CorruptFileRestartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request_ids.json")
	require.NoError(t, os.WriteFile(path, []byte("{nao é json"), 0o644))

	store := NewFileStore(path)
	ctx := context.Background()

	job, err := store.Get(ctx, "req-1")
	assert.NoError(t, err)
	assert.Nil(t, job)

	// O arquivo corrompido não impede novos registros
	require.NoError(t, store.Create(ctx, "req-2"))
	job, err = store.Get(ctx, "req-2")
	require.NoError(t, err)
	assert.NotNil(t, job)
}
