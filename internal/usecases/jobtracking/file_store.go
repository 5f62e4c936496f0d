package jobtracking

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-monitor-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileStore persiste os jobs em um único arquivo JSON. Um mutex serializa
// todas as operações e cada escrita substitui o arquivo por rename atômico,
// de modo que leitores nunca observam um estado parcial.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Create registra um novo job como pending
func (s *FileStore) Create(ctx context.Context, requestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs := s.load()
	jobs[requestID] = domain.ReportJob{
		RequestID: requestID,
		State:     domain.JobPending,
		CreatedAt: time.Now().UTC(),
	}

	return s.persist(jobs)
}

// MarkDone conclui um job existente
func (s *FileStore) MarkDone(ctx context.Context, requestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs := s.load()
	job, ok := jobs[requestID]
	if !ok {
		return errors.Errorf("job desconhecido: %s", requestID)
	}

	now := time.Now().UTC()
	job.State = domain.JobDone
	job.CompletedAt = &now
	jobs[requestID] = job

	return s.persist(jobs)
}

// Get retorna o job ou nil quando o request_id é desconhecido
func (s *FileStore) Get(ctx context.Context, requestID string) (*domain.ReportJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs := s.load()
	job, ok := jobs[requestID]
	if !ok {
		return nil, nil
	}

	return &job, nil
}

// load lê o arquivo de jobs. Arquivo ausente ou corrompido recomeça de um
// mapa vazio em vez de derrubar o rastreamento.
func (s *FileStore) load() map[string]domain.ReportJob {
	jobs := make(map[string]domain.ReportJob)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.WithError(err).Warn("Erro ao ler o arquivo de jobs. Recomeçando vazio.")
		}
		return jobs
	}

	if err := json.Unmarshal(data, &jobs); err != nil {
		logrus.WithError(err).Warn("Arquivo de jobs corrompido. Recomeçando vazio.")
		return make(map[string]domain.ReportJob)
	}

	return jobs
}

// persist grava o mapa inteiro via arquivo temporário + rename
func (s *FileStore) persist(jobs map[string]domain.ReportJob) error {
	data, err := json.Marshal(jobs)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar os jobs")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "erro ao criar o diretório do arquivo de jobs")
	}

	tmp, err := os.CreateTemp(dir, ".request_ids-*.json")
	if err != nil {
		return errors.Wrap(err, "erro ao criar arquivo temporário de jobs")
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(err, "erro ao escrever o arquivo de jobs")
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "erro ao fechar o arquivo de jobs")
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "erro ao substituir o arquivo de jobs")
	}

	return nil
}

var _ Store = (*FileStore)(nil)
