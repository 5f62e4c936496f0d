package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-monitor-api/internal/config"
	"github.com/vfg2006/store-monitor-api/internal/usecases/normalizing"
)

// CheckpointRebuildConfig representa a configuração do agendador de
// reconstrução do checkpoint
type CheckpointRebuildConfig struct {
	CronSchedule   string
	RebuildEnabled bool
}

// CheckpointRebuildService gerencia o agendamento e a execução da
// reconstrução do checkpoint. Uma reconstrução por vez: disparos enquanto
// outra está em andamento são ignorados.
type CheckpointRebuildService struct {
	scheduler              *gocron.Scheduler
	config                 CheckpointRebuildConfig
	rebuilder              normalizing.CheckpointRebuilder
	rebuildRunning         bool
	rebuildMutex           sync.Mutex
	lastRebuildStartedAt   time.Time
	lastRebuildCompletedAt time.Time
	lastRebuildError       string
}

// NewCheckpointRebuildService cria uma nova instância do serviço de
// reconstrução do checkpoint
func NewCheckpointRebuildService(
	rebuilder normalizing.CheckpointRebuilder,
	appConfig *config.Config,
) *CheckpointRebuildService {
	rebuildConfig := CheckpointRebuildConfig{
		CronSchedule:   appConfig.CheckpointRebuild.CronSchedule,
		RebuildEnabled: appConfig.CheckpointRebuild.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   rebuildConfig.CronSchedule,
		"rebuild_enabled": rebuildConfig.RebuildEnabled,
	}).Info("Configuração do agendador de reconstrução do checkpoint carregada")

	return &CheckpointRebuildService{
		scheduler:      scheduler,
		config:         rebuildConfig,
		rebuilder:      rebuilder,
		rebuildRunning: false,
	}
}

// Start inicia o agendador
func (s *CheckpointRebuildService) Start(ctx context.Context) error {
	if !s.config.RebuildEnabled {
		logrus.Info("Reconstrução agendada do checkpoint desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reconstrução do checkpoint")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.rebuildCheckpoint(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconstrução do checkpoint: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reconstrução do checkpoint")
		s.scheduler.Stop()
	}()

	return nil
}

// rebuildCheckpoint executa a reconstrução garantindo uma execução por vez
func (s *CheckpointRebuildService) rebuildCheckpoint(ctx context.Context) {
	s.rebuildMutex.Lock()
	if s.rebuildRunning {
		s.rebuildMutex.Unlock()
		logrus.Info("Reconstrução do checkpoint já em andamento, ignorando")
		return
	}
	s.rebuildRunning = true
	s.rebuildMutex.Unlock()

	startTime := time.Now()
	s.lastRebuildStartedAt = startTime

	defer func() {
		s.rebuildMutex.Lock()
		s.rebuildRunning = false
		s.rebuildMutex.Unlock()
	}()

	if err := s.rebuilder.RebuildCheckpoint(ctx); err != nil {
		s.lastRebuildError = err.Error()
		logrus.WithError(err).Error("Erro ao reconstruir o checkpoint")
		return
	}

	s.lastRebuildError = ""
	s.lastRebuildCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
	}).Info("Reconstrução do checkpoint concluída")
}

// TriggerManualSync inicia manualmente uma reconstrução do checkpoint.
// Usado pelo endpoint administrativo e pelo watcher do dataset.
func (s *CheckpointRebuildService) TriggerManualSync() {
	s.rebuildMutex.Lock()
	if s.rebuildRunning {
		s.rebuildMutex.Unlock()
		logrus.Info("Reconstrução do checkpoint já em andamento, ignorando solicitação manual")
		return
	}
	s.rebuildMutex.Unlock()

	logrus.Info("Iniciando reconstrução manual do checkpoint")
	go s.rebuildCheckpoint(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *CheckpointRebuildService) GetStatus() map[string]any {
	return map[string]any{
		"rebuild_enabled":           s.config.RebuildEnabled,
		"rebuild_cron":              s.config.CronSchedule,
		"last_rebuild_started_at":   s.lastRebuildStartedAt,
		"last_rebuild_completed_at": s.lastRebuildCompletedAt,
		"last_rebuild_error":        s.lastRebuildError,
	}
}
