package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-monitor-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-monitor-api/infrastructure/dataset"
	"github.com/vfg2006/store-monitor-api/infrastructure/repository"
	"github.com/vfg2006/store-monitor-api/internal/api"
	"github.com/vfg2006/store-monitor-api/internal/config"
	"github.com/vfg2006/store-monitor-api/internal/scheduler"
	"github.com/vfg2006/store-monitor-api/internal/usecases/jobtracking"
	"github.com/vfg2006/store-monitor-api/internal/usecases/normalizing"
	"github.com/vfg2006/store-monitor-api/internal/usecases/reporting"
	"github.com/vfg2006/store-monitor-api/internal/watcher"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// O PostgreSQL só é necessário quando alguma das fontes o utiliza
	var pgConn *postgres.Connection
	if cfg.Dataset.Source == config.SourcePostgres || cfg.Report.JobStore == config.JobStorePostgres {
		pgConn = pgconn(ctx, cfg.Database)
		defer pgConn.Close()
	}

	source := datasetSource(cfg, pgConn)
	checkpointFile := dataset.NewCheckpointFile(cfg.Checkpoint.Path)

	normalizingService := normalizing.NewService(source, checkpointFile)

	jobStore := reportJobStore(cfg, pgConn)
	reportStore := dataset.NewReportStore(cfg.Report.OutputDirectory)

	reportingService := reporting.NewService(
		checkpointFile,
		reportStore,
		jobStore,
		cfg.Report.MaxConcurrentJobs,
	)

	// Agendador de reconstrução periódica do checkpoint
	checkpointRebuildService := scheduler.NewCheckpointRebuildService(normalizingService, cfg)
	if err := checkpointRebuildService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reconstrução do checkpoint")
	} else {
		logrus.Info("Agendador de reconstrução do checkpoint iniciado com sucesso")
	}

	// Watcher do dataset bruto: mudanças no arquivo de polls disparam rebuild
	if cfg.Watcher.Enabled && cfg.Dataset.Source == config.SourceCSV {
		datasetWatcher := watcher.New(cfg, checkpointRebuildService)
		go func() {
			if err := datasetWatcher.Run(ctx); err != nil {
				logrus.WithError(err).Error("Erro durante a execução do watcher do dataset")
			}
		}()
	}

	server, err := api.New(
		cfg,
		reportingService,
		jobStore,
		reportStore,
		checkpointRebuildService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// datasetSource escolhe a fonte das tabelas de entrada do pipeline
func datasetSource(cfg *config.Config, pgConn *postgres.Connection) normalizing.DataSource {
	if cfg.Dataset.Source == config.SourcePostgres {
		logrus.Info("Fonte de dados configurada: PostgreSQL")
		return repository.NewPollSourceRepository(pgConn)
	}

	logrus.WithField("directory", cfg.Dataset.Directory).Info("Fonte de dados configurada: CSV")
	return dataset.NewCSVSource(dataset.Files{
		StoreStatus:   cfg.StoreStatusPath(),
		BusinessHours: cfg.BusinessHoursPath(),
		Timezones:     cfg.TimezonesPath(),
	})
}

// reportJobStore escolhe o armazenamento do estado dos jobs de relatório
func reportJobStore(cfg *config.Config, pgConn *postgres.Connection) jobtracking.Store {
	if cfg.Report.JobStore == config.JobStorePostgres {
		logrus.Info("Job store configurado: PostgreSQL")
		return repository.NewReportJobRepository(pgConn)
	}

	logrus.WithField("path", cfg.Report.JobStorePath).Info("Job store configurado: arquivo JSON")
	return jobtracking.NewFileStore(cfg.Report.JobStorePath)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
