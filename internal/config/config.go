package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Dataset           Dataset           `mapstructure:",squash"`
	Checkpoint        Checkpoint        `mapstructure:",squash"`
	Report            Report            `mapstructure:",squash"`
	CheckpointRebuild CheckpointRebuild `mapstructure:",squash"`
	Watcher           Watcher           `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Dataset aponta para as tabelas de entrada do pipeline. Source escolhe
// entre os arquivos CSV e as tabelas equivalentes no PostgreSQL.
type Dataset struct {
	Source            string `mapstructure:"dataset_source"`
	Directory         string `mapstructure:"dataset_directory"`
	StoreStatusFile   string `mapstructure:"dataset_store_status_file"`
	BusinessHoursFile string `mapstructure:"dataset_business_hours_file"`
	TimezonesFile     string `mapstructure:"dataset_timezones_file"`
}

// Checkpoint configura o artefato intermediário durável
type Checkpoint struct {
	Path string `mapstructure:"checkpoint_path"`
}

// Report configura a geração de relatórios
type Report struct {
	OutputDirectory   string `mapstructure:"report_output_directory"`
	JobStore          string `mapstructure:"report_job_store"`
	JobStorePath      string `mapstructure:"report_job_store_path"`
	MaxConcurrentJobs int    `mapstructure:"report_max_concurrent_jobs"`
}

// CheckpointRebuild configura o agendador de reconstrução do checkpoint
type CheckpointRebuild struct {
	CronSchedule string `mapstructure:"checkpoint_rebuild_cron"`
	Enabled      bool   `mapstructure:"checkpoint_rebuild_enabled"`
}

// Watcher configura a observação do dataset bruto
type Watcher struct {
	Enabled    bool `mapstructure:"watcher_enabled"`
	DebounceMS int  `mapstructure:"watcher_debounce_ms"`
}

// Fontes de dados e de job store aceitas pela configuração
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"

	JobStoreFile     = "file"
	JobStorePostgres = "postgres"
)

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/store_monitor")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("DATASET_SOURCE", SourceCSV)
	viper.SetDefault("DATASET_DIRECTORY", "./data")
	viper.SetDefault("DATASET_STORE_STATUS_FILE", "store_status.csv")
	viper.SetDefault("DATASET_BUSINESS_HOURS_FILE", "business_hours.csv")
	viper.SetDefault("DATASET_TIMEZONES_FILE", "timezones.csv")

	viper.SetDefault("CHECKPOINT_PATH", "./calc/middle.csv")

	viper.SetDefault("REPORT_OUTPUT_DIRECTORY", "./calc/results")
	viper.SetDefault("REPORT_JOB_STORE", JobStoreFile)
	viper.SetDefault("REPORT_JOB_STORE_PATH", "./calc/request_ids.json")
	viper.SetDefault("REPORT_MAX_CONCURRENT_JOBS", 3) // uma task por janela

	viper.SetDefault("CHECKPOINT_REBUILD_CRON", "0 */6 * * *") // a cada 6 horas
	viper.SetDefault("CHECKPOINT_REBUILD_ENABLED", false)

	viper.SetDefault("WATCHER_ENABLED", true)
	viper.SetDefault("WATCHER_DEBOUNCE_MS", 1000) // intervalo mínimo entre rebuilds

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// StoreStatusPath retorna o caminho completo do CSV de polls
func (c *Config) StoreStatusPath() string {
	return filepath.Join(c.Dataset.Directory, c.Dataset.StoreStatusFile)
}

// BusinessHoursPath retorna o caminho completo do CSV de horário comercial
func (c *Config) BusinessHoursPath() string {
	return filepath.Join(c.Dataset.Directory, c.Dataset.BusinessHoursFile)
}

// TimezonesPath retorna o caminho completo do CSV de fusos
func (c *Config) TimezonesPath() string {
	return filepath.Join(c.Dataset.Directory, c.Dataset.TimezonesFile)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
