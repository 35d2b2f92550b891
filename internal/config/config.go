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
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Analysis     Analysis     `mapstructure:",squash"`
	Planner      Planner      `mapstructure:",squash"`
	Ingest       Ingest       `mapstructure:",squash"`
	AnalysisSync AnalysisSync `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
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

// Analysis é a configuração compartilhada do núcleo de diagnóstico. O mesmo
// objeto é injetado na geração de hipóteses e no enriquecimento de evidências
// para que os dois estágios nunca divirjam em limiares.
type Analysis struct {
	RoasDropPct float64 `mapstructure:"analysis_roas_drop_pct"`
	CtrDropPct  float64 `mapstructure:"analysis_ctr_drop_pct"`
	MinPoints   int     `mapstructure:"analysis_min_points"`
}

// Planner controla a seleção de campanhas-alvo da sincronização agendada
type Planner struct {
	MinSeriesPoints int `mapstructure:"planner_min_series_points"`
	MaxCampaigns    int `mapstructure:"planner_max_campaigns"`
}

// Ingest configura a carga do CSV de métricas diárias
type Ingest struct {
	CSVPath    string  `mapstructure:"ingest_csv_path"`
	SampleFrac float64 `mapstructure:"ingest_sample_frac"`
}

// AnalysisSync configura o agendador de análise diária das campanhas
type AnalysisSync struct {
	CronSchedule      string `mapstructure:"analysis_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"analysis_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"analysis_sync_enabled"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/diagnostics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Limiares do diagnóstico: queda percentual que dispara cada hipótese e
	// quantidade mínima de pontos para avaliar a série
	viper.SetDefault("ANALYSIS_ROAS_DROP_PCT", 20.0)
	viper.SetDefault("ANALYSIS_CTR_DROP_PCT", 15.0)
	viper.SetDefault("ANALYSIS_MIN_POINTS", 4)

	viper.SetDefault("PLANNER_MIN_SERIES_POINTS", 10)
	viper.SetDefault("PLANNER_MAX_CAMPAIGNS", 3)

	viper.SetDefault("INGEST_CSV_PATH", "data/sample.csv")
	viper.SetDefault("INGEST_SAMPLE_FRAC", 0.0) // 0 = dataset completo

	viper.SetDefault("ANALYSIS_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("ANALYSIS_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("ANALYSIS_SYNC_ENABLED", false)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
