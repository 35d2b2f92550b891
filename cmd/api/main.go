package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-diagnostics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-diagnostics-api/infrastructure/integrator/csvsource"
	"github.com/vfg2006/campaign-diagnostics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-diagnostics-api/internal/api"
	"github.com/vfg2006/campaign-diagnostics-api/internal/config"
	"github.com/vfg2006/campaign-diagnostics-api/internal/scheduler"
	"github.com/vfg2006/campaign-diagnostics-api/internal/usecases/analyzing"
	"github.com/vfg2006/campaign-diagnostics-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-diagnostics-api/internal/usecases/diagnosing"
	"github.com/vfg2006/campaign-diagnostics-api/internal/usecases/evaluating"
	"github.com/vfg2006/campaign-diagnostics-api/internal/usecases/ingesting"
	"github.com/vfg2006/campaign-diagnostics-api/internal/usecases/planning"
	"github.com/vfg2006/campaign-diagnostics-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-diagnostics-api/internal/usecases/suggesting"
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

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	campaignRepo := repository.NewCampaignRepository(pgConn)
	snapshotRepo := repository.NewMetricSnapshotRepository(pgConn)
	diagnosisRepo := repository.NewDiagnosisRepository(pgConn)
	creativeRepo := repository.NewCreativeSuggestionRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// Núcleo do diagnóstico: os três estágios compartilham os mesmos limiares
	analyzerService := analyzing.NewService(
		diagnosing.NewService(cfg.Analysis),
		evaluating.NewService(cfg.Analysis),
		suggesting.NewService(),
	)

	plannerService := planning.NewService(cfg.Planner)

	reportingService := reporting.NewService(
		campaignRepo,
		snapshotRepo,
		diagnosisRepo,
		creativeRepo,
		plannerService,
		analyzerService,
	)

	// Carga inicial do CSV de métricas, quando configurada
	if cfg.Ingest.CSVPath != "" {
		ingester := ingesting.NewService(csvsource.NewLoader(cfg.Ingest), campaignRepo, snapshotRepo)
		if err := ingester.IngestCSV(cfg.Ingest.CSVPath); err != nil {
			logrus.WithError(err).Error("Erro na ingestão do CSV de métricas")
		}
	}

	analysisSyncService := scheduler.NewAnalysisSyncService(
		campaignRepo,
		snapshotRepo,
		diagnosisRepo,
		creativeRepo,
		plannerService,
		analyzerService,
		cfg,
	)

	if err := analysisSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de análise de campanhas")
	} else {
		logrus.Info("Agendador de análise de campanhas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportingService,
		authenticator,
		analysisSyncService,
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
