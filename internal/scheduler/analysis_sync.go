// Package scheduler contém os serviços de agendamento para análise periódica
// das campanhas
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-diagnostics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-diagnostics-api/internal/config"
	"github.com/vfg2006/campaign-diagnostics-api/internal/usecases/analyzing"
	"github.com/vfg2006/campaign-diagnostics-api/internal/usecases/planning"
)

// AnalysisSyncConfig representa a configuração do agendador de análise
type AnalysisSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// AnalysisSyncService gerencia o agendamento e execução da análise diária das
// campanhas: seleciona as campanhas-alvo, roda o pipeline de diagnóstico e
// persiste hipóteses e sugestões criativas
type AnalysisSyncService struct {
	scheduler           *gocron.Scheduler
	config              AnalysisSyncConfig
	campaignRepo        repository.CampaignRepository
	snapshotRepo        repository.MetricSnapshotRepository
	diagnosisRepo       repository.DiagnosisRepository
	creativeRepo        repository.CreativeSuggestionRepository
	plannerService      planning.Planner
	analyzerService     analyzing.Analyzer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAnalysisSyncService cria uma nova instância do serviço de análise agendada
func NewAnalysisSyncService(
	campaignRepo repository.CampaignRepository,
	snapshotRepo repository.MetricSnapshotRepository,
	diagnosisRepo repository.DiagnosisRepository,
	creativeRepo repository.CreativeSuggestionRepository,
	plannerService planning.Planner,
	analyzerService analyzing.Analyzer,
	appConfig *config.Config,
) *AnalysisSyncService {
	syncConfig := AnalysisSyncConfig{
		CronSchedule:      appConfig.AnalysisSync.CronSchedule,
		MaxConcurrentJobs: appConfig.AnalysisSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.AnalysisSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de análise de campanhas carregada")

	return &AnalysisSyncService{
		scheduler:       scheduler,
		config:          syncConfig,
		campaignRepo:    campaignRepo,
		snapshotRepo:    snapshotRepo,
		diagnosisRepo:   diagnosisRepo,
		creativeRepo:    creativeRepo,
		plannerService:  plannerService,
		analyzerService: analyzerService,
		syncRunning:     false,
	}
}

// Start inicia o agendador
func (s *AnalysisSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Análise agendada de campanhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de análise de campanhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.analyzeAllCampaigns()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar análise de campanhas: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de análise de campanhas")
		s.scheduler.Stop()
	}()

	return nil
}

// analyzeAllCampaigns roda o pipeline de diagnóstico para as campanhas-alvo
func (s *AnalysisSyncService) analyzeAllCampaigns() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Análise de campanhas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando análise agendada das campanhas")

	targets, err := s.getTargetCampaigns()
	if err != nil {
		logrus.WithError(err).Error("Erro ao selecionar campanhas para análise")
		return
	}

	if len(targets) == 0 {
		logrus.Info("Nenhuma campanha encontrada para análise")
		return
	}

	s.processCampaigns(targets, startTime)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"campaigns": len(targets),
	}).Info("Análise agendada das campanhas concluída")

	s.lastSyncCompletedAt = time.Now()
}

// getTargetCampaigns consulta a contagem de pontos por campanha e delega a
// seleção ao planner
func (s *AnalysisSyncService) getTargetCampaigns() ([]string, error) {
	pointCounts, err := s.snapshotRepo.CountPointsByCampaign()
	if err != nil {
		return nil, err
	}

	if len(pointCounts) == 0 {
		logrus.Info("Nenhuma campanha com métricas registradas")
		return []string{}, nil
	}

	targets := s.plannerService.SelectTargetCampaigns(pointCounts)

	logrus.WithFields(logrus.Fields{
		"known_campaigns":  len(pointCounts),
		"target_campaigns": len(targets),
	}).Info("Campanhas selecionadas para análise")

	return targets, nil
}

// processCampaigns analisa as campanhas-alvo com workers concorrentes
func (s *AnalysisSyncService) processCampaigns(targets []string, analyzedAt time.Time) {
	// Canal para controlar o número de workers concorrentes
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, name := range targets {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(campaignName string) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			s.processCampaign(campaignName, analyzedAt)
		}(name)
	}

	// Aguardar todos os workers terminarem
	wg.Wait()
}

// processCampaign roda o pipeline completo para uma campanha e persiste o
// resultado
func (s *AnalysisSyncService) processCampaign(campaignName string, analyzedAt time.Time) {
	series, err := s.snapshotRepo.GetSeries(campaignName, nil, nil)
	if err != nil {
		logrus.WithError(err).WithField("campaign", campaignName).Error("Erro ao buscar série de métricas da campanha")
		return
	}

	var exampleMessages []string
	campaign, err := s.campaignRepo.GetByName(campaignName)
	if err != nil {
		logrus.WithError(err).WithField("campaign", campaignName).Warn("Erro ao buscar campanha, seguindo sem mensagens de exemplo")
	}
	if campaign != nil {
		exampleMessages = campaign.ExampleMessages
	}

	analysis := s.analyzerService.AnalyzeCampaign(campaignName, series, exampleMessages)

	if err := s.diagnosisRepo.SaveAll(campaignName, analyzedAt, analysis.Hypotheses); err != nil {
		logrus.WithError(err).WithField("campaign", campaignName).Error("Erro ao salvar hipóteses da campanha")
		return
	}

	if err := s.creativeRepo.SaveAll(campaignName, analyzedAt, analysis.Suggestions); err != nil {
		logrus.WithError(err).WithField("campaign", campaignName).Error("Erro ao salvar sugestões criativas da campanha")
		return
	}

	logrus.WithFields(logrus.Fields{
		"campaign":      campaignName,
		"series_points": analysis.Telemetry.SeriesPoints,
		"hypotheses":    analysis.Telemetry.HypothesisCount,
		"primary_issue": analysis.Telemetry.PrimaryIssueID,
	}).Info("Análise da campanha persistida")
}

// TriggerManualSync inicia manualmente uma análise das campanhas
func (s *AnalysisSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Análise de campanhas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando análise manual das campanhas")
	go s.analyzeAllCampaigns()
}

// GetStatus retorna o status atual do agendador
func (s *AnalysisSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
