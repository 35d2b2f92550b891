// Package reporting orquestra as consultas da API: lista de campanhas,
// resumo do dataset, diagnóstico sob demanda e leitura da última análise
// persistida.
package reporting

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-diagnostics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-diagnostics-api/internal/domain"
	"github.com/vfg2006/campaign-diagnostics-api/internal/usecases/analyzing"
	"github.com/vfg2006/campaign-diagnostics-api/internal/usecases/planning"
)

// ErrCampaignNotFound indica que a campanha não tem métricas nem cadastro
var ErrCampaignNotFound = errors.New("campanha não encontrada")

type Reporter interface {
	ListCampaigns() ([]*domain.Campaign, error)
	DatasetSummary() (domain.DatasetSummary, error)
	// DiagnoseCampaign roda o pipeline sob demanda sobre os snapshots
	// persistidos, com filtro opcional de datas
	DiagnoseCampaign(campaignName string, startDate, endDate *time.Time) (*domain.CampaignAnalysis, error)
	// LatestDiagnosis retorna o resultado persistido da última execução
	LatestDiagnosis(campaignName string) ([]domain.EnrichedHypothesis, []domain.CreativeSuggestion, error)
}

type Service struct {
	campaignRepo    repository.CampaignRepository
	snapshotRepo    repository.MetricSnapshotRepository
	diagnosisRepo   repository.DiagnosisRepository
	creativeRepo    repository.CreativeSuggestionRepository
	plannerService  planning.Planner
	analyzerService analyzing.Analyzer
}

func NewService(
	campaignRepo repository.CampaignRepository,
	snapshotRepo repository.MetricSnapshotRepository,
	diagnosisRepo repository.DiagnosisRepository,
	creativeRepo repository.CreativeSuggestionRepository,
	plannerService planning.Planner,
	analyzerService analyzing.Analyzer,
) Reporter {
	return &Service{
		campaignRepo:    campaignRepo,
		snapshotRepo:    snapshotRepo,
		diagnosisRepo:   diagnosisRepo,
		creativeRepo:    creativeRepo,
		plannerService:  plannerService,
		analyzerService: analyzerService,
	}
}

func (s *Service) ListCampaigns() ([]*domain.Campaign, error) {
	campaigns, err := s.campaignRepo.List()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar campanhas")
	}

	return campaigns, nil
}

// DatasetSummary monta as séries de todas as campanhas conhecidas e delega o
// resumo ao planner
func (s *Service) DatasetSummary() (domain.DatasetSummary, error) {
	pointCounts, err := s.snapshotRepo.CountPointsByCampaign()
	if err != nil {
		return domain.DatasetSummary{}, errors.Wrap(err, "erro ao contar pontos por campanha")
	}

	seriesByCampaign := make(map[string]domain.TimeSeries, len(pointCounts))
	for name := range pointCounts {
		series, err := s.snapshotRepo.GetSeries(name, nil, nil)
		if err != nil {
			return domain.DatasetSummary{}, errors.Wrapf(err, "erro ao buscar série da campanha %s", name)
		}
		seriesByCampaign[name] = series
	}

	return s.plannerService.Summarize(seriesByCampaign), nil
}

func (s *Service) DiagnoseCampaign(campaignName string, startDate, endDate *time.Time) (*domain.CampaignAnalysis, error) {
	series, err := s.snapshotRepo.GetSeries(campaignName, startDate, endDate)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar série da campanha %s", campaignName)
	}

	campaign, err := s.campaignRepo.GetByName(campaignName)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar campanha %s", campaignName)
	}

	// Campanha sem cadastro e sem métricas não existe para a API
	if campaign == nil && len(series) == 0 {
		return nil, ErrCampaignNotFound
	}

	var exampleMessages []string
	if campaign != nil {
		exampleMessages = campaign.ExampleMessages
	}

	logrus.WithFields(logrus.Fields{
		"campaign":      campaignName,
		"series_points": len(series),
	}).Info("diagnosis: running on-demand analysis")

	return s.analyzerService.AnalyzeCampaign(campaignName, series, exampleMessages), nil
}

func (s *Service) LatestDiagnosis(campaignName string) ([]domain.EnrichedHypothesis, []domain.CreativeSuggestion, error) {
	hypotheses, err := s.diagnosisRepo.GetLatestByCampaign(campaignName)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "erro ao buscar diagnósticos da campanha %s", campaignName)
	}

	if len(hypotheses) == 0 {
		return nil, nil, ErrCampaignNotFound
	}

	suggestions, err := s.creativeRepo.GetLatestByCampaign(campaignName)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "erro ao buscar sugestões da campanha %s", campaignName)
	}

	return hypotheses, suggestions, nil
}
