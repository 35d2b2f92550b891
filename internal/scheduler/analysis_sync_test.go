package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-diagnostics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-diagnostics-api/internal/config"
	"github.com/vfg2006/campaign-diagnostics-api/internal/domain"
	"github.com/vfg2006/campaign-diagnostics-api/internal/usecases/analyzing"
	"github.com/vfg2006/campaign-diagnostics-api/internal/usecases/diagnosing"
	"github.com/vfg2006/campaign-diagnostics-api/internal/usecases/evaluating"
	"github.com/vfg2006/campaign-diagnostics-api/internal/usecases/planning"
	"github.com/vfg2006/campaign-diagnostics-api/internal/usecases/suggesting"
	"go.uber.org/mock/gomock"
)

func newTestAnalyzer() analyzing.Analyzer {
	analysisCfg := config.Analysis{RoasDropPct: 20.0, CtrDropPct: 15.0, MinPoints: 4}
	return analyzing.NewService(
		diagnosing.NewService(analysisCfg),
		evaluating.NewService(analysisCfg),
		suggesting.NewService(),
	)
}

// roasDropSeries monta uma série de 6 dias em que o ROAS cai pela metade
func roasDropSeries(start time.Time) domain.TimeSeries {
	series := make(domain.TimeSeries, 0, 6)
	for i := 0; i < 6; i++ {
		roas := 4.0
		if i >= 3 {
			roas = 2.0
		}
		series = append(series, domain.MetricSnapshot{
			Date:        start.AddDate(0, 0, i),
			Spend:       100,
			Impressions: 10000,
			Clicks:      200,
			Revenue:     roas * 100,
			CTR:         2.0,
			ROAS:        roas,
		})
	}
	return series
}

func TestAnalysisSyncService_processCampaign(t *testing.T) {
	analyzedAt := time.Date(2024, 5, 10, 3, 0, 0, 0, time.UTC)
	seriesStart := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		setup func(
			campaignRepo *mocks.MockCampaignRepository,
			snapshotRepo *mocks.MockMetricSnapshotRepository,
			diagnosisRepo *mocks.MockDiagnosisRepository,
			creativeRepo *mocks.MockCreativeSuggestionRepository,
		)
	}{
		{
			name: "Campanha com queda de ROAS - persiste hipóteses e sugestões",
			setup: func(
				campaignRepo *mocks.MockCampaignRepository,
				snapshotRepo *mocks.MockMetricSnapshotRepository,
				diagnosisRepo *mocks.MockDiagnosisRepository,
				creativeRepo *mocks.MockCreativeSuggestionRepository,
			) {
				snapshotRepo.EXPECT().
					GetSeries("summer_sale", nil, nil).
					Return(roasDropSeries(seriesStart), nil)

				campaignRepo.EXPECT().
					GetByName("summer_sale").
					Return(&domain.Campaign{
						Name:            "summer_sale",
						ExampleMessages: []string{"Best shoes in town"},
					}, nil)

				diagnosisRepo.EXPECT().
					SaveAll("summer_sale", analyzedAt, gomock.Any()).
					DoAndReturn(func(_ string, _ time.Time, hypotheses []domain.EnrichedHypothesis) error {
						assert.NotEmpty(t, hypotheses)
						assert.Equal(t, domain.HypothesisROASDrop, hypotheses[0].ID)
						return nil
					})

				creativeRepo.EXPECT().
					SaveAll("summer_sale", analyzedAt, gomock.Any()).
					DoAndReturn(func(_ string, _ time.Time, suggestions []domain.CreativeSuggestion) error {
						assert.Len(t, suggestions, 3)
						return nil
					})
			},
		},
		{
			name: "Campanha desconhecida no cadastro - segue sem mensagens de exemplo",
			setup: func(
				campaignRepo *mocks.MockCampaignRepository,
				snapshotRepo *mocks.MockMetricSnapshotRepository,
				diagnosisRepo *mocks.MockDiagnosisRepository,
				creativeRepo *mocks.MockCreativeSuggestionRepository,
			) {
				snapshotRepo.EXPECT().
					GetSeries("orphan", nil, nil).
					Return(roasDropSeries(seriesStart), nil)

				campaignRepo.EXPECT().
					GetByName("orphan").
					Return(nil, nil)

				diagnosisRepo.EXPECT().
					SaveAll("orphan", analyzedAt, gomock.Any()).
					Return(nil)

				creativeRepo.EXPECT().
					SaveAll("orphan", analyzedAt, gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "Erro ao buscar série - não persiste nada",
			setup: func(
				campaignRepo *mocks.MockCampaignRepository,
				snapshotRepo *mocks.MockMetricSnapshotRepository,
				diagnosisRepo *mocks.MockDiagnosisRepository,
				creativeRepo *mocks.MockCreativeSuggestionRepository,
			) {
				snapshotRepo.EXPECT().
					GetSeries(gomock.Any(), nil, nil).
					Return(nil, assert.AnError)
			},
		},
	}

	campaignNames := []string{"summer_sale", "orphan", "broken"}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			campaignRepo := mocks.NewMockCampaignRepository(ctrl)
			snapshotRepo := mocks.NewMockMetricSnapshotRepository(ctrl)
			diagnosisRepo := mocks.NewMockDiagnosisRepository(ctrl)
			creativeRepo := mocks.NewMockCreativeSuggestionRepository(ctrl)

			tt.setup(campaignRepo, snapshotRepo, diagnosisRepo, creativeRepo)

			service := &AnalysisSyncService{
				campaignRepo:    campaignRepo,
				snapshotRepo:    snapshotRepo,
				diagnosisRepo:   diagnosisRepo,
				creativeRepo:    creativeRepo,
				analyzerService: newTestAnalyzer(),
			}

			service.processCampaign(campaignNames[i], analyzedAt)
		})
	}
}

func TestAnalysisSyncService_getTargetCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshotRepo := mocks.NewMockMetricSnapshotRepository(ctrl)
	snapshotRepo.EXPECT().
		CountPointsByCampaign().
		Return(map[string]int{
			"campaign_a": 30,
			"campaign_b": 12,
			"campaign_c": 3,
			"campaign_d": 25,
		}, nil)

	service := &AnalysisSyncService{
		snapshotRepo: snapshotRepo,
		plannerService: planning.NewService(config.Planner{
			MinSeriesPoints: 10,
			MaxCampaigns:    3,
		}),
	}

	targets, err := service.getTargetCampaigns()
	assert.NoError(t, err)
	assert.Equal(t, []string{"campaign_a", "campaign_d", "campaign_b"}, targets)
}

func TestAnalysisSyncService_getTargetCampaigns_empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshotRepo := mocks.NewMockMetricSnapshotRepository(ctrl)
	snapshotRepo.EXPECT().
		CountPointsByCampaign().
		Return(map[string]int{}, nil)

	service := &AnalysisSyncService{snapshotRepo: snapshotRepo}

	targets, err := service.getTargetCampaigns()
	assert.NoError(t, err)
	assert.Empty(t, targets)
}

func TestAnalysisSyncService_GetStatus(t *testing.T) {
	service := &AnalysisSyncService{
		config: AnalysisSyncConfig{
			CronSchedule:      "0 3 * * *",
			MaxConcurrentJobs: 5,
			SyncEnabled:       true,
		},
	}

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, 5, status["sync_max_concurrent"])
}
