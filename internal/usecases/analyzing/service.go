// Package analyzing compõe o pipeline de diagnóstico de uma campanha:
// série temporal → hipóteses → evidências → sugestões criativas.
// Cada invocação é independente e livre de estado compartilhado, então
// campanhas podem ser analisadas em paralelo sem coordenação.
package analyzing

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-diagnostics-api/internal/domain"
	"github.com/vfg2006/campaign-diagnostics-api/internal/usecases/diagnosing"
	"github.com/vfg2006/campaign-diagnostics-api/internal/usecases/evaluating"
	"github.com/vfg2006/campaign-diagnostics-api/internal/usecases/suggesting"
)

// Analyzer executa o pipeline completo para uma campanha
type Analyzer interface {
	AnalyzeCampaign(campaignName string, series domain.TimeSeries, exampleMessages []string) *domain.CampaignAnalysis
}

type Service struct {
	diagnoser diagnosing.Diagnoser
	enricher  evaluating.Enricher
	suggester suggesting.Suggester
}

func NewService(
	diagnoser diagnosing.Diagnoser,
	enricher evaluating.Enricher,
	suggester suggesting.Suggester,
) Analyzer {
	return &Service{
		diagnoser: diagnoser,
		enricher:  enricher,
		suggester: suggester,
	}
}

// AnalyzeCampaign roda os três estágios em sequência e devolve o resultado
// com a telemetria da execução. Nunca retorna erro: entradas degeneradas
// produzem saídas bem formadas (série vazia → h_insufficient_data →
// criativos genéricos).
func (s *Service) AnalyzeCampaign(campaignName string, series domain.TimeSeries, exampleMessages []string) *domain.CampaignAnalysis {
	startedAt := time.Now()

	hypotheses := s.diagnoser.GenerateHypotheses(campaignName, series)
	enriched := s.enricher.Enrich(campaignName, series, hypotheses)
	suggestions := s.suggester.Suggest(campaignName, enriched, exampleMessages)

	telemetry := domain.AnalysisTelemetry{
		StartedAt:       startedAt,
		Duration:        time.Since(startedAt),
		SeriesPoints:    len(series),
		HypothesisCount: len(enriched),
	}
	if primary := suggesting.SelectPrimaryIssue(enriched); primary != nil {
		telemetry.PrimaryIssueID = primary.ID
	}

	logrus.WithFields(logrus.Fields{
		"campaign":      campaignName,
		"series_points": telemetry.SeriesPoints,
		"hypotheses":    telemetry.HypothesisCount,
		"primary_issue": telemetry.PrimaryIssueID,
		"duration_ms":   telemetry.Duration.Milliseconds(),
	}).Info("analyzing: pipeline de diagnóstico concluído")

	return &domain.CampaignAnalysis{
		CampaignName: campaignName,
		Hypotheses:   enriched,
		Suggestions:  suggestions,
		Telemetry:    telemetry,
	}
}
