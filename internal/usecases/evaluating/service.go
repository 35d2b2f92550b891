// Package evaluating anexa evidência numérica, impacto e confiança às
// hipóteses geradas pelo pacote diagnosing. As estatísticas são recalculadas
// via pkg/timeseries, a mesma fonte usada na geração, então os dois
// estágios enxergam exatamente os mesmos números.
package evaluating

import (
	"fmt"
	"math"

	"github.com/vfg2006/campaign-diagnostics-api/internal/config"
	"github.com/vfg2006/campaign-diagnostics-api/internal/domain"
	"github.com/vfg2006/campaign-diagnostics-api/pkg/timeseries"
	"github.com/vfg2006/campaign-diagnostics-api/pkg/utils"
)

// Confianças fixas dos diagnósticos não numéricos
const (
	confidenceInsufficientData = 0.2
	confidenceNoShift          = 0.5
	confidenceUnknown          = 0.3
)

// Enricher anexa evidência, impacto e confiança a cada hipótese
type Enricher interface {
	Enrich(campaignName string, series domain.TimeSeries, hypotheses []domain.Hypothesis) []domain.EnrichedHypothesis
}

type Service struct {
	cfg config.Analysis
}

// NewService cria o enriquecedor com a mesma configuração compartilhada do
// gerador de hipóteses
func NewService(cfg config.Analysis) Enricher {
	return &Service{cfg: cfg}
}

// Enrich processa as hipóteses preservando a ordem de entrada. Nunca retorna
// erro: ids desconhecidos recebem defaults defensivos em vez de falhar.
func (s *Service) Enrich(campaignName string, series domain.TimeSeries, hypotheses []domain.Hypothesis) []domain.EnrichedHypothesis {
	enriched := make([]domain.EnrichedHypothesis, 0, len(hypotheses))
	for _, hypothesis := range hypotheses {
		enriched = append(enriched, s.enrichOne(campaignName, series, hypothesis))
	}
	return enriched
}

func (s *Service) enrichOne(campaignName string, series domain.TimeSeries, hypothesis domain.Hypothesis) domain.EnrichedHypothesis {
	out := domain.EnrichedHypothesis{
		Hypothesis:   hypothesis,
		CampaignName: campaignName,
	}

	switch hypothesis.ID {
	case domain.HypothesisROASDrop:
		stats := timeseries.StatsFor(series, domain.MetricROAS)
		out.Evidence = domain.Evidence{ROAS: &stats}
		out.Impact = impactFromDelta(stats.DeltaPct, false)
		out.Confidence = confidenceFromDelta(stats.DeltaPct)

	case domain.HypothesisCTRDrop:
		stats := timeseries.StatsFor(series, domain.MetricCTR)
		out.Evidence = domain.Evidence{CTR: &stats}
		out.Impact = impactFromDelta(stats.DeltaPct, false)
		out.Confidence = confidenceFromDelta(stats.DeltaPct)

	case domain.HypothesisFatigue:
		ctrStats := timeseries.StatsFor(series, domain.MetricCTR)
		impsStats := timeseries.StatsFor(series, domain.MetricImpressions)
		out.Evidence = domain.Evidence{CTR: &ctrStats, Impressions: &impsStats}
		// Fadiga criativa é sempre tratada como severidade máxima; a
		// confiança vem só da magnitude da queda de CTR
		out.Impact = domain.ImpactHigh
		out.Confidence = confidenceFromDelta(ctrStats.DeltaPct)

	case domain.HypothesisInsufficientData:
		points := len(series)
		out.Evidence = domain.Evidence{
			Reason: fmt.Sprintf("series has %d points, fewer than the %d required", points, s.cfg.MinPoints),
			Points: &points,
		}
		out.Impact = domain.ImpactLow
		out.Confidence = confidenceInsufficientData

	case domain.HypothesisNone:
		// Todos os blocos vão junto para fins de auditoria do "nada mudou"
		roasStats := timeseries.StatsFor(series, domain.MetricROAS)
		ctrStats := timeseries.StatsFor(series, domain.MetricCTR)
		impsStats := timeseries.StatsFor(series, domain.MetricImpressions)
		spendStats := timeseries.StatsFor(series, domain.MetricSpend)
		out.Evidence = domain.Evidence{
			ROAS:        &roasStats,
			CTR:         &ctrStats,
			Impressions: &impsStats,
			Spend:       &spendStats,
		}
		out.Impact = domain.ImpactLow
		out.Confidence = confidenceNoShift

	default:
		out.Impact = domain.ImpactLow
		out.Confidence = confidenceUnknown
	}

	out.Confidence = utils.RoundWithThreeDecimalPlace(out.Confidence)

	return out
}

// impactFromDelta classifica a severidade pela magnitude da variação.
// inverse é reservado para métricas cujo sentido adverso é o aumento.
func impactFromDelta(deltaPct float64, inverse bool) domain.Impact {
	val := deltaPct
	if inverse {
		val = -deltaPct
	}

	switch {
	case val <= -40:
		return domain.ImpactHigh
	case val <= -20:
		return domain.ImpactMedium
	default:
		return domain.ImpactLow
	}
}

// confidenceFromDelta é uma função escada monotônica da magnitude da
// variação, limitada a [0.30, 0.90]. Total: ±Inf cai no degrau mais alto.
func confidenceFromDelta(deltaPct float64) float64 {
	magnitude := math.Abs(deltaPct)

	switch {
	case magnitude >= 50:
		return 0.90
	case magnitude >= 30:
		return 0.75
	case magnitude >= 15:
		return 0.60
	case magnitude >= 5:
		return 0.45
	default:
		return 0.30
	}
}
