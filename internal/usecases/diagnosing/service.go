// Package diagnosing gera hipóteses de alto nível sobre a mudança de
// desempenho de uma campanha a partir da divisão pré/pós da série temporal.
// Este estágio decide O QUE mudou; a evidência numérica, o impacto e a
// confiança são anexados depois pelo pacote evaluating.
package diagnosing

import (
	"math"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-diagnostics-api/internal/config"
	"github.com/vfg2006/campaign-diagnostics-api/internal/domain"
	"github.com/vfg2006/campaign-diagnostics-api/pkg/timeseries"
)

// Diagnoser gera as hipóteses candidatas de uma campanha
type Diagnoser interface {
	GenerateHypotheses(campaignName string, series domain.TimeSeries) []domain.Hypothesis
}

type Service struct {
	cfg config.Analysis
}

// NewService cria o gerador de hipóteses com a configuração compartilhada
// de limiares do diagnóstico
func NewService(cfg config.Analysis) Diagnoser {
	return &Service{cfg: cfg}
}

// GenerateHypotheses avalia as regras em ordem fixa (roas → ctr → fadiga →
// nenhuma). A ordem importa: a seleção de issue primário desempata pelo
// primeiro encontrado na lista.
func (s *Service) GenerateHypotheses(campaignName string, series domain.TimeSeries) []domain.Hypothesis {
	hypotheses := make([]domain.Hypothesis, 0, 3)

	// Portão de qualidade de dado: com poucos pontos nenhuma outra regra é
	// avaliada, mesmo que os limiares disparassem
	if len(series) < s.cfg.MinPoints {
		logrus.WithFields(logrus.Fields{
			"campaign":   campaignName,
			"points":     len(series),
			"min_points": s.cfg.MinPoints,
		}).Debug("diagnosing: série insuficiente para avaliar hipóteses")

		return append(hypotheses, domain.NewHypothesis(domain.HypothesisInsufficientData))
	}

	roasDelta := timeseries.StatsFor(series, domain.MetricROAS).DeltaPct
	ctrDelta := timeseries.StatsFor(series, domain.MetricCTR).DeltaPct
	impsDelta := timeseries.StatsFor(series, domain.MetricImpressions).DeltaPct

	if roasDelta < -s.cfg.RoasDropPct {
		hypotheses = append(hypotheses, domain.NewHypothesis(domain.HypothesisROASDrop))
	}

	if ctrDelta < -s.cfg.CtrDropPct {
		hypotheses = append(hypotheses, domain.NewHypothesis(domain.HypothesisCTRDrop))
	}

	// Fadiga criativa: impressões subindo enquanto o CTR cai além do limiar
	if impsDelta > 0 && ctrDelta < 0 && math.Abs(ctrDelta) >= s.cfg.CtrDropPct {
		hypotheses = append(hypotheses, domain.NewHypothesis(domain.HypothesisFatigue))
	}

	if len(hypotheses) == 0 {
		hypotheses = append(hypotheses, domain.NewHypothesis(domain.HypothesisNone))
	}

	logrus.WithFields(logrus.Fields{
		"campaign":   campaignName,
		"hypotheses": len(hypotheses),
	}).Debug("diagnosing: hipóteses geradas")

	return hypotheses
}
