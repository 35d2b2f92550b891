package diagnosing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-diagnostics-api/internal/config"
	"github.com/vfg2006/campaign-diagnostics-api/internal/domain"
)

func defaultAnalysisConfig() config.Analysis {
	return config.Analysis{
		RoasDropPct: 20.0,
		CtrDropPct:  15.0,
		MinPoints:   4,
	}
}

// buildSeries monta uma série diária com metade pré e metade pós
func buildSeries(pre, post domain.MetricSnapshot, days int) domain.TimeSeries {
	series := make(domain.TimeSeries, 0, days)
	half := days / 2
	for i := 0; i < days; i++ {
		snapshot := pre
		if i >= half {
			snapshot = post
		}
		snapshot.Date = time.Date(2025, 3, 1+i, 0, 0, 0, 0, time.UTC)
		series = append(series, snapshot)
	}
	return series
}

func ids(hypotheses []domain.Hypothesis) []domain.HypothesisID {
	out := make([]domain.HypothesisID, 0, len(hypotheses))
	for _, h := range hypotheses {
		out = append(out, h.ID)
	}
	return out
}

func TestGenerateHypotheses(t *testing.T) {
	service := NewService(defaultAnalysisConfig())

	tests := []struct {
		name    string
		series  domain.TimeSeries
		wantIDs []domain.HypothesisID
	}{
		{
			name:    "Série vazia dispara apenas dados insuficientes",
			series:  domain.TimeSeries{},
			wantIDs: []domain.HypothesisID{domain.HypothesisInsufficientData},
		},
		{
			name:    "Dois pontos ficam abaixo do mínimo",
			series:  buildSeries(domain.MetricSnapshot{ROAS: 1.0, CTR: 0.1}, domain.MetricSnapshot{ROAS: 0.1, CTR: 0.01}, 2),
			wantIDs: []domain.HypothesisID{domain.HypothesisInsufficientData},
		},
		{
			name: "Queda de ROAS acima do limiar",
			series: buildSeries(
				domain.MetricSnapshot{ROAS: 4.0, CTR: 2.0, Impressions: 1000},
				domain.MetricSnapshot{ROAS: 2.0, CTR: 2.0, Impressions: 1000},
				8,
			),
			wantIDs: []domain.HypothesisID{domain.HypothesisROASDrop},
		},
		{
			name: "ROAS estável nunca dispara queda de ROAS",
			series: buildSeries(
				domain.MetricSnapshot{ROAS: 3.0, CTR: 2.0, Impressions: 1000},
				domain.MetricSnapshot{ROAS: 3.0, CTR: 2.0, Impressions: 1000},
				8,
			),
			wantIDs: []domain.HypothesisID{domain.HypothesisNone},
		},
		{
			name: "Queda de CTR acima do limiar",
			series: buildSeries(
				domain.MetricSnapshot{ROAS: 3.0, CTR: 2.0, Impressions: 1000},
				domain.MetricSnapshot{ROAS: 3.0, CTR: 1.5, Impressions: 900},
				8,
			),
			wantIDs: []domain.HypothesisID{domain.HypothesisCTRDrop},
		},
		{
			name: "Fadiga: impressões sobem e CTR cai além do limiar",
			series: buildSeries(
				domain.MetricSnapshot{ROAS: 3.0, CTR: 2.0, Impressions: 1000},
				domain.MetricSnapshot{ROAS: 3.0, CTR: 1.5, Impressions: 1500},
				8,
			),
			wantIDs: []domain.HypothesisID{domain.HypothesisCTRDrop, domain.HypothesisFatigue},
		},
		{
			name: "Todas as regras disparando preservam a ordem fixa",
			series: buildSeries(
				domain.MetricSnapshot{ROAS: 4.0, CTR: 2.0, Impressions: 1000},
				domain.MetricSnapshot{ROAS: 1.0, CTR: 1.0, Impressions: 2000},
				8,
			),
			wantIDs: []domain.HypothesisID{
				domain.HypothesisROASDrop,
				domain.HypothesisCTRDrop,
				domain.HypothesisFatigue,
			},
		},
		{
			name: "CTR caindo pouco não caracteriza fadiga",
			series: buildSeries(
				domain.MetricSnapshot{ROAS: 3.0, CTR: 2.0, Impressions: 1000},
				domain.MetricSnapshot{ROAS: 3.0, CTR: 1.9, Impressions: 1500},
				8,
			),
			wantIDs: []domain.HypothesisID{domain.HypothesisNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.GenerateHypotheses("camp_test", tt.series)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestGenerateHypothesesCarriesSegmentAndStatement(t *testing.T) {
	service := NewService(defaultAnalysisConfig())

	got := service.GenerateHypotheses("camp_test", domain.TimeSeries{})
	assert.Len(t, got, 1)
	assert.Equal(t, domain.SegmentOverall, got[0].Segment)
	assert.Equal(t, "Insufficient data to draw strong conclusions", got[0].Statement)
}

func TestGenerateHypothesesAllZeroMetrics(t *testing.T) {
	service := NewService(defaultAnalysisConfig())

	// Tudo zero: nenhum limiar dispara e a saída é exatamente h_none
	series := buildSeries(domain.MetricSnapshot{}, domain.MetricSnapshot{}, 6)
	got := service.GenerateHypotheses("camp_zero", series)
	assert.Equal(t, []domain.HypothesisID{domain.HypothesisNone}, ids(got))
}
