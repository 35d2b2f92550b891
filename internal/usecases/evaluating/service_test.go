package evaluating

import (
	"math"
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

func TestImpactFromDelta(t *testing.T) {
	tests := []struct {
		name     string
		deltaPct float64
		inverse  bool
		want     domain.Impact
	}{
		{"Queda de 40% é o limite do impacto alto", -40, false, domain.ImpactHigh},
		{"Logo acima de -40 é médio", -39.99, false, domain.ImpactMedium},
		{"Queda de 20% é o limite do impacto médio", -20, false, domain.ImpactMedium},
		{"Logo acima de -20 é baixo", -19.99, false, domain.ImpactLow},
		{"Variação positiva é baixa", 35, false, domain.ImpactLow},
		{"Inverso: aumento de 45% vira alto", 45, true, domain.ImpactHigh},
		{"Inverso: queda vira baixo", -45, true, domain.ImpactLow},
		{"-Inf é alto", math.Inf(-1), false, domain.ImpactHigh},
		{"+Inf é baixo", math.Inf(1), false, domain.ImpactLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, impactFromDelta(tt.deltaPct, tt.inverse))
		})
	}
}

func TestConfidenceFromDelta(t *testing.T) {
	tests := []struct {
		deltaPct float64
		want     float64
	}{
		{0, 0.30},
		{4.99, 0.30},
		{5, 0.45},
		{-14.99, 0.45},
		{15, 0.60},
		{-25, 0.60},
		{30, 0.75},
		{-49.99, 0.75},
		{50, 0.90},
		{-80, 0.90},
		{math.Inf(1), 0.90},
		{math.Inf(-1), 0.90},
	}

	for _, tt := range tests {
		got := confidenceFromDelta(tt.deltaPct)
		assert.Equal(t, tt.want, got, "delta_pct=%v", tt.deltaPct)
		assert.GreaterOrEqual(t, got, 0.30)
		assert.LessOrEqual(t, got, 0.90)
	}
}

func TestEnrichROASDrop(t *testing.T) {
	service := NewService(defaultAnalysisConfig())

	// pré 4.0 → pós 2.0 = -50%: impacto alto, confiança 0.90
	series := buildSeries(domain.MetricSnapshot{ROAS: 4.0}, domain.MetricSnapshot{ROAS: 2.0}, 8)
	hypotheses := []domain.Hypothesis{domain.NewHypothesis(domain.HypothesisROASDrop)}

	enriched := service.Enrich("camp_a", series, hypotheses)
	assert.Len(t, enriched, 1)

	got := enriched[0]
	assert.Equal(t, "camp_a", got.CampaignName)
	assert.Equal(t, domain.ImpactHigh, got.Impact)
	assert.Equal(t, 0.90, got.Confidence)

	if assert.NotNil(t, got.Evidence.ROAS) {
		assert.Equal(t, 4.0, got.Evidence.ROAS.Pre)
		assert.Equal(t, 2.0, got.Evidence.ROAS.Post)
		assert.Equal(t, -50.0, got.Evidence.ROAS.DeltaPct)
	}
	assert.Nil(t, got.Evidence.CTR)
}

func TestEnrichFatigue(t *testing.T) {
	service := NewService(defaultAnalysisConfig())

	// impressões +50%, CTR -25%: impacto fixo alto, confiança de -25 → 0.60
	series := buildSeries(
		domain.MetricSnapshot{CTR: 2.0, Impressions: 1000},
		domain.MetricSnapshot{CTR: 1.5, Impressions: 1500},
		8,
	)
	hypotheses := []domain.Hypothesis{domain.NewHypothesis(domain.HypothesisFatigue)}

	enriched := service.Enrich("camp_b", series, hypotheses)
	assert.Len(t, enriched, 1)

	got := enriched[0]
	assert.Equal(t, domain.ImpactHigh, got.Impact)
	assert.Equal(t, 0.60, got.Confidence)

	if assert.NotNil(t, got.Evidence.CTR) {
		assert.Equal(t, -25.0, got.Evidence.CTR.DeltaPct)
	}
	if assert.NotNil(t, got.Evidence.Impressions) {
		assert.Equal(t, 50.0, got.Evidence.Impressions.DeltaPct)
	}
}

func TestEnrichInsufficientData(t *testing.T) {
	service := NewService(defaultAnalysisConfig())

	series := buildSeries(domain.MetricSnapshot{ROAS: 1.0}, domain.MetricSnapshot{ROAS: 1.0}, 2)
	hypotheses := []domain.Hypothesis{domain.NewHypothesis(domain.HypothesisInsufficientData)}

	enriched := service.Enrich("camp_c", series, hypotheses)
	assert.Len(t, enriched, 1)

	got := enriched[0]
	assert.Equal(t, domain.ImpactLow, got.Impact)
	assert.Equal(t, 0.2, got.Confidence)
	assert.NotEmpty(t, got.Evidence.Reason)
	if assert.NotNil(t, got.Evidence.Points) {
		assert.Equal(t, 2, *got.Evidence.Points)
	}
}

func TestEnrichNoneCarriesAuditBlocks(t *testing.T) {
	service := NewService(defaultAnalysisConfig())

	series := buildSeries(
		domain.MetricSnapshot{ROAS: 3.0, CTR: 2.0, Impressions: 1000, Spend: 50},
		domain.MetricSnapshot{ROAS: 3.0, CTR: 2.0, Impressions: 1000, Spend: 50},
		8,
	)
	hypotheses := []domain.Hypothesis{domain.NewHypothesis(domain.HypothesisNone)}

	enriched := service.Enrich("camp_d", series, hypotheses)
	assert.Len(t, enriched, 1)

	got := enriched[0]
	assert.Equal(t, domain.ImpactLow, got.Impact)
	assert.Equal(t, 0.5, got.Confidence)
	assert.NotNil(t, got.Evidence.ROAS)
	assert.NotNil(t, got.Evidence.CTR)
	assert.NotNil(t, got.Evidence.Impressions)
	assert.NotNil(t, got.Evidence.Spend)
}

func TestEnrichUnknownHypothesisID(t *testing.T) {
	service := NewService(defaultAnalysisConfig())

	series := buildSeries(domain.MetricSnapshot{ROAS: 1.0}, domain.MetricSnapshot{ROAS: 1.0}, 4)
	hypotheses := []domain.Hypothesis{{ID: "h_unmapped", Statement: "?", Segment: domain.SegmentOverall}}

	enriched := service.Enrich("camp_e", series, hypotheses)
	assert.Len(t, enriched, 1)

	got := enriched[0]
	assert.Equal(t, domain.ImpactLow, got.Impact)
	assert.Equal(t, 0.3, got.Confidence)
	assert.Equal(t, domain.Evidence{}, got.Evidence)
}

func TestEnrichZeroBaselineIsInfiniteSafe(t *testing.T) {
	service := NewService(defaultAnalysisConfig())

	// Baseline zero com pós positivo: delta_pct = +Inf e confiança no topo
	series := buildSeries(domain.MetricSnapshot{ROAS: 0.0}, domain.MetricSnapshot{ROAS: 2.0}, 8)
	hypotheses := []domain.Hypothesis{domain.NewHypothesis(domain.HypothesisROASDrop)}

	enriched := service.Enrich("camp_f", series, hypotheses)
	assert.Len(t, enriched, 1)

	got := enriched[0]
	if assert.NotNil(t, got.Evidence.ROAS) {
		assert.True(t, math.IsInf(got.Evidence.ROAS.DeltaPct, 1))
	}
	assert.Equal(t, domain.ImpactLow, got.Impact)
	assert.Equal(t, 0.90, got.Confidence)
}
