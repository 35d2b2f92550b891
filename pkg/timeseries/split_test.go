package timeseries

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-diagnostics-api/internal/domain"
)

func seriesOf(roas ...float64) domain.TimeSeries {
	series := make(domain.TimeSeries, 0, len(roas))
	for i, r := range roas {
		series = append(series, domain.MetricSnapshot{
			Date: time.Date(2025, 1, 1+i, 0, 0, 0, 0, time.UTC),
			ROAS: r,
		})
	}
	return series
}

func TestSplitPrePost(t *testing.T) {
	tests := []struct {
		name     string
		series   domain.TimeSeries
		wantPre  int
		wantPost int
	}{
		{
			name:     "Série vazia fica inteira no pré",
			series:   domain.TimeSeries{},
			wantPre:  0,
			wantPost: 0,
		},
		{
			name:     "Um ponto fica inteiro no pré",
			series:   seriesOf(1.0),
			wantPre:  1,
			wantPost: 0,
		},
		{
			name:     "Tamanho par divide ao meio",
			series:   seriesOf(1, 2, 3, 4),
			wantPre:  2,
			wantPost: 2,
		},
		{
			name:     "Tamanho ímpar deixa o ponto extra no pós",
			series:   seriesOf(1, 2, 3, 4, 5),
			wantPre:  2,
			wantPost: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pre, post := SplitPrePost(tt.series)
			assert.Len(t, pre, tt.wantPre)
			assert.Len(t, post, tt.wantPost)
		})
	}
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Mean([]float64{}))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))

	// NaN é excluído do cálculo, não propagado
	assert.Equal(t, 2.0, Mean([]float64{1, math.NaN(), 3}))
	assert.Equal(t, 0.0, Mean([]float64{math.NaN()}))
}

func TestPercentChange(t *testing.T) {
	assert.Equal(t, 0.0, PercentChange(0, 0))
	assert.True(t, math.IsInf(PercentChange(0, 5), 1))
	assert.Equal(t, 0.0, PercentChange(0, -5))
	assert.Equal(t, 0.0, PercentChange(4, 4))
	assert.Equal(t, -50.0, PercentChange(4, 2))
	assert.Equal(t, 50.0, PercentChange(2, 3))

	// baseline negativa usa o valor absoluto como denominador
	assert.Equal(t, 100.0, PercentChange(-2, 0))
}

func TestStatsFor(t *testing.T) {
	// pré: 4.0, 4.0 → média 4.0; pós: 2.0, 2.0 → média 2.0
	series := seriesOf(4, 4, 2, 2)

	stats := StatsFor(series, domain.MetricROAS)
	assert.Equal(t, 4.0, stats.Pre)
	assert.Equal(t, 2.0, stats.Post)
	assert.Equal(t, -2.0, stats.DeltaAbs)
	assert.Equal(t, -50.0, stats.DeltaPct)
}

func TestStatsForZeroBaseline(t *testing.T) {
	series := seriesOf(0, 0, 1, 1)

	stats := StatsFor(series, domain.MetricROAS)
	assert.Equal(t, 0.0, stats.Pre)
	assert.Equal(t, 1.0, stats.Post)
	assert.True(t, math.IsInf(stats.DeltaPct, 1))
}

func TestMeanOfUnknownMetric(t *testing.T) {
	series := seriesOf(1, 2)
	assert.Equal(t, 0.0, MeanOf(series, domain.Metric("unknown")))
}
