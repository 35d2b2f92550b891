package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricStatsMarshalInfiniteDelta(t *testing.T) {
	stats := MetricStats{Pre: 0, Post: 2, DeltaAbs: 2, DeltaPct: math.Inf(1)}

	raw, err := json.Marshal(stats)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), `"delta_pct":"inf"`)

	var back MetricStats
	assert.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, math.IsInf(back.DeltaPct, 1))
	assert.Equal(t, stats.Pre, back.Pre)
	assert.Equal(t, stats.Post, back.Post)
}

func TestMetricStatsMarshalFiniteDelta(t *testing.T) {
	stats := MetricStats{Pre: 4, Post: 2, DeltaAbs: -2, DeltaPct: -50}

	raw, err := json.Marshal(stats)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), `"delta_pct":-50`)

	var back MetricStats
	assert.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, stats, back)
}

func TestMetricStatsUnmarshalNegativeInfinity(t *testing.T) {
	var stats MetricStats
	assert.NoError(t, json.Unmarshal([]byte(`{"pre":2,"post":0,"delta_abs":-2,"delta_pct":"-inf"}`), &stats))
	assert.True(t, math.IsInf(stats.DeltaPct, -1))
}

func TestMetricStatsUnmarshalMissingDeltaPct(t *testing.T) {
	var stats MetricStats
	assert.NoError(t, json.Unmarshal([]byte(`{"pre":4,"post":2,"delta_abs":-2}`), &stats))
	assert.Equal(t, 0.0, stats.DeltaPct)
	assert.Equal(t, 4.0, stats.Pre)
}

func TestMetricStatsUnmarshalRejectsUnknownSentinel(t *testing.T) {
	var stats MetricStats
	err := json.Unmarshal([]byte(`{"pre":4,"post":2,"delta_abs":-2,"delta_pct":"nan"}`), &stats)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "delta_pct")
}

func TestNewHypothesisStatements(t *testing.T) {
	h := NewHypothesis(HypothesisFatigue)
	assert.Equal(t, HypothesisFatigue, h.ID)
	assert.Equal(t, SegmentOverall, h.Segment)
	assert.Equal(t, "Possible creative fatigue (impressions up, CTR down)", h.Statement)
}
