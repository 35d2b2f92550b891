// Package timeseries concentra a divisão pré/pós e as estatísticas de
// variação usadas tanto pela geração de hipóteses quanto pelo enriquecimento
// de evidências. Manter uma única implementação evita divergência silenciosa
// entre os dois estágios.
package timeseries

import (
	"math"

	"github.com/vfg2006/campaign-diagnostics-api/internal/domain"
)

// SplitPrePost divide a série ordenada no índice n/2: pre = [0, n/2) e
// post = [n/2, n). Séries com menos de dois pontos ficam inteiras no pré.
func SplitPrePost(series domain.TimeSeries) (pre, post domain.TimeSeries) {
	n := len(series)
	if n < 2 {
		return series, domain.TimeSeries{}
	}

	half := n / 2
	return series[:half], series[half:]
}

// Mean calcula a média aritmética excluindo valores NaN.
// A média do conjunto vazio é 0.0, nunca um erro.
func Mean(values []float64) float64 {
	var sum float64
	var count int

	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		count++
	}

	if count == 0 {
		return 0.0
	}
	return sum / float64(count)
}

// MeanOf calcula a média de uma métrica nomeada sobre a sub-série,
// excluindo snapshots que não possuem a métrica
func MeanOf(series domain.TimeSeries, metric domain.Metric) float64 {
	values := make([]float64, 0, len(series))
	for _, snapshot := range series {
		if v, ok := snapshot.Value(metric); ok {
			values = append(values, v)
		}
	}
	return Mean(values)
}

// PercentChange calcula a variação percentual entre baseline e período atual.
// Baseline zero com valor novo positivo retorna +Inf (sinal máximo); baseline
// zero com valor novo não positivo retorna 0.0. Total, nunca entra em pânico.
func PercentChange(old, new float64) float64 {
	if old == 0 {
		if new > 0 {
			return math.Inf(1)
		}
		return 0.0
	}
	return (new - old) / math.Abs(old) * 100.0
}

// StatsFor calcula o bloco pré/pós completo de uma métrica sobre a série.
// É a fonte única dessas estatísticas para todos os estágios do pipeline.
func StatsFor(series domain.TimeSeries, metric domain.Metric) domain.MetricStats {
	pre, post := SplitPrePost(series)
	preMean := MeanOf(pre, metric)
	postMean := MeanOf(post, metric)

	return domain.MetricStats{
		Pre:      preMean,
		Post:     postMean,
		DeltaAbs: postMean - preMean,
		DeltaPct: PercentChange(preMean, postMean),
	}
}
