package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// HypothesisID identifica um diagnóstico candidato. O conjunto é fechado:
// novos diagnósticos entram aqui e na tabela de despacho do suggesting.
type HypothesisID string

const (
	HypothesisROASDrop         HypothesisID = "h_roas_drop"
	HypothesisCTRDrop          HypothesisID = "h_ctr_drop"
	HypothesisFatigue          HypothesisID = "h_fatigue"
	HypothesisNone             HypothesisID = "h_none"
	HypothesisInsufficientData HypothesisID = "h_insufficient_data"
)

// SegmentOverall é o único segmento avaliado pelo núcleo de diagnóstico
const SegmentOverall = "overall"

var hypothesisStatements = map[HypothesisID]string{
	HypothesisROASDrop:         "ROAS decreased significantly vs baseline",
	HypothesisCTRDrop:          "CTR decreased significantly vs baseline",
	HypothesisFatigue:          "Possible creative fatigue (impressions up, CTR down)",
	HypothesisNone:             "No major performance shift detected vs baseline",
	HypothesisInsufficientData: "Insufficient data to draw strong conclusions",
}

// Hypothesis é um diagnóstico candidato gerado a partir da série temporal.
// Imutável após a criação; a evidência é anexada depois pelo enriquecedor.
type Hypothesis struct {
	ID        HypothesisID `json:"id"`
	Statement string       `json:"hypothesis"`
	Segment   string       `json:"segment"`
}

// NewHypothesis cria a hipótese com o texto padrão do diagnóstico
func NewHypothesis(id HypothesisID) Hypothesis {
	return Hypothesis{
		ID:        id,
		Statement: hypothesisStatements[id],
		Segment:   SegmentOverall,
	}
}

// Impact é o rótulo de severidade derivado da magnitude da variação
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// DeltaInfinity é o sentinel usado na serialização de delta_pct infinito,
// já que JSON não representa ±Inf
const DeltaInfinity = "inf"

// MetricStats agrupa as estatísticas pré/pós de uma métrica.
// DeltaPct pode ser +Inf quando a baseline é zero e o período pós é positivo.
type MetricStats struct {
	Pre      float64 `json:"pre"`
	Post     float64 `json:"post"`
	DeltaAbs float64 `json:"delta_abs"`
	DeltaPct float64 `json:"delta_pct"`
}

type metricStatsJSON struct {
	Pre      float64         `json:"pre"`
	Post     float64         `json:"post"`
	DeltaAbs float64         `json:"delta_abs"`
	DeltaPct json.RawMessage `json:"delta_pct"`
}

// MarshalJSON serializa delta_pct infinito como o sentinel "inf"/"-inf"
func (m MetricStats) MarshalJSON() ([]byte, error) {
	var deltaPct json.RawMessage

	switch {
	case math.IsInf(m.DeltaPct, 1):
		deltaPct, _ = json.Marshal(DeltaInfinity)
	case math.IsInf(m.DeltaPct, -1):
		deltaPct, _ = json.Marshal("-" + DeltaInfinity)
	default:
		raw, err := json.Marshal(m.DeltaPct)
		if err != nil {
			return nil, err
		}
		deltaPct = raw
	}

	return json.Marshal(metricStatsJSON{
		Pre:      m.Pre,
		Post:     m.Post,
		DeltaAbs: m.DeltaAbs,
		DeltaPct: deltaPct,
	})
}

// UnmarshalJSON aceita tanto o número quanto o sentinel de infinito.
// Campo ausente vira 0; sentinel desconhecido é rejeitado com erro.
func (m *MetricStats) UnmarshalJSON(data []byte) error {
	var raw metricStatsJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	m.Pre = raw.Pre
	m.Post = raw.Post
	m.DeltaAbs = raw.DeltaAbs

	if len(raw.DeltaPct) == 0 {
		m.DeltaPct = 0
		return nil
	}

	var asString string
	if err := json.Unmarshal(raw.DeltaPct, &asString); err == nil {
		switch asString {
		case DeltaInfinity:
			m.DeltaPct = math.Inf(1)
		case "-" + DeltaInfinity:
			m.DeltaPct = math.Inf(-1)
		default:
			return fmt.Errorf("delta_pct: valor %q não reconhecido", asString)
		}
		return nil
	}

	return json.Unmarshal(raw.DeltaPct, &m.DeltaPct)
}

// Evidence agrega os blocos estatísticos que sustentam uma hipótese, mais os
// campos livres usados pelos diagnósticos não numéricos. Blocos ausentes
// ficam nulos e são tratados como "sem dado" pelos consumidores.
type Evidence struct {
	ROAS        *MetricStats `json:"roas,omitempty"`
	CTR         *MetricStats `json:"ctr,omitempty"`
	Impressions *MetricStats `json:"impressions,omitempty"`
	Spend       *MetricStats `json:"spend,omitempty"`
	Reason      string       `json:"reason,omitempty"`
	Points      *int         `json:"points,omitempty"`
}

// EnrichedHypothesis é a hipótese com evidência, impacto e confiança, a
// unidade consumida pela seleção de issue primário e pela estratégia criativa
type EnrichedHypothesis struct {
	Hypothesis
	Evidence     Evidence `json:"evidence"`
	Impact       Impact   `json:"impact"`
	Confidence   float64  `json:"confidence"`
	CampaignName string   `json:"campaign_name"`
}
