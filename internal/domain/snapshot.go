package domain

import "time"

// Metric identifica uma métrica diária observada de uma campanha
type Metric string

const (
	MetricSpend       Metric = "spend"
	MetricImpressions Metric = "impressions"
	MetricClicks      Metric = "clicks"
	MetricRevenue     Metric = "revenue"
	MetricPurchases   Metric = "purchases"
	MetricCTR         Metric = "ctr"
	MetricROAS        Metric = "roas"
)

// MetricSnapshot representa as métricas observadas de uma campanha em um dia.
// CTR e ROAS são campos derivados, garantidos finitos pelo contrato de ingestão.
type MetricSnapshot struct {
	Date        time.Time `json:"date"`
	Spend       float64   `json:"spend"`
	Impressions float64   `json:"impressions"`
	Clicks      float64   `json:"clicks"`
	Revenue     float64   `json:"revenue"`
	Purchases   float64   `json:"purchases"`
	CTR         float64   `json:"ctr"`
	ROAS        float64   `json:"roas"`
}

// Value retorna o valor da métrica nomeada no snapshot. O segundo retorno é
// falso quando a métrica não é conhecida, para que médias possam excluí-la.
func (s MetricSnapshot) Value(metric Metric) (float64, bool) {
	switch metric {
	case MetricSpend:
		return s.Spend, true
	case MetricImpressions:
		return s.Impressions, true
	case MetricClicks:
		return s.Clicks, true
	case MetricRevenue:
		return s.Revenue, true
	case MetricPurchases:
		return s.Purchases, true
	case MetricCTR:
		return s.CTR, true
	case MetricROAS:
		return s.ROAS, true
	}
	return 0, false
}

// TimeSeries é a sequência diária de uma campanha, ordenada por data
// ascendente e sem datas duplicadas. Pode ser vazia.
type TimeSeries []MetricSnapshot

// Campaign representa uma campanha conhecida e suas mensagens criativas de
// exemplo, usadas pelo mapeador de estratégia criativa para casar o tom.
type Campaign struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	ExampleMessages []string  `json:"example_messages"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
