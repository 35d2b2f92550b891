package domain

import "time"

// AnalysisTelemetry carrega os números de uma execução do pipeline. Cada
// execução devolve a sua própria telemetria em vez de alimentar contadores
// globais compartilhados entre campanhas.
type AnalysisTelemetry struct {
	StartedAt       time.Time     `json:"started_at"`
	Duration        time.Duration `json:"duration_ns"`
	SeriesPoints    int           `json:"series_points"`
	HypothesisCount int           `json:"hypothesis_count"`
	PrimaryIssueID  HypothesisID  `json:"primary_issue_id,omitempty"`
}

// CampaignAnalysis é o resultado completo do pipeline para uma campanha:
// hipóteses enriquecidas em ordem de avaliação e as três sugestões criativas
type CampaignAnalysis struct {
	CampaignName string               `json:"campaign_name"`
	Hypotheses   []EnrichedHypothesis `json:"hypotheses"`
	Suggestions  []CreativeSuggestion `json:"suggestions"`
	Telemetry    AnalysisTelemetry    `json:"telemetry"`
}

// CampaignROAS é uma entrada do ranking de campanhas por ROAS médio
type CampaignROAS struct {
	CampaignName string  `json:"campaign_name"`
	AvgROAS      float64 `json:"avg_roas"`
}

// DatasetSummary resume o dataset ingerido para fins de relatório
type DatasetSummary struct {
	DateRange      []string       `json:"date_range"`
	TotalSpend     float64        `json:"total_spend"`
	AvgCTR         float64        `json:"avg_ctr"`
	AvgROAS        float64        `json:"avg_roas"`
	CampaignsCount int            `json:"campaigns_count"`
	TopByROAS      []CampaignROAS `json:"top_by_roas"`
}
