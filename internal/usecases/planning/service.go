// Package planning decide quais campanhas a sincronização agendada analisa e
// resume o dataset ingerido para fins de relatório.
package planning

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-diagnostics-api/internal/config"
	"github.com/vfg2006/campaign-diagnostics-api/internal/domain"
	"github.com/vfg2006/campaign-diagnostics-api/pkg/timeseries"
	"github.com/vfg2006/campaign-diagnostics-api/pkg/utils"
)

// Planner seleciona campanhas-alvo e resume o dataset
type Planner interface {
	SelectTargetCampaigns(pointCounts map[string]int) []string
	Summarize(seriesByCampaign map[string]domain.TimeSeries) domain.DatasetSummary
}

type Service struct {
	cfg config.Planner
}

func NewService(cfg config.Planner) Planner {
	return &Service{cfg: cfg}
}

// SelectTargetCampaigns escolhe as campanhas com mais pontos de dado:
// primeiro as que têm pelo menos MinSeriesPoints, limitadas a MaxCampaigns;
// se nenhuma qualificar, as MaxCampaigns com mais pontos servem de fallback.
// Desempate por nome, para uma seleção determinística.
func (s *Service) SelectTargetCampaigns(pointCounts map[string]int) []string {
	type entry struct {
		name   string
		points int
	}

	all := make([]entry, 0, len(pointCounts))
	for name, points := range pointCounts {
		all = append(all, entry{name: name, points: points})
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].points != all[j].points {
			return all[i].points > all[j].points
		}
		return all[i].name < all[j].name
	})

	eligible := make([]entry, 0, len(all))
	for _, e := range all {
		if e.points >= s.cfg.MinSeriesPoints {
			eligible = append(eligible, e)
		}
	}
	if len(eligible) == 0 {
		eligible = all
	}

	max := s.cfg.MaxCampaigns
	if max <= 0 || max > len(eligible) {
		max = len(eligible)
	}

	targets := make([]string, 0, max)
	for _, e := range eligible[:max] {
		targets = append(targets, e.name)
	}

	logrus.WithFields(logrus.Fields{
		"candidates": len(pointCounts),
		"targets":    targets,
	}).Debug("planning: campanhas-alvo selecionadas")

	return targets
}

// Summarize agrega o dataset inteiro: intervalo de datas, gasto total, médias
// de CTR/ROAS e o ranking de campanhas por ROAS médio
func (s *Service) Summarize(seriesByCampaign map[string]domain.TimeSeries) domain.DatasetSummary {
	var minDate, maxDate time.Time
	var totalSpend float64
	var ctrValues, roasValues []float64

	topByROAS := make([]domain.CampaignROAS, 0, len(seriesByCampaign))

	for name, series := range seriesByCampaign {
		for _, snapshot := range series {
			if minDate.IsZero() || snapshot.Date.Before(minDate) {
				minDate = snapshot.Date
			}
			if maxDate.IsZero() || snapshot.Date.After(maxDate) {
				maxDate = snapshot.Date
			}

			totalSpend += snapshot.Spend
			ctrValues = append(ctrValues, snapshot.CTR)
			roasValues = append(roasValues, snapshot.ROAS)
		}

		topByROAS = append(topByROAS, domain.CampaignROAS{
			CampaignName: name,
			AvgROAS:      utils.RoundWithTwoDecimalPlace(timeseries.MeanOf(series, domain.MetricROAS)),
		})
	}

	sort.Slice(topByROAS, func(i, j int) bool {
		if topByROAS[i].AvgROAS != topByROAS[j].AvgROAS {
			return topByROAS[i].AvgROAS > topByROAS[j].AvgROAS
		}
		return topByROAS[i].CampaignName < topByROAS[j].CampaignName
	})

	dateRange := []string{}
	if !minDate.IsZero() {
		dateRange = []string{minDate.Format(time.DateOnly), maxDate.Format(time.DateOnly)}
	}

	return domain.DatasetSummary{
		DateRange:      dateRange,
		TotalSpend:     utils.RoundWithTwoDecimalPlace(totalSpend),
		AvgCTR:         utils.RoundWithTwoDecimalPlace(timeseries.Mean(ctrValues)),
		AvgROAS:        utils.RoundWithTwoDecimalPlace(timeseries.Mean(roasValues)),
		CampaignsCount: len(seriesByCampaign),
		TopByROAS:      topByROAS,
	}
}
