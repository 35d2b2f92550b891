package repository

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-diagnostics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-diagnostics-api/internal/domain"
)

const metricSnapshotsTable = "metric_snapshots ms"

type MetricSnapshotRepository interface {
	SaveOrUpdate(campaignName string, snapshot domain.MetricSnapshot) error
	// GetSeries retorna a série ordenada por data ascendente; filtros de data
	// são opcionais
	GetSeries(campaignName string, startDate, endDate *time.Time) (domain.TimeSeries, error)
	// CountPointsByCampaign retorna quantos pontos cada campanha tem,
	// insumo da seleção de campanhas-alvo
	CountPointsByCampaign() (map[string]int, error)
}

type metricSnapshotRepository struct {
	conn *postgres.Connection
}

func NewMetricSnapshotRepository(conn *postgres.Connection) MetricSnapshotRepository {
	return &metricSnapshotRepository{conn: conn}
}

func (r *metricSnapshotRepository) SaveOrUpdate(campaignName string, snapshot domain.MetricSnapshot) error {
	now := time.Now()

	query, args, err := squirrel.
		Insert("metric_snapshots").
		Columns("campaign_name", "date", "spend", "impressions", "clicks",
			"revenue", "purchases", "ctr", "roas", "created_at", "updated_at").
		Values(campaignName, snapshot.Date.Format(time.DateOnly), snapshot.Spend,
			snapshot.Impressions, snapshot.Clicks, snapshot.Revenue,
			snapshot.Purchases, snapshot.CTR, snapshot.ROAS, now, now).
		Suffix(`ON CONFLICT (campaign_name, date) DO UPDATE SET
			spend = EXCLUDED.spend,
			impressions = EXCLUDED.impressions,
			clicks = EXCLUDED.clicks,
			revenue = EXCLUDED.revenue,
			purchases = EXCLUDED.purchases,
			ctr = EXCLUDED.ctr,
			roas = EXCLUDED.roas,
			updated_at = EXCLUDED.updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return errors.Wrap(err, "erro ao salvar snapshot de métricas")
	}

	return nil
}

func (r *metricSnapshotRepository) GetSeries(campaignName string, startDate, endDate *time.Time) (domain.TimeSeries, error) {
	builder := squirrel.
		Select("ms.date, ms.spend, ms.impressions, ms.clicks, ms.revenue, ms.purchases, ms.ctr, ms.roas").
		From(metricSnapshotsTable).
		Where(squirrel.Eq{"ms.campaign_name": campaignName})

	if startDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"ms.date": startDate.Format(time.DateOnly)})
	}
	if endDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"ms.date": endDate.Format(time.DateOnly)})
	}

	query, args, err := builder.
		OrderBy("ms.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	series := make(domain.TimeSeries, 0)
	for rows.Next() {
		var snapshot domain.MetricSnapshot
		err := rows.Scan(
			&snapshot.Date,
			&snapshot.Spend,
			&snapshot.Impressions,
			&snapshot.Clicks,
			&snapshot.Revenue,
			&snapshot.Purchases,
			&snapshot.CTR,
			&snapshot.ROAS,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear snapshot de métricas")
		}
		series = append(series, snapshot)
	}

	return series, rows.Err()
}

func (r *metricSnapshotRepository) CountPointsByCampaign() (map[string]int, error) {
	query, args, err := squirrel.
		Select("ms.campaign_name, COUNT(*)").
		From(metricSnapshotsTable).
		GroupBy("ms.campaign_name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear contagem de pontos")
		}
		counts[name] = count
	}

	return counts, rows.Err()
}
