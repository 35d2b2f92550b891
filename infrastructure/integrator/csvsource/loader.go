// Package csvsource carrega o CSV de métricas diárias de campanha e o
// transforma nas séries temporais limpas consumidas pelo pipeline de
// diagnóstico: datas agregadas por dia, métricas derivadas finitas e
// mensagens criativas de exemplo por campanha.
package csvsource

import (
	"encoding/csv"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-diagnostics-api/internal/config"
	"github.com/vfg2006/campaign-diagnostics-api/internal/domain"
)

// Semente fixa para que a amostragem de desenvolvimento seja reprodutível
const sampleSeed = 42

// Limite de mensagens de exemplo capturadas por campanha
const maxExampleMessages = 5

// Dataset é o resultado da ingestão: séries por campanha e mensagens de
// exemplo para o casamento de tom dos criativos
type Dataset struct {
	SeriesByCampaign   map[string]domain.TimeSeries
	ExamplesByCampaign map[string][]string
}

type Loader interface {
	Load(path string) (*Dataset, error)
}

type loader struct {
	cfg config.Ingest
}

func NewLoader(cfg config.Ingest) Loader {
	return &loader{cfg: cfg}
}

// linha bruta do CSV antes da agregação por dia
type rawRow struct {
	date         time.Time
	campaignName string
	impressions  float64
	clicks       float64
	spend        float64
	revenue      float64
	purchases    float64
	message      string
}

func (l *loader) Load(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir o CSV %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // linhas curtas são toleradas, campos faltantes viram zero

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o CSV")
	}

	if len(records) < 2 {
		logrus.WithField("path", path).Warn("csvsource: CSV sem linhas de dados")
		return &Dataset{
			SeriesByCampaign:   map[string]domain.TimeSeries{},
			ExamplesByCampaign: map[string][]string{},
		}, nil
	}

	columns := indexColumns(records[0])
	if _, ok := columns["date"]; !ok {
		return nil, errors.New("CSV sem a coluna obrigatória 'date'")
	}
	if _, ok := columns["campaign_name"]; !ok {
		return nil, errors.New("CSV sem a coluna obrigatória 'campaign_name'")
	}

	rows := make([]rawRow, 0, len(records)-1)
	skipped := 0
	for _, record := range records[1:] {
		row, err := parseRow(record, columns)
		if err != nil {
			skipped++
			continue
		}
		rows = append(rows, row)
	}

	if skipped > 0 {
		logrus.WithFields(logrus.Fields{
			"path":    path,
			"skipped": skipped,
		}).Warn("csvsource: linhas inválidas ignoradas")
	}

	rows = sampleRows(rows, l.cfg.SampleFrac)

	dataset := aggregateByDay(rows)

	logrus.WithFields(logrus.Fields{
		"path":      path,
		"rows":      len(rows),
		"campaigns": len(dataset.SeriesByCampaign),
	}).Info("csvsource: dataset carregado")

	return dataset, nil
}

func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return columns
}

func field(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// numericField converte o campo para float; vazio ou inválido vira 0
func numericField(record []string, columns map[string]int, name string) float64 {
	raw := field(record, columns, name)
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}

func parseRow(record []string, columns map[string]int) (rawRow, error) {
	date, err := time.Parse(time.DateOnly, field(record, columns, "date"))
	if err != nil {
		return rawRow{}, errors.Wrap(err, "data inválida")
	}

	campaignName := field(record, columns, "campaign_name")
	if campaignName == "" {
		return rawRow{}, errors.New("campanha vazia")
	}

	message := field(record, columns, "creative_message")
	if message == "" {
		message = field(record, columns, "creative_text")
	}

	return rawRow{
		date:         date,
		campaignName: campaignName,
		impressions:  numericField(record, columns, "impressions"),
		clicks:       numericField(record, columns, "clicks"),
		spend:        numericField(record, columns, "spend"),
		revenue:      numericField(record, columns, "revenue"),
		purchases:    numericField(record, columns, "purchases"),
		message:      message,
	}, nil
}

// sampleRows aplica a fração de amostragem de desenvolvimento com semente
// fixa. Fora de (0,1) o dataset completo é mantido.
func sampleRows(rows []rawRow, frac float64) []rawRow {
	if frac <= 0 || frac >= 1 {
		return rows
	}

	rng := rand.New(rand.NewSource(sampleSeed))
	shuffled := make([]rawRow, len(rows))
	copy(shuffled, rows)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := int(float64(len(rows)) * frac)
	if n < 1 {
		n = 1
	}
	return shuffled[:n]
}

// aggregateByDay soma as linhas da mesma campanha e dia (a série não pode ter
// datas duplicadas) e deriva CTR e ROAS com divisão segura
func aggregateByDay(rows []rawRow) *Dataset {
	type dayKey struct {
		campaign string
		date     time.Time
	}

	totals := make(map[dayKey]*domain.MetricSnapshot)
	examples := make(map[string][]string)

	for _, row := range rows {
		key := dayKey{campaign: row.campaignName, date: row.date}
		snapshot, ok := totals[key]
		if !ok {
			snapshot = &domain.MetricSnapshot{Date: row.date}
			totals[key] = snapshot
		}

		snapshot.Impressions += row.impressions
		snapshot.Clicks += row.clicks
		snapshot.Spend += row.spend
		snapshot.Revenue += row.revenue
		snapshot.Purchases += row.purchases

		if row.message != "" && len(examples[row.campaignName]) < maxExampleMessages {
			examples[row.campaignName] = append(examples[row.campaignName], row.message)
		}
	}

	series := make(map[string]domain.TimeSeries)
	for key, snapshot := range totals {
		snapshot.CTR = safeRatio(snapshot.Clicks, snapshot.Impressions) * 100
		snapshot.ROAS = safeRatio(snapshot.Revenue, snapshot.Spend)
		series[key.campaign] = append(series[key.campaign], *snapshot)
	}

	for campaign := range series {
		sort.Slice(series[campaign], func(i, j int) bool {
			return series[campaign][i].Date.Before(series[campaign][j].Date)
		})
	}

	return &Dataset{
		SeriesByCampaign:   series,
		ExamplesByCampaign: examples,
	}
}

// safeRatio devolve 0 quando o denominador é 0: as métricas derivadas são
// garantidas finitas pelo contrato de ingestão
func safeRatio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
