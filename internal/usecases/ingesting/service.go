// Package ingesting persiste o dataset carregado do CSV nos repositórios de
// campanhas e snapshots de métricas.
package ingesting

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-diagnostics-api/infrastructure/integrator/csvsource"
	"github.com/vfg2006/campaign-diagnostics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-diagnostics-api/internal/domain"
)

type Ingester interface {
	// IngestCSV carrega o arquivo e grava campanhas e snapshots. Upserts:
	// reexecutar sobre o mesmo arquivo é idempotente.
	IngestCSV(path string) error
}

type Service struct {
	loader       csvsource.Loader
	campaignRepo repository.CampaignRepository
	snapshotRepo repository.MetricSnapshotRepository
}

func NewService(
	loader csvsource.Loader,
	campaignRepo repository.CampaignRepository,
	snapshotRepo repository.MetricSnapshotRepository,
) Ingester {
	return &Service{
		loader:       loader,
		campaignRepo: campaignRepo,
		snapshotRepo: snapshotRepo,
	}
}

func (s *Service) IngestCSV(path string) error {
	startedAt := time.Now()

	dataset, err := s.loader.Load(path)
	if err != nil {
		return errors.Wrap(err, "erro ao carregar o CSV de métricas")
	}

	var snapshotCount int
	for name, series := range dataset.SeriesByCampaign {
		campaign := &domain.Campaign{
			Name:            name,
			ExampleMessages: dataset.ExamplesByCampaign[name],
		}
		if err := s.campaignRepo.SaveOrUpdate(campaign); err != nil {
			return errors.Wrapf(err, "erro ao salvar campanha %s", name)
		}

		for _, snapshot := range series {
			if err := s.snapshotRepo.SaveOrUpdate(name, snapshot); err != nil {
				return errors.Wrapf(err, "erro ao salvar snapshot da campanha %s", name)
			}
			snapshotCount++
		}
	}

	logrus.WithFields(logrus.Fields{
		"path":      path,
		"campaigns": len(dataset.SeriesByCampaign),
		"snapshots": snapshotCount,
		"duration":  time.Since(startedAt).String(),
	}).Info("Ingestão do CSV de métricas concluída")

	return nil
}
