package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-diagnostics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-diagnostics-api/internal/domain"
)

const diagnosesTable = "campaign_diagnoses cd"

type DiagnosisRepository interface {
	// SaveAll persiste as hipóteses de uma execução preservando a ordem de
	// avaliação (o desempate do issue primário depende dela)
	SaveAll(campaignName string, analyzedAt time.Time, hypotheses []domain.EnrichedHypothesis) error
	// GetLatestByCampaign retorna as hipóteses da execução mais recente,
	// na ordem original de avaliação
	GetLatestByCampaign(campaignName string) ([]domain.EnrichedHypothesis, error)
}

type diagnosisRepository struct {
	conn *postgres.Connection
}

func NewDiagnosisRepository(conn *postgres.Connection) DiagnosisRepository {
	return &diagnosisRepository{conn: conn}
}

func (r *diagnosisRepository) SaveAll(campaignName string, analyzedAt time.Time, hypotheses []domain.EnrichedHypothesis) error {
	if len(hypotheses) == 0 {
		return nil
	}

	builder := squirrel.
		Insert("campaign_diagnoses").
		Columns("campaign_name", "analyzed_at", "position", "hypothesis_id",
			"statement", "segment", "evidence", "impact", "confidence", "created_at")

	now := time.Now()
	for position, hypothesis := range hypotheses {
		evidence, err := json.Marshal(hypothesis.Evidence)
		if err != nil {
			return errors.Wrap(err, "erro ao serializar evidência")
		}

		builder = builder.Values(
			campaignName,
			analyzedAt,
			position,
			string(hypothesis.ID),
			hypothesis.Statement,
			hypothesis.Segment,
			evidence,
			string(hypothesis.Impact),
			hypothesis.Confidence,
			now,
		)
	}

	insertQuery, insertArgs, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	deleteQuery, deleteArgs, err := squirrel.
		Delete("campaign_diagnoses").
		Where(squirrel.Eq{"campaign_name": campaignName, "analyzed_at": analyzedAt}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	// Reexecuções sobre o mesmo analyzed_at substituem o resultado anterior
	err = r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if _, err := tx.Exec(deleteQuery, deleteArgs...); err != nil {
			return err
		}
		_, err := tx.Exec(insertQuery, insertArgs...)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "erro ao salvar diagnósticos")
	}

	return nil
}

func (r *diagnosisRepository) GetLatestByCampaign(campaignName string) ([]domain.EnrichedHypothesis, error) {
	query, args, err := squirrel.
		Select("cd.hypothesis_id, cd.statement, cd.segment, cd.evidence, cd.impact, cd.confidence").
		From(diagnosesTable).
		Where(squirrel.Eq{"cd.campaign_name": campaignName}).
		Where("cd.analyzed_at = (SELECT MAX(analyzed_at) FROM campaign_diagnoses WHERE campaign_name = cd.campaign_name)").
		OrderBy("cd.position ASC").
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

	hypotheses := make([]domain.EnrichedHypothesis, 0)
	for rows.Next() {
		var hypothesis domain.EnrichedHypothesis
		var rawEvidence []byte

		err := rows.Scan(
			&hypothesis.ID,
			&hypothesis.Statement,
			&hypothesis.Segment,
			&rawEvidence,
			&hypothesis.Impact,
			&hypothesis.Confidence,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear diagnóstico")
		}

		if err := json.Unmarshal(rawEvidence, &hypothesis.Evidence); err != nil {
			return nil, errors.Wrap(err, "erro ao desserializar evidência")
		}

		hypothesis.CampaignName = campaignName
		hypotheses = append(hypotheses, hypothesis)
	}

	return hypotheses, rows.Err()
}
