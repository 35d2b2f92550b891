package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-diagnostics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-diagnostics-api/internal/domain"
)

const creativeSuggestionsTable = "creative_suggestions cs"

type CreativeSuggestionRepository interface {
	SaveAll(campaignName string, analyzedAt time.Time, suggestions []domain.CreativeSuggestion) error
	GetLatestByCampaign(campaignName string) ([]domain.CreativeSuggestion, error)
}

type creativeSuggestionRepository struct {
	conn *postgres.Connection
}

func NewCreativeSuggestionRepository(conn *postgres.Connection) CreativeSuggestionRepository {
	return &creativeSuggestionRepository{conn: conn}
}

func (r *creativeSuggestionRepository) SaveAll(campaignName string, analyzedAt time.Time, suggestions []domain.CreativeSuggestion) error {
	if len(suggestions) == 0 {
		return nil
	}

	builder := squirrel.
		Insert("creative_suggestions").
		Columns("suggestion_id", "campaign_name", "analyzed_at", "position",
			"headline", "message", "cta", "rationale", "linked_issue", "created_at")

	now := time.Now()
	for position, suggestion := range suggestions {
		builder = builder.Values(
			suggestion.ID,
			campaignName,
			analyzedAt,
			position,
			suggestion.Headline,
			suggestion.Message,
			suggestion.CTA,
			suggestion.Rationale,
			suggestion.LinkedIssue,
			now,
		)
	}

	insertQuery, insertArgs, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	deleteQuery, deleteArgs, err := squirrel.
		Delete("creative_suggestions").
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
		return errors.Wrap(err, "erro ao salvar sugestões criativas")
	}

	return nil
}

func (r *creativeSuggestionRepository) GetLatestByCampaign(campaignName string) ([]domain.CreativeSuggestion, error) {
	query, args, err := squirrel.
		Select("cs.suggestion_id, cs.headline, cs.message, cs.cta, cs.rationale, cs.linked_issue").
		From(creativeSuggestionsTable).
		Where(squirrel.Eq{"cs.campaign_name": campaignName}).
		Where("cs.analyzed_at = (SELECT MAX(analyzed_at) FROM creative_suggestions WHERE campaign_name = cs.campaign_name)").
		OrderBy("cs.position ASC").
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

	suggestions := make([]domain.CreativeSuggestion, 0)
	for rows.Next() {
		var suggestion domain.CreativeSuggestion
		err := rows.Scan(
			&suggestion.ID,
			&suggestion.Headline,
			&suggestion.Message,
			&suggestion.CTA,
			&suggestion.Rationale,
			&suggestion.LinkedIssue,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear sugestão criativa")
		}
		suggestions = append(suggestions, suggestion)
	}

	return suggestions, rows.Err()
}
