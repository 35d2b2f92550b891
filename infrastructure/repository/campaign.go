package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-diagnostics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-diagnostics-api/internal/domain"
)

const campaignsTable = "campaigns c"

type CampaignRepository interface {
	GetByName(name string) (*domain.Campaign, error)
	List() ([]*domain.Campaign, error)
	SaveOrUpdate(campaign *domain.Campaign) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{conn: conn}
}

func (r *campaignRepository) GetByName(name string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select("c.id, c.name, c.example_messages, c.created_at, c.updated_at").
		From(campaignsTable).
		Where(squirrel.Eq{"c.name": name}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	campaign, err := scanCampaign(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao escanear campanha")
	}

	return campaign, nil
}

func (r *campaignRepository) List() ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select("c.id, c.name, c.example_messages, c.created_at, c.updated_at").
		From(campaignsTable).
		OrderBy("c.name ASC").
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

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear campanhas")
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, rows.Err()
}

func (r *campaignRepository) SaveOrUpdate(campaign *domain.Campaign) error {
	now := time.Now()

	query, args, err := squirrel.
		Insert("campaigns").
		Columns("name", "example_messages", "created_at", "updated_at").
		Values(campaign.Name, pq.Array(campaign.ExampleMessages), now, now).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			example_messages = EXCLUDED.example_messages,
			updated_at = EXCLUDED.updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return errors.Wrap(err, "erro ao salvar campanha")
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}
	messages := pq.StringArray{}

	err := row.Scan(
		&campaign.ID,
		&campaign.Name,
		&messages,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	campaign.ExampleMessages = []string(messages)
	return campaign, nil
}
