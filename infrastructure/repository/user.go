package repository

import (
	"database/sql"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-diagnostics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-diagnostics-api/internal/domain"
)

const usersTable = "users u"

type UserRepository interface {
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(id int) (*domain.User, error)
	CreateUser(user *domain.User) (*domain.User, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{conn: conn}
}

func (r *userRepository) GetUserByEmail(email string) (*domain.User, error) {
	return r.getUserBy(squirrel.Eq{"u.email": strings.ToLower(strings.TrimSpace(email))})
}

func (r *userRepository) GetUserByID(id int) (*domain.User, error) {
	return r.getUserBy(squirrel.Eq{"u.id": id})
}

func (r *userRepository) getUserBy(where squirrel.Eq) (*domain.User, error) {
	query, args, err := squirrel.
		Select("u.id, u.name, u.email, u.password_hash, u.role_id, u.active, u.created_at, u.updated_at").
		From(usersTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	user := &domain.User{}
	err = r.conn.QueryRow(query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.RoleID,
		&user.Active,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao escanear usuário")
	}

	return user, nil
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	query, args, err := squirrel.
		Insert("users").
		Columns("name", "email", "password_hash", "role_id", "active", "created_at").
		Values(user.Name, user.Email, user.PasswordHash, user.RoleID, user.Active, time.Now()).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	if err := r.conn.QueryRow(query, args...).Scan(&user.ID); err != nil {
		return nil, errors.Wrap(err, "erro ao criar usuário")
	}

	return user, nil
}
