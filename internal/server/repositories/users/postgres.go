package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/battleapi/internal/common"
	"github.com/dmitrijs2005/battleapi/internal/dbx"
	"github.com/dmitrijs2005/battleapi/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new user. A unique-constraint violation on email or
// username surfaces as common.ErrConflict, which is how concurrent
// duplicate registrations are resolved: the database decides the winner.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO users (id, email, username, password_hash, is_active)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Email, user.UserName, user.PasswordHash, user.IsActive).Scan(&user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT id, email, username, password_hash, is_active, created_at FROM users
		 WHERE username = $1
		 `

	return r.scanUser(r.db.QueryRowContext(ctx, query, username))
}

// GetByEmailOrUsername returns any user matching either value, used as the
// registration conflict pre-check. Matching is case-sensitive and exact.
func (r *PostgresRepository) GetByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	query :=
		`SELECT id, email, username, password_hash, is_active, created_at FROM users
		 WHERE email = $1 OR username = $2
		 `

	return r.scanUser(r.db.QueryRowContext(ctx, query, email, username))
}

func (r *PostgresRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Email, &user.UserName, &user.PasswordHash, &user.IsActive, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
