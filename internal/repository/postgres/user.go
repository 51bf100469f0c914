package postgres

import (
	"context"
	"database/sql"
	"time"

	"autorental-backend/internal/domain"
	"autorental-backend/internal/logger"
	"autorental-backend/internal/repository"

	"github.com/lib/pq"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, password_hash, roles, created_on) VALUES ($1, $2, $3, $4) RETURNING id`
	u.CreatedOn = time.Now().UTC()
	logger.DatabaseCall("INSERT", "users", "email", u.Email)
	err := r.db.QueryRowContext(ctx, query, u.Email, u.PasswordHash, pq.Array(u.Roles), u.CreatedOn).Scan(&u.ID)
	logger.DatabaseResult("INSERT", 1, err, "table", "users")
	return err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, email, password_hash, roles, created_on FROM users WHERE LOWER(email) = LOWER($1)`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, pq.Array(&u.Roles), &u.CreatedOn)
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

// AddRole appends role unless the user already has it.
func (r *userRepository) AddRole(ctx context.Context, userID int32, role string) error {
	query := `UPDATE users SET roles = array_append(roles, $1) WHERE id = $2 AND NOT ($1 = ANY(roles))`
	_, err := r.db.ExecContext(ctx, query, role, userID)
	return err
}

func (r *userRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM users WHERE $1 = ANY(roles)`, role).Scan(&n)
	return n, err
}
