package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kestrelworks/messagely/internal/domain"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint violation.
const uniqueViolation = "23505"

// UserRepository implements domain.UserRepository using Postgres.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new Postgres-backed UserRepository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db.SqlDB}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (username, password, first_name, last_name, phone, join_at, last_login_at)
		 VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		 RETURNING join_at, last_login_at`,
		user.Username, user.PasswordHash, user.FirstName, user.LastName, user.Phone,
	).Scan(&user.JoinAt, &user.LastLoginAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicateUsername
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT username, password, first_name, last_name, phone, join_at, last_login_at
		 FROM users WHERE username = $1`, username,
	).Scan(&user.Username, &user.PasswordHash, &user.FirstName, &user.LastName, &user.Phone, &user.JoinAt, &user.LastLoginAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query user by username: %w", err)
	}
	return user, nil
}

func (r *UserRepository) Profile(ctx context.Context, username string) (*domain.Profile, error) {
	p := &domain.Profile{}
	err := r.db.QueryRowContext(ctx,
		`SELECT username, first_name, last_name, phone, join_at, last_login_at
		 FROM users WHERE username = $1`, username,
	).Scan(&p.Username, &p.FirstName, &p.LastName, &p.Phone, &p.JoinAt, &p.LastLoginAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return p, nil
}

func (r *UserRepository) All(ctx context.Context) ([]domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT username, first_name, last_name, phone, join_at, last_login_at
		 FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(&p.Username, &p.FirstName, &p.LastName, &p.Phone, &p.JoinAt, &p.LastLoginAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, username string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE users SET last_login_at = CURRENT_TIMESTAMP WHERE username = $1",
		username,
	)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
