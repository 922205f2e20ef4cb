package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pockettrader/pockettrader/internal/domain"
)

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// GetUser retrieves a user by ID. Returns nil if the user does not exist.
func (r *UserRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return r.getUser(ctx, `SELECT user_id, username, created_at FROM users WHERE user_id = $1`, userID)
}

// GetUserByUsername retrieves a user by username. Returns nil if absent.
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getUser(ctx, `SELECT user_id, username, created_at FROM users WHERE username = $1`, username)
}

func (r *UserRepository) getUser(ctx context.Context, query, arg string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Username, &u.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to get user: %v", domain.ErrStorageUnavailable, err)
	}
	return &u, nil
}

// CreateUser persists a new user
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (user_id, username, created_at) VALUES ($1, $2, $3)`,
		user.ID, user.Username, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: failed to insert user: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// ListUsers returns all users, username ascending.
func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, username, created_at FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list users: %v", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: failed to scan user: %v", domain.ErrStorageUnavailable, err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
