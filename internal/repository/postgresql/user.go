package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/user"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.Repository.
func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, name, email, phone, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, name, email, phone, password_hash, role, is_active, created_at, updated_at
	`

	var result user.User
	err := q.QueryRow(ctx, query,
		uuid.NewString(), u.Name, u.Email, u.Phone, u.PasswordHash, string(u.Role), u.IsActive,
	).Scan(
		&result.ID,
		&result.Name,
		&result.Email,
		&result.Phone,
		&result.PasswordHash,
		&result.Role,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return result, nil
}

// GetByID implements user.Repository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.getBy(ctx, "id = $1", id)
}

// GetByEmail implements user.Repository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.getBy(ctx, "email = $1", email)
}

func (r *userRepositoryImpl) getBy(ctx context.Context, where string, arg any) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, phone, password_hash, role, is_active, created_at, updated_at
		FROM users
		WHERE ` + where

	var result user.User
	err := q.QueryRow(ctx, query, arg).Scan(
		&result.ID,
		&result.Name,
		&result.Email,
		&result.Phone,
		&result.PasswordHash,
		&result.Role,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return result, nil
}

// Update implements user.Repository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET name = $2, email = $3, phone = $4, password_hash = $5, role = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, u.ID, u.Name, u.Email, u.Phone, u.PasswordHash, string(u.Role), u.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// List implements user.Repository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, phone, password_hash, role, is_active, created_at, updated_at
		FROM users
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Email,
			&u.Phone,
			&u.PasswordHash,
			&u.Role,
			&u.IsActive,
			&u.CreatedAt,
			&u.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}
