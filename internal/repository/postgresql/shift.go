package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/shift"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `
	id, name, working_from, working_to,
	lunch_from, lunch_to, lunch_enabled,
	break_from, break_to, break_enabled,
	created_at, updated_at
`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.WorkingTime.From,
		&s.WorkingTime.To,
		&s.LunchTime.From,
		&s.LunchTime.To,
		&s.LunchTime.Enabled,
		&s.BreakTime.From,
		&s.BreakTime.To,
		&s.BreakTime.Enabled,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// Create implements shift.Repository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (
			id, name, working_from, working_to,
			lunch_from, lunch_to, lunch_enabled,
			break_from, break_to, break_enabled,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING ` + shiftColumns

	created, err := scanShift(q.QueryRow(ctx, query,
		uuid.NewString(), s.Name,
		s.WorkingTime.From, s.WorkingTime.To,
		s.LunchTime.From, s.LunchTime.To, s.LunchTime.Enabled,
		s.BreakTime.From, s.BreakTime.To, s.BreakTime.Enabled,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return shift.Shift{}, shift.ErrNameExists
		}
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return created, nil
}

// GetByID implements shift.Repository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE id = $1 AND deleted_at IS NULL
	`

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return s, nil
}

// Update implements shift.Repository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET name = $2, working_from = $3, working_to = $4,
			lunch_from = $5, lunch_to = $6, lunch_enabled = $7,
			break_from = $8, break_to = $9, break_enabled = $10,
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query,
		s.ID, s.Name,
		s.WorkingTime.From, s.WorkingTime.To,
		s.LunchTime.From, s.LunchTime.To, s.LunchTime.Enabled,
		s.BreakTime.From, s.BreakTime.To, s.BreakTime.Enabled,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return shift.ErrNameExists
		}
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// SoftDelete implements shift.Repository.
func (r *shiftRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE shifts SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// List implements shift.Repository.
func (r *shiftRepositoryImpl) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE deleted_at IS NULL
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return shifts, nil
}

// CountAssignedWorkers implements shift.Repository.
func (r *shiftRepositoryImpl) CountAssignedWorkers(ctx context.Context, id string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FROM workers
		WHERE shift_id = $1 AND deleted_at IS NULL
	`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count assigned workers: %w", err)
	}

	return count, nil
}
