package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/holiday"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.Repository {
	return &holidayRepositoryImpl{db: db}
}

// Workers are stored as a jsonb array. Rows imported from the old system
// hold bare ID strings, newer rows hold {id, name} objects; WorkerRef's
// JSON codec accepts both.
func scanHoliday(row pgx.Row) (holiday.Holiday, error) {
	var (
		h       holiday.Holiday
		workers []byte
	)
	err := row.Scan(
		&h.ID,
		&h.Name,
		&h.Date,
		&h.AppliesTo,
		&workers,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	if err != nil {
		return holiday.Holiday{}, err
	}
	if len(workers) > 0 {
		if err := json.Unmarshal(workers, &h.Workers); err != nil {
			return holiday.Holiday{}, fmt.Errorf("failed to decode holiday workers: %w", err)
		}
	}
	return h, nil
}

// Create implements holiday.Repository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	workers, err := json.Marshal(h.Workers)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to encode holiday workers: %w", err)
	}

	query := `
		INSERT INTO holidays (id, name, date, applies_to, workers, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, name, date, applies_to, workers, created_at, updated_at
	`

	created, err := scanHoliday(q.QueryRow(ctx, query,
		uuid.NewString(), h.Name, h.Date, string(h.AppliesTo), workers,
	))
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return created, nil
}

// GetByID implements holiday.Repository.
func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, date, applies_to, workers, created_at, updated_at
		FROM holidays
		WHERE id = $1
	`

	h, err := scanHoliday(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, fmt.Errorf("failed to get holiday: %w", err)
	}

	return h, nil
}

// Update implements holiday.Repository.
func (r *holidayRepositoryImpl) Update(ctx context.Context, h holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)

	workers, err := json.Marshal(h.Workers)
	if err != nil {
		return fmt.Errorf("failed to encode holiday workers: %w", err)
	}

	query := `
		UPDATE holidays
		SET name = $2, date = $3, applies_to = $4, workers = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, h.ID, h.Name, h.Date, string(h.AppliesTo), workers)
	if err != nil {
		return fmt.Errorf("failed to update holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}

// Delete implements holiday.Repository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}

// ListByMonth implements holiday.Repository.
func (r *holidayRepositoryImpl) ListByMonth(ctx context.Context, year, month int) ([]holiday.Holiday, error) {
	return r.list(ctx, `
		SELECT id, name, date, applies_to, workers, created_at, updated_at
		FROM holidays
		WHERE EXTRACT(YEAR FROM date) = $1 AND EXTRACT(MONTH FROM date) = $2
		ORDER BY date ASC
	`, year, month)
}

// ListByYear implements holiday.Repository.
func (r *holidayRepositoryImpl) ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	return r.list(ctx, `
		SELECT id, name, date, applies_to, workers, created_at, updated_at
		FROM holidays
		WHERE EXTRACT(YEAR FROM date) = $1
		ORDER BY date ASC
	`, year)
}

func (r *holidayRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return holidays, nil
}
