package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/worker"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/database"
)

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.Repository {
	return &workerRepositoryImpl{db: db}
}

const workerColumns = `
	w.id, w.name, w.phone, w.role, w.monthly_salary, w.shift_id, w.is_active,
	w.created_at, w.updated_at, s.name AS shift_name
`

func scanWorker(row pgx.Row) (worker.Worker, error) {
	var w worker.Worker
	err := row.Scan(
		&w.ID,
		&w.Name,
		&w.Phone,
		&w.Role,
		&w.MonthlySalary,
		&w.ShiftID,
		&w.IsActive,
		&w.CreatedAt,
		&w.UpdatedAt,
		&w.ShiftName,
	)
	return w, err
}

// Create implements worker.Repository.
func (r *workerRepositoryImpl) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (id, name, phone, role, monthly_salary, shift_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id
	`

	id := uuid.NewString()
	err := q.QueryRow(ctx, query, id, w.Name, w.Phone, w.Role, w.MonthlySalary, w.ShiftID, w.IsActive).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return worker.Worker{}, worker.ErrPhoneExists
		}
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements worker.Repository.
func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workerColumns + `
		FROM workers w
		LEFT JOIN shifts s ON s.id = w.shift_id AND s.deleted_at IS NULL
		WHERE w.id = $1 AND w.deleted_at IS NULL
	`

	w, err := scanWorker(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}

	return w, nil
}

// Update implements worker.Repository.
func (r *workerRepositoryImpl) Update(ctx context.Context, w worker.Worker) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET name = $2, phone = $3, role = $4, monthly_salary = $5, shift_id = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, w.ID, w.Name, w.Phone, w.Role, w.MonthlySalary, w.ShiftID, w.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return worker.ErrPhoneExists
		}
		return fmt.Errorf("failed to update worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

// SoftDelete implements worker.Repository.
func (r *workerRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE workers SET deleted_at = NOW(), is_active = FALSE
		WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

// List implements worker.Repository.
func (r *workerRepositoryImpl) List(ctx context.Context, filter worker.Filter) ([]worker.Worker, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `w.deleted_at IS NULL`
	args := []interface{}{}
	argIdx := 1

	if filter.Name != nil && *filter.Name != "" {
		where += fmt.Sprintf(" AND w.name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}
	if filter.ShiftID != nil && *filter.ShiftID != "" {
		where += fmt.Sprintf(" AND w.shift_id = $%d", argIdx)
		args = append(args, *filter.ShiftID)
		argIdx++
	}
	if filter.IsActive != nil {
		where += fmt.Sprintf(" AND w.is_active = $%d", argIdx)
		args = append(args, *filter.IsActive)
		argIdx++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM workers w WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count workers: %w", err)
	}

	query := `
		SELECT ` + workerColumns + `
		FROM workers w
		LEFT JOIN shifts s ON s.id = w.shift_id AND s.deleted_at IS NULL
		WHERE ` + where + `
		ORDER BY w.name ASC
	` + fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return workers, total, nil
}

// ListActive implements worker.Repository.
func (r *workerRepositoryImpl) ListActive(ctx context.Context) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workerColumns + `
		FROM workers w
		LEFT JOIN shifts s ON s.id = w.shift_id AND s.deleted_at IS NULL
		WHERE w.deleted_at IS NULL AND w.is_active = TRUE
		ORDER BY w.name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return workers, nil
}
