package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/finance"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/database"
)

type expenseRepositoryImpl struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) finance.Repository {
	return &expenseRepositoryImpl{db: db}
}

const expenseColumns = `id, description, category, amount, date, created_at, updated_at`

func scanExpense(row pgx.Row) (finance.Expense, error) {
	var e finance.Expense
	err := row.Scan(
		&e.ID,
		&e.Description,
		&e.Category,
		&e.Amount,
		&e.Date,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

// Create implements finance.Repository.
func (r *expenseRepositoryImpl) Create(ctx context.Context, e finance.Expense) (finance.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expenses (id, description, category, amount, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + expenseColumns

	created, err := scanExpense(q.QueryRow(ctx, query,
		uuid.NewString(), e.Description, string(e.Category), e.Amount, e.Date,
	))
	if err != nil {
		return finance.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return created, nil
}

// GetByID implements finance.Repository.
func (r *expenseRepositoryImpl) GetByID(ctx context.Context, id string) (finance.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE id = $1
	`

	e, err := scanExpense(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return finance.Expense{}, finance.ErrExpenseNotFound
		}
		return finance.Expense{}, fmt.Errorf("failed to get expense: %w", err)
	}

	return e, nil
}

// Update implements finance.Repository.
func (r *expenseRepositoryImpl) Update(ctx context.Context, e finance.Expense) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE expenses
		SET description = $2, category = $3, amount = $4, date = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, e.ID, e.Description, string(e.Category), e.Amount, e.Date)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return finance.ErrExpenseNotFound
	}

	return nil
}

// Delete implements finance.Repository.
func (r *expenseRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return finance.ErrExpenseNotFound
	}

	return nil
}

// List implements finance.Repository.
func (r *expenseRepositoryImpl) List(ctx context.Context, filter finance.Filter) ([]finance.Expense, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `1 = 1`
	args := []interface{}{}
	argIdx := 1

	if filter.Category != nil && *filter.Category != "" {
		where += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, *filter.Category)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		where += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		where += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM expenses WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE ` + where + `
		ORDER BY date DESC
	` + fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []finance.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return expenses, total, nil
}

// ListByMonth implements finance.Repository.
func (r *expenseRepositoryImpl) ListByMonth(ctx context.Context, year, month int) ([]finance.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE EXTRACT(YEAR FROM date) = $1 AND EXTRACT(MONTH FROM date) = $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []finance.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return expenses, nil
}
