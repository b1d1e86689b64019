package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/inventory"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/database"
)

type partRepositoryImpl struct {
	db *database.DB
}

func NewPartRepository(db *database.DB) inventory.Repository {
	return &partRepositoryImpl{db: db}
}

const partColumns = `id, name, sku, quantity, unit_cost, sale_price, created_at, updated_at`

func scanPart(row pgx.Row) (inventory.Part, error) {
	var p inventory.Part
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.SKU,
		&p.Quantity,
		&p.UnitCost,
		&p.SalePrice,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// Create implements inventory.Repository.
func (r *partRepositoryImpl) Create(ctx context.Context, p inventory.Part) (inventory.Part, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO parts (id, name, sku, quantity, unit_cost, sale_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + partColumns

	created, err := scanPart(q.QueryRow(ctx, query,
		uuid.NewString(), p.Name, p.SKU, p.Quantity, p.UnitCost, p.SalePrice,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return inventory.Part{}, inventory.ErrSKUExists
		}
		return inventory.Part{}, fmt.Errorf("failed to create part: %w", err)
	}

	return created, nil
}

// GetByID implements inventory.Repository.
func (r *partRepositoryImpl) GetByID(ctx context.Context, id string) (inventory.Part, error) {
	return r.getBy(ctx, "id = $1", id)
}

// GetBySKU implements inventory.Repository.
func (r *partRepositoryImpl) GetBySKU(ctx context.Context, sku string) (inventory.Part, error) {
	return r.getBy(ctx, "sku = $1", sku)
}

func (r *partRepositoryImpl) getBy(ctx context.Context, where string, arg any) (inventory.Part, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + partColumns + `
		FROM parts
		WHERE ` + where + ` AND deleted_at IS NULL
	`

	p, err := scanPart(q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return inventory.Part{}, inventory.ErrPartNotFound
		}
		return inventory.Part{}, fmt.Errorf("failed to get part: %w", err)
	}

	return p, nil
}

// Update implements inventory.Repository.
func (r *partRepositoryImpl) Update(ctx context.Context, p inventory.Part) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE parts
		SET name = $2, sku = $3, unit_cost = $4, sale_price = $5, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, p.ID, p.Name, p.SKU, p.UnitCost, p.SalePrice)
	if err != nil {
		if isUniqueViolation(err) {
			return inventory.ErrSKUExists
		}
		return fmt.Errorf("failed to update part: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return inventory.ErrPartNotFound
	}

	return nil
}

// SoftDelete implements inventory.Repository.
func (r *partRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE parts SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete part: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return inventory.ErrPartNotFound
	}

	return nil
}

// List implements inventory.Repository.
func (r *partRepositoryImpl) List(ctx context.Context, filter inventory.Filter) ([]inventory.Part, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `deleted_at IS NULL`
	args := []interface{}{}
	argIdx := 1

	if filter.Name != nil && *filter.Name != "" {
		where += fmt.Sprintf(" AND name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}
	if filter.SKU != nil && *filter.SKU != "" {
		where += fmt.Sprintf(" AND sku = $%d", argIdx)
		args = append(args, *filter.SKU)
		argIdx++
	}
	if filter.LowStock != nil {
		where += fmt.Sprintf(" AND quantity <= $%d", argIdx)
		args = append(args, *filter.LowStock)
		argIdx++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM parts WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count parts: %w", err)
	}

	query := `
		SELECT ` + partColumns + `
		FROM parts
		WHERE ` + where + `
		ORDER BY name ASC
	` + fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list parts: %w", err)
	}
	defer rows.Close()

	var parts []inventory.Part
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan part: %w", err)
		}
		parts = append(parts, p)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return parts, total, nil
}

// AdjustQuantity implements inventory.Repository. The CHECK constraint
// on quantity enforces non-negative stock even under concurrent
// consumption; the guard in the WHERE clause turns that race into
// ErrInsufficientStock instead of a constraint error.
func (r *partRepositoryImpl) AdjustQuantity(ctx context.Context, id string, delta int) (inventory.Part, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE parts
		SET quantity = quantity + $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL AND quantity + $2 >= 0
		RETURNING ` + partColumns

	p, err := scanPart(q.QueryRow(ctx, query, id, delta))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Distinguish a missing part from insufficient stock.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return inventory.Part{}, getErr
			}
			return inventory.Part{}, inventory.ErrInsufficientStock
		}
		return inventory.Part{}, fmt.Errorf("failed to adjust part quantity: %w", err)
	}

	return p, nil
}
