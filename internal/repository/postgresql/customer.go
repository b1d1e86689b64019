package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/customer"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/database"
)

type customerRepositoryImpl struct {
	db *database.DB
}

func NewCustomerRepository(db *database.DB) customer.Repository {
	return &customerRepositoryImpl{db: db}
}

const customerColumns = `id, name, phone, address, created_at, updated_at`

func scanCustomer(row pgx.Row) (customer.Customer, error) {
	var c customer.Customer
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.Address,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// Create implements customer.Repository.
func (r *customerRepositoryImpl) Create(ctx context.Context, c customer.Customer) (customer.Customer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO customers (id, name, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + customerColumns

	created, err := scanCustomer(q.QueryRow(ctx, query, uuid.NewString(), c.Name, c.Phone, c.Address))
	if err != nil {
		if isUniqueViolation(err) {
			return customer.Customer{}, customer.ErrPhoneExists
		}
		return customer.Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}

	return created, nil
}

// GetByID implements customer.Repository.
func (r *customerRepositoryImpl) GetByID(ctx context.Context, id string) (customer.Customer, error) {
	return r.getBy(ctx, "id = $1", id)
}

// GetByPhone implements customer.Repository.
func (r *customerRepositoryImpl) GetByPhone(ctx context.Context, phone string) (customer.Customer, error) {
	return r.getBy(ctx, "phone = $1", phone)
}

func (r *customerRepositoryImpl) getBy(ctx context.Context, where string, arg any) (customer.Customer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE ` + where + ` AND deleted_at IS NULL
	`

	c, err := scanCustomer(q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return customer.Customer{}, customer.ErrCustomerNotFound
		}
		return customer.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}

	return c, nil
}

// Update implements customer.Repository.
func (r *customerRepositoryImpl) Update(ctx context.Context, c customer.Customer) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE customers
		SET name = $2, phone = $3, address = $4, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, c.ID, c.Name, c.Phone, c.Address)
	if err != nil {
		if isUniqueViolation(err) {
			return customer.ErrPhoneExists
		}
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return customer.ErrCustomerNotFound
	}

	return nil
}

// SoftDelete implements customer.Repository.
func (r *customerRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE customers SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return customer.ErrCustomerNotFound
	}

	return nil
}

// List implements customer.Repository.
func (r *customerRepositoryImpl) List(ctx context.Context, filter customer.Filter) ([]customer.Customer, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `deleted_at IS NULL`
	args := []interface{}{}
	argIdx := 1

	if filter.Name != nil && *filter.Name != "" {
		where += fmt.Sprintf(" AND name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}
	if filter.Phone != nil && *filter.Phone != "" {
		where += fmt.Sprintf(" AND phone LIKE $%d", argIdx)
		args = append(args, "%"+*filter.Phone+"%")
		argIdx++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM customers WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE ` + where + `
		ORDER BY name ASC
	` + fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []customer.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return customers, total, nil
}
