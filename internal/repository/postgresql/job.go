package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/customer"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/job"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/database"
)

type jobRepositoryImpl struct {
	db *database.DB
}

func NewJobRepository(db *database.DB) job.Repository {
	return &jobRepositoryImpl{db: db}
}

// Device and the consumed-parts list are stored as jsonb; they are only
// ever read and written whole.
const jobColumns = `
	j.id, j.job_number, j.customer_id, j.device, j.complaint,
	j.estimate, j.advance, j.status, j.parts_used, j.total,
	j.delivered_at, j.created_at, j.updated_at,
	c.name AS customer_name, c.phone AS customer_phone
`

func scanJob(row pgx.Row) (job.Job, error) {
	var (
		j             job.Job
		device        []byte
		partsUsed     []byte
		customerName  string
		customerPhone string
	)
	err := row.Scan(
		&j.ID,
		&j.JobNumber,
		&j.CustomerID,
		&device,
		&j.Complaint,
		&j.Estimate,
		&j.Advance,
		&j.Status,
		&partsUsed,
		&j.Total,
		&j.DeliveredAt,
		&j.CreatedAt,
		&j.UpdatedAt,
		&customerName,
		&customerPhone,
	)
	if err != nil {
		return job.Job{}, err
	}

	if len(device) > 0 {
		if err := json.Unmarshal(device, &j.Device); err != nil {
			return job.Job{}, fmt.Errorf("failed to decode job device: %w", err)
		}
	}
	if len(partsUsed) > 0 {
		if err := json.Unmarshal(partsUsed, &j.PartsUsed); err != nil {
			return job.Job{}, fmt.Errorf("failed to decode job parts: %w", err)
		}
	}

	j.Customer = &customer.Summary{ID: j.CustomerID, Name: customerName, Phone: customerPhone}
	return j, nil
}

// Create implements job.Repository.
func (r *jobRepositoryImpl) Create(ctx context.Context, j job.Job) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	device, err := json.Marshal(j.Device)
	if err != nil {
		return job.Job{}, fmt.Errorf("failed to encode job device: %w", err)
	}
	partsUsed, err := json.Marshal(j.PartsUsed)
	if err != nil {
		return job.Job{}, fmt.Errorf("failed to encode job parts: %w", err)
	}

	query := `
		INSERT INTO jobs (
			id, job_number, customer_id, device, complaint,
			estimate, advance, status, parts_used, total,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id
	`

	id := uuid.NewString()
	err = q.QueryRow(ctx, query,
		id, j.JobNumber, j.CustomerID, device, j.Complaint,
		j.Estimate, j.Advance, string(j.Status), partsUsed, j.Total,
	).Scan(&id)
	if err != nil {
		return job.Job{}, fmt.Errorf("failed to create job: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements job.Repository.
func (r *jobRepositoryImpl) GetByID(ctx context.Context, id string) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + jobColumns + `
		FROM jobs j
		JOIN customers c ON c.id = j.customer_id
		WHERE j.id = $1
	`

	j, err := scanJob(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrJobNotFound
		}
		return job.Job{}, fmt.Errorf("failed to get job: %w", err)
	}

	return j, nil
}

// Update implements job.Repository.
func (r *jobRepositoryImpl) Update(ctx context.Context, j job.Job) error {
	q := GetQuerier(ctx, r.db)

	device, err := json.Marshal(j.Device)
	if err != nil {
		return fmt.Errorf("failed to encode job device: %w", err)
	}
	partsUsed, err := json.Marshal(j.PartsUsed)
	if err != nil {
		return fmt.Errorf("failed to encode job parts: %w", err)
	}

	query := `
		UPDATE jobs
		SET device = $2, complaint = $3, estimate = $4, advance = $5,
			status = $6, parts_used = $7, total = $8, delivered_at = $9,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		j.ID, device, j.Complaint, j.Estimate, j.Advance,
		string(j.Status), partsUsed, j.Total, j.DeliveredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return job.ErrJobNotFound
	}

	return nil
}

// List implements job.Repository.
func (r *jobRepositoryImpl) List(ctx context.Context, filter job.Filter) ([]job.Job, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `1 = 1`
	args := []interface{}{}
	argIdx := 1

	if filter.CustomerID != nil && *filter.CustomerID != "" {
		where += fmt.Sprintf(" AND j.customer_id = $%d", argIdx)
		args = append(args, *filter.CustomerID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		where += fmt.Sprintf(" AND j.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.JobNumber != nil && *filter.JobNumber != "" {
		where += fmt.Sprintf(" AND j.job_number = $%d", argIdx)
		args = append(args, *filter.JobNumber)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		where += fmt.Sprintf(" AND j.created_at >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		where += fmt.Sprintf(" AND j.created_at < ($%d::date + INTERVAL '1 day')", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM jobs j WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	query := `
		SELECT ` + jobColumns + `
		FROM jobs j
		JOIN customers c ON c.id = j.customer_id
		WHERE ` + where + `
		ORDER BY j.created_at DESC
	` + fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return jobs, total, nil
}

// NextJobNumber implements job.Repository.
func (r *jobRepositoryImpl) NextJobNumber(ctx context.Context) (string, error) {
	q := GetQuerier(ctx, r.db)

	var seq int64
	if err := q.QueryRow(ctx, `SELECT nextval('job_number_seq')`).Scan(&seq); err != nil {
		return "", fmt.Errorf("failed to get next job number: %w", err)
	}

	return fmt.Sprintf("JOB-%05d", seq), nil
}

// ListDeliveredBetween implements job.Repository.
func (r *jobRepositoryImpl) ListDeliveredBetween(ctx context.Context, from, to time.Time) ([]job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + jobColumns + `
		FROM jobs j
		JOIN customers c ON c.id = j.customer_id
		WHERE j.status = 'delivered' AND j.delivered_at >= $1 AND j.delivered_at < $2
		ORDER BY j.delivered_at ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list delivered jobs: %w", err)
	}
	defer rows.Close()

	var jobs []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return jobs, nil
}
