package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/attendance"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.worker_id, a.date, a.check_in, a.check_out, a.method,
	a.created_at, a.updated_at, w.name AS worker_name
`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID,
		&rec.WorkerID,
		&rec.Date,
		&rec.CheckIn,
		&rec.CheckOut,
		&rec.Method,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&rec.WorkerName,
	)
	return rec, err
}

// Create implements attendance.Repository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, worker_id, date, check_in, check_out, method, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id
	`

	id := uuid.NewString()
	err := q.QueryRow(ctx, query, id, rec.WorkerID, rec.Date, rec.CheckIn, rec.CheckOut, string(rec.Method)).Scan(&id)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements attendance.Repository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN workers w ON w.id = a.worker_id
		WHERE a.id = $1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

// Update implements attendance.Repository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET date = $2, check_in = $3, check_out = $4, method = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, rec.ID, rec.Date, rec.CheckIn, rec.CheckOut, string(rec.Method))
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// Delete implements attendance.Repository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// GetOpenForDate implements attendance.Repository.
func (r *attendanceRepositoryImpl) GetOpenForDate(ctx context.Context, workerID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN workers w ON w.id = a.worker_id
		WHERE a.worker_id = $1 AND a.date = $2
			AND a.check_in IS NOT NULL AND a.check_out IS NULL
		ORDER BY a.check_in ASC
		LIMIT 1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, workerID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open attendance record: %w", err)
	}

	return &rec, nil
}

// ListByWorkerAndMonth implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListByWorkerAndMonth(ctx context.Context, workerID string, year, month int) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN workers w ON w.id = a.worker_id
		WHERE a.worker_id = $1
			AND EXTRACT(YEAR FROM a.date) = $2 AND EXTRACT(MONTH FROM a.date) = $3
		ORDER BY a.date ASC, a.check_in ASC NULLS LAST
	`

	rows, err := q.Query(ctx, query, workerID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// List implements attendance.Repository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `1 = 1`
	args := []interface{}{}
	argIdx := 1

	if filter.WorkerID != nil && *filter.WorkerID != "" {
		where += fmt.Sprintf(" AND a.worker_id = $%d", argIdx)
		args = append(args, *filter.WorkerID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		where += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		where += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendance_records a WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN workers w ON w.id = a.worker_id
		WHERE ` + where + `
		ORDER BY a.date DESC, a.check_in DESC NULLS LAST
	` + fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	records, err := collectRecords(rows)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func collectRecords(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}
