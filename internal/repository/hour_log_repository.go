package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/badobtech/backoffice-service/internal/domain"
)

// HourLogRepository encapsulates hour log persistence. Logs are append-only.
type HourLogRepository interface {
	Create(ctx context.Context, log *domain.HourLog) error
	ListByEmployee(ctx context.Context, employeeEmail string, limit, offset int) ([]domain.HourLog, error)
}

type hourLogRepository struct {
	pool *pgxpool.Pool
}

// NewHourLogRepository instantiates repository.
func NewHourLogRepository(pool *pgxpool.Pool) HourLogRepository {
	return &hourLogRepository{pool: pool}
}

func (r *hourLogRepository) Create(ctx context.Context, log *domain.HourLog) error {
	const query = `
        INSERT INTO hour_logs (employee_email, start_date, end_date, hours_worked, paid_amount)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		log.EmployeeEmail,
		log.StartDate,
		log.EndDate,
		log.HoursWorked,
		log.PaidAmount,
	).Scan(&log.ID, &log.CreatedAt)
}

func (r *hourLogRepository) ListByEmployee(ctx context.Context, employeeEmail string, limit, offset int) ([]domain.HourLog, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
        SELECT id, employee_email, start_date, end_date, hours_worked, paid_amount, created_at
        FROM hour_logs WHERE employee_email=$1 ORDER BY start_date DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, employeeEmail, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.HourLog
	for rows.Next() {
		var log domain.HourLog
		if err := scanHourLog(rows, &log); err != nil {
			return nil, err
		}
		result = append(result, log)
	}
	return result, rows.Err()
}

func scanHourLog(row pgx.Row, log *domain.HourLog) error {
	return row.Scan(
		&log.ID,
		&log.EmployeeEmail,
		&log.StartDate,
		&log.EndDate,
		&log.HoursWorked,
		&log.PaidAmount,
		&log.CreatedAt,
	)
}
