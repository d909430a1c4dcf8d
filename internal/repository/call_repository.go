package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/badobtech/backoffice-service/internal/domain"
)

// CallRepository encapsulates call record persistence.
type CallRepository interface {
	Create(ctx context.Context, call *domain.Call) error
	Update(ctx context.Context, call *domain.Call) error
	GetByID(ctx context.Context, id int64) (*domain.Call, error)
	ListByAccount(ctx context.Context, accountEmail string, limit, offset int) ([]domain.Call, error)
	CountByAccount(ctx context.Context, accountEmail string) (int64, error)
}

type callRepository struct {
	pool *pgxpool.Pool
}

// NewCallRepository instantiates repository.
func NewCallRepository(pool *pgxpool.Pool) CallRepository {
	return &callRepository{pool: pool}
}

const callColumns = `id, occurred_at, receiver_name, phone_number, description, action,
       follow_up, never_call_back, employee_email, account_email, created_at`

func (r *callRepository) Create(ctx context.Context, call *domain.Call) error {
	const query = `
        INSERT INTO calls (occurred_at, receiver_name, phone_number, description, action,
            follow_up, never_call_back, employee_email, account_email)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		call.OccurredAt,
		call.ReceiverName,
		call.PhoneNumber,
		call.Description,
		call.Action,
		call.FollowUp,
		call.NeverCallBack,
		call.EmployeeEmail,
		call.AccountEmail,
	).Scan(&call.ID, &call.CreatedAt)
}

// Update applies a corrective edit; the record is otherwise immutable.
func (r *callRepository) Update(ctx context.Context, call *domain.Call) error {
	const query = `
        UPDATE calls SET occurred_at=$1, receiver_name=$2, phone_number=$3, description=$4,
            action=$5, follow_up=$6, never_call_back=$7
        WHERE id=$8`
	cmd, err := r.pool.Exec(ctx, query,
		call.OccurredAt,
		call.ReceiverName,
		call.PhoneNumber,
		call.Description,
		call.Action,
		call.FollowUp,
		call.NeverCallBack,
		call.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *callRepository) GetByID(ctx context.Context, id int64) (*domain.Call, error) {
	query := `SELECT ` + callColumns + ` FROM calls WHERE id=$1`
	var call domain.Call
	if err := scanCall(r.pool.QueryRow(ctx, query, id), &call); err != nil {
		return nil, err
	}
	return &call, nil
}

func (r *callRepository) ListByAccount(ctx context.Context, accountEmail string, limit, offset int) ([]domain.Call, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + callColumns + ` FROM calls WHERE account_email=$1 ORDER BY occurred_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, accountEmail, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Call
	for rows.Next() {
		var call domain.Call
		if err := scanCall(rows, &call); err != nil {
			return nil, err
		}
		result = append(result, call)
	}
	return result, rows.Err()
}

func (r *callRepository) CountByAccount(ctx context.Context, accountEmail string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM calls WHERE account_email=$1`, accountEmail).Scan(&count)
	return count, err
}

func scanCall(row pgx.Row, call *domain.Call) error {
	return row.Scan(
		&call.ID,
		&call.OccurredAt,
		&call.ReceiverName,
		&call.PhoneNumber,
		&call.Description,
		&call.Action,
		&call.FollowUp,
		&call.NeverCallBack,
		&call.EmployeeEmail,
		&call.AccountEmail,
		&call.CreatedAt,
	)
}
