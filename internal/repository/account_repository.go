package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/badobtech/backoffice-service/internal/domain"
)

// AccountRepository encapsulates customer account persistence.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	Update(ctx context.Context, account *domain.Account) error
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]domain.Account, error)
	Delete(ctx context.Context, email string) error
}

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository instantiates repository.
func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &accountRepository{pool: pool}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	const query = `
        INSERT INTO accounts (email, name, civic_number, street_name, city_name, postal_code, province, country)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		account.Email,
		account.Name,
		account.CivicNumber,
		account.StreetName,
		account.CityName,
		account.PostalCode,
		account.Province,
		account.Country,
	).Scan(&account.CreatedAt, &account.UpdatedAt)
}

func (r *accountRepository) Update(ctx context.Context, account *domain.Account) error {
	const query = `
        UPDATE accounts SET name=$1, civic_number=$2, street_name=$3, city_name=$4,
            postal_code=$5, province=$6, country=$7, updated_at=NOW()
        WHERE email=$8`
	cmd, err := r.pool.Exec(ctx, query,
		account.Name,
		account.CivicNumber,
		account.StreetName,
		account.CityName,
		account.PostalCode,
		account.Province,
		account.Country,
		account.Email,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	const query = `
        SELECT email, name, civic_number, street_name, city_name, postal_code, province, country, created_at, updated_at
        FROM accounts WHERE email=$1`
	var account domain.Account
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&account.Email,
		&account.Name,
		&account.CivicNumber,
		&account.StreetName,
		&account.CityName,
		&account.PostalCode,
		&account.Province,
		&account.Country,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) List(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
        SELECT email, name, civic_number, street_name, city_name, postal_code, province, country, created_at, updated_at
        FROM accounts ORDER BY name LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Account
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(
			&account.Email,
			&account.Name,
			&account.CivicNumber,
			&account.StreetName,
			&account.CityName,
			&account.PostalCode,
			&account.Province,
			&account.Country,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, account)
	}
	return result, rows.Err()
}

func (r *accountRepository) Delete(ctx context.Context, email string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE email=$1`, email)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
