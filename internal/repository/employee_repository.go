package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/badobtech/backoffice-service/internal/domain"
)

// EmployeeRepository defines persistence access for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	Update(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	List(ctx context.Context, limit, offset int) ([]domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository returns a Postgres-backed implementation.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

const employeeColumns = `id, first_name, last_name, email, username, password_hash,
       supervisor_email, phone, civic_number, postal_code, street_name, city_name,
       province, country, title, hourly_wage, role, active, created_at, updated_at`

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	const query = `
        INSERT INTO employees (first_name, last_name, email, username, password_hash,
            supervisor_email, phone, civic_number, postal_code, street_name, city_name,
            province, country, title, hourly_wage, role, active)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		employee.FirstName,
		employee.LastName,
		employee.Email,
		employee.Username,
		employee.PasswordHash,
		employee.SupervisorEmail,
		employee.Phone,
		employee.CivicNumber,
		employee.PostalCode,
		employee.StreetName,
		employee.CityName,
		employee.Province,
		employee.Country,
		employee.Title,
		employee.HourlyWage,
		employee.Role,
		employee.Active,
	).Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)
}

func (r *employeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	const query = `
        UPDATE employees SET first_name=$1, last_name=$2, email=$3, username=$4,
            password_hash=$5, supervisor_email=$6, phone=$7, civic_number=$8,
            postal_code=$9, street_name=$10, city_name=$11, province=$12, country=$13,
            title=$14, hourly_wage=$15, role=$16, active=$17, updated_at=NOW()
        WHERE id=$18`

	cmd, err := r.pool.Exec(ctx, query,
		employee.FirstName,
		employee.LastName,
		employee.Email,
		employee.Username,
		employee.PasswordHash,
		employee.SupervisorEmail,
		employee.Phone,
		employee.CivicNumber,
		employee.PostalCode,
		employee.StreetName,
		employee.CityName,
		employee.Province,
		employee.Country,
		employee.Title,
		employee.HourlyWage,
		employee.Role,
		employee.Active,
		employee.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

func (r *employeeRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Employee, error) {
	var employee domain.Employee
	if err := scanEmployee(r.pool.QueryRow(ctx, query, arg), &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) List(ctx context.Context, limit, offset int) ([]domain.Employee, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY last_name, first_name LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Employee
	for rows.Next() {
		var employee domain.Employee
		if err := scanEmployee(rows, &employee); err != nil {
			return nil, err
		}
		result = append(result, employee)
	}
	return result, rows.Err()
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanEmployee(row pgx.Row, employee *domain.Employee) error {
	return row.Scan(
		&employee.ID,
		&employee.FirstName,
		&employee.LastName,
		&employee.Email,
		&employee.Username,
		&employee.PasswordHash,
		&employee.SupervisorEmail,
		&employee.Phone,
		&employee.CivicNumber,
		&employee.PostalCode,
		&employee.StreetName,
		&employee.CityName,
		&employee.Province,
		&employee.Country,
		&employee.Title,
		&employee.HourlyWage,
		&employee.Role,
		&employee.Active,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
}
