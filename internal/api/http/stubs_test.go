package http

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/badobtech/backoffice-service/internal/domain"
	"github.com/badobtech/backoffice-service/internal/repository"
)

// In-memory repositories backing the route pipeline tests. Same contract as
// the Postgres implementations: pgx.ErrNoRows on miss, clones on return.

type memEmployeeRepo struct {
	byID   map[int64]*domain.Employee
	nextID int64
}

func newMemEmployeeRepo() *memEmployeeRepo {
	return &memEmployeeRepo{byID: make(map[int64]*domain.Employee), nextID: 1}
}

func (r *memEmployeeRepo) Create(_ context.Context, employee *domain.Employee) error {
	employee.ID = r.nextID
	r.nextID++
	clone := *employee
	r.byID[employee.ID] = &clone
	return nil
}

func (r *memEmployeeRepo) Update(_ context.Context, employee *domain.Employee) error {
	if _, ok := r.byID[employee.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *employee
	r.byID[employee.ID] = &clone
	return nil
}

func (r *memEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	employee, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *employee
	return &clone, nil
}

func (r *memEmployeeRepo) GetByEmail(_ context.Context, email string) (*domain.Employee, error) {
	for _, employee := range r.byID {
		if employee.Email == email {
			clone := *employee
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memEmployeeRepo) List(_ context.Context, _, _ int) ([]domain.Employee, error) {
	result := make([]domain.Employee, 0, len(r.byID))
	for _, employee := range r.byID {
		result = append(result, *employee)
	}
	return result, nil
}

func (r *memEmployeeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

type memAccountRepo struct {
	byEmail map[string]*domain.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{byEmail: make(map[string]*domain.Account)}
}

func (r *memAccountRepo) Create(_ context.Context, account *domain.Account) error {
	clone := *account
	r.byEmail[account.Email] = &clone
	return nil
}

func (r *memAccountRepo) Update(_ context.Context, account *domain.Account) error {
	if _, ok := r.byEmail[account.Email]; !ok {
		return pgx.ErrNoRows
	}
	clone := *account
	r.byEmail[account.Email] = &clone
	return nil
}

func (r *memAccountRepo) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	account, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *account
	return &clone, nil
}

func (r *memAccountRepo) List(_ context.Context, _, _ int) ([]domain.Account, error) {
	result := make([]domain.Account, 0, len(r.byEmail))
	for _, account := range r.byEmail {
		result = append(result, *account)
	}
	return result, nil
}

func (r *memAccountRepo) Delete(_ context.Context, email string) error {
	if _, ok := r.byEmail[email]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byEmail, email)
	return nil
}

type memCallRepo struct {
	calls  map[int64]*domain.Call
	nextID int64
}

func newMemCallRepo() *memCallRepo {
	return &memCallRepo{calls: make(map[int64]*domain.Call), nextID: 1}
}

func (r *memCallRepo) Create(_ context.Context, call *domain.Call) error {
	call.ID = r.nextID
	r.nextID++
	clone := *call
	r.calls[call.ID] = &clone
	return nil
}

func (r *memCallRepo) Update(_ context.Context, call *domain.Call) error {
	if _, ok := r.calls[call.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *call
	r.calls[call.ID] = &clone
	return nil
}

func (r *memCallRepo) GetByID(_ context.Context, id int64) (*domain.Call, error) {
	call, ok := r.calls[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *call
	return &clone, nil
}

func (r *memCallRepo) ListByAccount(_ context.Context, accountEmail string, _, _ int) ([]domain.Call, error) {
	var result []domain.Call
	for _, call := range r.calls {
		if call.AccountEmail == accountEmail {
			result = append(result, *call)
		}
	}
	return result, nil
}

func (r *memCallRepo) CountByAccount(_ context.Context, accountEmail string) (int64, error) {
	var count int64
	for _, call := range r.calls {
		if call.AccountEmail == accountEmail {
			count++
		}
	}
	return count, nil
}

type memHourLogRepo struct {
	logs   map[int64]*domain.HourLog
	nextID int64
}

func newMemHourLogRepo() *memHourLogRepo {
	return &memHourLogRepo{logs: make(map[int64]*domain.HourLog), nextID: 1}
}

func (r *memHourLogRepo) Create(_ context.Context, log *domain.HourLog) error {
	log.ID = r.nextID
	r.nextID++
	clone := *log
	r.logs[log.ID] = &clone
	return nil
}

func (r *memHourLogRepo) ListByEmployee(_ context.Context, employeeEmail string, _, _ int) ([]domain.HourLog, error) {
	var result []domain.HourLog
	for _, log := range r.logs {
		if log.EmployeeEmail == employeeEmail {
			result = append(result, *log)
		}
	}
	return result, nil
}

type memResetRepo struct {
	byToken map[string]*repository.PasswordResetToken
	nextID  int64
}

func newMemResetRepo() *memResetRepo {
	return &memResetRepo{byToken: make(map[string]*repository.PasswordResetToken), nextID: 1}
}

func (r *memResetRepo) Create(_ context.Context, token *repository.PasswordResetToken) error {
	token.ID = r.nextID
	r.nextID++
	clone := *token
	r.byToken[token.Token] = &clone
	return nil
}

func (r *memResetRepo) GetByToken(_ context.Context, tokenStr string) (*repository.PasswordResetToken, error) {
	token, ok := r.byToken[tokenStr]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *token
	return &clone, nil
}

func (r *memResetRepo) MarkUsed(_ context.Context, id int64) error {
	for _, token := range r.byToken {
		if token.ID == id {
			used := token.CreatedAt
			token.UsedAt = &used
			return nil
		}
	}
	return nil
}
