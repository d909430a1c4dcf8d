package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/badobtech/backoffice-service/internal/domain"
	"github.com/badobtech/backoffice-service/internal/repository"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

type stubEmployeeRepo struct {
	byID   map[int64]*domain.Employee
	nextID int64
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{byID: make(map[int64]*domain.Employee), nextID: 1}
}

func (r *stubEmployeeRepo) Create(_ context.Context, employee *domain.Employee) error {
	employee.ID = r.nextID
	r.nextID++
	clone := *employee
	r.byID[employee.ID] = &clone
	return nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, employee *domain.Employee) error {
	if _, ok := r.byID[employee.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *employee
	r.byID[employee.ID] = &clone
	return nil
}

func (r *stubEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	employee, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *employee
	return &clone, nil
}

func (r *stubEmployeeRepo) GetByEmail(_ context.Context, email string) (*domain.Employee, error) {
	for _, employee := range r.byID {
		if employee.Email == email {
			clone := *employee
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *stubEmployeeRepo) List(_ context.Context, _, _ int) ([]domain.Employee, error) {
	result := make([]domain.Employee, 0, len(r.byID))
	for _, employee := range r.byID {
		result = append(result, *employee)
	}
	return result, nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

type stubAccountRepo struct {
	byEmail map[string]*domain.Account
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{byEmail: make(map[string]*domain.Account)}
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) error {
	clone := *account
	r.byEmail[account.Email] = &clone
	return nil
}

func (r *stubAccountRepo) Update(_ context.Context, account *domain.Account) error {
	if _, ok := r.byEmail[account.Email]; !ok {
		return pgx.ErrNoRows
	}
	clone := *account
	r.byEmail[account.Email] = &clone
	return nil
}

func (r *stubAccountRepo) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	account, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *account
	return &clone, nil
}

func (r *stubAccountRepo) List(_ context.Context, _, _ int) ([]domain.Account, error) {
	result := make([]domain.Account, 0, len(r.byEmail))
	for _, account := range r.byEmail {
		result = append(result, *account)
	}
	return result, nil
}

func (r *stubAccountRepo) Delete(_ context.Context, email string) error {
	if _, ok := r.byEmail[email]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byEmail, email)
	return nil
}

type stubCallRepo struct {
	calls  map[int64]*domain.Call
	nextID int64
}

func newStubCallRepo() *stubCallRepo {
	return &stubCallRepo{calls: make(map[int64]*domain.Call), nextID: 1}
}

func (r *stubCallRepo) Create(_ context.Context, call *domain.Call) error {
	call.ID = r.nextID
	r.nextID++
	clone := *call
	r.calls[call.ID] = &clone
	return nil
}

func (r *stubCallRepo) Update(_ context.Context, call *domain.Call) error {
	if _, ok := r.calls[call.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *call
	r.calls[call.ID] = &clone
	return nil
}

func (r *stubCallRepo) GetByID(_ context.Context, id int64) (*domain.Call, error) {
	call, ok := r.calls[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *call
	return &clone, nil
}

func (r *stubCallRepo) ListByAccount(_ context.Context, accountEmail string, _, _ int) ([]domain.Call, error) {
	var result []domain.Call
	for _, call := range r.calls {
		if call.AccountEmail == accountEmail {
			result = append(result, *call)
		}
	}
	return result, nil
}

func (r *stubCallRepo) CountByAccount(_ context.Context, accountEmail string) (int64, error) {
	var count int64
	for _, call := range r.calls {
		if call.AccountEmail == accountEmail {
			count++
		}
	}
	return count, nil
}

type stubHourLogRepo struct {
	logs   map[int64]*domain.HourLog
	nextID int64
}

func newStubHourLogRepo() *stubHourLogRepo {
	return &stubHourLogRepo{logs: make(map[int64]*domain.HourLog), nextID: 1}
}

func (r *stubHourLogRepo) Create(_ context.Context, log *domain.HourLog) error {
	log.ID = r.nextID
	r.nextID++
	clone := *log
	r.logs[log.ID] = &clone
	return nil
}

func (r *stubHourLogRepo) GetByID(_ context.Context, id int64) (*domain.HourLog, error) {
	log, ok := r.logs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *log
	return &clone, nil
}

func (r *stubHourLogRepo) ListByEmployee(_ context.Context, employeeEmail string, _, _ int) ([]domain.HourLog, error) {
	var result []domain.HourLog
	for _, log := range r.logs {
		if log.EmployeeEmail == employeeEmail {
			result = append(result, *log)
		}
	}
	return result, nil
}

type stubResetRepo struct {
	byToken map[string]*repository.PasswordResetToken
	nextID  int64
}

func newStubResetRepo() *stubResetRepo {
	return &stubResetRepo{byToken: make(map[string]*repository.PasswordResetToken), nextID: 1}
}

func (r *stubResetRepo) Create(_ context.Context, token *repository.PasswordResetToken) error {
	token.ID = r.nextID
	r.nextID++
	clone := *token
	r.byToken[token.Token] = &clone
	return nil
}

func (r *stubResetRepo) GetByToken(_ context.Context, tokenStr string) (*repository.PasswordResetToken, error) {
	token, ok := r.byToken[tokenStr]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *token
	return &clone, nil
}

func (r *stubResetRepo) MarkUsed(_ context.Context, id int64) error {
	for _, token := range r.byToken {
		if token.ID == id {
			now := token.CreatedAt
			token.UsedAt = &now
			return nil
		}
	}
	return nil
}
