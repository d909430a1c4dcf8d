package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/badobtech/backoffice-service/internal/auth"
	"github.com/badobtech/backoffice-service/internal/domain"
	"github.com/badobtech/backoffice-service/internal/events"
	"github.com/badobtech/backoffice-service/internal/repository"
	apperrors "github.com/badobtech/backoffice-service/pkg/util"
)

// EmployeeService coordinates employee management.
type EmployeeService struct {
	employees  repository.EmployeeRepository
	bcryptCost int
	dispatcher events.Dispatcher
}

// EmployeeDependencies bundles requirements for the employee service.
type EmployeeDependencies struct {
	EmployeeRepo repository.EmployeeRepository
	BcryptCost   int
	Dispatcher   events.Dispatcher
}

// EmployeeCreateInput mirrors the employee intake form.
type EmployeeCreateInput struct {
	FirstName       string
	LastName        string
	Email           string
	Username        string
	Password        string
	SupervisorEmail string
	Phone           string
	CivicNumber     int
	PostalCode      string
	StreetName      string
	CityName        string
	Province        string
	Country         string
	Title           string
	HourlyWage      float64
	Role            domain.Role
}

// NewEmployeeService constructs the service.
func NewEmployeeService(deps EmployeeDependencies) *EmployeeService {
	return &EmployeeService{
		employees:  deps.EmployeeRepo,
		bcryptCost: deps.BcryptCost,
		dispatcher: deps.Dispatcher,
	}
}

// GetEmployee fetches an employee by numeric id.
func (s *EmployeeService) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return employee, nil
}

// ListEmployees returns a page of employees.
func (s *EmployeeService) ListEmployees(ctx context.Context, limit, offset int) ([]domain.Employee, error) {
	employees, err := s.employees.List(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return employees, nil
}

// CreateEmployee registers a new employee with a hashed password.
func (s *EmployeeService) CreateEmployee(ctx context.Context, input EmployeeCreateInput) (*domain.Employee, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" {
		return nil, apperrors.NewValidationError("firstName, lastName, email, password required", nil)
	}
	role := input.Role
	if role == "" {
		role = domain.RoleEmployee
	}
	if !domain.ValidRole(role) {
		return nil, apperrors.NewInvalidArgument("unknown role", map[string]any{"role": string(role)})
	}

	if _, err := s.employees.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email already registered", map[string]any{"email": email})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	employee := &domain.Employee{
		FirstName:       strings.TrimSpace(input.FirstName),
		LastName:        strings.TrimSpace(input.LastName),
		Email:           email,
		Username:        strings.TrimSpace(input.Username),
		PasswordHash:    hash,
		SupervisorEmail: input.SupervisorEmail,
		Phone:           input.Phone,
		CivicNumber:     input.CivicNumber,
		PostalCode:      input.PostalCode,
		StreetName:      input.StreetName,
		CityName:        input.CityName,
		Province:        input.Province,
		Country:         input.Country,
		Title:           input.Title,
		HourlyWage:      input.HourlyWage,
		Role:            role,
		Active:          true,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:          events.EventEmployeeCreated,
		EmployeeEmail: employee.Email,
		Payload: events.EmployeeCreatedPayload{
			EmployeeID: employee.ID,
			Role:       employee.Role,
		},
	})
	return employee, nil
}

// UpdateEmployee applies edits to an existing employee. Password and role
// are left unchanged when not supplied.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id int64, input EmployeeCreateInput) (*domain.Employee, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}

	if input.FirstName != "" {
		employee.FirstName = strings.TrimSpace(input.FirstName)
	}
	if input.LastName != "" {
		employee.LastName = strings.TrimSpace(input.LastName)
	}
	if input.SupervisorEmail != "" {
		employee.SupervisorEmail = input.SupervisorEmail
	}
	if input.Phone != "" {
		employee.Phone = input.Phone
	}
	if input.Title != "" {
		employee.Title = input.Title
	}
	if input.HourlyWage > 0 {
		employee.HourlyWage = input.HourlyWage
	}
	if input.Role != "" {
		if !domain.ValidRole(input.Role) {
			return nil, apperrors.NewInvalidArgument("unknown role", map[string]any{"role": string(input.Role)})
		}
		employee.Role = input.Role
	}
	if input.Password != "" {
		hash, err := auth.HashPassword(input.Password, s.bcryptCost)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		employee.PasswordHash = hash
	}

	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, apperrors.MapError(err)
	}
	return employee, nil
}

// DeleteEmployee removes an employee record. Hour logs referencing the
// employee block the delete at the storage boundary.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

func (s *EmployeeService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
