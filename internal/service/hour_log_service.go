package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/badobtech/backoffice-service/internal/domain"
	"github.com/badobtech/backoffice-service/internal/events"
	"github.com/badobtech/backoffice-service/internal/repository"
	apperrors "github.com/badobtech/backoffice-service/pkg/util"
)

// HourLogService coordinates work-hour submissions.
type HourLogService struct {
	logs       repository.HourLogRepository
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
}

// HourLogDependencies bundles repositories for the hour log service.
type HourLogDependencies struct {
	HourLogRepo  repository.HourLogRepository
	EmployeeRepo repository.EmployeeRepository
	Dispatcher   events.Dispatcher
}

// HourLogInput describes a submission of hours worked.
type HourLogInput struct {
	EmployeeEmail string
	StartDate     time.Time
	EndDate       time.Time
	HoursWorked   float64
	PaidAmount    float64
}

// NewHourLogService constructs the service.
func NewHourLogService(deps HourLogDependencies) *HourLogService {
	return &HourLogService{
		logs:       deps.HourLogRepo,
		employees:  deps.EmployeeRepo,
		dispatcher: deps.Dispatcher,
	}
}

const dateLayout = "2006-01-02"

// LogHours validates and persists an hour log. The date range must not be
// inverted, hours must be positive, and the employee must exist; a
// violation rejects the submission deterministically with nothing persisted.
func (s *HourLogService) LogHours(ctx context.Context, input HourLogInput) (*domain.HourLog, error) {
	if strings.TrimSpace(input.EmployeeEmail) == "" {
		return nil, apperrors.NewValidationError("email required", nil)
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, apperrors.NewInvalidArgument("endDate must not precede startDate", map[string]any{
			"startDate": input.StartDate.Format(dateLayout),
			"endDate":   input.EndDate.Format(dateLayout),
		})
	}
	if input.HoursWorked <= 0 {
		return nil, apperrors.NewInvalidArgument("hoursWorked must be positive",
			map[string]any{"hoursWorked": input.HoursWorked})
	}
	if input.PaidAmount < 0 {
		return nil, apperrors.NewInvalidArgument("paidAmount must not be negative",
			map[string]any{"paidAmount": input.PaidAmount})
	}

	if _, err := s.employees.GetByEmail(ctx, input.EmployeeEmail); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", map[string]any{"email": input.EmployeeEmail})
		}
		return nil, apperrors.MapError(err)
	}

	log := &domain.HourLog{
		EmployeeEmail: input.EmployeeEmail,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		HoursWorked:   input.HoursWorked,
		PaidAmount:    input.PaidAmount,
	}
	if err := s.logs.Create(ctx, log); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:          events.EventHoursLogged,
		EmployeeEmail: log.EmployeeEmail,
		Payload: events.HoursLoggedPayload{
			HourLogID:   log.ID,
			StartDate:   log.StartDate.Format(dateLayout),
			EndDate:     log.EndDate.Format(dateLayout),
			HoursWorked: log.HoursWorked,
			PaidAmount:  log.PaidAmount,
		},
	})
	return log, nil
}

// ListEmployeeHours returns the hour logs submitted for an employee.
func (s *HourLogService) ListEmployeeHours(ctx context.Context, employeeEmail string, limit, offset int) ([]domain.HourLog, error) {
	if _, err := s.employees.GetByEmail(ctx, employeeEmail); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", map[string]any{"email": employeeEmail})
		}
		return nil, apperrors.MapError(err)
	}
	logs, err := s.logs.ListByEmployee(ctx, employeeEmail, limit, offset)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return logs, nil
}

func (s *HourLogService) publishEvent(ctx context.Context, event events.Event) {
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
