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

// CallService coordinates call record workflows.
type CallService struct {
	calls      repository.CallRepository
	accounts   repository.AccountRepository
	dispatcher events.Dispatcher
}

// CallDependencies bundles repositories for the call service.
type CallDependencies struct {
	CallRepo    repository.CallRepository
	AccountRepo repository.AccountRepository
	Dispatcher  events.Dispatcher
}

// CallCreateInput describes a contact-log entry to record.
type CallCreateInput struct {
	OccurredAt    time.Time
	ReceiverName  string
	PhoneNumber   string
	Description   string
	Action        domain.CallAction
	FollowUp      bool
	NeverCallBack bool
	AccountEmail  string
}

// NewCallService constructs the service.
func NewCallService(deps CallDependencies) *CallService {
	return &CallService{
		calls:      deps.CallRepo,
		accounts:   deps.AccountRepo,
		dispatcher: deps.Dispatcher,
	}
}

// RecordCall validates and persists a contact-log entry. The action must be
// a member of the closed enumeration and the account must exist at write
// time; otherwise nothing is persisted. A concurrent account delete slips
// past the existence check and surfaces as CONSTRAINT_VIOLATION from the
// storage boundary.
func (s *CallService) RecordCall(ctx context.Context, employeeEmail string, input CallCreateInput) (*domain.Call, error) {
	if !domain.ValidCallAction(input.Action) {
		return nil, apperrors.NewInvalidArgument("action is not a recognized call action",
			map[string]any{"action": string(input.Action)})
	}
	if input.FollowUp && input.NeverCallBack {
		return nil, apperrors.NewInvalidArgument("followUp and neverCallBack cannot both be set", nil)
	}
	if strings.TrimSpace(input.AccountEmail) == "" {
		return nil, apperrors.NewValidationError("accountEmail required", nil)
	}

	if _, err := s.accounts.GetByEmail(ctx, input.AccountEmail); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("account", map[string]any{"email": input.AccountEmail})
		}
		return nil, apperrors.MapError(err)
	}

	occurredAt := input.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	call := &domain.Call{
		OccurredAt:    occurredAt,
		ReceiverName:  strings.TrimSpace(input.ReceiverName),
		PhoneNumber:   strings.TrimSpace(input.PhoneNumber),
		Description:   strings.TrimSpace(input.Description),
		Action:        input.Action,
		FollowUp:      input.FollowUp,
		NeverCallBack: input.NeverCallBack,
		EmployeeEmail: employeeEmail,
		AccountEmail:  input.AccountEmail,
	}
	if err := s.calls.Create(ctx, call); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:          events.EventCallRecorded,
		EmployeeEmail: employeeEmail,
		Payload: events.CallRecordedPayload{
			CallID:       call.ID,
			AccountEmail: call.AccountEmail,
			Action:       call.Action,
			FollowUp:     call.FollowUp,
		},
	})
	return call, nil
}

// ListAccountCalls returns the contact log for an account, newest first.
func (s *CallService) ListAccountCalls(ctx context.Context, accountEmail string, limit, offset int) ([]domain.Call, error) {
	if _, err := s.accounts.GetByEmail(ctx, accountEmail); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("account", map[string]any{"email": accountEmail})
		}
		return nil, apperrors.MapError(err)
	}
	calls, err := s.calls.ListByAccount(ctx, accountEmail, limit, offset)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return calls, nil
}

// AmendCall applies a corrective edit to an existing call record.
func (s *CallService) AmendCall(ctx context.Context, id int64, input CallCreateInput) (*domain.Call, error) {
	if !domain.ValidCallAction(input.Action) {
		return nil, apperrors.NewInvalidArgument("action is not a recognized call action",
			map[string]any{"action": string(input.Action)})
	}
	if input.FollowUp && input.NeverCallBack {
		return nil, apperrors.NewInvalidArgument("followUp and neverCallBack cannot both be set", nil)
	}

	call, err := s.calls.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("call", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}

	if !input.OccurredAt.IsZero() {
		call.OccurredAt = input.OccurredAt
	}
	call.ReceiverName = strings.TrimSpace(input.ReceiverName)
	call.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	call.Description = strings.TrimSpace(input.Description)
	call.Action = input.Action
	call.FollowUp = input.FollowUp
	call.NeverCallBack = input.NeverCallBack

	if err := s.calls.Update(ctx, call); err != nil {
		return nil, apperrors.MapError(err)
	}
	return call, nil
}

func (s *CallService) publishEvent(ctx context.Context, event events.Event) {
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
