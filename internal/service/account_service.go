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

// AccountService coordinates customer account workflows.
type AccountService struct {
	accounts   repository.AccountRepository
	calls      repository.CallRepository
	dispatcher events.Dispatcher
}

// AccountDependencies bundles repositories for the account service.
type AccountDependencies struct {
	AccountRepo repository.AccountRepository
	CallRepo    repository.CallRepository
	Dispatcher  events.Dispatcher
}

// AccountCreateInput describes a new customer account.
type AccountCreateInput struct {
	Email       string
	Name        string
	CivicNumber int
	StreetName  string
	CityName    string
	PostalCode  string
	Province    string
	Country     string
}

// NewAccountService constructs the service.
func NewAccountService(deps AccountDependencies) *AccountService {
	return &AccountService{
		accounts:   deps.AccountRepo,
		calls:      deps.CallRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateAccount registers a new customer account keyed by email.
func (s *AccountService) CreateAccount(ctx context.Context, input AccountCreateInput) (*domain.Account, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("email and name required", nil)
	}

	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("account already exists", map[string]any{"email": email})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	account := &domain.Account{
		Email:       email,
		Name:        strings.TrimSpace(input.Name),
		CivicNumber: input.CivicNumber,
		StreetName:  input.StreetName,
		CityName:    input.CityName,
		PostalCode:  input.PostalCode,
		Province:    input.Province,
		Country:     input.Country,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type: events.EventAccountCreated,
		Payload: events.AccountCreatedPayload{
			AccountEmail: account.Email,
			Name:         account.Name,
		},
	})
	return account, nil
}

// GetAccount fetches an account by email.
func (s *AccountService) GetAccount(ctx context.Context, email string) (*domain.Account, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("account", map[string]any{"email": email})
		}
		return nil, apperrors.MapError(err)
	}
	return account, nil
}

// ListAccounts returns a page of accounts.
func (s *AccountService) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	accounts, err := s.accounts.List(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return accounts, nil
}

// DeleteAccount removes an account. Deletion is blocked while any Call
// references the account; the ON DELETE RESTRICT constraint backstops the
// check against a call recorded concurrently.
func (s *AccountService) DeleteAccount(ctx context.Context, email string) error {
	if _, err := s.accounts.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("account", map[string]any{"email": email})
		}
		return apperrors.MapError(err)
	}

	count, err := s.calls.CountByAccount(ctx, email)
	if err != nil {
		return apperrors.MapError(err)
	}
	if count > 0 {
		return apperrors.NewConflict("account has call records", map[string]any{
			"email": email,
			"calls": count,
		})
	}

	if err := s.accounts.Delete(ctx, email); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

func (s *AccountService) publishEvent(ctx context.Context, event events.Event) {
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
