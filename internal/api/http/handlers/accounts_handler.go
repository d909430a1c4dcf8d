package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/badobtech/backoffice-service/internal/api/dto"
	"github.com/badobtech/backoffice-service/internal/domain"
	"github.com/badobtech/backoffice-service/internal/service"
	apperrors "github.com/badobtech/backoffice-service/pkg/util"
)

// AccountsHandler manages customer account endpoints.
type AccountsHandler struct {
	service *service.AccountService
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(accountService *service.AccountService) *AccountsHandler {
	return &AccountsHandler{service: accountService}
}

// Create POST /accounts.
func (h *AccountsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	account, err := h.service.CreateAccount(c.UserContext(), service.AccountCreateInput{
		Email:       req.Email,
		Name:        req.Name,
		CivicNumber: req.CivicNumber,
		StreetName:  req.StreetName,
		CityName:    req.CityName,
		PostalCode:  req.PostalCode,
		Province:    req.Province,
		Country:     req.Country,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": accountResponse(account)})
}

// List GET /accounts.
func (h *AccountsHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	accounts, err := h.service.ListAccounts(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		items = append(items, accountResponse(&accounts[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /accounts/:email.
func (h *AccountsHandler) Get(c *fiber.Ctx) error {
	account, err := h.service.GetAccount(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": accountResponse(account)})
}

// Delete DELETE /accounts/:email. Blocked while call records reference the
// account.
func (h *AccountsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.DeleteAccount(c.UserContext(), c.Params("email")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func accountResponse(account *domain.Account) dto.AccountResponse {
	return dto.AccountResponse{
		Email:       account.Email,
		Name:        account.Name,
		CivicNumber: account.CivicNumber,
		StreetName:  account.StreetName,
		CityName:    account.CityName,
		PostalCode:  account.PostalCode,
		Province:    account.Province,
		Country:     account.Country,
	}
}
