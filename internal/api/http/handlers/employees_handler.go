package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/badobtech/backoffice-service/internal/api/dto"
	"github.com/badobtech/backoffice-service/internal/domain"
	"github.com/badobtech/backoffice-service/internal/service"
	apperrors "github.com/badobtech/backoffice-service/pkg/util"
)

// EmployeesHandler manages employee endpoints.
type EmployeesHandler struct {
	service *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employeeService *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{service: employeeService}
}

// List GET /users.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	employees, err := h.service.ListEmployees(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		items = append(items, employeeResponse(&employees[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /users/:userId. The userId path parameter is validated as a
// positive integer by middleware before this runs.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	id, _ := strconv.ParseInt(c.Params("userId"), 10, 64)
	employee, err := h.service.GetEmployee(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeeResponse(employee)})
}

// Create POST /users.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	employee, err := h.service.CreateEmployee(c.UserContext(), employeeInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": employeeResponse(employee)})
}

// Update PUT /users/:userId.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.ParseInt(c.Params("userId"), 10, 64)
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	employee, err := h.service.UpdateEmployee(c.UserContext(), id, employeeInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeeResponse(employee)})
}

// Delete DELETE /users/:userId.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.ParseInt(c.Params("userId"), 10, 64)
	if err := h.service.DeleteEmployee(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func employeeInput(req dto.CreateEmployeeRequest) service.EmployeeCreateInput {
	return service.EmployeeCreateInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Username:        req.Username,
		Password:        req.Password,
		SupervisorEmail: req.SupervisorEmail,
		Phone:           req.Phone,
		CivicNumber:     req.CivicNumber,
		PostalCode:      req.PostalCode,
		StreetName:      req.StreetName,
		CityName:        req.CityName,
		Province:        req.Province,
		Country:         req.Country,
		Title:           req.Title,
		HourlyWage:      req.HourlyWage,
		Role:            domain.Role(req.Role),
	}
}

func employeeResponse(e *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:              e.ID,
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		Email:           e.Email,
		Username:        e.Username,
		SupervisorEmail: e.SupervisorEmail,
		Phone:           e.Phone,
		Title:           e.Title,
		HourlyWage:      e.HourlyWage,
		Role:            string(e.Role),
		Active:          e.Active,
	}
}

func pagination(c *fiber.Ctx) (int, int) {
	limit, err := strconv.Atoi(c.Query("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
