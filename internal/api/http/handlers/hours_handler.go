package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/badobtech/backoffice-service/internal/api/dto"
	"github.com/badobtech/backoffice-service/internal/domain"
	"github.com/badobtech/backoffice-service/internal/service"
	apperrors "github.com/badobtech/backoffice-service/pkg/util"
)

const dateLayout = "2006-01-02"

// HoursHandler manages hour logging endpoints.
type HoursHandler struct {
	service *service.HourLogService
}

// NewHoursHandler constructs handler.
func NewHoursHandler(hourLogService *service.HourLogService) *HoursHandler {
	return &HoursHandler{service: hourLogService}
}

// Log POST /logHours.
func (h *HoursHandler) Log(c *fiber.Ctx) error {
	var req dto.LogHoursRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.StartDate == "" || req.EndDate == "" {
		return apperrors.NewValidationError("email, startDate, endDate required", nil)
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return apperrors.NewValidationError("startDate must be YYYY-MM-DD",
			map[string]any{"startDate": req.StartDate})
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return apperrors.NewValidationError("endDate must be YYYY-MM-DD",
			map[string]any{"endDate": req.EndDate})
	}

	log, err := h.service.LogHours(c.UserContext(), service.HourLogInput{
		EmployeeEmail: req.Email,
		StartDate:     start,
		EndDate:       end,
		HoursWorked:   req.HoursWorked,
		PaidAmount:    req.PaidAmount,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": hourLogResponse(log)})
}

// List GET /logHours?email=...
func (h *HoursHandler) List(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return apperrors.NewValidationError("email query parameter required", nil)
	}
	limit, offset := pagination(c)
	logs, err := h.service.ListEmployeeHours(c.UserContext(), email, limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.HourLogResponse, 0, len(logs))
	for i := range logs {
		items = append(items, hourLogResponse(&logs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func hourLogResponse(log *domain.HourLog) dto.HourLogResponse {
	return dto.HourLogResponse{
		ID:            log.ID,
		EmployeeEmail: log.EmployeeEmail,
		StartDate:     log.StartDate.Format(dateLayout),
		EndDate:       log.EndDate.Format(dateLayout),
		HoursWorked:   log.HoursWorked,
		PaidAmount:    log.PaidAmount,
	}
}
