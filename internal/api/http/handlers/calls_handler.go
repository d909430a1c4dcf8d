package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/badobtech/backoffice-service/internal/api/dto"
	"github.com/badobtech/backoffice-service/internal/auth"
	"github.com/badobtech/backoffice-service/internal/domain"
	"github.com/badobtech/backoffice-service/internal/service"
	apperrors "github.com/badobtech/backoffice-service/pkg/util"
)

// CallsHandler manages call record endpoints.
type CallsHandler struct {
	service *service.CallService
}

// NewCallsHandler constructs handler.
func NewCallsHandler(callService *service.CallService) *CallsHandler {
	return &CallsHandler{service: callService}
}

// Record POST /calls.
func (h *CallsHandler) Record(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.RecordCallRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ReceiverName == "" || req.PhoneNumber == "" || req.Action == "" || req.AccountEmail == "" {
		return apperrors.NewValidationError("receiverName, phoneNumber, action, email required", nil)
	}

	input := callInput(req)
	call, err := h.service.RecordCall(c.UserContext(), principal.Email, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": callResponse(call)})
}

// Amend PUT /calls/:callId. Corrective edits only.
func (h *CallsHandler) Amend(c *fiber.Ctx) error {
	id, _ := strconv.ParseInt(c.Params("callId"), 10, 64)
	var req dto.RecordCallRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	call, err := h.service.AmendCall(c.UserContext(), id, callInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": callResponse(call)})
}

// ListByAccount GET /accounts/:email/calls.
func (h *CallsHandler) ListByAccount(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	calls, err := h.service.ListAccountCalls(c.UserContext(), c.Params("email"), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.CallResponse, 0, len(calls))
	for i := range calls {
		items = append(items, callResponse(&calls[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func callInput(req dto.RecordCallRequest) service.CallCreateInput {
	input := service.CallCreateInput{
		ReceiverName:  req.ReceiverName,
		PhoneNumber:   req.PhoneNumber,
		Description:   req.Description,
		Action:        domain.CallAction(req.Action),
		FollowUp:      req.FollowUp,
		NeverCallBack: req.NeverCallBack,
		AccountEmail:  req.AccountEmail,
	}
	if req.OccurredAt != nil {
		input.OccurredAt = *req.OccurredAt
	}
	return input
}

func callResponse(call *domain.Call) dto.CallResponse {
	return dto.CallResponse{
		ID:            call.ID,
		OccurredAt:    call.OccurredAt,
		ReceiverName:  call.ReceiverName,
		PhoneNumber:   call.PhoneNumber,
		Description:   call.Description,
		Action:        string(call.Action),
		FollowUp:      call.FollowUp,
		NeverCallBack: call.NeverCallBack,
		EmployeeEmail: call.EmployeeEmail,
		AccountEmail:  call.AccountEmail,
	}
}
