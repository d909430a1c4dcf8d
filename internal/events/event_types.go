package events

import (
	"time"

	"github.com/badobtech/backoffice-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAccountCreated  EventType = "account_created"
	EventCallRecorded    EventType = "call_recorded"
	EventHoursLogged     EventType = "hours_logged"
	EventEmployeeCreated EventType = "employee_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID            string      `json:"id"`
	Type          EventType   `json:"type"`
	EmployeeEmail string      `json:"employee_email,omitempty"`
	Timestamp     time.Time   `json:"timestamp"`
	Payload       interface{} `json:"payload"`
}

// AccountCreatedPayload payload.
type AccountCreatedPayload struct {
	AccountEmail string `json:"account_email"`
	Name         string `json:"name"`
}

// CallRecordedPayload payload.
type CallRecordedPayload struct {
	CallID       int64             `json:"call_id"`
	AccountEmail string            `json:"account_email"`
	Action       domain.CallAction `json:"action"`
	FollowUp     bool              `json:"follow_up"`
}

// HoursLoggedPayload payload.
type HoursLoggedPayload struct {
	HourLogID   int64   `json:"hour_log_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	HoursWorked float64 `json:"hours_worked"`
	PaidAmount  float64 `json:"paid_amount"`
}

// EmployeeCreatedPayload payload.
type EmployeeCreatedPayload struct {
	EmployeeID int64       `json:"employee_id"`
	Role       domain.Role `json:"role"`
}
