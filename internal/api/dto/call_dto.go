package dto

import "time"

// RecordCallRequest payload for logging a contact attempt.
type RecordCallRequest struct {
	OccurredAt    *time.Time `json:"date"`
	ReceiverName  string     `json:"receiverName"`
	PhoneNumber   string     `json:"phoneNumber"`
	Description   string     `json:"description"`
	Action        string     `json:"action"`
	FollowUp      bool       `json:"followUp"`
	NeverCallBack bool       `json:"neverCallBack"`
	AccountEmail  string     `json:"email"`
}

// CallResponse is the public view of a call record.
type CallResponse struct {
	ID            int64     `json:"id"`
	OccurredAt    time.Time `json:"date"`
	ReceiverName  string    `json:"receiverName"`
	PhoneNumber   string    `json:"phoneNumber"`
	Description   string    `json:"description"`
	Action        string    `json:"action"`
	FollowUp      bool      `json:"followUp"`
	NeverCallBack bool      `json:"neverCallBack"`
	EmployeeEmail string    `json:"employeeEmail"`
	AccountEmail  string    `json:"email"`
}
