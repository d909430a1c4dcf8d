package dto

// LogHoursRequest payload for submitting hours worked. Dates use the
// YYYY-MM-DD layout.
type LogHoursRequest struct {
	Email       string  `json:"email"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	HoursWorked float64 `json:"hoursWorked"`
	PaidAmount  float64 `json:"paidAmount"`
}

// HourLogResponse is the public view of an hour log.
type HourLogResponse struct {
	ID            int64   `json:"id"`
	EmployeeEmail string  `json:"email"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	HoursWorked   float64 `json:"hoursWorked"`
	PaidAmount    float64 `json:"paidAmount"`
}
