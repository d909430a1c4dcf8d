package domain

import "time"

// HourLog is an append-only record of hours worked by an employee over a
// date range. end must not precede start and hours must be positive.
type HourLog struct {
	ID            int64
	EmployeeEmail string
	StartDate     time.Time
	EndDate       time.Time
	HoursWorked   float64
	PaidAmount    float64
	CreatedAt     time.Time
}
