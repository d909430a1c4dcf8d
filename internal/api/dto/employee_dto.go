package dto

import "time"

// EmployeeLoginRequest payload for login.
type EmployeeLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PasswordResetRequest payload for requesting a reset token.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetConfirmRequest payload for completing a reset.
type PasswordResetConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// CreateEmployeeRequest mirrors the employee intake form.
type CreateEmployeeRequest struct {
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Username        string  `json:"username"`
	Password        string  `json:"password"`
	SupervisorEmail string  `json:"supervisorEmail"`
	Phone           string  `json:"phone"`
	CivicNumber     int     `json:"civicNumber"`
	PostalCode      string  `json:"postalCode"`
	StreetName      string  `json:"streetName"`
	CityName        string  `json:"cityName"`
	Province        string  `json:"province"`
	Country         string  `json:"country"`
	Title           string  `json:"title"`
	HourlyWage      float64 `json:"hourlyWage"`
	Role            string  `json:"role"`
}

// EmployeeResponse is the public view of an employee.
type EmployeeResponse struct {
	ID              int64   `json:"id"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Username        string  `json:"username"`
	SupervisorEmail string  `json:"supervisorEmail"`
	Phone           string  `json:"phone"`
	Title           string  `json:"title"`
	HourlyWage      float64 `json:"hourlyWage"`
	Role            string  `json:"role"`
	Active          bool    `json:"active"`
}
