package domain

import "time"

// Role enumerates the flat access roles carried in auth tokens. Checks
// against a route's allowed set are exact membership: ADMIN does not
// implicitly satisfy a SUPERVISOR-only route.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSupervisor Role = "SUPERVISOR"
	RoleEmployee   Role = "EMPLOYEE"
)

// ValidRole reports whether r is a member of the role set.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleSupervisor, RoleEmployee:
		return true
	}
	return false
}

// Employee models a staff member of the business.
type Employee struct {
	ID              int64
	FirstName       string
	LastName        string
	Email           string
	Username        string
	PasswordHash    string
	SupervisorEmail string
	Phone           string
	CivicNumber     int
	PostalCode      string
	StreetName      string
	CityName        string
	Province        string
	Country         string
	Title           string
	HourlyWage      float64
	Role            Role
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
