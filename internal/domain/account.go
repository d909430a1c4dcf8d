package domain

import "time"

// Account is a customer of the business, keyed by email. Accounts are
// referenced by Call records and may not be deleted while references exist.
type Account struct {
	Email       string
	Name        string
	CivicNumber int
	StreetName  string
	CityName    string
	PostalCode  string
	Province    string
	Country     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
