package dto

// CreateAccountRequest payload for registering a customer account.
type CreateAccountRequest struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	CivicNumber int    `json:"civicNumber"`
	StreetName  string `json:"streetName"`
	CityName    string `json:"cityName"`
	PostalCode  string `json:"postalCode"`
	Province    string `json:"province"`
	Country     string `json:"country"`
}

// AccountResponse is the public view of a customer account.
type AccountResponse struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	CivicNumber int    `json:"civicNumber"`
	StreetName  string `json:"streetName"`
	CityName    string `json:"cityName"`
	PostalCode  string `json:"postalCode"`
	Province    string `json:"province"`
	Country     string `json:"country"`
}
