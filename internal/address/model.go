package address

import "time"

type Address struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	FullName      string    `json:"full_name"`
	PhoneNumber   string    `json:"phone_number"`
	Region        string    `json:"region"`
	Province      string    `json:"province"`
	City          string    `json:"city"`
	Barangay      string    `json:"barangay"`
	StreetAddress string    `json:"street_address"`
	PostalCode    string    `json:"postal_code"`
	IsDefault     bool      `json:"is_default"`
	CreatedAt     time.Time `json:"created_at"`
}
