package model

import "time"

// CustomerStatus enum constants
const (
	CustomerActive   = "active"
	CustomerInactive = "inactive"
)

// Customer represents a freight customer (broker or direct shipper account)
type Customer struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contact_name,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	ZipCode     string    `json:"zip_code,omitempty"`
	MCNumber    string    `json:"mc_number,omitempty"`
	Status      string    `json:"status"` // active, inactive
	CompanyID   int       `json:"company_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
