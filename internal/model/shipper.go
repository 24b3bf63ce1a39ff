package model

import "time"

// Shipper represents an origin facility loads are picked up from
type Shipper struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Address         string    `json:"address,omitempty"`
	City            string    `json:"city,omitempty"`
	State           string    `json:"state,omitempty"`
	ZipCode         string    `json:"zip_code,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	ContactPerson   string    `json:"contact_person,omitempty"`
	Email           string    `json:"email,omitempty"`
	ProductType     string    `json:"product_type,omitempty"`
	AverageWaitTime string    `json:"average_wait_time,omitempty"` // e.g. "30 minutes"
	AppointmentType string    `json:"appointment_type,omitempty"`  // e.g. "Required", "Walk-in", "FCFS"
	Notes           string    `json:"notes,omitempty"`
	CompanyID       int       `json:"company_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
