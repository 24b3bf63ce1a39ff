package model

import "time"

// DriverStatus enum constants
const (
	DriverAvailable = "available"
	DriverOnTrip    = "on_trip"
	DriverOffDuty   = "off_duty"
)

// Driver represents a company or owner-operator driver
type Driver struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	LicenseNumber string    `json:"license_number"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	Status        string    `json:"status"` // available, on_trip, off_duty
	CompanyID     int       `json:"company_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
