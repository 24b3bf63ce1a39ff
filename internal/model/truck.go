package model

import "time"

// TruckStatus enum constants
const (
	TruckAvailable    = "available"
	TruckInUse        = "in_use"
	TruckMaintenance  = "maintenance"
	TruckOutOfService = "out_of_service"
)

// Truck represents a power unit in the fleet
type Truck struct {
	ID           int       `json:"id"`
	TruckNumber  string    `json:"truck_number"`
	Make         string    `json:"make,omitempty"`
	Model        string    `json:"model,omitempty"`
	Year         int       `json:"year,omitempty"`
	VIN          string    `json:"vin,omitempty"`
	LicensePlate string    `json:"license_plate,omitempty"`
	Status       string    `json:"status"` // available, in_use, maintenance, out_of_service
	CompanyID    int       `json:"company_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
