package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoadStatus enum constants
const (
	LoadPending   = "pending"
	LoadAssigned  = "assigned"
	LoadInTransit = "in_transit"
	LoadDelivered = "delivered"
	LoadCancelled = "cancelled"
)

// Load represents a freight movement from pickup to delivery
type Load struct {
	ID               int             `json:"id"`
	LoadNumber       string          `json:"load_number"`
	CustomerID       int             `json:"customer_id"`
	Customer         *Customer       `json:"customer,omitempty"`
	DriverID         int             `json:"driver_id,omitempty"`
	Driver           *Driver         `json:"driver,omitempty"`
	TruckID          int             `json:"truck_id,omitempty"`
	Truck            *Truck          `json:"truck,omitempty"`
	PickupLocation   string          `json:"pickup_location"`
	PickupDate       time.Time       `json:"pickup_date"`
	DeliveryLocation string          `json:"delivery_location"`
	DeliveryDate     time.Time       `json:"delivery_date"`
	Weight           float64         `json:"weight,omitempty"`
	Rate             decimal.Decimal `json:"rate"`
	Status           string          `json:"status"` // pending, assigned, in_transit, delivered, cancelled
	PodURL           string          `json:"pod_url,omitempty"`
	RateconURL       string          `json:"ratecon_url,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	CompanyID        int             `json:"company_id"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
