package model

import "time"

// Lane represents a recurring pickup/delivery pairing worked with a broker
type Lane struct {
	ID               int       `json:"id"`
	PickupLocation   string    `json:"pickup_location"`
	DeliveryLocation string    `json:"delivery_location"`
	Broker           string    `json:"broker"`
	Email            string    `json:"email,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	CompanyID        int       `json:"company_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Route renders the lane as "pickup -> delivery" for display
func (l *Lane) Route() string {
	return l.PickupLocation + " -> " + l.DeliveryLocation
}
