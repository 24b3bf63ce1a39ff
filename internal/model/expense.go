package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents an operating cost, optionally tied to a driver, truck or load
type Expense struct {
	ID            int             `json:"id"`
	Date          time.Time       `json:"date"`
	Category      string          `json:"category"`
	Description   string          `json:"description,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Vendor        string          `json:"vendor,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	ReceiptNumber string          `json:"receipt_number,omitempty"`
	DriverID      int             `json:"driver_id,omitempty"`
	TruckID       int             `json:"truck_id,omitempty"`
	LoadID        int             `json:"load_id,omitempty"`
	CompanyID     int             `json:"company_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
