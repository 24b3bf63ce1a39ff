package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollType enum constants
const (
	PayrollCompany       = "company"
	PayrollOwnerOperator = "owner_operator"
)

// Payroll represents a driver's weekly settlement
type Payroll struct {
	ID          int             `json:"id"`
	WeekStart   time.Time       `json:"week_start"`
	WeekEnd     time.Time       `json:"week_end"`
	DriverID    int             `json:"driver_id"`
	Driver      *Driver         `json:"driver,omitempty"`
	Type        string          `json:"type"` // company, owner_operator
	Gross       decimal.Decimal `json:"gross"`
	Extra       decimal.Decimal `json:"extra"`
	DispatchFee decimal.Decimal `json:"dispatch_fee"`
	Insurance   decimal.Decimal `json:"insurance"`
	Fuel        decimal.Decimal `json:"fuel"`
	Parking     decimal.Decimal `json:"parking"`
	Trailer     decimal.Decimal `json:"trailer"`
	Misc        decimal.Decimal `json:"misc"`
	Escrow      decimal.Decimal `json:"escrow"`
	Miles       int             `json:"miles"`
	CompanyID   int             `json:"company_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CheckAmount is the settlement check: gross + extra minus all deductions
func (p *Payroll) CheckAmount() decimal.Decimal {
	deductions := p.DispatchFee.
		Add(p.Insurance).
		Add(p.Fuel).
		Add(p.Parking).
		Add(p.Trailer).
		Add(p.Misc).
		Add(p.Escrow)
	return p.Gross.Add(p.Extra).Sub(deductions)
}

// RPM is revenue per mile; zero when no miles are recorded
func (p *Payroll) RPM() decimal.Decimal {
	if p.Miles <= 0 {
		return decimal.Zero
	}
	return p.Gross.Div(decimal.NewFromInt(int64(p.Miles)))
}
