package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus enum constants
const (
	InvoiceDraft     = "draft"
	InvoiceSent      = "sent"
	InvoicePaid      = "paid"
	InvoiceOverdue   = "overdue"
	InvoiceCancelled = "cancelled"
)

// Invoice represents a customer invoice raised against a delivered load
type Invoice struct {
	ID               int             `json:"id"`
	InvoiceNumber    string          `json:"invoice_number"`
	LoadID           int             `json:"load_id"`
	IssueDate        time.Time       `json:"issue_date"`
	DueDate          time.Time       `json:"due_date"`
	Status           string          `json:"status"` // draft, sent, paid, overdue, cancelled
	Subtotal         decimal.Decimal `json:"subtotal"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	AmountPaid       decimal.Decimal `json:"amount_paid"`
	PaymentDate      *time.Time      `json:"payment_date,omitempty"`
	PaymentMethod    string          `json:"payment_method,omitempty"`
	PaymentReference string          `json:"payment_reference,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	Terms            string          `json:"terms,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// AmountDue is the outstanding balance on the invoice
func (i *Invoice) AmountDue() decimal.Decimal {
	return i.TotalAmount.Sub(i.AmountPaid)
}

// IsPaid reports whether the invoice is settled in full
func (i *Invoice) IsPaid() bool {
	return i.AmountPaid.GreaterThanOrEqual(i.TotalAmount)
}
