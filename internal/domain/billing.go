package domain

import "time"

// InvoiceStatus represents the payment state of an invoice
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceVoid    InvoiceStatus = "void"
)

// Invoice represents a bill issued for a reservation
type Invoice struct {
	ID            int64
	ReservationID int64
	IssueDate     time.Time
	Total         float64
	Status        InvoiceStatus
	Payments      []Payment
}

// Payment represents a payment applied to an invoice
type Payment struct {
	ID          int64
	InvoiceID   int64
	PaymentDate time.Time
	Amount      float64
	Method      string // e.g. "cash", "card", "transfer"
}
