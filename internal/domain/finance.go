package domain

import "time"

// Income represents a single income ledger entry, optionally tied to a reservation
type Income struct {
	ID            int64
	ReservationID *int64
	Amount        float64
	Description   *string
	EntryDate     time.Time
}

// Expense represents a single expense ledger entry
type Expense struct {
	ID          int64
	Description string
	Amount      float64
	EntryDate   time.Time
}
