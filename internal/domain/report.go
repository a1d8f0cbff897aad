package domain

import "time"

// Ledger entry kinds as exposed by the daily ledger view
const (
	LedgerKindIncome  = "income"
	LedgerKindExpense = "expense"
)

// LedgerEntry is a row of the daily ledger view (incomes and expenses merged)
type LedgerEntry struct {
	EntryDate   time.Time
	Kind        string // income | expense
	Description string
	Amount      float64
}

// GuestRegistryRow is a row of the guest registry view
type GuestRegistryRow struct {
	Guest             string
	DocumentNumber    string
	Email             *string
	Phone             *string
	StartDate         time.Time
	EndDate           time.Time
	RoomNumber        string
	RoomType          string
	ReservationStatus string
}

// OccupancyRow is a row of the occupancy registry view
type OccupancyRow struct {
	RoomNumber        string
	RoomType          string
	StartDate         time.Time
	EndDate           time.Time
	ReservationStatus string
	Guest             string
}

// FinancialSummary aggregates incomes and expenses over a period
type FinancialSummary struct {
	Period       string
	TotalIncome  float64
	TotalExpense float64
	Balance      float64
}

// LedgerFilter filters the daily ledger view
type LedgerFilter struct {
	From *time.Time
	To   *time.Time
	Kind *string // income | expense
}

// GuestRegistryFilter filters the guest registry view
type GuestRegistryFilter struct {
	From           *time.Time
	To             *time.Time
	DocumentNumber *string
	GuestName      *string // substring match
}

// OccupancyFilter filters the occupancy registry view
type OccupancyFilter struct {
	From       *time.Time
	To         *time.Time
	RoomNumber *string
	RoomType   *string // substring match
}
