package models

import (
	"errors"
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

var (
	// ErrInvalidKind возвращается при некорректном типе записи книги учета
	ErrInvalidKind = errors.New("invalid ledger kind")
)

// Request модели

// LedgerRequest запрос книги учета за период
type LedgerRequest struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
	Kind *string    `json:"kind,omitempty"` // income | expense
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *LedgerRequest) ToDomainFilter() (domain.LedgerFilter, error) {
	filter := domain.LedgerFilter{
		From: r.From,
		To:   r.To,
	}

	if r.Kind != nil {
		if *r.Kind != domain.LedgerKindIncome && *r.Kind != domain.LedgerKindExpense {
			return filter, ErrInvalidKind
		}
		filter.Kind = r.Kind
	}

	return filter, nil
}

// GuestRegistryRequest запрос регистра гостей
type GuestRegistryRequest struct {
	From           *time.Time `json:"from,omitempty"`
	To             *time.Time `json:"to,omitempty"`
	DocumentNumber *string    `json:"documentNumber,omitempty"`
	GuestName      *string    `json:"guestName,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GuestRegistryRequest) ToDomainFilter() domain.GuestRegistryFilter {
	return domain.GuestRegistryFilter{
		From:           r.From,
		To:             r.To,
		DocumentNumber: r.DocumentNumber,
		GuestName:      r.GuestName,
	}
}

// OccupancyRequest запрос регистра занятости комнат
type OccupancyRequest struct {
	From       *time.Time `json:"from,omitempty"`
	To         *time.Time `json:"to,omitempty"`
	RoomNumber *string    `json:"roomNumber,omitempty"`
	RoomType   *string    `json:"roomType,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *OccupancyRequest) ToDomainFilter() domain.OccupancyFilter {
	return domain.OccupancyFilter{
		From:       r.From,
		To:         r.To,
		RoomNumber: r.RoomNumber,
		RoomType:   r.RoomType,
	}
}

// Response модели

// LedgerEntryResponse запись книги учета
type LedgerEntryResponse struct {
	EntryDate   string  `json:"entryDate"` // "2026-03-18"
	Kind        string  `json:"kind"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// LedgerResponse ответ с книгой учета
type LedgerResponse struct {
	Entries []LedgerEntryResponse `json:"entries"`
}

// GuestRegistryRowResponse строка регистра гостей
type GuestRegistryRowResponse struct {
	Guest             string  `json:"guest"`
	DocumentNumber    string  `json:"documentNumber"`
	Email             *string `json:"email,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	StartDate         string  `json:"startDate"`
	EndDate           string  `json:"endDate"`
	RoomNumber        string  `json:"roomNumber"`
	RoomType          string  `json:"roomType"`
	ReservationStatus string  `json:"reservationStatus"`
}

// GuestRegistryResponse ответ с регистром гостей
type GuestRegistryResponse struct {
	Rows []GuestRegistryRowResponse `json:"rows"`
}

// OccupancyRowResponse строка регистра занятости
type OccupancyRowResponse struct {
	RoomNumber        string `json:"roomNumber"`
	RoomType          string `json:"roomType"`
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate"`
	ReservationStatus string `json:"reservationStatus"`
	Guest             string `json:"guest"`
}

// OccupancyResponse ответ с регистром занятости
type OccupancyResponse struct {
	Rows []OccupancyRowResponse `json:"rows"`
}

// FinancialSummaryResponse финансовая сводка за период
type FinancialSummaryResponse struct {
	Period       string  `json:"period"`
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Balance      float64 `json:"balance"`
}

// Методы конвертации

// FromDomainLedger конвертирует записи книги учета в DTO
func FromDomainLedger(entries []*domain.LedgerEntry) *LedgerResponse {
	resp := &LedgerResponse{
		Entries: make([]LedgerEntryResponse, 0, len(entries)),
	}

	for _, entry := range entries {
		resp.Entries = append(resp.Entries, LedgerEntryResponse{
			EntryDate:   entry.EntryDate.Format(domain.DateFormat),
			Kind:        entry.Kind,
			Description: entry.Description,
			Amount:      entry.Amount,
		})
	}

	return resp
}

// FromDomainGuestRegistry конвертирует регистр гостей в DTO
func FromDomainGuestRegistry(rows []*domain.GuestRegistryRow) *GuestRegistryResponse {
	resp := &GuestRegistryResponse{
		Rows: make([]GuestRegistryRowResponse, 0, len(rows)),
	}

	for _, row := range rows {
		resp.Rows = append(resp.Rows, GuestRegistryRowResponse{
			Guest:             row.Guest,
			DocumentNumber:    row.DocumentNumber,
			Email:             row.Email,
			Phone:             row.Phone,
			StartDate:         row.StartDate.Format(domain.DateFormat),
			EndDate:           row.EndDate.Format(domain.DateFormat),
			RoomNumber:        row.RoomNumber,
			RoomType:          row.RoomType,
			ReservationStatus: row.ReservationStatus,
		})
	}

	return resp
}

// FromDomainOccupancy конвертирует регистр занятости в DTO
func FromDomainOccupancy(rows []*domain.OccupancyRow) *OccupancyResponse {
	resp := &OccupancyResponse{
		Rows: make([]OccupancyRowResponse, 0, len(rows)),
	}

	for _, row := range rows {
		resp.Rows = append(resp.Rows, OccupancyRowResponse{
			RoomNumber:        row.RoomNumber,
			RoomType:          row.RoomType,
			StartDate:         row.StartDate.Format(domain.DateFormat),
			EndDate:           row.EndDate.Format(domain.DateFormat),
			ReservationStatus: row.ReservationStatus,
			Guest:             row.Guest,
		})
	}

	return resp
}

// FromDomainFinancialSummary конвертирует финансовую сводку в DTO
func FromDomainFinancialSummary(s *domain.FinancialSummary) *FinancialSummaryResponse {
	if s == nil {
		return nil
	}

	return &FinancialSummaryResponse{
		Period:       s.Period,
		TotalIncome:  s.TotalIncome,
		TotalExpense: s.TotalExpense,
		Balance:      s.Balance,
	}
}
