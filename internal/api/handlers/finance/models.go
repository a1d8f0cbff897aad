package finance

import (
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	financeService "github.com/m04kA/HMS-ReservationService/internal/service/finance/models"
)

// CreateIncomeRequest HTTP request model
type CreateIncomeRequest struct {
	ReservationID *int64  `json:"reservationId,omitempty"`
	Amount        float64 `json:"amount"`
	Description   *string `json:"description,omitempty"`
	EntryDate     string  `json:"entryDate"` // "2026-03-18"
}

// CreateExpenseRequest HTTP request model
type CreateExpenseRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	EntryDate   string  `json:"entryDate"` // "2026-03-18"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateIncomeRequest) ToServiceRequest() (*financeService.CreateIncomeRequest, error) {
	entryDate, err := time.Parse(domain.DateFormat, r.EntryDate)
	if err != nil {
		return nil, err
	}

	return &financeService.CreateIncomeRequest{
		ReservationID: r.ReservationID,
		Amount:        r.Amount,
		Description:   r.Description,
		EntryDate:     entryDate,
	}, nil
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateExpenseRequest) ToServiceRequest() (*financeService.CreateExpenseRequest, error) {
	entryDate, err := time.Parse(domain.DateFormat, r.EntryDate)
	if err != nil {
		return nil, err
	}

	return &financeService.CreateExpenseRequest{
		Description: r.Description,
		Amount:      r.Amount,
		EntryDate:   entryDate,
	}, nil
}
