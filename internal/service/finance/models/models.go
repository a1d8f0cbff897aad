package models

import (
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// Request модели

// CreateIncomeRequest запрос на регистрацию дохода
type CreateIncomeRequest struct {
	ReservationID *int64    `json:"reservationId,omitempty"` // Привязка к резервации (опционально)
	Amount        float64   `json:"amount"`
	Description   *string   `json:"description,omitempty"`
	EntryDate     time.Time `json:"entryDate"`
}

// CreateExpenseRequest запрос на регистрацию расхода
type CreateExpenseRequest struct {
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	EntryDate   time.Time `json:"entryDate"`
}

// Response модели

// IncomeResponse ответ с данными дохода
type IncomeResponse struct {
	ID            int64   `json:"id"`
	ReservationID *int64  `json:"reservationId,omitempty"`
	Amount        float64 `json:"amount"`
	Description   *string `json:"description,omitempty"`
	EntryDate     string  `json:"entryDate"` // "2026-03-18"
}

// ExpenseResponse ответ с данными расхода
type ExpenseResponse struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	EntryDate   string  `json:"entryDate"` // "2026-03-18"
}

// IncomeListResponse ответ со списком доходов
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
}

// ExpenseListResponse ответ со списком расходов
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// Методы конвертации

// FromDomainIncome конвертирует domain модель в DTO
func FromDomainIncome(i *domain.Income) *IncomeResponse {
	if i == nil {
		return nil
	}

	return &IncomeResponse{
		ID:            i.ID,
		ReservationID: i.ReservationID,
		Amount:        i.Amount,
		Description:   i.Description,
		EntryDate:     i.EntryDate.Format(domain.DateFormat),
	}
}

// FromDomainIncomeList конвертирует список domain моделей в DTO
func FromDomainIncomeList(incomes []*domain.Income) *IncomeListResponse {
	resp := &IncomeListResponse{
		Incomes: make([]IncomeResponse, 0, len(incomes)),
	}

	for _, income := range incomes {
		if incomeResp := FromDomainIncome(income); incomeResp != nil {
			resp.Incomes = append(resp.Incomes, *incomeResp)
		}
	}

	return resp
}

// FromDomainExpense конвертирует domain модель в DTO
func FromDomainExpense(e *domain.Expense) *ExpenseResponse {
	if e == nil {
		return nil
	}

	return &ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		EntryDate:   e.EntryDate.Format(domain.DateFormat),
	}
}

// FromDomainExpenseList конвертирует список domain моделей в DTO
func FromDomainExpenseList(expenses []*domain.Expense) *ExpenseListResponse {
	resp := &ExpenseListResponse{
		Expenses: make([]ExpenseResponse, 0, len(expenses)),
	}

	for _, expense := range expenses {
		if expenseResp := FromDomainExpense(expense); expenseResp != nil {
			resp.Expenses = append(resp.Expenses, *expenseResp)
		}
	}

	return resp
}
