package models

import "github.com/m04kA/HMS-ReservationService/internal/domain"

// Request модели

// CreateAccountRequest запрос на создание счета плана
type CreateAccountRequest struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Level int    `json:"level"`
}

// UpdateAccountRequest запрос на обновление счета плана
type UpdateAccountRequest struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Level int    `json:"level"`
}

// ListAccountsRequest запрос на постраничный список счетов
type ListAccountsRequest struct {
	Skip  uint64 `json:"skip"`
	Limit uint64 `json:"limit"`
}

// Response модели

// AccountResponse ответ с данными счета плана
type AccountResponse struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Level int    `json:"level"`
}

// AccountListResponse ответ со списком счетов плана
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// Методы конвертации

// FromDomainAccount конвертирует domain модель в DTO
func FromDomainAccount(a *domain.Account) *AccountResponse {
	if a == nil {
		return nil
	}

	return &AccountResponse{
		ID:    a.ID,
		Code:  a.Code,
		Name:  a.Name,
		Type:  a.Type,
		Level: a.Level,
	}
}

// FromDomainAccountList конвертирует список domain моделей в DTO
func FromDomainAccountList(accounts []*domain.Account) *AccountListResponse {
	resp := &AccountListResponse{
		Accounts: make([]AccountResponse, 0, len(accounts)),
	}

	for _, account := range accounts {
		if accountResp := FromDomainAccount(account); accountResp != nil {
			resp.Accounts = append(resp.Accounts, *accountResp)
		}
	}

	return resp
}
