package models

import "github.com/m04kA/HMS-ReservationService/internal/domain"

// Request модели

// CreateGuestRequest запрос на регистрацию гостя
type CreateGuestRequest struct {
	FullName       string  `json:"fullName"`
	DocumentNumber string  `json:"documentNumber"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
}

// UpdateGuestRequest запрос на обновление данных гостя
type UpdateGuestRequest struct {
	FullName       string  `json:"fullName"`
	DocumentNumber string  `json:"documentNumber"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
}

// Response модели

// GuestResponse ответ с данными гостя
type GuestResponse struct {
	ID             string  `json:"id"`
	FullName       string  `json:"fullName"`
	DocumentNumber string  `json:"documentNumber"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
}

// GuestListResponse ответ со списком гостей
type GuestListResponse struct {
	Guests []GuestResponse `json:"guests"`
}

// Методы конвертации

// FromDomainGuest конвертирует domain модель в DTO
func FromDomainGuest(g *domain.Guest) *GuestResponse {
	if g == nil {
		return nil
	}

	return &GuestResponse{
		ID:             g.ID,
		FullName:       g.FullName,
		DocumentNumber: g.DocumentNumber,
		Email:          g.Email,
		Phone:          g.Phone,
	}
}

// FromDomainGuestList конвертирует список domain моделей в DTO
func FromDomainGuestList(guests []*domain.Guest) *GuestListResponse {
	resp := &GuestListResponse{
		Guests: make([]GuestResponse, 0, len(guests)),
	}

	for _, guest := range guests {
		if guestResp := FromDomainGuest(guest); guestResp != nil {
			resp.Guests = append(resp.Guests, *guestResp)
		}
	}

	return resp
}
