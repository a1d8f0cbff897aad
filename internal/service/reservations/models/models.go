package models

import (
	"errors"
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// ListByRoomRequest запрос на получение резерваций комнаты
type ListByRoomRequest struct {
	RoomID int64   `json:"roomId"`
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListByRoomRequest) ToDomainFilter() (domain.RoomReservationsFilter, error) {
	filter := domain.RoomReservationsFilter{
		RoomID: r.RoomID,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными резервации
type ReservationResponse struct {
	ID        int64     `json:"id"`
	RoomID    int64     `json:"roomId"`
	GuestID   string    `json:"guestId"`
	StartDate string    `json:"startDate"` // "2026-03-15"
	EndDate   string    `json:"endDate"`   // "2026-03-18"
	Status    string    `json:"status"`
	Nights    int       `json:"nights"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReservationListResponse ответ со списком резерваций
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:        r.ID,
		RoomID:    r.RoomID,
		GuestID:   r.GuestID,
		StartDate: r.StartDate.Format(domain.DateFormat),
		EndDate:   r.EndDate.Format(domain.DateFormat),
		Status:    string(r.Status),
		Nights:    r.Nights(),
		CreatedAt: r.CreatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, reservation := range reservations {
		if reservationResp := FromDomainReservation(reservation); reservationResp != nil {
			resp.Reservations = append(resp.Reservations, *reservationResp)
		}
	}

	return resp
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)

	for _, valid := range domain.ValidReservationStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
