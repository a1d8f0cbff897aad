package reservations

import (
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	cancelReservation "github.com/m04kA/HMS-ReservationService/internal/usecase/cancel_reservation"
	createReservation "github.com/m04kA/HMS-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	RoomID    int64  `json:"roomId"`
	GuestID   string `json:"guestId"`
	StartDate string `json:"startDate"` // "2026-03-15"
	EndDate   string `json:"endDate"`   // "2026-03-18"
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        int64  `json:"id"`
	RoomID    int64  `json:"roomId"`
	GuestID   string `json:"guestId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
	Nights    int    `json:"nights,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		RoomID:    r.RoomID,
		GuestID:   r.GuestID,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

// FromCreateResponse конвертирует ответ use case создания в HTTP response
func FromCreateResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:        resp.ID,
		RoomID:    resp.RoomID,
		GuestID:   resp.GuestID,
		StartDate: resp.StartDate.Format(domain.DateFormat),
		EndDate:   resp.EndDate.Format(domain.DateFormat),
		Status:    resp.Status,
		Nights:    resp.Nights,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}

// FromCancelResponse конвертирует ответ use case отмены в HTTP response
func FromCancelResponse(resp *cancelReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:        resp.ID,
		RoomID:    resp.RoomID,
		GuestID:   resp.GuestID,
		StartDate: resp.StartDate.Format(domain.DateFormat),
		EndDate:   resp.EndDate.Format(domain.DateFormat),
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
