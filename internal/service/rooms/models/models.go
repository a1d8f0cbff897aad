package models

import "github.com/m04kA/HMS-ReservationService/internal/domain"

// Request модели

// CreateRoomRequest запрос на создание комнаты
type CreateRoomRequest struct {
	Number        string  `json:"number"`
	Type          string  `json:"type"`
	PricePerNight float64 `json:"pricePerNight"`
}

// UpdateRoomStateRequest административный запрос на смену состояния комнаты
type UpdateRoomStateRequest struct {
	State string `json:"state"`
}

// Response модели

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	ID            int64   `json:"id"`
	Number        string  `json:"number"`
	Type          string  `json:"type"`
	PricePerNight float64 `json:"pricePerNight"`
	State         string  `json:"state"`
}

// RoomListResponse ответ со списком комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// Методы конвертации

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	return &RoomResponse{
		ID:            r.ID,
		Number:        r.Number,
		Type:          r.Type,
		PricePerNight: r.PricePerNight,
		State:         string(r.State),
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}

	for _, room := range rooms {
		if roomResp := FromDomainRoom(room); roomResp != nil {
			resp.Rooms = append(resp.Rooms, *roomResp)
		}
	}

	return resp
}
