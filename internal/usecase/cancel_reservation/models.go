package cancel_reservation

import "time"

// Request модель запроса на отмену резервации
type Request struct {
	ReservationID int64 // ID резервации
}

// Response модель ответа с отмененной резервацией
type Response struct {
	ID        int64     // ID резервации
	RoomID    int64     // ID комнаты
	GuestID   string    // ID гостя
	StartDate time.Time // Дата заезда
	EndDate   time.Time // Дата выезда
	Status    string    // Статус резервации (cancelled)
	CreatedAt time.Time // Время создания
}
