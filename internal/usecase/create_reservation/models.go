package create_reservation

import "time"

// Request модель запроса на создание резервации
type Request struct {
	RoomID    int64     // ID комнаты
	GuestID   string    // ID гостя (UUID)
	StartDate time.Time // Дата заезда (включительно)
	EndDate   time.Time // Дата выезда (не включается в занятый интервал)
}

// Response модель ответа с созданной резервацией
type Response struct {
	ID        int64     // ID созданной резервации
	RoomID    int64     // ID комнаты
	GuestID   string    // ID гостя
	StartDate time.Time // Дата заезда
	EndDate   time.Time // Дата выезда
	Status    string    // Статус резервации
	Nights    int       // Количество ночей
	CreatedAt time.Time // Время создания
}
