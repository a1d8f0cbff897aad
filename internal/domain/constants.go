package domain

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD, calendar dates without time-of-day
)

// Business validation constants
const (
	MaxRoomNumberLength   = 10
	MaxRoomTypeLength     = 50
	MaxGuestNameLength    = 100
	MaxDocumentLength     = 20
	MaxDescriptionLength  = 500
	MaxParameterKeyLength = 50
	MaxAccountCodeLength  = 10
)

// ValidReservationStatuses список допустимых статусов резервации
var ValidReservationStatuses = []ReservationStatus{
	StatusBooked,
	StatusCancelled,
}

// ValidRoomStates список допустимых состояний комнаты
var ValidRoomStates = []RoomState{
	RoomAvailable,
	RoomOccupied,
}

// ValidInvoiceStatuses список допустимых статусов счета
var ValidInvoiceStatuses = []InvoiceStatus{
	InvoicePending,
	InvoicePaid,
	InvoiceVoid,
}
