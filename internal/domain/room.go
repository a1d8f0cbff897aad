package domain

// RoomState represents the cached availability state of a room.
// It is a derived projection of the room's booked reservations and is
// mutated only by the reservation usecases, never by external callers
type RoomState string

const (
	RoomAvailable RoomState = "available"
	RoomOccupied  RoomState = "occupied"
)

// Room represents a hotel room
type Room struct {
	ID            int64
	Number        string // unique human-facing room number, e.g. "204"
	Type          string
	PricePerNight float64
	State         RoomState
}

// IsAvailable returns true if the room can accept new reservations
func (r *Room) IsAvailable() bool {
	return r.State == RoomAvailable
}
