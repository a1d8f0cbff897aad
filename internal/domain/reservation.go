package domain

import "time"

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusBooked    ReservationStatus = "booked"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a room booking over a date range.
// Dates are calendar dates; EndDate is exclusive: [StartDate, EndDate)
type Reservation struct {
	ID        int64
	RoomID    int64
	GuestID   string
	StartDate time.Time
	EndDate   time.Time
	Status    ReservationStatus
	CreatedAt time.Time
}

// IsBooked returns true if the reservation is active
func (r *Reservation) IsBooked() bool {
	return r.Status == StatusBooked
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// CanBeCancelled returns true if the reservation can still be cancelled.
// Cancellation is terminal: cancelled reservations never go back to booked
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusBooked
}

// Nights returns the number of nights covered by the reservation
func (r *Reservation) Nights() int {
	return int(r.EndDate.Sub(r.StartDate).Hours() / 24)
}

// Overlaps reports whether the reservation's [StartDate, EndDate) interval
// overlaps [start, end). Half-open semantics: a reservation ending on a given
// day does not conflict with one starting that same day, so back-to-back
// bookings (checkout day = next checkin day) are allowed
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartDate.Before(end) && r.EndDate.After(start)
}

// RoomReservationsFilter filters reservations of a single room
type RoomReservationsFilter struct {
	RoomID int64
	Status *ReservationStatus // nil = all statuses
}
