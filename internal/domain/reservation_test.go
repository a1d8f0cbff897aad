package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestReservation_Overlaps(t *testing.T) {
	reservation := &Reservation{
		StartDate: date(2026, time.March, 10),
		EndDate:   date(2026, time.March, 15),
		Status:    StatusBooked,
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{
			name:  "identical interval",
			start: date(2026, time.March, 10),
			end:   date(2026, time.March, 15),
			want:  true,
		},
		{
			name:  "partial overlap at the end",
			start: date(2026, time.March, 14),
			end:   date(2026, time.March, 20),
			want:  true,
		},
		{
			name:  "partial overlap at the start",
			start: date(2026, time.March, 5),
			end:   date(2026, time.March, 11),
			want:  true,
		},
		{
			name:  "containing interval",
			start: date(2026, time.March, 1),
			end:   date(2026, time.March, 31),
			want:  true,
		},
		{
			name:  "contained interval",
			start: date(2026, time.March, 11),
			end:   date(2026, time.March, 13),
			want:  true,
		},
		{
			name:  "back-to-back after checkout",
			start: date(2026, time.March, 15),
			end:   date(2026, time.March, 20),
			want:  false,
		},
		{
			name:  "back-to-back before checkin",
			start: date(2026, time.March, 5),
			end:   date(2026, time.March, 10),
			want:  false,
		},
		{
			name:  "fully before",
			start: date(2026, time.March, 1),
			end:   date(2026, time.March, 5),
			want:  false,
		},
		{
			name:  "fully after",
			start: date(2026, time.March, 20),
			end:   date(2026, time.March, 25),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reservation.Overlaps(tt.start, tt.end))
		})
	}
}

func TestReservation_Nights(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "single night",
			start: date(2026, time.March, 10),
			end:   date(2026, time.March, 11),
			want:  1,
		},
		{
			name:  "five nights",
			start: date(2026, time.March, 10),
			end:   date(2026, time.March, 15),
			want:  5,
		},
		{
			name:  "across month boundary",
			start: date(2026, time.March, 30),
			end:   date(2026, time.April, 2),
			want:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Reservation{StartDate: tt.start, EndDate: tt.end}
			assert.Equal(t, tt.want, r.Nights())
		})
	}
}

func TestReservation_CanBeCancelled(t *testing.T) {
	booked := &Reservation{Status: StatusBooked}
	assert.True(t, booked.CanBeCancelled())

	cancelled := &Reservation{Status: StatusCancelled}
	assert.False(t, cancelled.CanBeCancelled())
}
