package cancel_reservation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/reservation"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeReservationRepo in-memory репозиторий резерваций
type fakeReservationRepo struct {
	mu           sync.Mutex
	reservations map[int64]*domain.Reservation
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	reservation, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *reservation
	return &copied, nil
}

func (f *fakeReservationRepo) ListByRoom(_ context.Context, filter domain.RoomReservationsFilter) ([]*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []*domain.Reservation
	for _, r := range f.reservations {
		if r.RoomID != filter.RoomID {
			continue
		}
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		copied := *r
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	reservation, ok := f.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	reservation.Status = status
	return nil
}

// fakeRoomRepo запоминает последнее выставленное состояние комнаты
type fakeRoomRepo struct {
	mu     sync.Mutex
	states map[int64]domain.RoomState
}

func (f *fakeRoomRepo) UpdateState(_ context.Context, id int64, state domain.RoomState) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.states == nil {
		f.states = make(map[int64]domain.RoomState)
	}
	f.states[id] = state
	return nil
}

type fakeTxManager struct {
	mu sync.Mutex
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(existing ...*domain.Reservation) (*UseCase, *fakeReservationRepo, *fakeRoomRepo) {
	reservations := &fakeReservationRepo{reservations: make(map[int64]*domain.Reservation)}
	for _, r := range existing {
		reservations.reservations[r.ID] = r
	}
	rooms := &fakeRoomRepo{}
	uc := NewUseCase(reservations, rooms, &fakeTxManager{}, nopLogger{})
	return uc, reservations, rooms
}

func bookedReservation(id, roomID int64, startDay, endDay int) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		RoomID:    roomID,
		GuestID:   "guest-1",
		StartDate: date(2026, time.March, startDay),
		EndDate:   date(2026, time.March, endDay),
		Status:    domain.StatusBooked,
		CreatedAt: time.Now(),
	}
}

func TestUseCase_Execute_CancelFreesRoom(t *testing.T) {
	uc, reservations, rooms := newTestUseCase(bookedReservation(1, 10, 10, 15))

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 1})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, domain.StatusCancelled, reservations.reservations[1].Status)

	// Последняя активная резервация снята, комната снова доступна
	assert.Equal(t, domain.RoomAvailable, rooms.states[10])
}

func TestUseCase_Execute_RoomStaysOccupiedWithRemainingBookings(t *testing.T) {
	uc, _, rooms := newTestUseCase(
		bookedReservation(1, 10, 10, 15),
		bookedReservation(2, 10, 20, 25),
	)

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 1})

	require.NoError(t, err)
	assert.Equal(t, domain.RoomOccupied, rooms.states[10])
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 42})

	require.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUseCase_Execute_AlreadyCancelled(t *testing.T) {
	cancelled := bookedReservation(1, 10, 10, 15)
	cancelled.Status = domain.StatusCancelled

	uc, _, rooms := newTestUseCase(cancelled)

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 1})

	require.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Empty(t, rooms.states)
}

func TestUseCase_Execute_InvalidID(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 0})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_DoubleCancelSecondFails(t *testing.T) {
	uc, _, _ := newTestUseCase(bookedReservation(1, 10, 10, 15))

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 1})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{ReservationID: 1})
	require.ErrorIs(t, err, ErrAlreadyCancelled)
}
