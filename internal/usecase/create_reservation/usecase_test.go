package create_reservation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	roomRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/room"
)

// nopLogger заглушка логгера для тестов
type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeReservationRepo in-memory репозиторий резерваций
type fakeReservationRepo struct {
	mu           sync.Mutex
	nextID       int64
	reservations []*domain.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	stored := *reservation
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.reservations = append(f.reservations, &stored)

	created := stored
	return &created, nil
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

// fakeRoomRepo in-memory репозиторий комнат
type fakeRoomRepo struct {
	mu    sync.Mutex
	rooms map[int64]*domain.Room
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	room, ok := f.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	copied := *room
	return &copied, nil
}

func (f *fakeRoomRepo) UpdateState(_ context.Context, id int64, state domain.RoomState) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	room, ok := f.rooms[id]
	if !ok {
		return roomRepo.ErrRoomNotFound
	}
	room.State = state
	return nil
}

// fakeTxManager сериализует транзакции глобальным мьютексом,
// имитируя сериализуемые транзакции БД
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

func newTestUseCase(rooms map[int64]*domain.Room, existing []*domain.Reservation) (*UseCase, *fakeReservationRepo, *fakeRoomRepo) {
	reservations := &fakeReservationRepo{reservations: existing}
	for _, r := range existing {
		if r.ID > reservations.nextID {
			reservations.nextID = r.ID
		}
	}
	roomsRepo := &fakeRoomRepo{rooms: rooms}
	uc := NewUseCase(reservations, roomsRepo, &fakeTxManager{}, nopLogger{})
	return uc, reservations, roomsRepo
}

func availableRoom(id int64) map[int64]*domain.Room {
	return map[int64]*domain.Room{
		id: {ID: id, Number: "101", Type: "standard", PricePerNight: 100, State: domain.RoomAvailable},
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	uc, reservations, rooms := newTestUseCase(availableRoom(1), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:    1,
		GuestID:   "guest-1",
		StartDate: date(2026, time.March, 10),
		EndDate:   date(2026, time.March, 15),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)
	assert.Equal(t, 5, resp.Nights)

	require.Len(t, reservations.reservations, 1)
	assert.Equal(t, domain.RoomOccupied, rooms.rooms[1].State)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	start := date(2026, time.March, 10)
	end := date(2026, time.March, 15)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "non-positive room id",
			req:     &Request{RoomID: 0, GuestID: "guest-1", StartDate: start, EndDate: end},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty guest id",
			req:     &Request{RoomID: 1, GuestID: "", StartDate: start, EndDate: end},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero start date",
			req:     &Request{RoomID: 1, GuestID: "guest-1", EndDate: end},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "start equals end",
			req:     &Request{RoomID: 1, GuestID: "guest-1", StartDate: start, EndDate: start},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "start after end",
			req:     &Request{RoomID: 1, GuestID: "guest-1", StartDate: end, EndDate: start},
			wantErr: ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, reservations, _ := newTestUseCase(availableRoom(1), nil)

			_, err := uc.Execute(context.Background(), tt.req)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, reservations.reservations)
		})
	}
}

func TestUseCase_Execute_RoomNotFound(t *testing.T) {
	uc, _, _ := newTestUseCase(availableRoom(1), nil)

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:    42,
		GuestID:   "guest-1",
		StartDate: date(2026, time.March, 10),
		EndDate:   date(2026, time.March, 15),
	})

	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestUseCase_Execute_RoomUnavailable(t *testing.T) {
	rooms := map[int64]*domain.Room{
		1: {ID: 1, Number: "101", Type: "standard", State: domain.RoomOccupied},
	}
	uc, reservations, _ := newTestUseCase(rooms, nil)

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:    1,
		GuestID:   "guest-1",
		StartDate: date(2026, time.March, 10),
		EndDate:   date(2026, time.March, 15),
	})

	require.ErrorIs(t, err, ErrRoomUnavailable)
	assert.Empty(t, reservations.reservations)
}

func TestUseCase_Execute_DateConflict(t *testing.T) {
	existing := []*domain.Reservation{
		{
			ID:        1,
			RoomID:    1,
			GuestID:   "guest-1",
			StartDate: date(2026, time.March, 10),
			EndDate:   date(2026, time.March, 15),
			Status:    domain.StatusBooked,
		},
	}
	uc, reservations, _ := newTestUseCase(availableRoom(1), existing)

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:    1,
		GuestID:   "guest-2",
		StartDate: date(2026, time.March, 12),
		EndDate:   date(2026, time.March, 17),
	})

	require.ErrorIs(t, err, ErrDateConflict)
	assert.Len(t, reservations.reservations, 1)
}

func TestUseCase_Execute_BackToBackAllowed(t *testing.T) {
	existing := []*domain.Reservation{
		{
			ID:        1,
			RoomID:    1,
			GuestID:   "guest-1",
			StartDate: date(2026, time.March, 10),
			EndDate:   date(2026, time.March, 15),
			Status:    domain.StatusBooked,
		},
	}
	uc, reservations, _ := newTestUseCase(availableRoom(1), existing)

	// Заезд в день выезда предыдущего гостя не конфликтует
	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:    1,
		GuestID:   "guest-2",
		StartDate: date(2026, time.March, 15),
		EndDate:   date(2026, time.March, 20),
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)
	assert.Len(t, reservations.reservations, 2)
}

func TestUseCase_Execute_CancelledReservationDoesNotConflict(t *testing.T) {
	existing := []*domain.Reservation{
		{
			ID:        1,
			RoomID:    1,
			GuestID:   "guest-1",
			StartDate: date(2026, time.March, 10),
			EndDate:   date(2026, time.March, 15),
			Status:    domain.StatusCancelled,
		},
	}
	uc, _, _ := newTestUseCase(availableRoom(1), existing)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:    1,
		GuestID:   "guest-2",
		StartDate: date(2026, time.March, 12),
		EndDate:   date(2026, time.March, 17),
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)
}

func TestUseCase_Execute_ConcurrentRequestsExactlyOneWins(t *testing.T) {
	const workers = 10

	uc, reservations, rooms := newTestUseCase(availableRoom(1), nil)

	var wg sync.WaitGroup
	successes := make(chan *Response, workers)
	failures := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			resp, err := uc.Execute(context.Background(), &Request{
				RoomID:    1,
				GuestID:   "guest-1",
				StartDate: date(2026, time.March, 10),
				EndDate:   date(2026, time.March, 15),
			})
			if err != nil {
				failures <- err
				return
			}
			successes <- resp
		}()
	}

	wg.Wait()
	close(successes)
	close(failures)

	assert.Len(t, successes, 1)
	assert.Len(t, failures, workers-1)
	assert.Len(t, reservations.reservations, 1)
	assert.Equal(t, domain.RoomOccupied, rooms.rooms[1].State)

	// Проигравшие получают доменную ошибку, а не успех
	for err := range failures {
		isExpected := errors.Is(err, ErrRoomUnavailable) || errors.Is(err, ErrDateConflict)
		assert.True(t, isExpected, "unexpected error: %v", err)
	}
}
